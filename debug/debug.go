// Package debug holds periodic loggers enabled by config.Debug. They
// exist to answer two field questions: do hotkey restarts leak pump
// goroutines, and does per-sample screen access grow native memory
// that Go heap stats cannot see.
package debug

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

const DefaultInterval = 5 * time.Second

// StartRuntimeLogger launches a ticker that logs goroutine, heap and
// working-set figures. The goroutine count is the restart-leak canary:
// every hotkey restart tears down one strategy pump and starts another,
// so the count must hold steady across restarts. The ticker never
// stops; it dies with the process.
func StartRuntimeLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			attrs := []any{
				slog.Uint64("goroutines", samples[0].Value.Uint64()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			}
			if rss, ok := readRSS(logger); ok {
				attrs = append(attrs, slog.Uint64("rss", rss))
			}
			logger.Info("runtime stats", attrs...)
		}
	}()
}

// StartCounterLogger periodically logs application counters gathered
// by snap, which returns alternating slog key/value pairs. snap runs
// on the logger goroutine and must only touch goroutine-safe state.
func StartCounterLogger(interval time.Duration, logger *slog.Logger, snap func() []any) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil || snap == nil {
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for range t.C {
			logger.Info("picker counters", snap()...)
		}
	}()
}
