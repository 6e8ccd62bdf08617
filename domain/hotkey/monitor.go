package hotkey

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	DefaultMonitorInterval = 2 * time.Second
	DefaultRestartCooldown = 2 * time.Second
)

// Target narrows the manager surface the monitor drives.
type Target interface {
	State() ManagerState
	Healthy() bool
	Restart() bool
}

// Monitor periodically verifies that the hotkey listener is still
// observing input and restarts it when it died. Each detected failure
// triggers exactly one restart, then a cooldown suppresses further
// attempts so a persistently broken listener is retried at cooldown
// cadence instead of being hammered.
type Monitor struct {
	target   Target
	logger   *slog.Logger
	interval time.Duration
	cooldown time.Duration

	// mu serializes Start and Stop; the loop itself is lock-free.
	mu            sync.Mutex
	running       atomic.Bool
	done          chan struct{}
	suppressUntil atomic.Int64
	restarts      atomic.Uint64
	checks        atomic.Uint64
}

// NewMonitor uses the defaults for non-positive interval or cooldown.
func NewMonitor(target Target, interval, cooldown time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	if cooldown <= 0 {
		cooldown = DefaultRestartCooldown
	}
	return &Monitor{target: target, logger: logger, interval: interval, cooldown: cooldown}
}

func (w *Monitor) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	go w.loop(w.done)
}

func (w *Monitor) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

func (w *Monitor) Running() bool { return w.running.Load() }

// Restarts counts recoveries triggered since construction.
func (w *Monitor) Restarts() uint64 { return w.restarts.Load() }

// loop owns the done channel it was started with, so a Stop/Start pair
// can never leave a stale loop watching the successor's channel.
func (w *Monitor) loop(done <-chan struct{}) {
	defer recoverLog(w.logger, "hotkey monitor panic")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.check(time.Now())
		case <-done:
			return
		}
	}
}

func (w *Monitor) check(now time.Time) {
	w.checks.Add(1)
	var needsRestart bool
	switch w.target.State() {
	case StateRunning:
		needsRestart = !w.target.Healthy()
	case StateUnavailable:
		needsRestart = true
	default:
		// Stopped or mid-start: not the monitor's business.
		return
	}
	if !needsRestart {
		return
	}
	until := w.suppressUntil.Load()
	if now.UnixNano() < until {
		return
	}
	if !w.suppressUntil.CompareAndSwap(until, now.Add(w.cooldown).UnixNano()) {
		return
	}
	w.restarts.Add(1)
	if w.logger != nil {
		w.logger.Warn("hotkey listener dead; restarting")
	}
	if w.target.Restart() {
		if w.logger != nil {
			w.logger.Info("hotkey listener recovered")
		}
	}
}
