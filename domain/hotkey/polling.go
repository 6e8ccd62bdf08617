package hotkey

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// The key-state source reports stale values for the first few hundred
// milliseconds after a fresh subscription, so Start probes it
// repeatedly before trusting edges.
const (
	pollWarmupProbes = 8
	pollWarmupDelay  = 40 * time.Millisecond
)

// pollingStrategy watches the bindings with raw key-state queries on a
// ticker. It is the fallback when registration is unavailable: noisier
// and slightly latent, but it keeps working when another application
// owns a binding. Presses are detected as rising edges per key.
type pollingStrategy struct {
	bindings []Binding
	sink     Sink
	logger   *slog.Logger

	keyState     func(vk uint32) (down bool, err error)
	interval     time.Duration
	stopTimeout  time.Duration
	warmupProbes int
	warmupDelay  time.Duration

	running   atomic.Bool
	heartbeat atomic.Int64
	stop      chan struct{}
	done      chan struct{}
}

func newPollingStrategy(bindings []Binding, sink Sink, opts Options, logger *slog.Logger) Strategy {
	return &pollingStrategy{
		bindings:     bindings,
		sink:         sink,
		logger:       logger,
		keyState:     asyncKeyState,
		interval:     opts.PollInterval,
		stopTimeout:  opts.StopTimeout,
		warmupProbes: pollWarmupProbes,
		warmupDelay:  pollWarmupDelay,
	}
}

func (p *pollingStrategy) Name() string { return "polling" }

// Start primes the key-state source and spins up the poll loop. It
// fails only when every warm-up probe errors, meaning the source is
// unusable in this session.
func (p *pollingStrategy) Start() bool {
	if p.running.Load() {
		return true
	}
	baseline, ok := p.warmup()
	if !ok {
		if p.logger != nil {
			p.logger.Warn("polling hotkeys unavailable", "error", ErrStrategyUnavailable)
		}
		return false
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.heartbeat.Store(time.Now().UnixNano())
	p.running.Store(true)
	go p.loop(baseline)
	return true
}

// warmup primes the source and returns the final key states as the
// edge baseline, so a key held across Start does not fire spuriously.
func (p *pollingStrategy) warmup() ([]bool, bool) {
	baseline := make([]bool, len(p.bindings))
	anyOK := false
	for probe := 0; probe < p.warmupProbes; probe++ {
		for i, b := range p.bindings {
			if down, err := p.keyState(b.VK); err == nil {
				baseline[i] = down
				anyOK = true
			}
		}
		time.Sleep(p.warmupDelay)
	}
	return baseline, anyOK
}

func (p *pollingStrategy) loop(prev []bool) {
	defer close(p.done)
	defer recoverLog(p.logger, "hotkey poll loop panic")
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.heartbeat.Store(time.Now().UnixNano())
			for i, b := range p.bindings {
				down, err := p.keyState(b.VK)
				if err != nil {
					continue
				}
				if down && !prev[i] {
					p.sink(b.Action)
				}
				prev[i] = down
			}
		}
	}
}

func (p *pollingStrategy) Stop() {
	if !p.running.Swap(false) {
		return
	}
	close(p.stop)
	select {
	case <-p.done:
	case <-time.After(p.stopTimeout):
		if p.logger != nil {
			p.logger.Warn("hotkey poll loop did not exit in time")
		}
	}
}

// Alive checks that the loop heartbeat is fresh and the key-state
// source still answers. The staleness bound keeps a floor well above
// the poll interval so a scheduler hiccup is not read as death.
func (p *pollingStrategy) Alive() bool {
	if !p.running.Load() {
		return false
	}
	stale := 3 * p.interval
	if stale < 200*time.Millisecond {
		stale = 200 * time.Millisecond
	}
	last := p.heartbeat.Load()
	if last == 0 || time.Since(time.Unix(0, last)) > stale {
		return false
	}
	_, err := p.keyState(p.bindings[0].VK)
	return err == nil
}
