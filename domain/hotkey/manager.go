package hotkey

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// StrategyFactory builds a fresh strategy wired to sink. The manager
// constructs strategies per start, so a dead pump is never reused.
type StrategyFactory func(bindings []Binding, sink Sink, opts Options, logger *slog.Logger) Strategy

func defaultFactories() []StrategyFactory {
	return []StrategyFactory{
		newNativeStrategy,
		newPollingStrategy,
		func(_ []Binding, _ Sink, _ Options, l *slog.Logger) Strategy { return newNoopStrategy(l) },
	}
}

// StateListener observes manager state changes. Listeners run with the
// manager's lock held and must not call back into it.
type StateListener func(state ManagerState, strategy string)

// Runtime is a point-in-time view of the manager for display and
// instrumentation.
type Runtime struct {
	State    ManagerState
	Strategy string
	// LastCheck is when Healthy last ran. ConsecutiveFailures counts
	// Healthy misses since the last success or successful start.
	LastCheck           time.Time
	ConsecutiveFailures uint32
}

// Manager owns the strategy degradation chain and delivers debounced
// actions to its callbacks. A single mutex serializes Start, Stop and
// Restart, so there are never two live strategies.
type Manager struct {
	mu        sync.Mutex
	state     ManagerState
	active    Strategy
	listeners []StateListener

	bindings  []Binding
	opts      Options
	factories []StrategyFactory
	logger    *slog.Logger

	onPrimary   func()
	onSecondary func()

	// debounceNanos mirrors opts.Debounce for the lock-free handle path.
	debounceNanos atomic.Int64
	lastPrimary   atomic.Int64
	debounced     atomic.Uint64
	lastCheck     atomic.Int64
	healthMisses  atomic.Uint32
}

// NewManager wires the fixed bindings to the given callbacks. The
// primary (capture) callback is debounced by opts.Debounce; the
// secondary (cancel) callback is delivered raw. factories may be nil
// for the platform default chain.
func NewManager(opts Options, onPrimary, onSecondary func(), factories []StrategyFactory, logger *slog.Logger) *Manager {
	if factories == nil {
		factories = defaultFactories()
	}
	m := &Manager{
		state:       StateStopped,
		bindings:    DefaultBindings(),
		opts:        opts.withDefaults(),
		factories:   factories,
		logger:      logger,
		onPrimary:   onPrimary,
		onSecondary: onSecondary,
	}
	m.debounceNanos.Store(int64(m.opts.Debounce))
	return m
}

// Reconfigure replaces the manager's options. The debounce applies to
// the next press; strategy timings reach a running strategy on its
// next (re)start, since strategies take options at construction.
func (m *Manager) Reconfigure(opts Options) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts = opts.withDefaults()
	m.debounceNanos.Store(int64(m.opts.Debounce))
}

// Start walks the chain until a strategy comes up. False means every
// strategy failed and the manager is Unavailable until Restart.
func (m *Manager) Start() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startLocked()
}

// Stop tears down the active strategy, waiting up to the stop timeout
// for its background work before abandoning it.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

// Restart is a serialized stop-then-start. Concurrent calls queue up
// and each runs one full cycle; it is the only way out of Unavailable.
func (m *Manager) Restart() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	return m.startLocked()
}

func (m *Manager) State() ManagerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) Runtime() Runtime {
	m.mu.Lock()
	rt := Runtime{State: m.state}
	if m.active != nil {
		rt.Strategy = m.active.Name()
	}
	m.mu.Unlock()
	if ns := m.lastCheck.Load(); ns > 0 {
		rt.LastCheck = time.Unix(0, ns)
	}
	rt.ConsecutiveFailures = m.healthMisses.Load()
	return rt
}

// Healthy reports whether the active strategy still observes input.
// The liveness probe runs outside the lock since it may touch the OS.
func (m *Manager) Healthy() bool {
	m.mu.Lock()
	s, state := m.active, m.state
	m.mu.Unlock()
	ok := state == StateRunning && s != nil && s.Alive()
	m.lastCheck.Store(time.Now().UnixNano())
	if ok {
		m.healthMisses.Store(0)
	} else {
		m.healthMisses.Add(1)
	}
	return ok
}

// Debounced counts primary presses swallowed by the debounce window.
func (m *Manager) Debounced() uint64 { return m.debounced.Load() }

func (m *Manager) AddStateListener(l StateListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

func (m *Manager) startLocked() bool {
	if m.state == StateRunning {
		return true
	}
	m.setState(StateStarting)
	for _, f := range m.factories {
		s := f(m.bindings, m.handle, m.opts, m.logger)
		if s == nil {
			continue
		}
		if s.Start() {
			m.active = s
			m.healthMisses.Store(0)
			m.setState(StateRunning)
			if m.logger != nil {
				m.logger.Info("global hotkeys active", "strategy", s.Name())
			}
			return true
		}
		s.Stop()
	}
	m.active = nil
	m.setState(StateUnavailable)
	if m.logger != nil {
		m.logger.Warn("global hotkeys unavailable; every strategy failed")
	}
	return false
}

func (m *Manager) stopLocked() {
	if m.active != nil {
		m.active.Stop()
		m.active = nil
	}
	if m.state == StateStopped {
		return
	}
	m.setState(StateStopped)
	if m.logger != nil {
		m.logger.Info("global hotkeys stopped")
	}
}

func (m *Manager) setState(next ManagerState) {
	if m.state == next {
		return
	}
	m.state = next
	name := ""
	if m.active != nil {
		name = m.active.Name()
	}
	for _, l := range m.listeners {
		l(next, name)
	}
}

// handle runs on a strategy goroutine. The debounce is an atomic
// compare-and-swap so a press burst across goroutines collapses to one
// delivery.
func (m *Manager) handle(a Action) {
	switch a {
	case ActionCapture:
		now := time.Now().UnixNano()
		last := m.lastPrimary.Load()
		if now-last < m.debounceNanos.Load() {
			m.debounced.Add(1)
			return
		}
		if !m.lastPrimary.CompareAndSwap(last, now) {
			m.debounced.Add(1)
			return
		}
		if m.onPrimary != nil {
			m.onPrimary()
		}
	case ActionCancel:
		if m.onSecondary != nil {
			m.onSecondary()
		}
	}
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r, "stack", string(debug.Stack()))
		}
	}
}
