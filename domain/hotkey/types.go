// Package hotkey delivers the picker's two fixed key bindings
// system-wide, no matter which window has focus. Capture strategies
// form a degradation chain: native registration, raw key-state
// polling, then nothing. Everything here degrades; nothing crashes the
// host application over input plumbing.
package hotkey

import (
	"errors"
	"sync/atomic"
	"time"
)

var (
	// ErrStrategyUnavailable reports that a capture strategy cannot
	// operate in this session at all.
	ErrStrategyUnavailable = errors.New("hotkey: strategy unavailable")
	// ErrRegistrationConflict reports that another application already
	// owns one of the bindings.
	ErrRegistrationConflict = errors.New("hotkey: binding registered elsewhere")
)

// Action identifies what a binding triggers.
type Action int

const (
	ActionCapture Action = iota // freeze/unfreeze the picked color
	ActionCancel                // dismiss, always unfreeze
)

func (a Action) String() string {
	switch a {
	case ActionCapture:
		return "capture"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Virtual-key codes for the fixed bindings.
const (
	vkControl = 0x11
	vkEscape  = 0x1B
)

// Binding ties an action to a key. Bindings are fixed at construction;
// there is no rebinding at runtime.
type Binding struct {
	Action Action
	// Modifiers holds RegisterHotKey MOD_* flags. Zero means the key
	// itself is the whole chord; both fixed bindings are single keys.
	Modifiers uint32
	// VK is the Windows virtual-key code watched by every strategy.
	VK uint32
}

// DefaultBindings returns the picker's bindings: bare Ctrl captures,
// Escape cancels.
func DefaultBindings() []Binding {
	return []Binding{
		{Action: ActionCapture, VK: vkControl},
		{Action: ActionCancel, VK: vkEscape},
	}
}

// Sink receives decoded actions on the strategy's own goroutine.
type Sink func(Action)

// Strategy is one way of observing the bindings system-wide. Start
// reports whether the strategy became operational; false means the
// caller should try the next one. Stop must be safe regardless of
// Start's outcome and must leave no background work behind beyond the
// configured stop timeout. Alive must be callable from any goroutine.
type Strategy interface {
	Start() bool
	Stop()
	Alive() bool
	Name() string
}

// ManagerState is the hotkey manager lifecycle.
type ManagerState int

const (
	StateStopped ManagerState = iota
	StateStarting
	StateRunning
	StateUnavailable // chain exhausted; terminal until Restart
)

func (s ManagerState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Options tunes the manager and its strategies. Zero fields take the
// defaults.
type Options struct {
	// Debounce is the minimum gap between delivered capture presses.
	// The cancel binding is never debounced.
	Debounce time.Duration
	// PollInterval is the key-state sampling period of the polling
	// strategy.
	PollInterval time.Duration
	// StopTimeout bounds how long teardown waits for a strategy's
	// background work before abandoning it.
	StopTimeout time.Duration
}

const (
	DefaultDebounce     = 200 * time.Millisecond
	DefaultPollInterval = 15 * time.Millisecond
	DefaultStopTimeout  = time.Second
)

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.StopTimeout <= 0 {
		o.StopTimeout = DefaultStopTimeout
	}
	return o
}

var idSeq atomic.Int32

// allocIDs hands out fresh RegisterHotKey ids. Ids stay unique across
// manager instances so a dying pump can never swallow a successor's
// registrations; application ids must stay below 0xBFFF.
func allocIDs(n int) []int32 {
	base := idSeq.Add(int32(n)) - int32(n)
	ids := make([]int32, n)
	for i := range ids {
		ids[i] = 1 + (base+int32(i))%0xBFFE
	}
	return ids
}
