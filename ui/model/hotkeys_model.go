package model

import (
	"sync/atomic"
)

// HotkeysModel tracks whether global hotkeys are enabled. The zero value is disabled and usable.
// Concurrency-safe via atomic Bool because UI callbacks and manager callbacks may race.
type HotkeysModel struct{ enabled atomic.Bool }

// Enabled reports whether hotkeys are currently enabled.
func (m *HotkeysModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the enabled flag.
func (m *HotkeysModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	prev := m.enabled.Load()
	if prev == b { // no change
		return
	}
	m.enabled.Store(b)
}
