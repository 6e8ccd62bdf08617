package model

import (
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/hotkey"
)

// StatusModel holds the latest hotkey runtime snapshot for display.
// No synchronization needed: updates occur on the UI thread tick.
type StatusModel struct {
	state    hotkey.ManagerState
	strategy string
	since    time.Time
}

func NewStatusModel() *StatusModel { return &StatusModel{} }

// Set records a manager state change. Use an empty strategy when none is active.
func (m *StatusModel) Set(state hotkey.ManagerState, strategy string, at time.Time) {
	if m == nil {
		return
	}
	m.state = state
	m.strategy = strategy
	m.since = at
}

// State returns the last recorded manager state.
func (m *StatusModel) State() hotkey.ManagerState {
	if m == nil {
		return hotkey.StateStopped
	}
	return m.state
}

// Strategy returns the name of the strategy behind the last state change.
func (m *StatusModel) Strategy() string {
	if m == nil {
		return ""
	}
	return m.strategy
}

// Since returns when the current state was entered.
func (m *StatusModel) Since() time.Time {
	if m == nil {
		return time.Time{}
	}
	return m.since
}
