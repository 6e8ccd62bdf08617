package presenter

import (
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/bridge"
)

// EventSource drains queued UI events, delivering them in order.
type EventSource interface {
	Drain(fn func(bridge.Event), max int) int
}

// Loop aggregates feature presenters and drives periodic updates.
//
// It drains the event bridge, calls Tick on the sub-presenters and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Events   EventSource
	Picker   *PickerPresenter
	Status   *StatusPresenter
	Schedule func()
}

func NewLoop(events EventSource, pick *PickerPresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Events: events, Picker: pick, Status: status, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Events != nil {
		l.Events.Drain(l.dispatch, 0)
	}
	// Status first so a state change and the resulting snapshot land in the
	// same frame.
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Picker != nil {
		l.Picker.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}

func (l *Loop) dispatch(ev bridge.Event) {
	switch e := ev.(type) {
	case bridge.PressEvent:
		if l.Picker != nil {
			l.Picker.OnPress(e)
		}
	case bridge.StatusEvent:
		if l.Status != nil {
			l.Status.OnStatus(e)
		}
	}
}
