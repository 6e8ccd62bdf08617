package presenter

import (
	"fmt"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/hotkey"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/bridge"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/model"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/view"
)

// StatusView sets the hotkey status pill and re-enables the settings form
// once a restart settles.
type StatusView interface {
	SetHotkeyStatus(text string, level view.StatusLevel)
	SettingsEditable(enabled bool)
}

// Notifier sends a desktop notification. May be nil when notifications are
// disabled.
type Notifier func(title, message string)

// StatusPresenter receives manager state changes from the bridge and updates
// the status display.
type StatusPresenter struct {
	model  *model.StatusModel
	view   StatusView
	notify Notifier

	latestState    hotkey.ManagerState
	latestStrategy string
	primed         bool
	pending        []bridge.StatusEvent
}

func NewStatusPresenter(m *model.StatusModel, v StatusView, notify Notifier) *StatusPresenter {
	return &StatusPresenter{model: m, view: v, notify: notify}
}

// OnStatus queues a state change from the bridge drain.
//
// The latest queued change will be reflected on the next Tick.
func (p *StatusPresenter) OnStatus(ev bridge.StatusEvent) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, ev)
}

// Tick processes queued changes and updates the view with the most recent
// one. It clears the pending queue after processing.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if len(p.pending) == 0 {
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	if p.primed && last.State == p.latestState && last.Strategy == p.latestStrategy {
		return
	}
	prev, hadPrev := p.latestState, p.primed
	p.latestState, p.latestStrategy = last.State, last.Strategy
	p.primed = true

	if p.model != nil {
		p.model.Set(last.State, last.Strategy, last.At)
	}
	p.view.SetHotkeyStatus(statusText(last.State, last.Strategy), statusLevel(last.State))
	if last.State != hotkey.StateStarting {
		p.view.SettingsEditable(true)
	}
	p.maybeNotify(prev, hadPrev, last.State)
}

func (p *StatusPresenter) maybeNotify(prev hotkey.ManagerState, hadPrev bool, next hotkey.ManagerState) {
	if p.notify == nil || (hadPrev && prev == next) {
		return
	}
	switch {
	case next == hotkey.StateUnavailable:
		p.notify("Hotkeys unavailable", "Global capture keys could not be registered. The Freeze button still works.")
	case next == hotkey.StateRunning && hadPrev && prev == hotkey.StateUnavailable:
		p.notify("Hotkeys restored", "Global capture keys are active again.")
	}
}

func statusText(s hotkey.ManagerState, strategy string) string {
	if s == hotkey.StateRunning && strategy != "" {
		return fmt.Sprintf("Hotkeys: %s (%s)", s, strategy)
	}
	return "Hotkeys: " + s.String()
}

func statusLevel(s hotkey.ManagerState) view.StatusLevel {
	switch s {
	case hotkey.StateRunning:
		return view.LevelOK
	case hotkey.StateUnavailable:
		return view.LevelErr
	default:
		return view.LevelWarn
	}
}
