package presenter

import (
	"testing"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/hotkey"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/bridge"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/model"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/view"
)

type mockStatusView struct {
	texts    []string
	levels   []view.StatusLevel
	editable int
}

func (v *mockStatusView) SetHotkeyStatus(text string, level view.StatusLevel) {
	v.texts = append(v.texts, text)
	v.levels = append(v.levels, level)
}
func (v *mockStatusView) SettingsEditable(enabled bool) {
	if enabled {
		v.editable++
	}
}

type notifyRec struct{ titles []string }

func (n *notifyRec) fn(title, message string) { n.titles = append(n.titles, title) }

func statusEv(s hotkey.ManagerState, strategy string) bridge.StatusEvent {
	return bridge.StatusEvent{State: s, Strategy: strategy, At: time.Unix(2, 0)}
}

func TestStatusPresenter_ReflectsLatestQueuedChange(t *testing.T) {
	v := &mockStatusView{}
	m := model.NewStatusModel()
	p := NewStatusPresenter(m, v, nil)

	p.OnStatus(statusEv(hotkey.StateStarting, ""))
	p.OnStatus(statusEv(hotkey.StateRunning, "native"))
	p.Tick(time.Now())

	if len(v.texts) != 1 || v.texts[0] != "Hotkeys: running (native)" {
		t.Fatalf("texts = %v, want single running text", v.texts)
	}
	if v.levels[0] != view.LevelOK {
		t.Fatalf("level = %v, want OK", v.levels[0])
	}
	if m.State() != hotkey.StateRunning || m.Strategy() != "native" {
		t.Fatalf("model not updated: %v %q", m.State(), m.Strategy())
	}
}

func TestStatusPresenter_DedupesUnchangedState(t *testing.T) {
	v := &mockStatusView{}
	p := NewStatusPresenter(nil, v, nil)

	p.OnStatus(statusEv(hotkey.StateRunning, "native"))
	p.Tick(time.Now())
	p.OnStatus(statusEv(hotkey.StateRunning, "native"))
	p.Tick(time.Now())
	if len(v.texts) != 1 {
		t.Fatalf("unchanged state should not refresh: %v", v.texts)
	}

	// A strategy change while running is a real change.
	p.OnStatus(statusEv(hotkey.StateRunning, "polling"))
	p.Tick(time.Now())
	if len(v.texts) != 2 || v.texts[1] != "Hotkeys: running (polling)" {
		t.Fatalf("strategy change missed: %v", v.texts)
	}
}

func TestStatusPresenter_NotifiesUnavailableAndRecovery(t *testing.T) {
	v := &mockStatusView{}
	n := &notifyRec{}
	p := NewStatusPresenter(nil, v, n.fn)

	p.OnStatus(statusEv(hotkey.StateRunning, "native"))
	p.Tick(time.Now())
	if len(n.titles) != 0 {
		t.Fatalf("running should not notify: %v", n.titles)
	}

	p.OnStatus(statusEv(hotkey.StateUnavailable, ""))
	p.Tick(time.Now())
	if len(n.titles) != 1 || n.titles[0] != "Hotkeys unavailable" {
		t.Fatalf("unavailable notification missing: %v", n.titles)
	}
	if v.levels[len(v.levels)-1] != view.LevelErr {
		t.Fatal("unavailable should show the error pill")
	}

	p.OnStatus(statusEv(hotkey.StateRunning, "polling"))
	p.Tick(time.Now())
	if len(n.titles) != 2 || n.titles[1] != "Hotkeys restored" {
		t.Fatalf("recovery notification missing: %v", n.titles)
	}

	// Staying running notifies nobody further.
	p.OnStatus(statusEv(hotkey.StateRunning, "polling"))
	p.Tick(time.Now())
	if len(n.titles) != 2 {
		t.Fatalf("duplicate notifications: %v", n.titles)
	}
}

func TestStatusPresenter_FirstStateUnavailableNotifies(t *testing.T) {
	n := &notifyRec{}
	p := NewStatusPresenter(nil, &mockStatusView{}, n.fn)

	p.OnStatus(statusEv(hotkey.StateUnavailable, ""))
	p.Tick(time.Now())
	if len(n.titles) != 1 {
		t.Fatalf("launch-time unavailable must notify: %v", n.titles)
	}
}

func TestStatusPresenter_SettingsReEnabledOnceSettled(t *testing.T) {
	v := &mockStatusView{}
	p := NewStatusPresenter(nil, v, nil)

	p.OnStatus(statusEv(hotkey.StateStarting, ""))
	p.Tick(time.Now())
	if v.editable != 0 {
		t.Fatal("starting is not settled")
	}

	p.OnStatus(statusEv(hotkey.StateRunning, "native"))
	p.Tick(time.Now())
	if v.editable != 1 {
		t.Fatalf("settled state should re-enable settings: %d", v.editable)
	}
}
