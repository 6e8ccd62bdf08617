package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/hotkey"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/picker"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/bridge"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/model"
)

// mockState is a scriptable picker state: UpdateLive consumes queued
// snapshots, ToggleFreeze flips the mode in place.
type mockState struct {
	mode      picker.Mode
	current   picker.Snapshot
	listeners []picker.Listener
	toggles   int
	liveNext  []picker.Snapshot
}

var _ picker.StateContract = (*mockState)(nil)

func (s *mockState) Mode() picker.Mode             { return s.mode }
func (s *mockState) Current() picker.Snapshot      { return s.current }
func (s *mockState) AddListener(l picker.Listener) { s.listeners = append(s.listeners, l) }
func (s *mockState) notifyAll() {
	for _, l := range s.listeners {
		l(s.mode, s.current)
	}
}

func (s *mockState) ToggleFreeze() {
	s.toggles++
	if s.mode == picker.ModeLive {
		s.mode = picker.ModeFrozen
	} else {
		s.mode = picker.ModeLive
	}
	s.notifyAll()
}

func (s *mockState) UpdateLive() bool {
	if s.mode == picker.ModeFrozen || len(s.liveNext) == 0 {
		return false
	}
	s.current = s.liveNext[0]
	s.liveNext = s.liveNext[1:]
	s.notifyAll()
	return true
}

type mockPickerView struct {
	readouts  int
	magnifies int
	histories int
	lastMode  picker.Mode
	lastSnap  picker.Snapshot
	lastItems int
}

func (v *mockPickerView) SetReadout(mode picker.Mode, snap picker.Snapshot) {
	v.readouts++
	v.lastMode = mode
	v.lastSnap = snap
}
func (v *mockPickerView) SetMagnifier(region image.Image)    { v.magnifies++ }
func (v *mockPickerView) SetHistory(items []picker.Snapshot) { v.histories++; v.lastItems = len(items) }

type mockRegion struct {
	img        image.Image
	lastRadius int
	calls      int
}

func (r *mockRegion) Region(x, y, radius int) image.Image {
	r.calls++
	r.lastRadius = radius
	return r.img
}

func liveSnap(r uint8, x int) picker.Snapshot {
	return picker.Snapshot{Pos: image.Pt(x, x), Color: colorconv.RGB{R: r}, At: time.Unix(1, 0)}
}

func TestPickerPresenter_TickRefreshesOnlyOnChange(t *testing.T) {
	st := &mockState{liveNext: []picker.Snapshot{liveSnap(10, 1)}}
	view := &mockPickerView{}
	region := &mockRegion{img: image.NewRGBA(image.Rect(0, 0, 3, 3))}
	p := NewPickerPresenter(st, region, model.NewHistoryModel(5), view, 7)

	p.Tick(time.Now())
	if view.readouts != 1 || view.lastSnap.Color.R != 10 {
		t.Fatalf("first tick: readouts=%d snap=%+v", view.readouts, view.lastSnap)
	}
	if view.magnifies != 1 || region.lastRadius != 7 {
		t.Fatalf("magnifier not refreshed: magnifies=%d radius=%d", view.magnifies, region.lastRadius)
	}

	// No queued change: view untouched.
	p.Tick(time.Now())
	if view.readouts != 1 || view.magnifies != 1 {
		t.Fatalf("idle tick refreshed the view: readouts=%d", view.readouts)
	}
}

func TestPickerPresenter_CapturePressFreezesAndRecordsHistory(t *testing.T) {
	st := &mockState{current: liveSnap(50, 5)}
	view := &mockPickerView{}
	hist := model.NewHistoryModel(5)
	p := NewPickerPresenter(st, nil, hist, view, 7)

	p.OnPress(bridge.PressEvent{Action: hotkey.ActionCapture, At: time.Now()})
	if st.mode != picker.ModeFrozen || view.lastMode != picker.ModeFrozen {
		t.Fatalf("capture press did not freeze: mode=%v viewMode=%v", st.mode, view.lastMode)
	}
	if hist.Len() != 1 {
		t.Fatalf("freeze not recorded in history: len=%d", hist.Len())
	}

	// Second press resumes live; no new history entry.
	p.OnPress(bridge.PressEvent{Action: hotkey.ActionCapture, At: time.Now()})
	if st.mode != picker.ModeLive || hist.Len() != 1 {
		t.Fatalf("unfreeze wrong: mode=%v histLen=%d", st.mode, hist.Len())
	}
	if view.readouts != 2 {
		t.Fatalf("each press should refresh the view once: readouts=%d", view.readouts)
	}
}

func TestPickerPresenter_CancelActsOnlyWhileFrozen(t *testing.T) {
	st := &mockState{current: liveSnap(20, 2)}
	view := &mockPickerView{}
	p := NewPickerPresenter(st, nil, nil, view, 7)

	p.OnPress(bridge.PressEvent{Action: hotkey.ActionCancel, At: time.Now()})
	if st.toggles != 0 || view.readouts != 0 {
		t.Fatalf("cancel while live must be a no-op: toggles=%d", st.toggles)
	}

	p.ToggleFreeze()
	p.OnPress(bridge.PressEvent{Action: hotkey.ActionCancel, At: time.Now()})
	if st.mode != picker.ModeLive || st.toggles != 2 {
		t.Fatalf("cancel while frozen should resume live: mode=%v toggles=%d", st.mode, st.toggles)
	}
}

func TestPickerPresenter_NilRegionSkipsMagnifier(t *testing.T) {
	st := &mockState{liveNext: []picker.Snapshot{liveSnap(30, 3)}}
	view := &mockPickerView{}
	region := &mockRegion{img: nil}
	p := NewPickerPresenter(st, region, nil, view, 7)

	p.Tick(time.Now())
	if view.readouts != 1 {
		t.Fatal("readout should refresh even without a region")
	}
	if view.magnifies != 0 {
		t.Fatal("nil region must not reach the magnifier")
	}
}

func TestPickerPresenter_RadiusFloor(t *testing.T) {
	st := &mockState{liveNext: []picker.Snapshot{liveSnap(40, 4)}}
	region := &mockRegion{img: image.NewRGBA(image.Rect(0, 0, 3, 3))}
	p := NewPickerPresenter(st, region, nil, &mockPickerView{}, 0)

	p.Tick(time.Now())
	if region.lastRadius != 1 {
		t.Fatalf("radius floor broken: %d", region.lastRadius)
	}
}
