package presenter

import (
	"image"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/hotkey"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/picker"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/bridge"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/model"
)

// PickerView is the view surface refreshed with each accepted snapshot.
type PickerView interface {
	SetReadout(mode picker.Mode, snap picker.Snapshot)
	SetMagnifier(region image.Image)
	SetHistory(items []picker.Snapshot)
}

// RegionSource provides the magnifier pixels around a point.
type RegionSource interface {
	Region(x, y, radius int) image.Image
}

// PickerPresenter drives the capture state from hotkey presses and UI ticks
// and reflects accepted snapshots into the view.
type PickerPresenter struct {
	state   picker.StateContract
	region  RegionSource
	history *model.HistoryModel
	view    PickerView
	radius  int
	dirty   bool
}

// NewPickerPresenter wires itself as a state listener so any accepted change
// marks the view dirty.
func NewPickerPresenter(state picker.StateContract, region RegionSource, history *model.HistoryModel, view PickerView, radius int) *PickerPresenter {
	if radius < 1 {
		radius = 1
	}
	p := &PickerPresenter{state: state, region: region, history: history, view: view, radius: radius}
	if state != nil {
		state.AddListener(func(picker.Mode, picker.Snapshot) { p.dirty = true })
	}
	return p
}

// OnPress handles a hotkey press delivered by the bridge.
func (p *PickerPresenter) OnPress(ev bridge.PressEvent) {
	if p == nil {
		return
	}
	switch ev.Action {
	case hotkey.ActionCapture:
		p.ToggleFreeze()
	case hotkey.ActionCancel:
		p.CancelFreeze()
	}
}

// ToggleFreeze flips live/frozen; freezing records the capture in history.
// Also invoked by the freeze button.
func (p *PickerPresenter) ToggleFreeze() {
	if p == nil || p.state == nil {
		return
	}
	p.state.ToggleFreeze()
	if p.state.Mode() == picker.ModeFrozen && p.history != nil {
		p.history.Add(p.state.Current())
	}
	p.flush()
}

// CancelFreeze returns to live tracking; a no-op while already live.
func (p *PickerPresenter) CancelFreeze() {
	if p == nil || p.state == nil || p.state.Mode() != picker.ModeFrozen {
		return
	}
	p.state.ToggleFreeze()
	p.flush()
}

// Tick advances live tracking and refreshes the view when anything changed.
func (p *PickerPresenter) Tick(now time.Time) {
	if p == nil || p.state == nil {
		return
	}
	p.state.UpdateLive()
	p.flush()
}

func (p *PickerPresenter) flush() {
	if p.view == nil || !p.dirty {
		return
	}
	p.dirty = false
	mode, snap := p.state.Mode(), p.state.Current()
	p.view.SetReadout(mode, snap)
	if p.region != nil {
		if roi := p.region.Region(snap.Pos.X, snap.Pos.Y, p.radius); roi != nil {
			p.view.SetMagnifier(roi)
		}
	}
	if p.history != nil {
		p.view.SetHistory(p.history.Items())
	}
}
