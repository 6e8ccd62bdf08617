// Package picker holds the live/frozen capture state machine at the
// heart of the color picker.
package picker

import (
	"image"
	"log/slog"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/sampler"
)

// State tracks the cursor color while live and holds a capture while
// frozen. It is confined to the UI update loop: every method must be
// called from that goroutine, so it carries no locks.
type State struct {
	sampler sampler.Sampler
	cursor  sampler.CursorSource
	logger  *slog.Logger

	mode      Mode
	current   Snapshot
	listeners []Listener
}

var _ StateContract = (*State)(nil)

// NewState starts in live mode with a zero snapshot. logger may be nil.
func NewState(s sampler.Sampler, c sampler.CursorSource, logger *slog.Logger) *State {
	return &State{sampler: s, cursor: c, logger: logger}
}

func (st *State) Mode() Mode        { return st.mode }
func (st *State) Current() Snapshot { return st.current }

func (st *State) AddListener(l Listener) {
	st.listeners = append(st.listeners, l)
}

// ToggleFreeze flips between live tracking and a held capture.
// Entering frozen captures a fresh snapshot at the current cursor
// position, so the held value is what the user saw at the keypress, not
// a stale tick. Leaving frozen resumes live tracking. Listeners are
// notified either way.
func (st *State) ToggleFreeze() {
	if st.mode == ModeLive {
		st.mode = ModeFrozen
		st.captureFrozen()
	} else {
		st.mode = ModeLive
	}
	if st.logger != nil {
		st.logger.Debug("picker mode", "mode", st.mode.String())
	}
	st.notify()
}

// UpdateLive refreshes the snapshot from the cursor while live and
// reports whether listeners were notified. While frozen it does
// nothing. Unchanged position and color notify nobody; a sampling
// failure shows black at the last known position and always notifies
// so the failure is visible.
func (st *State) UpdateLive() bool {
	if st.mode == ModeFrozen {
		return false
	}
	x, y, err := st.cursor.CursorPos()
	if err == nil {
		var c colorconv.RGB
		if c, err = st.sampler.Sample(x, y); err == nil {
			next := Snapshot{Pos: image.Pt(x, y), Color: c, At: time.Now()}
			if next.Pos == st.current.Pos && next.Color == st.current.Color {
				return false
			}
			st.current = next
			st.notify()
			return true
		}
	}
	st.current.Color = colorconv.Black
	st.current.At = time.Now()
	if st.logger != nil {
		st.logger.Debug("live update degraded", "error", err)
	}
	st.notify()
	return true
}

func (st *State) captureFrozen() {
	now := time.Now()
	x, y, err := st.cursor.CursorPos()
	if err == nil {
		var c colorconv.RGB
		if c, err = st.sampler.Sample(x, y); err == nil {
			st.current = Snapshot{Pos: image.Pt(x, y), Color: c, At: now}
			return
		}
	}
	// Hold black at the last known position rather than a stale color.
	st.current.Color = colorconv.Black
	st.current.At = now
	if st.logger != nil {
		st.logger.Error("freeze capture", "error", err)
	}
}

func (st *State) notify() {
	for _, l := range st.listeners {
		l(st.mode, st.current)
	}
}
