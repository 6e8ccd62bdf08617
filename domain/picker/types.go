package picker

import (
	"image"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"
)

// Mode says whether the picker follows the cursor or holds a capture.
type Mode int

const (
	ModeLive Mode = iota
	ModeFrozen
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Snapshot is one observed cursor/color pair. Values are immutable once
// produced; a frozen snapshot never mutates in place.
type Snapshot struct {
	Pos   image.Point
	Color colorconv.RGB
	At    time.Time
}

// Listener observes mode changes and fresh snapshots. Listeners run
// synchronously on the goroutine driving the state.
type Listener func(mode Mode, snap Snapshot)

// StateContract is the surface presenters drive.
type StateContract interface {
	Mode() Mode
	Current() Snapshot
	ToggleFreeze()
	UpdateLive() bool
	AddListener(Listener)
}
