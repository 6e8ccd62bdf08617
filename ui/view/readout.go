package view

import (
	"fmt"
	"image"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// Readout displays the sampled color as hex, RGB and HSV plus the screen position.
type Readout interface {
	SetColor(c colorconv.RGB)
	SetPosition(p image.Point)
}

type readout struct {
	hexLbl *LabelWidget
	rgbLbl *LabelWidget
	hsvLbl *LabelWidget
	posLbl *LabelWidget
}

// NewReadout creates caption/value label pairs in a grid starting at startRow.
// It returns the view and the next free row.
func NewReadout(startRow int) (Readout, int) {
	r := &readout{}
	row := startRow
	makeRow := func(caption string) *LabelWidget {
		lbl := Label(Txt(caption), Style(theme.StyleMutedLabel), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		val := Label(Txt("--"), Style(theme.StyleValueLabel), Width(18), Anchor("w"))
		Grid(val, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		row++
		return val
	}
	r.hexLbl = makeRow("Hex")
	r.rgbLbl = makeRow("RGB")
	r.hsvLbl = makeRow("HSV")
	r.posLbl = makeRow("Position")
	return r, row
}

// SetColor refreshes the hex, RGB and HSV value labels.
func (r *readout) SetColor(c colorconv.RGB) {
	if r == nil {
		return
	}
	if r.hexLbl != nil {
		r.hexLbl.Configure(Txt(c.Hex()))
	}
	if r.rgbLbl != nil {
		r.rgbLbl.Configure(Txt(fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)))
	}
	if r.hsvLbl != nil {
		h, s, v := c.HSV()
		r.hsvLbl.Configure(Txt(fmt.Sprintf("%.0f, %.0f%%, %.0f%%", h, s, v)))
	}
}

// SetPosition refreshes the cursor position label.
func (r *readout) SetPosition(p image.Point) {
	if r != nil && r.posLbl != nil {
		r.posLbl.Configure(Txt(fmt.Sprintf("%d, %d", p.X, p.Y)))
	}
}
