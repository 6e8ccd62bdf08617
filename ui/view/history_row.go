package view

import (
	"image/color"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/picker"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const historySwatchPx = 24

// HistoryRow shows recent captures as a strip of small swatches, newest first.
type HistoryRow interface {
	SetItems(items []picker.Snapshot)
}

type historyRow struct {
	labels []*LabelWidget
	photos []*Img
	hexes  []string // rendered color per slot, "" while empty
}

// NewHistoryRow creates capacity placeholder swatches in a frame gridded at row.
func NewHistoryRow(row, capacity int) HistoryRow {
	if capacity < 1 {
		capacity = 1
	}
	f := Frame()
	Grid(f, Row(row), Column(0), Columnspan(3), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	h := &historyRow{
		labels: make([]*LabelWidget, capacity),
		photos: make([]*Img, capacity),
		hexes:  make([]string, capacity),
	}
	blank := images.EncodePNG(images.Swatch(color.RGBA{}, historySwatchPx, historySwatchPx))
	for i := 0; i < capacity; i++ {
		ph := NewPhoto(Data(blank))
		lbl := Label(Image(ph), Borderwidth(1), Relief("sunken"))
		Grid(lbl, In(f), Row(0), Column(i), Padx("0.2m"))
		h.labels[i] = lbl
		h.photos[i] = ph
	}
	return h
}

// SetItems renders items into the strip. Slots beyond len(items) keep their
// last content; only slots whose color changed are re-encoded.
func (h *historyRow) SetItems(items []picker.Snapshot) {
	if h == nil {
		return
	}
	for i := 0; i < len(h.labels) && i < len(items); i++ {
		hex := items[i].Color.Hex()
		if h.hexes[i] == hex || h.labels[i] == nil {
			continue
		}
		tile := images.Swatch(items[i].Color.NRGBA(), historySwatchPx, historySwatchPx)
		if h.photos[i] != nil {
			h.photos[i].Delete()
		}
		h.photos[i] = NewPhoto(Data(images.EncodePNG(tile)))
		h.labels[i].Configure(Image(h.photos[i]))
		h.hexes[i] = hex
	}
}
