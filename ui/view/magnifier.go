package view

import (
	"image"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Magnifier shows a zoomed pixel view of the region around the cursor.
type Magnifier interface {
	Update(region image.Image)
	Reset()
}

type magnifier struct {
	label     *LabelWidget
	zoom      int
	prevPhoto *Img // last Tk photo instance, disposed before replacement
}

// NewMagnifier creates the preview label at (row, col). The zoom factor is
// fixed for the lifetime of the view.
func NewMagnifier(row, col, zoom int) Magnifier {
	if zoom < 1 {
		zoom = 1
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, 180, 180))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(lbl, Row(row), Column(col), Sticky("ne"), Padx("0.4m"), Pady("0.4m"))
	return &magnifier{label: lbl, zoom: zoom, prevPhoto: photo}
}

// Update replaces the preview with a magnified rendering of region.
func (m *magnifier) Update(region image.Image) {
	if m == nil || m.label == nil || region == nil {
		return
	}
	zoomed := images.Magnify(region, m.zoom)
	pngBytes := images.EncodePNG(zoomed)
	if len(pngBytes) == 0 {
		return
	}
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if m.prevPhoto != nil {
		m.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	m.prevPhoto = newPhoto
	m.label.Configure(Image(newPhoto))
}

// Reset restores the blank placeholder.
func (m *magnifier) Reset() {
	if m == nil || m.label == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, 180, 180))
	if m.prevPhoto != nil {
		m.prevPhoto.Delete()
	}
	m.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	m.label.Configure(Image(m.prevPhoto))
}
