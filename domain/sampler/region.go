package sampler

import (
	"image"

	"github.com/vova616/screenshot"
)

// grabRegion captures a small screen rectangle. It serves as the
// fallback sampling technique and feeds the magnifier preview.
func grabRegion(r image.Rectangle) (image.Image, error) {
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// screenRect reports the display rectangle grabs are clamped to.
func screenRect() (image.Rectangle, error) {
	return screenshot.ScreenRect()
}
