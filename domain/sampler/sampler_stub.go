//go:build !windows

package sampler

import "github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"

// Non-Windows builds have no direct pixel read; the region technique
// and ultimately the black fallback take over.

func readPixel(x, y int) (colorconv.RGB, error) {
	return colorconv.RGB{}, errUnsupported
}

func cursorPos() (int, int, error) {
	return 0, 0, errUnsupported
}
