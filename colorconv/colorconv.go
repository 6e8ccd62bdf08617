// Package colorconv converts between the color formats the picker
// displays: 8-bit RGB, hex strings and HSV.
package colorconv

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel screen color. The zero value is black,
// which is also the fallback color when sampling fails.
type RGB struct {
	R, G, B uint8
}

var Black = RGB{}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// NRGBA returns the opaque image/color equivalent.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromColor reduces any image/color value to 8-bit RGB, dropping alpha.
func FromColor(src color.Color) RGB {
	r, g, b, _ := src.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ParseHex parses "#rrggbb", "rrggbb" or the short "#rgb" form.
func ParseHex(s string) (RGB, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) == 3 {
		t = string([]byte{t[0], t[0], t[1], t[1], t[2], t[2]})
	}
	if len(t) != 6 {
		return RGB{}, fmt.Errorf("colorconv: malformed hex color %q", s)
	}
	var c RGB
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		v, err := strconv.ParseUint(t[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("colorconv: malformed hex color %q", s)
		}
		*dst = uint8(v)
	}
	return c, nil
}

// HSV returns hue in degrees (0-360) and saturation/value in percent.
func (c RGB) HSV() (h, s, v float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	v = maxC * 100
	if maxC > 0 {
		s = diff / maxC * 100
	}
	switch {
	case diff == 0:
	case maxC == r:
		h = 60 * math.Mod((g-b)/diff, 6)
	case maxC == g:
		h = 60 * ((b-r)/diff + 2)
	default:
		h = 60 * ((r-g)/diff + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// FromHSV converts hue (degrees) and saturation/value (percent) to RGB.
// Inputs outside their ranges are wrapped or clamped.
func FromHSV(h, s, v float64) RGB {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	s = math.Min(math.Max(s, 0), 100) / 100
	v = math.Min(math.Max(v, 0), 100) / 100

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}

// Luma is the Rec. 601 brightness in 0-255. The views use it to choose
// readable label text over a swatch.
func (c RGB) Luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}
