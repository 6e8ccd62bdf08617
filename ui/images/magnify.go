package images

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// gridMinZoom is the smallest zoom factor at which grid lines are legible.
const gridMinZoom = 4

// Magnify scales src by zoom using nearest-neighbour sampling, so every
// source pixel becomes a crisp zoom x zoom block. At legible zoom levels a
// pixel grid is shaded in, and the center source pixel is outlined to mark
// the sampled position.
func Magnify(src image.Image, zoom int) *image.RGBA {
	if src == nil {
		return nil
	}
	if zoom < 1 {
		zoom = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	if zoom >= gridMinZoom {
		drawGrid(dst, zoom)
	}
	outlineCenter(dst, b, zoom)
	return dst
}

// drawGrid darkens one-pixel lines along block boundaries, keeping the
// underlying hue visible.
func drawGrid(img *image.RGBA, zoom int) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += zoom {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			shade(img, x, y)
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y += zoom {
		for x := b.Min.X; x < b.Max.X; x++ {
			if (x-b.Min.X)%zoom == 0 {
				continue // column loop already shaded the intersection
			}
			shade(img, x, y)
		}
	}
}

func shade(img *image.RGBA, x, y int) {
	c := img.RGBAAt(x, y)
	c.R = uint8(uint16(c.R) * 3 / 4)
	c.G = uint8(uint16(c.G) * 3 / 4)
	c.B = uint8(uint16(c.B) * 3 / 4)
	img.SetRGBA(x, y, c)
}

func outlineCenter(img *image.RGBA, srcBounds image.Rectangle, zoom int) {
	cx := srcBounds.Dx() / 2
	cy := srcBounds.Dy() / 2
	r := image.Rect(cx*zoom, cy*zoom, (cx+1)*zoom, (cy+1)*zoom)
	drawRect(img, r, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	drawRect(img, r.Inset(-1), color.RGBA{A: 255})
}

// drawRect traces a one-pixel rectangle outline. SetRGBA discards points
// outside the image, so no clamping is needed.
func drawRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}
