// Package sampler reads single screen pixels and small regions around
// a point, degrading to black when the display cannot be read.
package sampler

import (
	"errors"
	"image"
	"image/draw"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"
)

// ErrUnavailable reports that no technique could read the display.
// Callers receive black alongside it and are expected to keep going.
var ErrUnavailable = errors.New("sampler: display unavailable")

var errUnsupported = errors.New("sampler: not supported on this platform")

const (
	// Radius of the rectangle grabbed when the direct read fails; the
	// center pixel of the grab is the sample.
	regionFallbackRadius = 1

	statsLogInterval = 5 * time.Second
)

// Sampler reads the screen color at a point.
type Sampler interface {
	Sample(x, y int) (colorconv.RGB, error)
}

// CursorSource reports the current pointer position.
type CursorSource interface {
	CursorPos() (x, y int, err error)
}

// RegionSource grabs the pixels around a point for preview rendering.
type RegionSource interface {
	Region(x, y, radius int) image.Image
}

// Stats is a point-in-time view of sampling instrumentation.
type Stats struct {
	Samples    uint64 // total Sample calls
	Fallbacks  uint64 // calls that needed the region technique
	Failures   uint64 // calls that returned black
	AvgSample  time.Duration
	LastSample time.Time
}

// ScreenSampler reads pixels from the live display. It tries a direct
// single-pixel read first and falls back to grabbing a small region;
// when both fail it returns black with ErrUnavailable. The techniques
// are function fields so tests can substitute failures.
type ScreenSampler struct {
	direct func(x, y int) (colorconv.RGB, error)
	region func(r image.Rectangle) (image.Image, error)
	cursor func() (int, int, error)
	bounds func() (image.Rectangle, error)

	logger *slog.Logger

	calls        atomic.Uint64
	fallbacks    atomic.Uint64
	failures     atomic.Uint64
	sampleNanos  atomic.Uint64
	lastSample   atomic.Int64
	lastStatsLog atomic.Int64
}

var (
	_ Sampler      = (*ScreenSampler)(nil)
	_ CursorSource = (*ScreenSampler)(nil)
	_ RegionSource = (*ScreenSampler)(nil)
)

// New constructs a sampler wired to the platform techniques. logger may
// be nil.
func New(logger *slog.Logger) *ScreenSampler {
	return &ScreenSampler{
		direct: readPixel,
		region: grabRegion,
		cursor: cursorPos,
		bounds: screenRect,
		logger: logger,
	}
}

// Sample reads the color at (x, y) in screen coordinates. It never
// panics; any failure yields black and ErrUnavailable.
func (s *ScreenSampler) Sample(x, y int) (c colorconv.RGB, err error) {
	start := time.Now()
	s.calls.Add(1)
	defer func() {
		if r := recover(); r != nil {
			if s.logger != nil {
				s.logger.Error("sampler panic", "error", r, "stack", string(debug.Stack()))
			}
			s.failures.Add(1)
			c, err = colorconv.Black, ErrUnavailable
		}
		s.sampleNanos.Add(uint64(time.Since(start).Nanoseconds()))
		s.lastSample.Store(time.Now().UnixNano())
		s.maybeLogStats()
	}()

	if c, err := s.direct(x, y); err == nil {
		return c, nil
	}
	s.fallbacks.Add(1)

	grab := s.clamp(image.Rect(x-regionFallbackRadius, y-regionFallbackRadius,
		x+regionFallbackRadius+1, y+regionFallbackRadius+1))
	if !grab.Empty() {
		if img, err := s.region(grab); err == nil && img != nil {
			return pixelAt(img, grab, x, y), nil
		}
	}

	s.failures.Add(1)
	return colorconv.Black, ErrUnavailable
}

// CursorPos reports the pointer position in screen coordinates.
func (s *ScreenSampler) CursorPos() (int, int, error) { return s.cursor() }

// Region grabs the square of the given radius around (x, y) for the
// magnifier. At a screen edge the grab shrinks to the visible part and
// the result is padded back out with black, so the pixel under the
// cursor stays at the center. Returns nil when the display cannot be
// read.
func (s *ScreenSampler) Region(x, y, radius int) (img image.Image) {
	defer func() {
		if r := recover(); r != nil {
			if s.logger != nil {
				s.logger.Error("sampler region panic", "error", r, "stack", string(debug.Stack()))
			}
			img = nil
		}
	}()
	if radius < 1 {
		radius = 1
	}
	want := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1)
	grab := s.clamp(want)
	if grab.Empty() {
		return nil
	}
	out, err := s.region(grab)
	if err != nil || out == nil {
		return nil
	}
	if grab == want {
		return out
	}
	return padRegion(out, grab, want)
}

// clamp trims r to the screen. When the screen rectangle is unknown
// the grab technique sees the raw request.
func (s *ScreenSampler) clamp(r image.Rectangle) image.Rectangle {
	sr, err := s.bounds()
	if err != nil || sr.Empty() {
		return r
	}
	return r.Intersect(sr)
}

func (s *ScreenSampler) Stats() Stats {
	calls := s.calls.Load()
	total := s.sampleNanos.Load()
	var avg time.Duration
	if calls > 0 && total > 0 {
		avg = time.Duration(total / calls)
	}
	var last time.Time
	if ns := s.lastSample.Load(); ns > 0 {
		last = time.Unix(0, ns)
	}
	return Stats{
		Samples:    calls,
		Fallbacks:  s.fallbacks.Load(),
		Failures:   s.failures.Load(),
		AvgSample:  avg,
		LastSample: last,
	}
}

func (s *ScreenSampler) maybeLogStats() {
	if s.logger == nil {
		return
	}
	now := time.Now().UnixNano()
	last := s.lastStatsLog.Load()
	if now-last < int64(statsLogInterval) || !s.lastStatsLog.CompareAndSwap(last, now) {
		return
	}
	st := s.Stats()
	s.logger.Debug("sampler.stats",
		"samples", st.Samples,
		"fallbacks", st.Fallbacks,
		"failures", st.Failures,
		"avg_sample", st.AvgSample,
	)
}

// pixelAt maps the screen point (x, y) into img, which holds the
// pixels of grab regardless of its own bounds origin. Grab techniques
// differ on whether returned bounds start at zero or at the request.
func pixelAt(img image.Image, grab image.Rectangle, x, y int) colorconv.RGB {
	b := img.Bounds()
	return colorconv.FromColor(img.At(b.Min.X+x-grab.Min.X, b.Min.Y+y-grab.Min.Y))
}

// padRegion centers a clamped grab inside the originally requested
// rectangle; the off-screen remainder stays black.
func padRegion(got image.Image, grab, want image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, want.Dx(), want.Dy()))
	off := grab.Min.Sub(want.Min)
	dst := image.Rect(off.X, off.Y, off.X+grab.Dx(), off.Y+grab.Dy())
	draw.Draw(out, dst, got, got.Bounds().Min, draw.Src)
	return out
}
