package colorconv

import (
	"math"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
		hex  string
	}{
		{"#ff8000", RGB{255, 128, 0}, "#ff8000"},
		{"ff8000", RGB{255, 128, 0}, "#ff8000"},
		{"#F80", RGB{255, 136, 0}, "#ff8800"},
		{"  #00ff7f ", RGB{0, 255, 127}, "#00ff7f"},
		{"#000000", RGB{}, "#000000"},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.Hex() != tc.hex {
			t.Errorf("Hex() = %q, want %q", got.Hex(), tc.hex)
		}
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#", "#ff", "#fffff", "#ffddeeaa", "zzzzzz", "#12345g"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q): expected error", in)
		}
	}
}

func TestHSVAnchors(t *testing.T) {
	cases := []struct {
		c       RGB
		h, s, v float64
	}{
		{RGB{255, 0, 0}, 0, 100, 100},
		{RGB{0, 255, 0}, 120, 100, 100},
		{RGB{0, 0, 255}, 240, 100, 100},
		{RGB{255, 255, 255}, 0, 0, 100},
		{RGB{}, 0, 0, 0},
		{RGB{128, 128, 128}, 0, 0, 50.2},
		{RGB{255, 128, 0}, 30.1, 100, 100},
	}
	for _, tc := range cases {
		h, s, v := tc.c.HSV()
		if math.Abs(h-tc.h) > 0.5 || math.Abs(s-tc.s) > 0.5 || math.Abs(v-tc.v) > 0.5 {
			t.Errorf("%v.HSV() = (%.1f, %.1f, %.1f), want (%.1f, %.1f, %.1f)",
				tc.c, h, s, v, tc.h, tc.s, tc.v)
		}
	}
}

func TestFromHSVRoundTrip(t *testing.T) {
	for _, c := range []RGB{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 128, 0}, {10, 200, 90}, {255, 255, 255}, {},
	} {
		h, s, v := c.HSV()
		got := FromHSV(h, s, v)
		if dr, dg, db := delta(got.R, c.R), delta(got.G, c.G), delta(got.B, c.B); dr > 1 || dg > 1 || db > 1 {
			t.Errorf("FromHSV(%v.HSV()) = %v, drifted more than one step", c, got)
		}
	}
}

func TestFromHSVClampsAndWraps(t *testing.T) {
	if got, want := FromHSV(360, 100, 100), (RGB{255, 0, 0}); got != want {
		t.Errorf("FromHSV(360,..) = %v, want %v", got, want)
	}
	if got, want := FromHSV(-120, 100, 100), (RGB{0, 0, 255}); got != want {
		t.Errorf("FromHSV(-120,..) = %v, want %v", got, want)
	}
	if got, want := FromHSV(0, 150, 150), (RGB{255, 0, 0}); got != want {
		t.Errorf("FromHSV over-range = %v, want %v", got, want)
	}
}

func TestLumaOrdering(t *testing.T) {
	if w, b := (RGB{255, 255, 255}).Luma(), (RGB{}).Luma(); w <= b {
		t.Fatalf("white luma %f not above black %f", w, b)
	}
	if g, b := (RGB{0, 255, 0}).Luma(), (RGB{0, 0, 255}).Luma(); g <= b {
		t.Fatalf("green luma %f not above blue %f", g, b)
	}
}

func delta(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
