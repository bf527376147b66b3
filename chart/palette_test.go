// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"testing"
)

func TestPalette(t *testing.T) {
	pal := Palette(1)
	if len(pal) != 24 {
		t.Fatalf("want 24 colors; got %d", len(pal))
	}
	if want := (color.NRGBA{0x6d, 0x3e, 0x91, 0xff}); pal[0] != want {
		t.Errorf("first color should be %v; got %v", want, pal[0])
	}
	seen := make(map[color.Color]bool)
	for _, c := range pal {
		if seen[c] {
			t.Errorf("duplicate color %v", c)
		}
		seen[c] = true
	}
}

func TestPaletteAlpha(t *testing.T) {
	for _, test := range []struct {
		alpha float64
		want  uint8
	}{
		{1, 0xff},
		{0.5, 0x80},
		{0, 0},
		// Out of range alphas clamp.
		{-1, 0},
		{2, 0xff},
	} {
		c := Palette(test.alpha)[3].(color.NRGBA)
		if c.A != test.want {
			t.Errorf("Palette(%g) alpha should be %#x; got %#x", test.alpha, test.want, c.A)
		}
	}
}

func TestDefaultGradient(t *testing.T) {
	pal := DefaultGradient(1)
	if want := (color.RGBA{0xe8, 0xf4, 0xf1, 0xff}); pal.Map(0) != want {
		t.Errorf("Map(0) should be %v; got %v", want, pal.Map(0))
	}
	if want := (color.RGBA{0x06, 0x32, 0x24, 0xff}); pal.Map(1) != want {
		t.Errorf("Map(1) should be %v; got %v", want, pal.Map(1))
	}
	// Out of range values clamp to the ends.
	if pal.Map(2) != pal.Map(1) {
		t.Errorf("Map(2) should clamp to Map(1); got %v", pal.Map(2))
	}

	translucent := DefaultGradient(0.5)
	c, ok := translucent.Map(0.4).(color.NRGBA)
	if !ok {
		t.Fatalf("translucent gradient should return NRGBA; got %T", translucent.Map(0.4))
	}
	if c.A != 0x80 {
		t.Errorf("alpha should be 0x80; got %#x", c.A)
	}
}
