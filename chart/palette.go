// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// houseColors is OWID's categorical palette, in the order the site
// assigns colors to chart series.
var houseColors = []color.NRGBA{
	{0x6d, 0x3e, 0x91, 0xff},
	{0xc0, 0x59, 0x17, 0xff},
	{0x58, 0xac, 0x8c, 0xff},
	{0x28, 0x6b, 0xbb, 0xff},
	{0x88, 0x30, 0x39, 0xff},
	{0xbc, 0x8e, 0x5a, 0xff},
	{0x00, 0x29, 0x5b, 0xff},
	{0xc1, 0x50, 0x65, 0xff},
	{0x18, 0x47, 0x0f, 0xff},
	{0x9a, 0x51, 0x29, 0xff},
	{0xe5, 0x6e, 0x5a, 0xff},
	{0xa2, 0x55, 0x9c, 0xff},
	{0x38, 0xaa, 0xba, 0xff},
	{0x57, 0x81, 0x45, 0xff},
	{0x97, 0x00, 0x46, 0xff},
	{0x00, 0x84, 0x7e, 0xff},
	{0xb1, 0x35, 0x07, 0xff},
	{0x4c, 0x6a, 0x9c, 0xff},
	{0xcf, 0x0a, 0x66, 0xff},
	{0x00, 0x87, 0x5e, 0xff},
	{0xb1, 0x62, 0x14, 0xff},
	{0x8c, 0x45, 0x69, 0xff},
	{0x3b, 0x8e, 0x1d, 0xff},
	{0xd7, 0x3c, 0x50, 0xff},
}

// Palette returns OWID's house colors with the given alpha, for use
// as line and fill colors. Alpha ranges from 0 (transparent) to 1
// (opaque) and is clamped. The result is in the order OWID assigns
// colors to series, so it can be handed to gg.NewColorRanger
// directly.
func Palette(alpha float64) []color.Color {
	a := alphaByte(alpha)
	cs := make([]color.Color, len(houseColors))
	for i, c := range houseColors {
		c.A = a
		cs[i] = c
	}
	return cs
}

func alphaByte(alpha float64) uint8 {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return uint8(alpha*0xff + 0.5)
}

// mapGradient is the sequential ramp Map uses for choropleth fills, a
// light-to-dark run on OWID's green.
var mapGradient = palette.RGBGradient{Colors: []color.RGBA{
	{0xe8, 0xf4, 0xf1, 0xff},
	{0xa9, 0xd3, 0xc6, 0xff},
	{0x58, 0xac, 0x8c, 0xff},
	{0x2e, 0x7d, 0x60, 0xff},
	{0x14, 0x51, 0x3c, 0xff},
	{0x06, 0x32, 0x24, 0xff},
}}

// DefaultGradient returns the sequential palette Map fills countries
// with, with the given alpha. Alpha is clamped to [0, 1].
func DefaultGradient(alpha float64) palette.Continuous {
	if alpha >= 1 {
		return mapGradient
	}
	return alphaGradient{mapGradient, alphaByte(alpha)}
}

// alphaGradient applies a fixed alpha to the colors of another
// continuous palette.
type alphaGradient struct {
	p palette.Continuous
	a uint8
}

func (g alphaGradient) Map(x float64) color.Color {
	c := color.NRGBAModel.Convert(g.p.Map(x)).(color.NRGBA)
	c.A = g.a
	return c
}
