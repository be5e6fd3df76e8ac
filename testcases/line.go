// seehuhn.de/go/jadraw - a rasterizer for small framebuffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"image/color"
	"math"
)

var lineCases = []TestCase{
	{
		Name:       "octants",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        fan(32, 32, 28, 16, 1, white),
	},
	{
		Name:       "thick_diagonal",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Line{X0: 8, Y0: 8, X1: 56, Y1: 40, Thickness: 3, Color: red},
			Line{X0: 8, Y0: 56, X1: 40, Y1: 8, Thickness: 4, Color: green},
		},
	},
	{
		Name:       "thick_axis_aligned",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Line{X0: 4, Y0: 10, X1: 60, Y1: 10, Thickness: 5, Color: white},
			Line{X0: 20, Y0: 20, X1: 20, Y1: 60, Thickness: 2, Color: yellow},
		},
	},
	{
		Name:       "clipped",
		Width:      32,
		Height:     32,
		Background: black,
		Ops: []Operation{
			Line{X0: -20, Y0: -5, X1: 50, Y1: 40, Thickness: 1, Color: white},
			Line{X0: -10, Y0: 16, X1: 45, Y1: 16, Thickness: 3, Color: red},
		},
	},
	{
		Name:       "translucent_fan",
		Width:      64,
		Height:     64,
		Background: navy,
		Ops:        fan(32, 32, 30, 24, 2, halfRed),
	},
}

var aalineCases = []TestCase{
	{
		Name:       "octants",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        fanAA(32, 32, 28, 16, white),
	},
	{
		Name:       "subpixel_endpoints",
		Width:      32,
		Height:     32,
		Background: black,
		Ops: []Operation{
			LineAA{A: pt(2.25, 3.75), B: pt(29.5, 10.1), Color: white, Mode: Blend},
			LineAA{A: pt(3.5, 28.5), B: pt(8.2, 2.7), Color: yellow, Mode: Blend},
		},
	},
	{
		Name:       "degenerate",
		Width:      16,
		Height:     16,
		Background: black,
		Ops: []Operation{
			LineAA{A: pt(7.4, 7.6), B: pt(7.4, 7.6), Color: white},
		},
	},
	{
		Name:       "additive_cross",
		Width:      32,
		Height:     32,
		Background: black,
		Ops: []Operation{
			LineAA{A: pt(2, 2), B: pt(29, 29), Color: red, Mode: Additive},
			LineAA{A: pt(2, 29), B: pt(29, 2), Color: blue, Mode: Additive},
			LineAA{A: pt(16, 1), B: pt(16, 30), Color: green, Mode: Additive},
		},
	},
}

// fan builds n aliased lines from (cx, cy), evenly spaced in angle.
func fan(cx, cy, r float64, n, thickness int, col color.NRGBA) []Operation {
	mode := Opaque
	if col.A < 255 {
		mode = Blend
	}
	ops := make([]Operation, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		ops[i] = Line{
			X0:        int(cx),
			Y0:        int(cy),
			X1:        int(math.Round(cx + r*math.Cos(angle))),
			Y1:        int(math.Round(cy + r*math.Sin(angle))),
			Thickness: thickness,
			Color:     col,
			Mode:      mode,
		}
	}
	return ops
}

// fanAA builds n anti-aliased lines starting near (cx, cy), evenly spaced
// in angle.
func fanAA(cx, cy, r float64, n int, col color.NRGBA) []Operation {
	ops := make([]Operation, n)
	for i := range n {
		angle := (float64(i) + 0.3) * 2 * math.Pi / float64(n)
		dx, dy := math.Cos(angle), math.Sin(angle)
		ops[i] = LineAA{
			A:     pt(cx+4*dx, cy+4*dy),
			B:     pt(cx+r*dx, cy+r*dy),
			Color: col,
			Mode:  Blend,
		}
	}
	return ops
}
