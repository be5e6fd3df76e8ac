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
	"image"
	"image/color"
)

// blendCases combine several primitives and compositing modes in one
// scene.
var blendCases = []TestCase{
	{
		Name:       "additive_triangles",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Fill{Path: polygonPath(pt(4, 60), pt(32, 4), pt(60, 60)), Color: color.NRGBA{160, 0, 0, 255}, Mode: Additive},
			Fill{Path: polygonPath(pt(4, 4), pt(60, 4), pt(32, 60)), Color: color.NRGBA{0, 0, 160, 255}, Mode: Additive},
		},
	},
	{
		Name:       "translucent_stack",
		Width:      64,
		Height:     64,
		Background: white,
		Ops: []Operation{
			Polygon{Points: rectPoints(4, 4, 44, 44), Color: color.NRGBA{255, 0, 0, 96}, Mode: Blend},
			Polygon{Points: rectPoints(20, 20, 60, 60), Color: color.NRGBA{0, 0, 255, 96}, Mode: Blend},
			Polygon{Points: rectPoints(12, 28, 52, 36), Color: color.NRGBA{0, 255, 0, 0}, Mode: Blend},
		},
	},
	{
		Name:       "opaque_ignores_alpha",
		Width:      32,
		Height:     32,
		Background: navy,
		Ops: []Operation{
			Polygon{Points: rectPoints(4, 4, 28, 28), Color: color.NRGBA{255, 128, 0, 0}, Mode: Opaque},
		},
	},
	{
		Name:       "mixed",
		Width:      64,
		Height:     64,
		Background: navy,
		Ops: []Operation{
			Fill{Path: circle(32, 32, 24), Color: color.NRGBA{0, 96, 64, 255}},
			Dither{V: [3]image.Point{{20, 20}, {44, 24}, {30, 44}}, Brightness: 0.6},
			LineAA{A: pt(4, 60), B: pt(60, 8), Color: halfRed, Mode: Blend},
			Line{X0: 4, Y0: 4, X1: 60, Y1: 60, Thickness: 2, Color: yellow, Mode: Additive},
			Sprite{X: 50, Y: 50, Image: CheckerSprite()},
			Text{Text: "MIX", X: 2, Y: 2, Scale: 1, Color: white, Mode: Blend},
		},
	},
}
