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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:       "scale_2x",
		Width:      128,
		Height:     128,
		Background: black,
		Ops: []Operation{Fill{
			Path:  rectangle(0, 0, 20, 20),
			CTM:   matrix.Scale(2, 2).Translate(24, 24),
			Color: white,
		}},
	},
	{
		Name:       "scale_half",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{Fill{
			Path:  rectangle(0, 0, 80, 80),
			CTM:   matrix.Scale(0.5, 0.5).Translate(12, 12),
			Color: white,
		}},
	},

	// rotation
	{
		Name:       "rotate_45deg",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{Fill{
			Path:  rectangle(-10, -10, 10, 10),
			CTM:   matrix.RotateDeg(45).Translate(32, 32),
			Color: white,
		}},
	},
	{
		Name:       "rotate_5deg",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{Fill{
			Path:  rectangle(-20, -12, 20, 12),
			CTM:   matrix.RotateDeg(5).Translate(32, 32),
			Color: white,
		}},
	},

	// non-uniform scaling and shear
	{
		Name:       "circle_to_ellipse",
		Width:      128,
		Height:     64,
		Background: black,
		Ops: []Operation{Fill{
			Path:  circle(0, 0, 20),
			CTM:   matrix.Scale(2.5, 1).Translate(64, 32),
			Color: white,
		}},
	},
	{
		Name:       "shear_horizontal",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{Fill{
			Path:  rectangle(-12, -12, 12, 12),
			CTM:   matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
			Color: white,
		}},
	},
	{
		Name:       "shear_and_rotate",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{Fill{
			Path:  rectangle(-12, -12, 12, 12),
			CTM:   matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
			Color: white,
		}},
	},
}
