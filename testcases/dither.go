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

import "image"

var ditherCases = []TestCase{
	{
		Name:       "ramp",
		Width:      64,
		Height:     64,
		Background: navy,
		Ops:        ditherRamp(8),
	},
	{
		Name:       "flat_top",
		Width:      64,
		Height:     64,
		Background: navy,
		Ops: []Operation{
			Dither{V: [3]image.Point{{4, 8}, {60, 8}, {32, 56}}, Brightness: 0.5},
		},
	},
	{
		Name:       "flat_bottom",
		Width:      64,
		Height:     64,
		Background: navy,
		Ops: []Operation{
			Dither{V: [3]image.Point{{32, 4}, {4, 56}, {60, 56}}, Brightness: 0.3, Millis: 450},
		},
	},
	{
		Name:       "partly_outside",
		Width:      32,
		Height:     32,
		Background: navy,
		Ops: []Operation{
			Dither{V: [3]image.Point{{-20, -10}, {50, 12}, {10, 60}}, Brightness: 0.75, Millis: 1000},
		},
	},
	{
		Name:       "full_brightness",
		Width:      32,
		Height:     32,
		Background: navy,
		Ops: []Operation{
			Dither{V: [3]image.Point{{2, 2}, {30, 6}, {12, 30}}, Brightness: 1},
		},
	},
}

// ditherRamp builds n triangles side by side with brightness increasing
// from 0 to 1.
func ditherRamp(n int) []Operation {
	ops := make([]Operation, n)
	w := 64 / n
	for i := range n {
		x := i * w
		ops[i] = Dither{
			V:          [3]image.Point{{x, 4}, {x + w, 4}, {x + w/2, 60}},
			Brightness: float64(i) / float64(n-1),
		}
	}
	return ops
}
