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

import "seehuhn.de/go/geom/vec"

var precisionCases = []TestCase{
	// subpixel positioning
	{
		Name:       "subpixel_offset_00",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Polygon{Points: offsetRect(20, 20, 24, 24, 0.0), Color: white}},
	},
	{
		Name:       "subpixel_offset_25",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Polygon{Points: offsetRect(20, 20, 24, 24, 0.25), Color: white}},
	},
	{
		Name:       "subpixel_offset_50",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Polygon{Points: offsetRect(20, 20, 24, 24, 0.5), Color: white}},
	},
	{
		Name:       "subpixel_offset_75",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Polygon{Points: offsetRect(20, 20, 24, 24, 0.75), Color: white}},
	},

	// thin slivers, narrower than a pixel
	{
		Name:       "sliver_horizontal",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Polygon{Points: rectPoints(5, 9.8, 59, 10.3), Color: white}},
	},
	{
		Name:       "sliver_vertical",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Polygon{Points: rectPoints(31.6, 5, 32.2, 59), Color: white}},
	},

	// large coordinates
	{
		Name:       "large_coord_clipped",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Polygon{Points: rectPoints(-1e6, 20, 1e6, 44), Color: white}},
	},
	{
		Name:       "float64_precision",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Polygon{
				Points: rectPoints(
					22.123456789012345, 22.123456789012345,
					42.123456789012346, 42.123456789012346),
				Color: white,
			},
		},
	},
}

// offsetRect returns a w×h rectangle with a subpixel offset applied to all
// coordinates.
func offsetRect(x1, y1, w, h, offset float64) []vec.Vec2 {
	return rectPoints(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}
