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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// largeCases use canvases well beyond typical display sizes, to keep an
// eye on per-scanline costs.
var largeCases = []TestCase{
	{
		Name:       "large_rectangle",
		Width:      512,
		Height:     512,
		Background: black,
		Ops:        []Operation{Fill{Path: rectangle(50, 50, 462, 462), Color: white}},
	},
	{
		Name:       "large_concentric",
		Width:      512,
		Height:     512,
		Background: black,
		Ops:        []Operation{Fill{Path: ringShape(256, 256, 200, 100), Color: white}},
	},
	{
		Name:       "large_diamond",
		Width:      512,
		Height:     512,
		Background: black,
		Ops: []Operation{Polygon{
			Points: []vec.Vec2{pt(256, 76), pt(436, 256), pt(256, 436), pt(76, 256)},
			Color:  white,
		}},
	},
	{
		Name:       "large_grid",
		Width:      512,
		Height:     512,
		Background: black,
		Ops:        []Operation{Fill{Path: rectangleGrid(8, 8, 512, 512, 4), Color: white}},
	},
	{
		Name:       "large_clipped",
		Width:      512,
		Height:     512,
		Background: black,
		Ops:        []Operation{Fill{Path: rectangle(-100, 100, 612, 400), Color: white}},
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}
