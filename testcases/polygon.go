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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var polygonCases = []TestCase{
	{
		Name:       "triangle",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Polygon{Points: []vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}, Color: white},
		},
	},
	{
		Name:       "star",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Polygon{Points: starPoints(32, 32, 25), Color: white},
		},
	},
	{
		Name:       "rectangle",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Polygon{Points: rectPoints(10, 10, 54, 54), Color: white},
		},
	},
	{
		Name:       "concave",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Polygon{
				Points: []vec.Vec2{
					pt(8, 8), pt(56, 8), pt(56, 56), pt(32, 24), pt(8, 56),
				},
				Color: white,
			},
		},
	},
	{
		Name:       "clipped",
		Width:      32,
		Height:     32,
		Background: black,
		Ops: []Operation{
			Polygon{Points: []vec.Vec2{pt(-20, 4), pt(40, -8), pt(16, 60)}, Color: white},
		},
	},
	{
		Name:       "shared_edge",
		Width:      64,
		Height:     64,
		Background: black,
		Ops: []Operation{
			Polygon{Points: []vec.Vec2{pt(8, 8), pt(56, 8), pt(8, 56)}, Color: halfRed, Mode: Blend},
			Polygon{Points: []vec.Vec2{pt(56, 8), pt(56, 56), pt(8, 56)}, Color: halfRed, Mode: Blend},
		},
	},
}

// starPoints returns the vertices of a five-pointed star, connecting every
// second point so that the outline intersects itself.
func starPoints(cx, cy, r float64) []vec.Vec2 {
	corners := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	order := []int{0, 2, 4, 1, 3}
	pts := make([]vec.Vec2, len(order))
	for i, k := range order {
		pts[i] = corners[k]
	}
	return pts
}

// rectPoints returns the corners of an axis-aligned rectangle.
func rectPoints(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// rectangle builds a closed rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// polygonPath builds a closed path through pts.
func polygonPath(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}
