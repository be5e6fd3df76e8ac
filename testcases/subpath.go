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

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:       "two_triangles",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: twoTriangles(), Color: white}},
	},
	{
		Name:       "overlapping_rect",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: overlappingRectangles(), Color: white}},
	},
	{
		Name:       "ring_shape",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: ringShape(32, 32, 25, 12), Color: white}},
	},
	{
		Name:       "multiple_rings",
		Width:      128,
		Height:     128,
		Background: black,
		Ops:        []Operation{Fill{Path: multipleRings(64, 64), Color: white}},
	},
	{
		Name:       "many_small_shapes",
		Width:      128,
		Height:     128,
		Background: black,
		Ops:        []Operation{Fill{Path: manySmallShapes(8, 8), Color: white}},
	},
	{
		Name:       "open_subpaths",
		Width:      64,
		Height:     64,
		Background: black,
		// neither subpath is closed explicitly
		Ops: []Operation{Fill{Path: openSubpaths(), Color: white}},
	},
}

// twoTriangles builds two separate triangles in one path.
func twoTriangles() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(5, 50)).LineTo(pt(20, 14)).LineTo(pt(30, 50)).Close().
		MoveTo(pt(34, 14)).LineTo(pt(59, 14)).LineTo(pt(46, 50)).Close()
}

// overlappingRectangles builds two overlapping rectangles. With the
// even-odd rule the overlap is a hole.
func overlappingRectangles() *path.Data {
	p := rectangle(8, 8, 40, 40)
	return p.
		MoveTo(pt(24, 24)).LineTo(pt(56, 24)).LineTo(pt(56, 56)).LineTo(pt(24, 56)).Close()
}

// ringShape builds a square with a square hole.
func ringShape(cx, cy, outer, inner float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx-outer, cy-outer)).
		LineTo(pt(cx+outer, cy-outer)).
		LineTo(pt(cx+outer, cy+outer)).
		LineTo(pt(cx-outer, cy+outer)).
		Close().
		MoveTo(pt(cx-inner, cy-inner)).
		LineTo(pt(cx-inner, cy+inner)).
		LineTo(pt(cx+inner, cy+inner)).
		LineTo(pt(cx+inner, cy-inner)).
		Close()
}

// multipleRings builds three square rings in one path.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := &path.Data{}
	for _, ring := range rings {
		r := ringShape(ring.cx, ring.cy, ring.outer, ring.inner)
		p.Cmds = append(p.Cmds, r.Cmds...)
		p.Coords = append(p.Coords, r.Coords...)
	}
	return p
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	const size = 5.0
	const spacing = 14.0

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p = p.
				MoveTo(pt(cx, cy-size)).
				LineTo(pt(cx+size, cy+size)).
				LineTo(pt(cx-size, cy+size)).
				Close()
		}
	}
	return p
}

// openSubpaths builds two triangles without ClosePath commands.
func openSubpaths() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(4, 4)).LineTo(pt(60, 10)).LineTo(pt(10, 30)).
		MoveTo(pt(20, 60)).LineTo(pt(50, 34)).LineTo(pt(60, 60))
}
