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

package jadraw

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// pathFlatness is the curve flattening tolerance in device pixels.
const pathFlatness = 0.25

// FillPath fills a path after transforming it by m. All subpaths are
// closed implicitly and filled together using the even-odd rule, with the
// same scanline conventions as FillPolygon. Curves are flattened into line
// segments first.
//
// The zero matrix is treated as the identity.
func (c *Canvas) FillPath(p *path.Data, m matrix.Matrix, col Color, mode DrawMode) {
	if p == nil {
		return
	}
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}

	c.pts = c.pts[:0]
	c.subs = c.subs[:0]

	var current vec.Vec2 // current point (device space)
	var start vec.Vec2   // subpath start (device space)
	open := false        // whether current has been added to pts

	begin := func() {
		if !open {
			c.subs = append(c.subs, len(c.pts))
			c.pts = append(c.pts, current)
			open = true
		}
	}
	emit := func(_, to vec.Vec2) {
		c.pts = append(c.pts, to)
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = apply(m, p.Coords[coordIdx])
			start = current
			open = false
			coordIdx++

		case path.CmdLineTo:
			begin()
			current = apply(m, p.Coords[coordIdx])
			c.pts = append(c.pts, current)
			coordIdx++

		case path.CmdQuadTo:
			begin()
			p1 := apply(m, p.Coords[coordIdx])
			p2 := apply(m, p.Coords[coordIdx+1])
			flattenQuadratic(current, p1, p2, emit)
			current = p2
			coordIdx += 2

		case path.CmdCubeTo:
			begin()
			p1 := apply(m, p.Coords[coordIdx])
			p2 := apply(m, p.Coords[coordIdx+1])
			p3 := apply(m, p.Coords[coordIdx+2])
			flattenCubic(current, p1, p2, p3, emit)
			current = p3
			coordIdx += 3

		case path.CmdClose:
			// Segments after a close start a new subpath at the old start.
			current = start
			open = false
		}
	}

	c.fillSubpaths(c.pts, c.subs, col, mode)
}

// apply transforms v by the affine matrix m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line
// segment. p0 is the start point, p1 the control point, p2 the endpoint, all
// in device space.
func flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errDev := e.Length(); errDev > pathFlatness {
		n = int(math.Ceil(math.Sqrt(errDev / pathFlatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line
// segment. p0 is the start point, p1 and p2 the control points, p3 the
// endpoint, all in device space.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	// Wang's formula: n = ceil(sqrt(3 * max|d| / (4 * flatness)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * pathFlatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
