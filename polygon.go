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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// FillPolygon fills the polygon through points, which is closed
// implicitly. Fewer than three points draw nothing.
//
// Scanlines are sampled at integer y. On each scanline, the crossings of
// all edges are sorted and the pixels between successive pairs are filled,
// where a pixel x is inside a pair (xa, xb) if xa <= x < xb. Self
// intersecting polygons are thus filled with the even-odd rule.
func (c *Canvas) FillPolygon(points []vec.Vec2, col Color, mode DrawMode) {
	if len(points) < 3 {
		return
	}
	c.subs = append(c.subs[:0], 0)
	c.fillSubpaths(points, c.subs, col, mode)
}

// fillSubpaths fills the polygons pts[starts[k]:starts[k+1]] (the last one
// extending to the end of pts) as a single shape. Subpaths with fewer than
// three vertices are ignored.
func (c *Canvas) fillSubpaths(pts []vec.Vec2, starts []int, col Color, mode DrawMode) {
	if len(pts) == 0 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	// also rejects NaN
	if !(maxY >= minY) {
		return
	}

	// Clamp in floating point before converting, so that huge coordinates
	// cannot overflow the integer conversion.
	yFirst := math.Max(math.Ceil(minY), 0)
	yLast := math.Min(math.Floor(maxY), float64(c.height-1))
	if yFirst > yLast {
		return
	}
	width := float64(c.width)

	for y := int(yFirst); y <= int(yLast); y++ {
		yf := float64(y)

		xs := c.xs[:0]
		for k, s := range starts {
			e := len(pts)
			if k+1 < len(starts) {
				e = starts[k+1]
			}
			sub := pts[s:e]
			if len(sub) < 3 {
				continue
			}
			a := sub[len(sub)-1]
			for _, b := range sub {
				// Exactly one endpoint at or above the scanline. This also
				// skips horizontal edges and counts shared vertices once.
				if (a.Y <= yf) != (b.Y <= yf) {
					xs = append(xs, a.X+(yf-a.Y)*(b.X-a.X)/(b.Y-a.Y))
				}
				a = b
			}
		}
		slices.Sort(xs)
		c.xs = xs

		row := y * c.width
		for i := 0; i+1 < len(xs); i += 2 {
			xa := math.Max(math.Ceil(xs[i]), 0)
			xb := math.Min(math.Ceil(xs[i+1]), width)
			if !(xa < xb) {
				continue
			}
			for x := int(xa); x < int(xb); x++ {
				c.BlendUnchecked(row+x, col, 1, mode)
			}
		}
	}
}
