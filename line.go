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
	"math/bits"

	"seehuhn.de/go/geom/vec"
)

// degenerateLineThreshold is the extent below which an anti-aliased line
// is drawn as a single point.
const degenerateLineThreshold = 1e-6

// maxLineCoord bounds the endpoint coordinates of aliased lines, so that
// coordinate differences cannot overflow.
const maxLineCoord = 1 << 61

// DrawLine draws a line between two pixel centres, including both
// endpoints. A thickness of 1 gives a one pixel wide Bresenham line.
// Thicker horizontal and vertical lines are drawn as rectangles; thicker
// diagonal lines are drawn as spans perpendicular to the dominant axis,
// with (thickness-1)/2 pixels before the centre pixel and the rest after it.
// A thickness of zero or less draws nothing.
//
// Only the part of the line inside the canvas is visited. Lines with an
// endpoint coordinate or a thickness larger than 2^61 in magnitude are not
// drawn.
func (c *Canvas) DrawLine(x0, y0, x1, y1, thickness int, col Color, mode DrawMode) {
	if thickness <= 0 {
		return
	}
	if !lineCoordOK(x0) || !lineCoordOK(y0) || !lineCoordOK(x1) || !lineCoordOK(y1) ||
		thickness > maxLineCoord {
		return
	}
	before := (thickness - 1) / 2

	if thickness > 1 {
		switch {
		case y0 == y1:
			c.FillRect(min(x0, x1), y0-before, abs(x1-x0)+1, thickness, col, mode)
			return
		case x0 == x1:
			c.FillRect(x0-before, min(y0, y1), thickness, abs(y1-y0)+1, col, mode)
			return
		}
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	// Walk along the major axis. After k major steps, Bresenham's
	// algorithm has taken round(k·minor/major) minor steps, rounding
	// halves down, so the walk can start and stop at the canvas edges.
	xMajor := dx >= dy
	m0, n0, sm, sn := x0, y0, sx, sy
	major, minor, extent := dx, dy, c.width
	if !xMajor {
		m0, n0, sm, sn = y0, x0, sy, sx
		major, minor, extent = dy, dx, c.height
	}
	kMin, kMax := 0, major
	if sm > 0 {
		kMin = max(kMin, -m0)
		kMax = min(kMax, extent-1-m0)
	} else {
		kMin = max(kMin, m0-extent+1)
		kMax = min(kMax, m0)
	}

	// For x-major lines x advances on every step, and for y-major lines y
	// does, so the spans below never overlap.
	for k := kMin; k <= kMax; k++ {
		m := m0 + sm*k
		n := n0 + sn*minorSteps(k, major, minor)
		x, y := m, n
		if !xMajor {
			x, y = n, m
		}
		switch {
		case thickness == 1:
			c.Blend(x, y, col, 1, mode)
		case xMajor:
			c.FillRect(x, y-before, 1, thickness, col, mode)
		default:
			c.FillRect(x-before, y, thickness, 1, col, mode)
		}
	}
}

// minorSteps returns floor((2·k·minor + major) / (2·major)), the number
// of minor axis steps a Bresenham line takes in its first k major steps.
// The product is formed in 128 bits.
func minorSteps(k, major, minor int) int {
	if major == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(k), uint64(minor))
	q, r := bits.Div64(hi, lo, uint64(major))
	if 2*r >= uint64(major) {
		q++
	}
	return int(q)
}

// FillRect composites col over the w×h rectangle with top-left corner
// (x, y), clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col Color, mode DrawMode) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, c.width)
	y1 := min(y+h, c.height)
	for yy := y0; yy < y1; yy++ {
		row := yy * c.width
		for xx := x0; xx < x1; xx++ {
			c.BlendUnchecked(row+xx, col, 1, mode)
		}
	}
}

// DrawRect draws the one pixel wide outline of the w×h rectangle with
// top-left corner (x, y). Every outline pixel is composited exactly once.
func (c *Canvas) DrawRect(x, y, w, h int, col Color, mode DrawMode) {
	if w <= 0 || h <= 0 {
		return
	}
	c.FillRect(x, y, w, 1, col, mode)
	if h > 1 {
		c.FillRect(x, y+h-1, w, 1, col, mode)
	}
	if h > 2 {
		c.FillRect(x, y+1, 1, h-2, col, mode)
		if w > 1 {
			c.FillRect(x+w-1, y+1, 1, h-2, col, mode)
		}
	}
}

// DrawLineAA draws an anti-aliased line using Wu's algorithm. Endpoints
// are in pixel coordinates, where integer values denote pixel centres.
//
// In ModeBlend a color with zero alpha draws nothing. The other modes do
// not look at the alpha channel here. Lines with a NaN or infinite
// coordinate are not drawn.
func (c *Canvas) DrawLineAA(x0, y0, x1, y1 float64, col Color, mode DrawMode) {
	if mode == ModeBlend && col.A() == 0 {
		return
	}
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}

	dx := x1 - x0
	dy := y1 - y0
	if math.Abs(dx) < degenerateLineThreshold && math.Abs(dy) < degenerateLineThreshold {
		c.Blend(int(math.Floor(x0+0.5)), int(math.Floor(y0+0.5)), col, 1, mode)
		return
	}

	// Work in a frame where the major axis is x and x increases.
	steep := math.Abs(dx) <= math.Abs(dy)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	// nothing to do if both end caps are beside the canvas
	extent := float64(c.width)
	if steep {
		extent = float64(c.height)
	}
	xEnd1 := math.Floor(x0 + 0.5)
	xEnd2 := math.Floor(x1 + 0.5)
	if xEnd2 < 0 || xEnd1 >= extent {
		return
	}
	gradient := (y1 - y0) / (x1 - x0)

	plot := func(x, y int, intensity float64) {
		if steep {
			c.Blend(y, x, col, intensity, mode)
		} else {
			c.Blend(x, y, col, intensity, mode)
		}
	}

	// first end cap
	yEnd1 := y0 + gradient*(xEnd1-x0)
	if xEnd1 >= 0 {
		xGap := 1 - fpart(x0+0.5)
		yPix := int(math.Floor(yEnd1))
		plot(int(xEnd1), yPix, (1-fpart(yEnd1))*xGap)
		plot(int(xEnd1), yPix+1, fpart(yEnd1)*xGap)
	}

	// second end cap
	if xEnd2 < extent {
		yEnd := y1 + gradient*(xEnd2-x1)
		xGap := fpart(x1 + 0.5)
		yPix := int(math.Floor(yEnd))
		plot(int(xEnd2), yPix, (1-fpart(yEnd))*xGap)
		plot(int(xEnd2), yPix+1, fpart(yEnd)*xGap)
	}

	// interior, restricted to the canvas
	xFirst := math.Max(xEnd1+1, 0)
	xLast := math.Min(xEnd2-1, extent-1)
	if xFirst > xLast {
		return
	}
	intery := yEnd1 + gradient*(xFirst-xEnd1)
	for x := int(xFirst); x <= int(xLast); x++ {
		y := int(math.Floor(intery))
		f := fpart(intery)
		plot(x, y, 1-f)
		plot(x, y+1, f)
		intery += gradient
	}
}

// DrawLineAAVec is DrawLineAA for endpoints given as vectors.
func (c *Canvas) DrawLineAAVec(a, b vec.Vec2, col Color, mode DrawMode) {
	c.DrawLineAA(a.X, a.Y, b.X, b.Y, col, mode)
}

// DrawPolygon draws the closed anti-aliased outline through points.
func (c *Canvas) DrawPolygon(points []vec.Vec2, col Color, mode DrawMode) {
	n := len(points)
	switch n {
	case 0:
		return
	case 1:
		c.DrawLineAAVec(points[0], points[0], col, mode)
		return
	}
	for i, p := range points {
		if n == 2 && i == 1 {
			break
		}
		c.DrawLineAAVec(p, points[(i+1)%n], col, mode)
	}
}

func lineCoordOK(x int) bool {
	return x >= -maxLineCoord && x <= maxLineCoord
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// fpart returns the fractional part of x, in [0, 1).
func fpart(x float64) float64 {
	return x - math.Floor(x)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
