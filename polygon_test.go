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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func v(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

func TestFillPolygonRectangle(t *testing.T) {
	c, _ := New(10, 10)
	c.Clear(Black)
	c.FillPolygon([]vec.Vec2{v(2, 2), v(6, 2), v(6, 5), v(2, 5)}, White, ModeOpaque)

	// rows 2 <= y < 5, columns 2 <= x < 6
	for y := range 10 {
		for x := range 10 {
			want := Black
			if x >= 2 && x < 6 && y >= 2 && y < 5 {
				want = White
			}
			if got := c.Pixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) is %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestFillPolygonTriangle(t *testing.T) {
	c, _ := New(16, 16)
	c.Clear(Black)
	c.FillPolygon([]vec.Vec2{v(0, 0), v(10, 0), v(5, 10)}, White, ModeOpaque)

	if n := painted(t, c, Black, White); n != 55 {
		t.Errorf("%d pixels filled, expected 55", n)
	}
	// row y covers [ceil(y/2), ceil(10-y/2))
	for y := range 16 {
		for x := range 16 {
			inside := y < 10 && 2*x >= y && 2*x < 20-y
			want := Black
			if inside {
				want = White
			}
			if got := c.Pixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %s, expected %s", x, y, got, want)
			}
		}
	}
}

func TestFillPolygonTooFewPoints(t *testing.T) {
	c, _ := New(8, 8)
	c.Clear(Black)
	c.FillPolygon(nil, White, ModeOpaque)
	c.FillPolygon([]vec.Vec2{v(1, 1)}, White, ModeOpaque)
	c.FillPolygon([]vec.Vec2{v(1, 1), v(6, 6)}, White, ModeOpaque)
	if n := painted(t, c, Black, White); n != 0 {
		t.Errorf("%d pixels drawn", n)
	}
}

func TestFillPolygonEvenOdd(t *testing.T) {
	var star []vec.Vec2
	for k := range 5 {
		phi := (-90 + 144*float64(k)) * math.Pi / 180
		star = append(star, v(32+25*math.Cos(phi), 32+25*math.Sin(phi)))
	}

	c, _ := New(64, 64)
	c.Clear(Black)
	c.FillPolygon(star, White, ModeOpaque)

	if c.Pixel(32, 32) != Black {
		t.Error("centre of the star is filled")
	}
	if c.Pixel(32, 10) != White {
		t.Error("top point of the star is not filled")
	}
	if c.Pixel(20, 32) != White {
		t.Error("left arm of the star is not filled")
	}
}

// TestFillPolygonSharedEdge checks that two polygons with a common edge
// cover every pixel of their union exactly once.
func TestFillPolygonSharedEdge(t *testing.T) {
	c, _ := New(64, 64)
	c.Clear(Black)
	c.FillPolygon([]vec.Vec2{v(8, 8), v(56, 8), v(8, 56)}, halfWhite, ModeBlend)
	c.FillPolygon([]vec.Vec2{v(56, 8), v(56, 56), v(8, 56)}, halfWhite, ModeBlend)

	if n := painted(t, c, Black, grey50); n != 48*48 {
		t.Errorf("%d pixels drawn, expected %d", n, 48*48)
	}
}

func TestFillPolygonClipped(t *testing.T) {
	c, _ := New(8, 8)
	c.Clear(Black)
	huge := []vec.Vec2{v(-1e9, -1e9), v(1e9, -1e9), v(1e9, 1e9), v(-1e9, 1e9)}
	c.FillPolygon(huge, White, ModeOpaque)
	if n := painted(t, c, Black, White); n != 64 {
		t.Errorf("%d pixels drawn, expected 64", n)
	}

	c.Clear(Black)
	outside := []vec.Vec2{v(-10, 2), v(-2, 2), v(-2, 6)}
	c.FillPolygon(outside, White, ModeOpaque)
	below := []vec.Vec2{v(2, 9), v(6, 9), v(6, 20)}
	c.FillPolygon(below, White, ModeOpaque)
	if n := painted(t, c, Black, White); n != 0 {
		t.Errorf("%d pixels drawn outside the canvas", n)
	}
}

func TestFillPolygonNaN(t *testing.T) {
	c, _ := New(8, 8)
	c.Clear(Black)
	nan := math.NaN()
	c.FillPolygon([]vec.Vec2{v(nan, 1), v(5, nan), v(1, 6)}, White, ModeOpaque)
	c.FillPolygon([]vec.Vec2{v(1, 1), v(math.Inf(1), 3), v(1, 6)}, White, ModeOpaque)
}

func TestFillPathMatchesPolygon(t *testing.T) {
	pts := []vec.Vec2{v(3.5, 1.25), v(28.75, 9), v(14, 30.5), v(1, 17)}
	p := (&path.Data{}).MoveTo(pts[0]).LineTo(pts[1]).LineTo(pts[2]).LineTo(pts[3]).Close()

	a, _ := New(32, 32)
	a.Clear(Black)
	a.FillPolygon(pts, White, ModeOpaque)

	b, _ := New(32, 32)
	b.Clear(Black)
	b.FillPath(p, matrix.Matrix{}, White, ModeOpaque)

	if !slices.Equal(a.Pix(), b.Pix()) {
		t.Error("FillPath and FillPolygon differ")
	}

	// without the final Close
	open := (&path.Data{}).MoveTo(pts[0]).LineTo(pts[1]).LineTo(pts[2]).LineTo(pts[3])
	b.Clear(Black)
	b.FillPath(open, matrix.Identity, White, ModeOpaque)
	if !slices.Equal(a.Pix(), b.Pix()) {
		t.Error("open path is not closed implicitly")
	}
}

func TestFillPathTransform(t *testing.T) {
	square := (&path.Data{}).MoveTo(v(0, 0)).LineTo(v(2, 0)).LineTo(v(2, 2)).LineTo(v(0, 2)).Close()

	cases := []struct {
		name string
		m    matrix.Matrix
		rect [4]int // x0, y0, x1, y1 of the expected pixels
	}{
		{"identity", matrix.Identity, [4]int{0, 0, 2, 2}},
		{"translate", matrix.Matrix{1, 0, 0, 1, 4, 3}, [4]int{4, 3, 6, 5}},
		{"scale", matrix.Matrix{2, 0, 0, 2, 1, 1}, [4]int{1, 1, 5, 5}},
		{"flip", matrix.Matrix{-1, 0, 0, 1, 8, 0}, [4]int{6, 0, 8, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := New(10, 10)
			c.Clear(Black)
			c.FillPath(square, tc.m, White, ModeOpaque)

			r := tc.rect
			for y := range 10 {
				for x := range 10 {
					want := Black
					if x >= r[0] && x < r[2] && y >= r[1] && y < r[3] {
						want = White
					}
					if got := c.Pixel(x, y); got != want {
						t.Errorf("pixel (%d,%d) is %v, expected %v", x, y, got, want)
					}
				}
			}
		})
	}
}

// TestFillPathAfterClose checks that drawing after a ClosePath starts a new
// subpath at the start point of the closed one.
func TestFillPathAfterClose(t *testing.T) {
	implicit := (&path.Data{}).
		MoveTo(v(2, 2)).LineTo(v(8, 2)).LineTo(v(8, 8)).Close().
		LineTo(v(2, 14)).LineTo(v(8, 14)).Close()
	explicit := (&path.Data{}).
		MoveTo(v(2, 2)).LineTo(v(8, 2)).LineTo(v(8, 8)).Close().
		MoveTo(v(2, 2)).LineTo(v(2, 14)).LineTo(v(8, 14)).Close()

	a, _ := New(16, 16)
	a.Clear(Black)
	a.FillPath(implicit, matrix.Identity, White, ModeOpaque)

	b, _ := New(16, 16)
	b.Clear(Black)
	b.FillPath(explicit, matrix.Identity, White, ModeOpaque)

	if !slices.Equal(a.Pix(), b.Pix()) {
		t.Error("implicit and explicit subpaths differ")
	}
	if a.Pixel(3, 12) != White {
		t.Error("second subpath not filled")
	}
}

func TestFillPathEmpty(t *testing.T) {
	c, _ := New(8, 8)
	c.Clear(Black)
	c.FillPath(nil, matrix.Identity, White, ModeOpaque)
	c.FillPath(&path.Data{}, matrix.Identity, White, ModeOpaque)
	c.FillPath((&path.Data{}).MoveTo(v(1, 1)), matrix.Identity, White, ModeOpaque)
	c.FillPath((&path.Data{}).MoveTo(v(1, 1)).LineTo(v(6, 6)), matrix.Identity, White, ModeOpaque)
	if n := painted(t, c, Black, White); n != 0 {
		t.Errorf("%d pixels drawn", n)
	}
}

func TestFillPathCurveArea(t *testing.T) {
	cases := []struct {
		name string
		p    *path.Data
		area float64
		tol  float64
	}{
		{
			name: "circle",
			p:    addCircle(&path.Data{}, 32, 32, 20, false),
			area: math.Pi * 20 * 20,
			tol:  30,
		},
		{
			name: "O",
			p:    makeOPath(32, 32, 28, 18),
			area: math.Pi * (28*28 - 18*18),
			tol:  60,
		},
		{
			// parabola segment of width 40 and height 20
			name: "quadratic",
			p:    (&path.Data{}).MoveTo(v(12, 20)).QuadTo(v(32, 60), v(52, 20)).Close(),
			area: 2.0 / 3 * 40 * 20,
			tol:  30,
		},
		{
			name: "triangle",
			p:    (&path.Data{}).MoveTo(v(0, 0)).LineTo(v(10, 0)).LineTo(v(5, 10)).Close(),
			area: 50,
			tol:  10,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := New(64, 64)
			c.Clear(Black)
			c.FillPath(tc.p, matrix.Identity, White, ModeOpaque)

			n := painted(t, c, Black, White)
			if math.Abs(float64(n)-tc.area) > tc.tol {
				t.Errorf("%d pixels filled, expected %.1f", n, tc.area)
			}
		})
	}
}

func TestFlattenEndpoints(t *testing.T) {
	p0, p1, p2, p3 := v(0.3, 0.7), v(40, -3), v(-12, 25.5), v(17.25, 9)

	var segs [][2]vec.Vec2
	emit := func(from, to vec.Vec2) { segs = append(segs, [2]vec.Vec2{from, to}) }

	flattenCubic(p0, p1, p2, p3, emit)
	checkChain(t, "cubic", segs, p0, p3)

	segs = segs[:0]
	flattenQuadratic(p0, p1, p3, emit)
	checkChain(t, "quadratic", segs, p0, p3)

	// straight curves need a single segment
	segs = segs[:0]
	flattenCubic(v(0, 0), v(1, 1), v(2, 2), v(3, 3), emit)
	if len(segs) != 1 {
		t.Errorf("straight cubic: %d segments", len(segs))
	}
}

func checkChain(t *testing.T, name string, segs [][2]vec.Vec2, start, end vec.Vec2) {
	t.Helper()
	if len(segs) < 2 {
		t.Fatalf("%s: only %d segments", name, len(segs))
	}
	if segs[0][0] != start {
		t.Errorf("%s: starts at %v, expected %v", name, segs[0][0], start)
	}
	if segs[len(segs)-1][1] != end {
		t.Errorf("%s: ends at %v, expected %v", name, segs[len(segs)-1][1], end)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i][0] != segs[i-1][1] {
			t.Errorf("%s: gap between segments %d and %d", name, i-1, i)
		}
	}
}

func TestFillNoAllocs(t *testing.T) {
	c, _ := New(64, 64)
	star := []vec.Vec2{v(32, 4), v(48, 60), v(4, 24), v(60, 24), v(16, 60)}
	o := makeOPath(32, 32, 28, 18)

	allocs := testing.AllocsPerRun(20, func() {
		c.FillPolygon(star, Red, ModeBlend)
		c.FillPath(o, matrix.Identity, Blue, ModeOpaque)
	})
	if allocs != 0 {
		t.Errorf("%g allocations per fill", allocs)
	}
}
