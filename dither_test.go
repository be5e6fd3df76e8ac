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
	"image"
	"testing"
	"time"
)

const ditherBackground = Color(0x001030FF)

func TestDithererOffset(t *testing.T) {
	d := &Ditherer{}
	ox, oy := d.Offset()
	if ox != int(BlueNoise[0][0]) || oy != int(BlueNoise[1][1]) {
		t.Errorf("offset at t=0 is (%d,%d)", ox, oy)
	}

	// the offset changes every 15ms
	d.Tick(14 * time.Millisecond)
	if ox2, oy2 := d.Offset(); ox2 != ox || oy2 != oy {
		t.Errorf("offset changed after 14ms")
	}
	d.Tick(time.Millisecond)
	ox, oy = d.Offset()
	if ox != int(BlueNoise[1][1]) || oy != int(BlueNoise[2][2]) {
		t.Errorf("offset at t=15ms is (%d,%d)", ox, oy)
	}

	d.Tick(-time.Second)
	d.Tick(0)
	if d.Millis != 15 {
		t.Errorf("clock is at %dms, expected 15ms", d.Millis)
	}

	// the index wraps around after 32 steps
	d.Millis = 32 * 15
	ox, oy = d.Offset()
	if ox != int(BlueNoise[0][0]) || oy != int(BlueNoise[1][1]) {
		t.Errorf("offset at step 32 is (%d,%d)", ox, oy)
	}
}

// TestDitherGeometry checks the scanline coverage of a right triangle with
// a flat top, which lies entirely in the bottom half.
func TestDitherGeometry(t *testing.T) {
	c, _ := New(16, 16)
	c.Clear(ditherBackground)
	c.FillDitheredTriangle(nil, image.Pt(0, 0), image.Pt(8, 0), image.Pt(0, 8), 0.5)

	for y := range 16 {
		for x := range 16 {
			inside := y < 8 && x < 8-y
			got := c.Pixel(x, y)
			if !inside {
				if got != ditherBackground {
					t.Errorf("pixel (%d,%d) outside the triangle was drawn", x, y)
				}
				continue
			}
			want := Black
			if 127 > int(BlueNoise[y&31][x&31]) {
				want = White
			}
			if got != want {
				t.Errorf("pixel (%d,%d) is %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestDitherVertexOrder(t *testing.T) {
	pts := [3]image.Point{{3, 1}, {28, 11}, {9, 30}}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	ref, _ := New(32, 32)
	ref.Clear(ditherBackground)
	ref.FillDitheredTriangle(nil, pts[0], pts[1], pts[2], 0.3)

	c, _ := New(32, 32)
	for _, p := range perms {
		c.Clear(ditherBackground)
		c.FillDitheredTriangle(nil, pts[p[0]], pts[p[1]], pts[p[2]], 0.3)
		for i := range c.Pix() {
			if c.Pix()[i] != ref.Pix()[i] {
				t.Errorf("order %v differs at pixel (%d,%d)", p, i%32, i/32)
				break
			}
		}
	}
}

func TestDitherBrightness(t *testing.T) {
	cases := []struct {
		brightness float64
		lo, hi     float64 // range for the fraction of white pixels
	}{
		{-1, 0, 0},
		{0, 0, 0},
		{0.25, 0.15, 0.35},
		{0.5, 0.4, 0.6},
		{0.75, 0.65, 0.85},
		{1, 1, 1},
		{3, 1, 1},
	}
	for _, tc := range cases {
		c, _ := New(64, 64)
		c.Clear(ditherBackground)
		d := &Ditherer{Millis: 1234}
		c.FillDitheredTriangle(d, image.Pt(0, 0), image.Pt(63, 0), image.Pt(0, 63), tc.brightness)

		var white, total int
		for _, p := range c.Pix() {
			switch p {
			case White:
				white++
				total++
			case Black:
				total++
			}
		}
		if total == 0 {
			t.Fatalf("brightness %g: nothing drawn", tc.brightness)
		}
		frac := float64(white) / float64(total)
		if frac < tc.lo || frac > tc.hi {
			t.Errorf("brightness %g: %.3f of the pixels are white", tc.brightness, frac)
		}
	}
}

func TestDitherClipped(t *testing.T) {
	c, _ := New(16, 16)
	c.Clear(ditherBackground)

	// entirely outside
	c.FillDitheredTriangle(nil, image.Pt(-10, 2), image.Pt(-1, 5), image.Pt(-5, 12), 1)
	c.FillDitheredTriangle(nil, image.Pt(16, 2), image.Pt(30, 5), image.Pt(20, 12), 1)
	c.FillDitheredTriangle(nil, image.Pt(2, -10), image.Pt(8, -1), image.Pt(12, -5), 1)
	c.FillDitheredTriangle(nil, image.Pt(2, 16), image.Pt(8, 30), image.Pt(12, 20), 1)
	for i, p := range c.Pix() {
		if p != ditherBackground {
			t.Fatalf("pixel (%d,%d) was drawn", i%16, i/16)
		}
	}

	// partly outside
	c.FillDitheredTriangle(nil, image.Pt(-20, -20), image.Pt(40, 8), image.Pt(-5, 40), 1)
	if c.Pixel(0, 0) != White || c.Pixel(8, 8) != White {
		t.Error("visible part of the triangle not drawn")
	}
}

func TestDitherDegenerate(t *testing.T) {
	c, _ := New(16, 16)
	c.Clear(ditherBackground)
	c.FillDitheredTriangle(nil, image.Pt(2, 5), image.Pt(9, 5), image.Pt(13, 5), 1)

	// a triangle of zero height draws nothing outside its scanline
	for i, p := range c.Pix() {
		if p != ditherBackground && i/16 != 5 {
			t.Errorf("pixel (%d,%d) was drawn", i%16, i/16)
		}
	}
}
