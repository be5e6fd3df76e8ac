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

package applet

import "testing"

func TestXorShift32(t *testing.T) {
	r := NewXorShift32(1)
	if got := r.Uint32(); got != 270369 {
		t.Errorf("first value %d, expected 270369", got)
	}

	a := NewXorShift32(12345)
	b := NewXorShift32(12345)
	for i := range 1000 {
		x, y := a.Uint32(), b.Uint32()
		if x != y {
			t.Fatalf("value %d differs: %d vs %d", i, x, y)
		}
		if x == 0 {
			t.Fatalf("value %d is zero", i)
		}
	}

	z := NewXorShift32(0)
	if z.Uint32() == 0 {
		t.Error("zero seed gives zero output")
	}
}

func TestXorShift32Ranges(t *testing.T) {
	r := NewXorShift32(99)
	var hist [6]int
	for range 6000 {
		k := r.Intn(6)
		if k < 0 || k >= 6 {
			t.Fatalf("Intn(6) = %d", k)
		}
		hist[k]++

		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %g", f)
		}
		g := r.Range(-2, 3)
		if g < -2 || g >= 3 {
			t.Fatalf("Range(-2, 3) = %g", g)
		}
	}
	for k, n := range hist {
		if n < 800 || n > 1200 {
			t.Errorf("value %d drawn %d times out of 6000", k, n)
		}
	}

	if r.Intn(0) != 0 || r.Intn(-5) != 0 {
		t.Error("Intn with non-positive n is not 0")
	}
}
