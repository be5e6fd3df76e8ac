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
	"image/color"
	"testing"
)

func TestColorPacking(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if c != 0x12345678 {
		t.Errorf("RGBA packed to %08x", uint32(c))
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Errorf("channels %02x %02x %02x %02x", c.R(), c.G(), c.B(), c.A())
	}
	if got := c.WithAlpha(0xFF); got != 0x123456FF {
		t.Errorf("WithAlpha gave %v", got)
	}
	if got := c.String(); got != "#12345678" {
		t.Errorf("String() = %q", got)
	}
}

func TestFromColor(t *testing.T) {
	cases := []struct {
		in   color.Color
		want Color
	}{
		{color.NRGBA{1, 2, 3, 4}, RGBA(1, 2, 3, 4)},
		{color.RGBA{128, 0, 0, 128}, RGBA(255, 0, 0, 128)},
		{color.Gray{0x80}, RGBA(0x80, 0x80, 0x80, 0xFF)},
		{color.Transparent, Transparent},
	}
	for _, c := range cases {
		if got := FromColor(c.in); got != c.want {
			t.Errorf("FromColor(%v) = %v, expected %v", c.in, got, c.want)
		}
	}
}

func TestHSV(t *testing.T) {
	cases := []struct {
		h, s, v float64
		want    Color
	}{
		{0, 1, 1, Red},
		{1, 1, 1, Red},
		{-1, 1, 1, Red},
		{1.0 / 3, 1, 1, Green},
		{0.5, 1, 1, Cyan},
		{0.25, 0, 1, White},
		{0.7, 1, 0, Black},
	}
	for _, c := range cases {
		if got := HSV(c.h, c.s, c.v); got != c.want {
			t.Errorf("HSV(%g, %g, %g) = %v, expected %v", c.h, c.s, c.v, got, c.want)
		}
	}
}
