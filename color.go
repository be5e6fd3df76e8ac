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
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 32-bit straight-alpha color in 0xRRGGBBAA order.
// Alpha is stored in the low byte everywhere in this package, so a literal
// like 0x001030FF is an opaque dark blue.
type Color uint32

// RGBA packs four 8-bit channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&^0xFF | Color(a)
}

// NRGBA converts c to the standard library's straight-alpha color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// HSV returns the opaque color with hue h, saturation s and value v.
// All three arguments range over [0, 1]; h wraps around.
func HSV(h, s, v float64) Color {
	h -= math.Floor(h)
	r, g, b := colorful.Hsv(h*360, s, v).Clamped().RGB255()
	return RGBA(r, g, b, 0xFF)
}

// Named colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0x000000FF
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFF0000FF
	Green       Color = 0x00FF00FF
	Blue        Color = 0x0000FFFF
	Yellow      Color = 0xFFFF00FF
	Cyan        Color = 0x00FFFFFF
	Magenta     Color = 0xFF00FFFF
	Orange      Color = 0xFF8000FF
	Grey        Color = 0x808080FF
)
