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

import "fmt"

// DrawMode selects how a source color is combined with the canvas.
type DrawMode int

const (
	// ModeOpaque ignores the source alpha and blends with the intensity
	// alone.
	ModeOpaque DrawMode = iota

	// ModeBlend uses the source alpha, scaled by the intensity.
	ModeBlend

	// ModeAdditive adds the source color, scaled by the intensity, to the
	// canvas. The canvas alpha is left unchanged.
	ModeAdditive
)

func (m DrawMode) String() string {
	switch m {
	case ModeOpaque:
		return "opaque"
	case ModeBlend:
		return "blend"
	case ModeAdditive:
		return "additive"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

// Blend composites src onto the pixel at (x, y). The intensity is a
// coverage factor in [0, 1]; values above 1 are clamped and values of zero
// or less leave the canvas unchanged. Coordinates outside the canvas are
// ignored.
func (c *Canvas) Blend(x, y int, src Color, intensity float64, mode DrawMode) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.BlendUnchecked(y*c.width+x, src, intensity, mode)
}

// BlendUnchecked is like Blend, but takes a pixel index into Pix() and
// performs no clipping. The caller must ensure 0 <= i < len(Pix()).
func (c *Canvas) BlendUnchecked(i int, src Color, intensity float64, mode DrawMode) {
	// written as !(x > 0) so that NaN is rejected as well
	if !(intensity > 0) {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	dst := c.pix[i]
	switch mode {
	case ModeOpaque:
		a := uint32(255*intensity + 0.5)
		c.pix[i] = mix(dst, src, a)
	case ModeBlend:
		a := uint32(float64(src.A())*intensity + 0.5)
		c.pix[i] = mix(dst, src, a)
	case ModeAdditive:
		r := addClamp(dst.R(), src.R(), intensity)
		g := addClamp(dst.G(), src.G(), intensity)
		b := addClamp(dst.B(), src.B(), intensity)
		c.pix[i] = RGBA(r, g, b, dst.A())
	}
}

// mix interpolates from dst towards src with weight a/255 and accumulates
// a into the destination alpha. All divisions truncate.
func mix(dst, src Color, a uint32) Color {
	if a == 0 {
		return dst
	}
	inv := 0xFF - a
	r := (uint32(src.R())*a + uint32(dst.R())*inv) / 0xFF
	g := (uint32(src.G())*a + uint32(dst.G())*inv) / 0xFF
	b := (uint32(src.B())*a + uint32(dst.B())*inv) / 0xFF
	outA := a + uint32(dst.A())*inv/0xFF
	return RGBA(uint8(r), uint8(g), uint8(b), uint8(outA))
}

func addClamp(d, s uint8, intensity float64) uint8 {
	v := uint32(d) + uint32(float64(s)*intensity+0.5)
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}
