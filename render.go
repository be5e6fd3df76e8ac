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

// Package jadraw implements a software rasterizer for small fixed-size
// framebuffers, of the kind found on embedded displays.
//
// A [Canvas] holds packed RGBA pixels. All drawing operations composite
// through a single compositor with three modes ([ModeOpaque], [ModeBlend]
// and [ModeAdditive]), and clip silently against the canvas.
// The available primitives are
//   - aliased lines of any thickness (Bresenham) and anti-aliased lines
//     (Wu's algorithm),
//   - scanline polygon and path fills with the even-odd rule,
//   - black and white triangles with temporal blue noise dithering,
//   - paletted sprites, and
//   - text in a built-in vector font.
//
// Drawing never allocates once the scratch buffers of a canvas have grown
// to their working size. A Canvas must not be used concurrently.
package jadraw

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/jadraw/testcases"
)

// RenderExample draws a test case onto c. The canvas is cleared to the
// background color of the test case first.
//
// Sprites which cannot be converted are skipped; the error is logged at
// debug level.
func RenderExample(tc testcases.TestCase, c *Canvas) {
	c.Clear(FromColor(tc.Background))

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			c.DrawLine(op.X0, op.Y0, op.X1, op.Y1, op.Thickness,
				FromColor(op.Color), drawMode(op.Mode))
		case testcases.LineAA:
			c.DrawLineAAVec(op.A, op.B, FromColor(op.Color), drawMode(op.Mode))
		case testcases.Polygon:
			c.FillPolygon(op.Points, FromColor(op.Color), drawMode(op.Mode))
		case testcases.Fill:
			c.FillPath(op.Path, op.CTM, FromColor(op.Color), drawMode(op.Mode))
		case testcases.Sprite:
			s, err := SpriteFromPaletted(op.Image)
			if err != nil {
				Logger().Debug("sprite skipped", "case", tc.Name, "error", err)
				continue
			}
			c.DrawSprite(op.X, op.Y, s, drawMode(op.Mode))
		case testcases.Text:
			c.DrawTextMode(op.Text, op.X, op.Y, op.Scale,
				FromColor(op.Color), drawMode(op.Mode))
		case testcases.Dither:
			d := &Ditherer{Millis: op.Millis}
			c.FillDitheredTriangle(d, op.V[0], op.V[1], op.V[2], op.Brightness)
		}
	}
}

func drawMode(m testcases.Mode) DrawMode {
	switch m {
	case testcases.Blend:
		return ModeBlend
	case testcases.Additive:
		return ModeAdditive
	default:
		return ModeOpaque
	}
}
