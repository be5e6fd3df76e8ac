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

import "math"

// DrawText draws text with the built-in vector font, using ModeBlend.
// See DrawTextMode.
func (c *Canvas) DrawText(text string, x, y int, scale float64, col Color) {
	c.DrawTextMode(text, x, y, scale, col, ModeBlend)
}

// DrawTextMode draws text with the built-in vector font. (x, y) is the
// top-left corner of the first glyph and scale is the size of a grid unit
// in pixels. Strokes are drawn as anti-aliased lines.
//
// A newline moves to the start of the next line, a carriage return to the
// start of the current line. Each glyph advances the cursor by its scaled
// advance width plus one pixel.
//
// Nothing is drawn if scale is not positive or if col is fully transparent.
func (c *Canvas) DrawTextMode(text string, x, y int, scale float64, col Color, mode DrawMode) {
	c.drawText(text, x, y, scale, col, mode, true)
}

// DrawTextAliased is like DrawTextMode, but strokes the glyphs with one
// pixel wide Bresenham lines between the rounded stroke endpoints. Every
// pixel is composited at full intensity.
func (c *Canvas) DrawTextAliased(text string, x, y int, scale float64, col Color, mode DrawMode) {
	c.drawText(text, x, y, scale, col, mode, false)
}

func (c *Canvas) drawText(text string, x, y int, scale float64, col Color, mode DrawMode, aa bool) {
	if !(scale > 0) || col.A() == 0 {
		return
	}

	lineStep := roundInt(GlyphHeight * scale)
	cx, cy := x, y
	for _, r := range text {
		switch r {
		case '\n':
			cx = x
			cy += lineStep
			continue
		case '\r':
			cx = x
			continue
		}

		g := LookupGlyph(r)
		c.drawGlyph(g, float64(cx), float64(cy), scale, col, mode, aa)
		cx += roundInt(float64(g.Advance)*scale) + 1
	}
}

func (c *Canvas) drawGlyph(g Glyph, x, y, scale float64, col Color, mode DrawMode, aa bool) {
	pts := g.Points
	for i, p := range pts {
		if p.IsLift() {
			continue
		}
		px := x + float64(p.X)*scale
		py := y + float64(p.Y)*scale

		if i > 0 && !pts[i-1].IsLift() {
			q := pts[i-1]
			qx := x + float64(q.X)*scale
			qy := y + float64(q.Y)*scale
			if aa {
				c.DrawLineAA(qx, qy, px, py, col, mode)
			} else {
				c.DrawLine(roundInt(qx), roundInt(qy), roundInt(px), roundInt(py), 1, col, mode)
			}
			continue
		}
		if i+1 >= len(pts) || pts[i+1].IsLift() {
			// a dot
			c.Blend(roundInt(px), roundInt(py), col, 1, mode)
		}
	}
}

// TextWidth returns the width in pixels of the longest line of text, as
// drawn by DrawText. This includes the one pixel spacing after the last
// glyph.
func TextWidth(text string, scale float64) int {
	if !(scale > 0) {
		return 0
	}
	widest, cur := 0, 0
	for _, r := range text {
		switch r {
		case '\n', '\r':
			widest = max(widest, cur)
			cur = 0
			continue
		}
		cur += roundInt(float64(LookupGlyph(r).Advance)*scale) + 1
	}
	return max(widest, cur)
}

func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}
