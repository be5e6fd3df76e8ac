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

package main

import (
	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/jadraw"
)

const upperHalfBlock = '▀'

// cellScreen is the part of tcell.Screen needed to draw a canvas.
type cellScreen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// drawCanvas draws c with its top-left corner in the top-left cell of the
// screen. Pixel row 2k is the foreground of cell row k, pixel row 2k+1
// the background. Parts which do not fit on the screen are cut off.
func drawCanvas(screen cellScreen, c *jadraw.Canvas) {
	sw, sh := screen.Size()
	cols := min(sw, c.Width())
	rows := min(sh, (c.Height()+1)/2)
	for row := range rows {
		for x := range cols {
			top := cellColor(c.Pixel(x, 2*row))
			bottom := tcell.ColorBlack
			if 2*row+1 < c.Height() {
				bottom = cellColor(c.Pixel(x, 2*row+1))
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x, row, upperHalfBlock, nil, style)
		}
	}
}

// cellColor converts a pixel to a terminal color, shown on black.
func cellColor(p jadraw.Color) tcell.Color {
	a := int32(p.A())
	r := int32(p.R()) * a / 255
	g := int32(p.G()) * a / 255
	b := int32(p.B()) * a / 255
	return tcell.NewRGBColor(r, g, b)
}
