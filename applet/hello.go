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

import (
	"fmt"
	"math"

	"seehuhn.de/go/jadraw"
)

// Hello draws two anti-aliased lines chasing a moving point, and a
// wobbling greeting.
type Hello struct {
	x, y float64
	t    float64
}

// NewHello returns a new Hello applet.
func NewHello() *Hello {
	return &Hello{}
}

// Setup implements the Applet interface.
func (h *Hello) Setup() error {
	h.x, h.y, h.t = 0, 0, 0
	return nil
}

// Loop implements the Applet interface.
func (h *Hello) Loop(c *jadraw.Canvas, dt float64, in Input) {
	const speed = 10
	w, ht := float64(c.Width()), float64(c.Height())

	h.t += dt
	h.x += speed * dt * 2.3
	h.y += speed * dt * 1.5
	if h.x >= w {
		h.x = 0
	}
	if h.y >= ht {
		h.y = 0
	}

	c.Clear(0x001030FF)
	c.DrawLineAA(0, 0, h.x, h.y, jadraw.Red, jadraw.ModeBlend)
	c.DrawLineAA(w-1, 0, h.x, h.y, jadraw.Orange, jadraw.ModeBlend)

	// The last character cycles through the code points.
	msg := fmt.Sprintf("hello? %c", rune(byte(int(h.t*10))))
	c.DrawText(msg,
		int(8+16*math.Sin(h.t)),
		int(10+10*math.Cos(h.t*0.8)),
		2+math.Cos(h.t*0.5),
		jadraw.Magenta)
}

// Name implements the Applet interface.
func (h *Hello) Name() string {
	return "Hello"
}
