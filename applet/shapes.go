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
	"image"
	"math"
	"time"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jadraw"
	"seehuhn.de/go/jadraw/testcases"
)

// maxSpinSpeed limits the rotation speed of the Shapes triangles, in
// radians per second.
const maxSpinSpeed = 10

var shapeModes = []jadraw.DrawMode{jadraw.ModeBlend, jadraw.ModeAdditive, jadraw.ModeOpaque}

// Shapes shows most drawing primitives at once: spinning dithered
// triangles, overlapping stars, a fan of thick lines and a bouncing
// sprite. Turning the knob changes the spin speed, pressing the button
// cycles through the draw modes used for the stars.
type Shapes struct {
	t          float64
	spin       float64
	speed      float64
	mode       int
	wasPressed bool

	dither jadraw.Ditherer
	sprite *jadraw.Sprite
	star   []vec.Vec2
}

// NewShapes returns a new Shapes applet.
func NewShapes() *Shapes {
	return &Shapes{}
}

// Setup implements the Applet interface.
func (s *Shapes) Setup() error {
	sprite, err := jadraw.SpriteFromPaletted(testcases.CheckerSprite())
	if err != nil {
		return err
	}
	*s = Shapes{
		speed:  1,
		sprite: sprite,
		star:   make([]vec.Vec2, 0, 10),
	}
	return nil
}

// Loop implements the Applet interface.
func (s *Shapes) Loop(c *jadraw.Canvas, dt float64, in Input) {
	if dt > 0 {
		s.t += dt
		s.dither.Tick(time.Duration(dt * float64(time.Second)))
	}
	s.speed = math.Max(-maxSpinSpeed, math.Min(maxSpinSpeed, s.speed+0.05*float64(in.Rotation)))
	s.spin += s.speed * dt
	if in.Pressed && !s.wasPressed {
		s.mode = (s.mode + 1) % len(shapeModes)
	}
	s.wasPressed = in.Pressed
	mode := shapeModes[s.mode]

	w, h := float64(c.Width()), float64(c.Height())
	c.Clear(0x001030FF)

	// dithered triangles on the left
	r := 0.4 * math.Min(w, h)
	s.triangle(c, w/6, h/2, r, s.spin, 0.5+0.5*math.Sin(s.t))
	s.triangle(c, w/6, h/2, r/2, -2*s.spin, 0.5-0.5*math.Sin(s.t))

	// overlapping stars in the middle
	s.makeStar(w/2-r/4, h/2, r, s.spin/3)
	c.FillPolygon(s.star, jadraw.Red.WithAlpha(0xC0), mode)
	s.makeStar(w/2+r/4, h/2, r, -s.spin/3)
	c.FillPolygon(s.star, jadraw.Blue.WithAlpha(0xC0), mode)
	c.DrawPolygon(s.star, jadraw.White.WithAlpha(0x80), jadraw.ModeBlend)

	// thick lines on the right
	x0 := int(5 * w / 6)
	for i := range 4 {
		phi := s.spin/2 + float64(i)*math.Pi/4
		dx := int(r * math.Cos(phi))
		dy := int(r * math.Sin(phi))
		col := jadraw.HSV(float64(i)/4, 0.8, 1)
		c.DrawLine(x0-dx, int(h/2)-dy, x0+dx, int(h/2)+dy, i+1, col, jadraw.ModeOpaque)
	}

	// bouncing sprite along the top
	if s.sprite != nil {
		sx := int((w - float64(s.sprite.Width())) * (0.5 + 0.5*math.Sin(1.3*s.t)))
		sy := int(2 + 3*math.Abs(math.Sin(4*s.t)))
		c.DrawSprite(sx, sy, s.sprite, jadraw.ModeBlend)
	}

	c.DrawText(mode.String(), 2, int(h)-9, 1, jadraw.Yellow)
}

// triangle draws an equilateral dithered triangle.
func (s *Shapes) triangle(c *jadraw.Canvas, cx, cy, r, phi, brightness float64) {
	var v [3]image.Point
	for k := range v {
		alpha := phi + float64(k)*2*math.Pi/3
		v[k] = image.Pt(
			int(math.Round(cx+r*math.Cos(alpha))),
			int(math.Round(cy+r*math.Sin(alpha))))
	}
	c.FillDitheredTriangle(&s.dither, v[0], v[1], v[2], brightness)
}

// makeStar stores the vertices of a five-pointed star in s.star.
func (s *Shapes) makeStar(cx, cy, r, phi float64) {
	s.star = s.star[:0]
	for k := range 10 {
		rk := r
		if k%2 == 1 {
			rk = r * 0.4
		}
		alpha := phi + float64(k)*math.Pi/5 - math.Pi/2
		s.star = append(s.star, vec.Vec2{X: cx + rk*math.Cos(alpha), Y: cy + rk*math.Sin(alpha)})
	}
}

// Name implements the Applet interface.
func (s *Shapes) Name() string {
	return "Shapes"
}
