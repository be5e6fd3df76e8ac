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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jadraw"
)

// Snake world coordinates range over [-worldX, worldX] × [-worldY, worldY]
// and wrap around at the borders.
const (
	worldX = 2.0
	worldY = 1.0

	maxSegments    = 100
	segmentSpacing = 0.2
	snakeTurnSpeed = 2.5 // radians per second
	snakeSpeed     = 0.25
	initialLength  = 4
)

// Snake is a snake which crawls around the screen. Turning the knob
// steers, pressing the button makes the snake grow.
type Snake struct {
	segments   []vec.Vec2
	direction  float64
	wasPressed bool
}

// NewSnake returns a new Snake applet.
func NewSnake() *Snake {
	s := &Snake{}
	s.Setup()
	return s
}

// Setup implements the Applet interface.
func (s *Snake) Setup() error {
	s.segments = make([]vec.Vec2, initialLength, maxSegments)
	for i := range s.segments {
		s.segments[i] = vec.Vec2{X: -segmentSpacing * float64(i)}
	}
	s.direction = 0
	s.wasPressed = false
	return nil
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Head returns the position of the head, in world coordinates.
func (s *Snake) Head() vec.Vec2 {
	return s.segments[0]
}

// Loop implements the Applet interface.
func (s *Snake) Loop(c *jadraw.Canvas, dt float64, in Input) {
	switch {
	case in.Rotation > 0:
		s.direction += snakeTurnSpeed * dt
	case in.Rotation < 0:
		s.direction -= snakeTurnSpeed * dt
	}
	if in.Pressed && !s.wasPressed && len(s.segments) < maxSegments {
		s.segments = append(s.segments, s.segments[len(s.segments)-1])
	}
	s.wasPressed = in.Pressed

	head := &s.segments[0]
	head.X += math.Cos(s.direction) * snakeSpeed * dt
	head.Y += math.Sin(s.direction) * snakeSpeed * dt
	if head.X > worldX {
		head.X = -worldX
	} else if head.X < -worldX {
		head.X = worldX
	}
	if head.Y > worldY {
		head.Y = -worldY
	} else if head.Y < -worldY {
		head.Y = worldY
	}

	// Each segment follows the one in front, keeping its distance.
	for i := 1; i < len(s.segments); i++ {
		d := s.segments[i-1].Sub(s.segments[i])
		dist := d.Length()
		if dist > segmentSpacing {
			s.segments[i] = s.segments[i].Add(d.Mul((dist - segmentSpacing) / dist))
		}
	}

	c.Clear(jadraw.Black)
	w, h := float64(c.Width()-1), float64(c.Height()-1)
	for i, p := range s.segments {
		col := jadraw.Grey
		if i == 0 {
			col = jadraw.White
		}
		px := int((p.X + worldX) / (2 * worldX) * w)
		py := int((p.Y + worldY) / (2 * worldY) * h)
		c.SetPixel(px, py, col)
	}
}

// Name implements the Applet interface.
func (s *Snake) Name() string {
	return "Snake game"
}
