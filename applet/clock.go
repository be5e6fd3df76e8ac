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

	"seehuhn.de/go/jadraw"
)

// clockUpdateInterval is the time between clock updates, in milliseconds.
const clockUpdateInterval = 1000

// TimeInfo is a calendar time as shown by the Clock applet.
type TimeInfo struct {
	Month, Day           int
	Hour, Minute, Second int
}

// Clock shows a digital clock, tinted by the hour. The device this runs on
// has no real time source, so the time is taken from a seeded random
// generator once per second.
type Clock struct {
	seed    uint32
	rng     *XorShift32
	millis  uint64
	updated uint64
	started bool
	dots    bool
	now     TimeInfo
}

// NewClock returns a clock whose fake time is drawn from a generator with
// the given seed.
func NewClock(seed uint32) *Clock {
	c := &Clock{seed: seed}
	c.Setup()
	return c
}

// Setup implements the Applet interface. It restarts the fake time
// sequence.
func (c *Clock) Setup() error {
	c.rng = NewXorShift32(c.seed)
	c.millis = 0
	c.updated = 0
	c.started = false
	c.dots = false
	c.now = TimeInfo{}
	return nil
}

// Now returns the time currently shown.
func (c *Clock) Now() TimeInfo {
	return c.now
}

// Loop implements the Applet interface.
func (c *Clock) Loop(cv *jadraw.Canvas, dt float64, in Input) {
	if dt > 0 {
		c.millis += uint64(dt * 1000)
	}
	if !c.started || c.millis-c.updated > clockUpdateInterval {
		c.started = true
		c.updated = c.millis
		c.now = TimeInfo{
			Month:  1 + c.rng.Intn(12),
			Day:    1 + c.rng.Intn(31),
			Hour:   c.rng.Intn(24),
			Minute: c.rng.Intn(60),
			Second: c.rng.Intn(60),
		}
		c.dots = !c.dots
	}

	sep := ' '
	if c.dots {
		sep = ':'
	}
	text := fmt.Sprintf("%02d%c%02d", c.now.Hour, sep, c.now.Minute)
	hue := float64(c.now.Hour%12) / 12

	cv.Clear(jadraw.Black)
	cv.DrawTextAliased(text, 8, 8, 2.5, jadraw.HSV(hue, 0.6, 1), jadraw.ModeOpaque)
}

// Name implements the Applet interface.
func (c *Clock) Name() string {
	return "Simple Clock"
}
