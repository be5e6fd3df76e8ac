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

// Package applet defines the interface of interactive programs which draw
// onto a [jadraw.Canvas] once per frame, and provides some built-in
// demonstration applets.
//
// A host (a window, a terminal or a real display) owns the canvas and the
// render loop. It calls Setup once and then Loop for every frame.
package applet

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/jadraw"
)

// Input holds the state of the controls for one frame.
type Input struct {
	// Rotation is the amount the knob was turned since the last frame.
	// Positive values turn right.
	Rotation int

	// Pressed is true while the button is held down.
	Pressed bool
}

// Applet is a program which draws onto a canvas once per frame.
type Applet interface {
	// Setup is called once, before the first call to Loop.
	Setup() error

	// Loop draws one frame. dt is the time since the previous frame, in
	// seconds.
	Loop(c *jadraw.Canvas, dt float64, in Input)

	// Name returns a human readable name.
	Name() string
}

// ErrUnknown is returned by Lookup for names which are not registered.
var ErrUnknown = errors.New("applet: unknown applet")

var builtin = map[string]func() Applet{
	"clock":  func() Applet { return NewClock(1) },
	"hello":  func() Applet { return NewHello() },
	"shapes": func() Applet { return NewShapes() },
	"snake":  func() Applet { return NewSnake() },
	"space":  func() Applet { return NewSpace(1) },
}

// Lookup returns a new instance of the built-in applet with the given name.
func Lookup(name string) (Applet, error) {
	f, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknown)
	}
	return f(), nil
}

// Names returns the names of the built-in applets, in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(builtin))
}
