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
	"errors"
	"slices"
	"testing"

	"seehuhn.de/go/jadraw"
)

func TestNames(t *testing.T) {
	want := []string{"clock", "hello", "shapes", "snake", "space"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, expected %v", got, want)
	}
}

func TestLookupUnknown(t *testing.T) {
	a, err := Lookup("no-such-applet")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
	if a != nil {
		t.Error("expected nil applet")
	}
}

// TestBuiltinApplets runs every built-in applet for a few seconds of
// simulated time, with some input, on canvases of different sizes.
func TestBuiltinApplets(t *testing.T) {
	sizes := [][2]int{{128, 64}, {32, 32}, {7, 3}}
	for _, name := range Names() {
		for _, size := range sizes {
			a, err := Lookup(name)
			if err != nil {
				t.Fatal(err)
			}
			if err := a.Setup(); err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if a.Name() == "" {
				t.Errorf("%s: empty name", name)
			}

			c, _ := jadraw.New(size[0], size[1])
			for frame := range 200 {
				in := Input{
					Rotation: []int{0, 20, -20, 0}[frame/50],
					Pressed:  frame%60 < 5,
				}
				a.Loop(c, 1.0/60, in)
			}
			for i, p := range c.Pix() {
				if p.A() != 0xFF {
					t.Fatalf("%s %dx%d: pixel %d has alpha %d",
						name, size[0], size[1], i, p.A())
				}
			}
		}
	}
}

func TestClockDeterministic(t *testing.T) {
	a := NewClock(42)
	b := NewClock(42)
	ca, _ := jadraw.New(128, 64)
	cb, _ := jadraw.New(128, 64)

	for range 300 {
		a.Loop(ca, 0.02, Input{})
		b.Loop(cb, 0.02, Input{})
	}
	if a.Now() != b.Now() {
		t.Errorf("clocks differ: %v vs %v", a.Now(), b.Now())
	}
	if !slices.Equal(ca.Pix(), cb.Pix()) {
		t.Error("frames differ")
	}

	// Setup restarts the sequence.
	first := NewClock(42)
	first.Loop(ca, 0.02, Input{})
	a.Setup()
	a.Loop(ca, 0.02, Input{})
	if a.Now() != first.Now() {
		t.Errorf("after Setup: %v, expected %v", a.Now(), first.Now())
	}
}

func TestClockUpdates(t *testing.T) {
	c := NewClock(7)
	cv, _ := jadraw.New(64, 32)

	c.Loop(cv, 0, Input{})
	t0 := c.Now()
	if t0.Month < 1 || t0.Month > 12 || t0.Day < 1 || t0.Day > 31 ||
		t0.Hour < 0 || t0.Hour > 23 || t0.Minute < 0 || t0.Minute > 59 {
		t.Errorf("invalid time %+v", t0)
	}

	// no update within one second
	for range 9 {
		c.Loop(cv, 0.1, Input{})
	}
	if c.Now() != t0 {
		t.Error("time changed within one second")
	}
	c.Loop(cv, 0.2, Input{})
	c.Loop(cv, 0.2, Input{})
	if c.Now() == t0 {
		t.Error("time did not change after one second")
	}
}

func TestSnake(t *testing.T) {
	s := NewSnake()
	c, _ := jadraw.New(128, 64)

	if s.Len() != initialLength {
		t.Fatalf("initial length %d", s.Len())
	}

	// straight ahead for one second
	for range 10 {
		s.Loop(c, 0.1, Input{})
	}
	if h := s.Head(); h.X < 0.24 || h.X > 0.26 || h.Y != 0 {
		t.Errorf("head at %v, expected (0.25, 0)", h)
	}

	// segments keep their distance
	for i := 1; i < s.Len(); i++ {
		d := s.segments[i-1].Sub(s.segments[i]).Length()
		if d > segmentSpacing+1e-9 {
			t.Errorf("segments %d and %d are %g apart", i-1, i, d)
		}
	}

	// pressing grows the snake once per press
	s.Loop(c, 0.1, Input{Pressed: true})
	s.Loop(c, 0.1, Input{Pressed: true})
	s.Loop(c, 0.1, Input{})
	s.Loop(c, 0.1, Input{Pressed: true})
	if s.Len() != initialLength+2 {
		t.Errorf("length %d, expected %d", s.Len(), initialLength+2)
	}

	if c.Pixel(int((s.Head().X+worldX)/(2*worldX)*127), int((s.Head().Y+worldY)/(2*worldY)*63)) != jadraw.White {
		t.Error("head not drawn")
	}
}

func TestShapesModes(t *testing.T) {
	s := NewShapes()
	if err := s.Setup(); err != nil {
		t.Fatal(err)
	}
	c, _ := jadraw.New(128, 64)

	for i, want := range []int{1, 1, 2, 2, 0} {
		s.Loop(c, 0.01, Input{Pressed: i%2 == 0})
		if s.mode != want {
			t.Errorf("frame %d: mode %d, expected %d", i, s.mode, want)
		}
	}

	s.Loop(c, 0.01, Input{Rotation: 1000})
	if s.speed != maxSpinSpeed {
		t.Errorf("speed %g, expected %d", s.speed, maxSpinSpeed)
	}
}
