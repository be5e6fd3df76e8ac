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
	"testing"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/jadraw"
)

type cell struct {
	ch    rune
	style tcell.Style
}

type stubScreen struct {
	w, h  int
	cells map[[2]int]cell
}

func (s *stubScreen) Size() (int, int) { return s.w, s.h }

func (s *stubScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = cell{primary, style}
}

func TestDrawCanvas(t *testing.T) {
	c, _ := jadraw.New(3, 3)
	c.Clear(jadraw.Black)
	c.SetPixel(0, 0, jadraw.Red)
	c.SetPixel(0, 1, jadraw.Blue)
	c.SetPixel(2, 2, jadraw.White)

	s := &stubScreen{w: 80, h: 24, cells: map[[2]int]cell{}}
	drawCanvas(s, c)

	if len(s.cells) != 6 {
		t.Fatalf("%d cells drawn, expected 6", len(s.cells))
	}
	check := func(x, y int, fg, bg tcell.Color) {
		t.Helper()
		got := s.cells[[2]int{x, y}]
		if got.ch != upperHalfBlock {
			t.Errorf("cell (%d,%d): rune %q", x, y, got.ch)
		}
		gotFg, gotBg, _ := got.style.Decompose()
		if gotFg != fg || gotBg != bg {
			t.Errorf("cell (%d,%d): colors %v/%v, expected %v/%v", x, y, gotFg, gotBg, fg, bg)
		}
	}
	black := tcell.NewRGBColor(0, 0, 0)
	check(0, 0, tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 0, 255))
	check(1, 0, black, black)
	check(2, 1, tcell.NewRGBColor(255, 255, 255), tcell.ColorBlack)
}

func TestDrawCanvasClipped(t *testing.T) {
	c, _ := jadraw.New(10, 10)
	s := &stubScreen{w: 4, h: 2, cells: map[[2]int]cell{}}
	drawCanvas(s, c)
	if len(s.cells) != 8 {
		t.Errorf("%d cells drawn, expected 8", len(s.cells))
	}
}

func TestCellColor(t *testing.T) {
	if got, want := cellColor(jadraw.RGBA(255, 100, 0, 0)), tcell.NewRGBColor(0, 0, 0); got != want {
		t.Errorf("transparent: %v, expected %v", got, want)
	}
	if got, want := cellColor(jadraw.RGBA(255, 100, 0, 255)), tcell.NewRGBColor(255, 100, 0); got != want {
		t.Errorf("opaque: %v, expected %v", got, want)
	}
}

func TestKeyInput(t *testing.T) {
	cases := []struct {
		ev      *tcell.EventKey
		rot     int
		pressed bool
		quit    bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), -knobStep, false, false},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), knobStep, false, false},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, true, false},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), 0, true, false},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 0, false, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, false, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false, false},
	}
	for i, tc := range cases {
		in, quit := keyInput(tc.ev)
		if in.Rotation != tc.rot || in.Pressed != tc.pressed || quit != tc.quit {
			t.Errorf("%d: got %+v quit=%t", i, in, quit)
		}
	}
}
