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

// Package testcases is a catalogue of drawing scenes, shared by the tests,
// the benchmarks and the reference tools.
//
// The package only describes scenes; it does not depend on the rasterizer.
package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single drawing scene.
type TestCase struct {
	Name       string      // lowercase a-z, 0-9 and _ only
	Width      int         // canvas width in pixels
	Height     int         // canvas height in pixels
	Background color.NRGBA // the canvas is cleared to this color first
	Ops        []Operation // drawn in order
}

// Operation is a single drawing call.
type Operation interface {
	isOperation()
}

// Mode is the compositing mode of an operation.
type Mode int

const (
	Opaque Mode = iota
	Blend
	Additive
)

func (m Mode) String() string {
	switch m {
	case Opaque:
		return "opaque"
	case Blend:
		return "blend"
	case Additive:
		return "additive"
	default:
		return "unknown"
	}
}

// Line is an aliased line between pixel centres.
type Line struct {
	X0, Y0, X1, Y1 int
	Thickness      int
	Color          color.NRGBA
	Mode           Mode
}

func (Line) isOperation() {}

// LineAA is an anti-aliased line.
type LineAA struct {
	A, B  vec.Vec2
	Color color.NRGBA
	Mode  Mode
}

func (LineAA) isOperation() {}

// Polygon is a filled polygon.
type Polygon struct {
	Points []vec.Vec2
	Color  color.NRGBA
	Mode   Mode
}

func (Polygon) isOperation() {}

// Fill is a filled path, transformed by CTM.
type Fill struct {
	Path  *path.Data
	CTM   matrix.Matrix // zero-value means no transform
	Color color.NRGBA
	Mode  Mode
}

func (Fill) isOperation() {}

// Sprite draws a paletted image with its top-left corner at (X, Y).
type Sprite struct {
	X, Y  int
	Image *image.Paletted
	Mode  Mode
}

func (Sprite) isOperation() {}

// Text is a string drawn with the built-in vector font.
type Text struct {
	Text  string
	X, Y  int
	Scale float64
	Color color.NRGBA
	Mode  Mode
}

func (Text) isOperation() {}

// Dither is a black and white dithered triangle.
type Dither struct {
	V          [3]image.Point
	Brightness float64
	Millis     uint64 // clock value for the dither offset
}

func (Dither) isOperation() {}

// IsVector reports whether all operations of tc are polygon or path fills.
// Such cases can be rendered by generic vector tools for comparison.
func (tc TestCase) IsVector() bool {
	if len(tc.Ops) == 0 {
		return false
	}
	for _, op := range tc.Ops {
		switch op.(type) {
		case Polygon, Fill:
		default:
			return false
		}
	}
	return true
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

var (
	black   = color.NRGBA{0, 0, 0, 255}
	white   = color.NRGBA{255, 255, 255, 255}
	red     = color.NRGBA{255, 0, 0, 255}
	green   = color.NRGBA{0, 255, 0, 255}
	blue    = color.NRGBA{0, 0, 255, 255}
	yellow  = color.NRGBA{255, 255, 0, 255}
	navy    = color.NRGBA{0x00, 0x10, 0x30, 0xff}
	halfRed = color.NRGBA{255, 0, 0, 128}
)
