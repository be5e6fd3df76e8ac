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

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Canvas is a fixed-size framebuffer of packed RGBA pixels.
// The pixels are stored in row-major order, one Color per pixel.
//
// All drawing methods clip silently against the canvas bounds. Scratch
// buffers used by the polygon fillers grow as needed but never shrink, so a
// canvas that is reused frame after frame does not allocate.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []Color

	// scratch buffers for polygon filling
	xs   []float64  // scanline intersections
	pts  []vec.Vec2 // flattened path vertices
	subs []int      // start index of each flattened subpath in pts
}

// New allocates a canvas of the given size, filled with transparent black.
// The size cannot be changed later.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	if int64(width)*int64(height) > math.MaxInt32 {
		return nil, fmt.Errorf("%dx%d: too many pixels: %w", width, height, ErrInvalidSize)
	}
	Logger().Debug("canvas created", "width", width, "height", height)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pix returns the underlying pixel slice. Pixel (x, y) is at index
// y*Width()+x. Writes to the slice are visible on the canvas.
func (c *Canvas) Pix() []Color { return c.pix }

// Clear fills every pixel with col. The alpha channel is forced to 255, so
// a cleared canvas is always fully opaque.
func (c *Canvas) Clear(col Color) {
	col = col.WithAlpha(0xFF)
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Pixel returns the color at (x, y), or Transparent outside the canvas.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	return c.pix[y*c.width+x]
}

// SetPixel stores col at (x, y) without blending.
// Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y).NRGBA()
}

// WriteRGBA copies the canvas into dst as straight-alpha R, G, B, A bytes,
// 4*Width() bytes per row. dst must hold at least 4*Width()*Height() bytes.
func (c *Canvas) WriteRGBA(dst []byte) {
	dst = dst[:4*len(c.pix)]
	for i, p := range c.pix {
		d := dst[4*i : 4*i+4 : 4*i+4]
		d[0] = p.R()
		d[1] = p.G()
		d[2] = p.B()
		d[3] = p.A()
	}
}

// WritePremultipliedRGBA is like WriteRGBA, but scales the color channels
// by alpha, as expected by image.RGBA and most GPU texture uploads.
func (c *Canvas) WritePremultipliedRGBA(dst []byte) {
	dst = dst[:4*len(c.pix)]
	for i, p := range c.pix {
		d := dst[4*i : 4*i+4 : 4*i+4]
		a := uint32(p.A())
		if a == 0xFF {
			d[0], d[1], d[2], d[3] = p.R(), p.G(), p.B(), 0xFF
			continue
		}
		d[0] = uint8(uint32(p.R()) * a / 0xFF)
		d[1] = uint8(uint32(p.G()) * a / 0xFF)
		d[2] = uint8(uint32(p.B()) * a / 0xFF)
		d[3] = uint8(a)
	}
}

// NRGBA returns a copy of the canvas as an *image.NRGBA.
func (c *Canvas) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	c.WriteRGBA(img.Pix)
	return img
}
