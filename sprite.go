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
)

// MaxPaletteSize is the maximum number of colors in a sprite palette.
const MaxPaletteSize = 256

// Sprite is an immutable paletted bitmap. Palette entries with alpha zero
// are transparent.
//
// Sprites are validated on construction, so that every pixel index is
// guaranteed to be a valid palette index.
type Sprite struct {
	width   int
	height  int
	palette []Color
	pix     []uint8
}

// NewSprite returns a w×h sprite. The pixels are given in row-major order
// as indices into palette. The slices are copied.
//
// An error wrapping ErrInvalidSprite is returned if the size is not
// positive, if len(pix) != w*h, if the palette is empty or has more than
// MaxPaletteSize entries, or if a pixel index is out of range.
func NewSprite(w, h int, palette []Color, pix []uint8) (*Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d sprite: %w", w, h, ErrInvalidSprite)
	}
	if int64(w)*int64(h) != int64(len(pix)) {
		return nil, fmt.Errorf("%dx%d sprite with %d pixels: %w",
			w, h, len(pix), ErrInvalidSprite)
	}
	if len(palette) == 0 || len(palette) > MaxPaletteSize {
		return nil, fmt.Errorf("sprite palette has %d colors: %w",
			len(palette), ErrInvalidSprite)
	}
	for i, idx := range pix {
		if int(idx) >= len(palette) {
			Logger().Debug("sprite rejected",
				"x", i%w, "y", i/w, "index", idx, "palette", len(palette))
			return nil, fmt.Errorf("sprite pixel (%d,%d): index %d out of range: %w",
				i%w, i/w, idx, ErrInvalidSprite)
		}
	}

	return &Sprite{
		width:   w,
		height:  h,
		palette: append([]Color(nil), palette...),
		pix:     append([]uint8(nil), pix...),
	}, nil
}

// SpriteFromPaletted converts a paletted image into a sprite.
func SpriteFromPaletted(img *image.Paletted) (*Sprite, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d image: %w", w, h, ErrInvalidSprite)
	}

	palette := make([]Color, len(img.Palette))
	for i, col := range img.Palette {
		palette[i] = FromColor(col)
	}
	pix := make([]uint8, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		pix = append(pix, img.Pix[i:i+w]...)
	}
	return NewSprite(w, h, palette, pix)
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.width }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.height }

// Palette returns a copy of the sprite palette.
func (s *Sprite) Palette() []Color {
	return append([]Color(nil), s.palette...)
}

// At returns the color of sprite pixel (x, y), or Transparent outside the
// sprite.
func (s *Sprite) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	return s.palette[s.pix[y*s.width+x]]
}

// DrawSprite composites s onto the canvas with its top-left corner at
// (x, y). Transparent palette entries are skipped and the remaining pixels
// are drawn at full intensity. A nil sprite draws nothing.
func (c *Canvas) DrawSprite(x, y int, s *Sprite, mode DrawMode) {
	if s == nil || s.width <= 0 || s.height <= 0 || len(s.pix) == 0 {
		return
	}

	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+s.width, c.width)
	y1 := min(y+s.height, c.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for cy := y0; cy < y1; cy++ {
		src := s.pix[(cy-y)*s.width:]
		row := cy * c.width
		for cx := x0; cx < x1; cx++ {
			col := s.palette[src[cx-x]]
			if col.A() == 0 {
				continue
			}
			c.BlendUnchecked(row+cx, col, 1, mode)
		}
	}
}
