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

package testcases

import (
	"image"
	"image/color"
)

var spriteCases = []TestCase{
	{
		Name:       "checker",
		Width:      16,
		Height:     16,
		Background: navy,
		Ops: []Operation{
			Sprite{X: 2, Y: 3, Image: CheckerSprite()},
		},
	},
	{
		Name:       "clipped_corners",
		Width:      16,
		Height:     16,
		Background: navy,
		Ops: []Operation{
			Sprite{X: -2, Y: -2, Image: CheckerSprite()},
			Sprite{X: 14, Y: 13, Image: CheckerSprite()},
		},
	},
	{
		Name:       "outside",
		Width:      16,
		Height:     16,
		Background: navy,
		Ops: []Operation{
			Sprite{X: 16, Y: 0, Image: CheckerSprite()},
			Sprite{X: 0, Y: -4, Image: CheckerSprite()},
		},
	},
	{
		Name:       "blend_over_lines",
		Width:      16,
		Height:     16,
		Background: black,
		Ops: []Operation{
			Line{X0: 0, Y0: 6, X1: 15, Y1: 6, Thickness: 3, Color: yellow},
			Sprite{X: 6, Y: 4, Image: GhostSprite(), Mode: Blend},
		},
	},
}

// CheckerSprite returns a 4×4 sprite with five palette entries. The last
// entry is fully transparent and is used by the two bottom right pixels.
func CheckerSprite() *image.Paletted {
	return &image.Paletted{
		Pix: []uint8{
			0, 0, 1, 1,
			2, 2, 2, 2,
			3, 0, 0, 0,
			3, 3, 4, 4,
		},
		Stride: 4,
		Rect:   image.Rect(0, 0, 4, 4),
		Palette: color.Palette{
			color.NRGBA{0xff, 0xff, 0xff, 0xff},
			color.NRGBA{0xff, 0x00, 0x0c, 0xff},
			color.NRGBA{0x00, 0x2e, 0xff, 0xff},
			color.NRGBA{0x00, 0x00, 0x00, 0xff},
			color.NRGBA{0x00, 0xff, 0x00, 0x00},
		},
	}
}

// GhostSprite returns a 5×5 sprite with a translucent body.
func GhostSprite() *image.Paletted {
	return &image.Paletted{
		Pix: []uint8{
			0, 1, 1, 1, 0,
			1, 2, 1, 2, 1,
			1, 1, 1, 1, 1,
			1, 1, 1, 1, 1,
			1, 0, 1, 0, 1,
		},
		Stride: 5,
		Rect:   image.Rect(0, 0, 5, 5),
		Palette: color.Palette{
			color.NRGBA{0, 0, 0, 0},
			color.NRGBA{0xc0, 0xc0, 0xff, 0x80},
			color.NRGBA{0x00, 0x00, 0x40, 0xff},
		},
	}
}
