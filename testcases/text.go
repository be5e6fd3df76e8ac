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

var textCases = []TestCase{
	{
		Name:       "digits",
		Width:      64,
		Height:     16,
		Background: black,
		Ops: []Operation{
			Text{Text: "0123456789", X: 1, Y: 1, Scale: 1, Color: white, Mode: Blend},
		},
	},
	{
		Name:       "alphabet",
		Width:      128,
		Height:     24,
		Background: black,
		Ops: []Operation{
			Text{Text: "ABCDEFGHIJKLM\nNOPQRSTUVWXYZ", X: 1, Y: 1, Scale: 1.5, Color: white, Mode: Blend},
		},
	},
	{
		Name:       "punctuation",
		Width:      128,
		Height:     16,
		Background: black,
		Ops: []Operation{
			Text{Text: `!"#$%&'()*+,-./:;<=>?@[\]^_{|}~`, X: 1, Y: 1, Scale: 1, Color: yellow, Mode: Blend},
		},
	},
	{
		Name:       "scaled",
		Width:      96,
		Height:     40,
		Background: navy,
		Ops: []Operation{
			Text{Text: "12:34", X: 8, Y: 8, Scale: 2.5, Color: white, Mode: Blend},
		},
	},
	{
		Name:       "carriage_return",
		Width:      48,
		Height:     16,
		Background: black,
		Ops: []Operation{
			Text{Text: "AAA\rB", X: 2, Y: 2, Scale: 1, Color: green, Mode: Additive},
			Text{Text: "AAA\rB", X: 2, Y: 2, Scale: 1, Color: red, Mode: Additive},
		},
	},
}
