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
	"strings"
)

const (
	// GlyphHeight is the line height of the built-in font, in grid units.
	GlyphHeight = 7

	// DefaultAdvance is the advance width, in grid units, of glyphs without
	// visible points.
	DefaultAdvance = 3

	firstGlyph = 32
	lastGlyph  = 126
)

// PenPoint is a point on the glyph grid, or Lift.
type PenPoint struct {
	X, Y int8
}

// Lift is the pen point which breaks the stroke. The next point does not
// connect to the previous one.
var Lift = PenPoint{-1, -1}

// IsLift reports whether p is the Lift marker.
func (p PenPoint) IsLift() bool {
	return p == Lift
}

// Glyph is a character of the built-in vector font.
type Glyph struct {
	// Points is the pen path of the glyph. Consecutive points are joined by
	// lines, except across Lift.
	Points []PenPoint

	// Advance is the advance width in grid units.
	Advance int
}

// glyphSource gives the pen paths of the printable ASCII characters as
// pairs of grid digits "xy". A "." lifts the pen.
var glyphSource = map[rune]string{
	' ':  "",
	'!':  "10 13 . 15",
	'"':  "10 11 . 30 31",
	'#':  "10 15 . 30 35 . 01 41 . 04 44",
	'$':  "30 01 02 32 33 04 . 20 25",
	'%':  "00 01 . 05 30 . 34 35",
	'&':  "35 01 10 21 02 04 15 25 33",
	'\'': "10 11",
	'(':  "20 11 14 25",
	')':  "00 11 14 05",
	'*':  "01 23 . 21 03",
	'+':  "03 23 . 12 14",
	',':  "14 05",
	'-':  "03 23",
	'.':  "05",
	'/':  "05 20",
	'0':  "00 30 35 05 00 . 05 30",
	'1':  "01 10 15 . 05 25",
	'2':  "00 30 32 02 05 35",
	'3':  "00 30 35 05 . 02 32",
	'4':  "00 02 32 . 30 35",
	'5':  "30 00 02 22 33 34 25 05",
	'6':  "30 00 05 35 32 02",
	'7':  "00 30 35",
	'8':  "00 30 35 05 00 . 02 32",
	'9':  "32 02 00 30 35 05",
	':':  "11 . 14",
	';':  "11 . 14 05",
	'<':  "21 03 25",
	'=':  "01 31 . 04 34",
	'>':  "01 23 05",
	'?':  "00 30 32 12 13 . 15",
	'@':  "32 12 13 33 30 00 05 35",
	'A':  "05 01 10 20 31 35 . 03 33",
	'B':  "05 00 20 31 22 02 . 22 33 34 25 05",
	'C':  "30 00 05 35",
	'D':  "00 20 31 34 25 05 00",
	'E':  "30 00 05 35 . 02 22",
	'F':  "30 00 05 . 02 22",
	'G':  "30 00 05 35 33 23",
	'H':  "00 05 . 30 35 . 02 32",
	'I':  "00 20 . 10 15 . 05 25",
	'J':  "30 35 05 03",
	'K':  "00 05 . 30 02 35",
	'L':  "00 05 35",
	'M':  "05 00 22 40 45",
	'N':  "05 00 35 30",
	'O':  "00 30 35 05 00",
	'P':  "05 00 30 32 02",
	'Q':  "00 30 34 25 05 00 . 24 35",
	'R':  "05 00 30 32 02 . 12 35",
	'S':  "30 00 02 32 35 05",
	'T':  "00 20 . 10 15",
	'U':  "00 05 35 30",
	'V':  "00 15 20",
	'W':  "00 05 22 45 40",
	'X':  "00 35 . 30 05",
	'Y':  "00 12 20 . 12 15",
	'Z':  "00 30 05 35",
	'[':  "20 00 05 25",
	'\\': "00 25",
	']':  "00 20 25 05",
	'^':  "02 10 22",
	'_':  "05 35",
	'`':  "00 11",
	'{':  "20 10 12 03 14 15 25",
	'|':  "10 15",
	'}':  "00 10 12 23 14 15 05",
	'~':  "02 11 22 31",
}

var glyphs [lastGlyph - firstGlyph + 1]Glyph

func init() {
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		if 'a' <= r && r <= 'z' {
			continue
		}
		src, ok := glyphSource[r]
		if !ok {
			panic(fmt.Sprintf("jadraw: no glyph for %q", r))
		}
		g, err := parseGlyph(src)
		if err != nil {
			panic(fmt.Sprintf("jadraw: glyph %q: %v", r, err))
		}
		glyphs[r-firstGlyph] = g
	}
	for r := 'a'; r <= 'z'; r++ {
		glyphs[r-firstGlyph] = glyphs[r-'a'+'A'-firstGlyph]
	}
}

// parseGlyph decodes a pen path in the format of glyphSource.
func parseGlyph(src string) (Glyph, error) {
	var g Glyph
	maxX := -1
	for _, tok := range strings.Fields(src) {
		if tok == "." {
			g.Points = append(g.Points, Lift)
			continue
		}
		if len(tok) != 2 {
			return Glyph{}, fmt.Errorf("malformed point %q", tok)
		}
		x, okX := hexDigit(tok[0])
		y, okY := hexDigit(tok[1])
		if !okX || !okY {
			return Glyph{}, fmt.Errorf("malformed point %q", tok)
		}
		g.Points = append(g.Points, PenPoint{X: int8(x), Y: int8(y)})
		maxX = max(maxX, x)
	}
	if maxX >= 0 {
		g.Advance = maxX + 1
	} else {
		g.Advance = DefaultAdvance
	}
	return g, nil
}

func hexDigit(b byte) (int, bool) {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0'), true
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10, true
	default:
		return 0, false
	}
}

// LookupGlyph returns the glyph for r. Lowercase letters are drawn as
// capitals. Characters outside the printable ASCII range are drawn as a
// space.
func LookupGlyph(r rune) Glyph {
	if r < firstGlyph || r > lastGlyph {
		r = ' '
	}
	return glyphs[r-firstGlyph]
}
