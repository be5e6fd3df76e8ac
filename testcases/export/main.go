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

// Command export writes the test case definitions to JSON, for use by
// external reference tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jadraw/testcases"
)

func main() {
	outName := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := write(*outName, out); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func write(name string, v any) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonTestCase struct {
	Name       string   `json:"name"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Background string   `json:"background"`
	Ops        []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op         string        `json:"op"`
	Mode       string        `json:"mode,omitempty"`
	Color      string        `json:"color,omitempty"`
	Points     [][]float64   `json:"points,omitempty"`
	Path       []jsonSegment `json:"path,omitempty"`
	CTM        []float64     `json:"ctm,omitempty"`
	Thickness  int           `json:"thickness,omitempty"`
	Text       string        `json:"text,omitempty"`
	Scale      float64       `json:"scale,omitempty"`
	Brightness float64       `json:"brightness,omitempty"`
	Millis     uint64        `json:"millis,omitempty"`
	Width      int           `json:"width,omitempty"`
	Height     int           `json:"height,omitempty"`
	Palette    []string      `json:"palette,omitempty"`
	Pixels     []uint8       `json:"pixels,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Background: hexColor(tc.Background),
	}
	for _, op := range tc.Ops {
		jtc.Ops = append(jtc.Ops, opToJSON(op))
	}
	return jtc
}

func opToJSON(op testcases.Operation) jsonOp {
	switch op := op.(type) {
	case testcases.Line:
		return jsonOp{
			Op:        "line",
			Mode:      op.Mode.String(),
			Color:     hexColor(op.Color),
			Points:    [][]float64{{float64(op.X0), float64(op.Y0)}, {float64(op.X1), float64(op.Y1)}},
			Thickness: op.Thickness,
		}
	case testcases.LineAA:
		return jsonOp{
			Op:     "line_aa",
			Mode:   op.Mode.String(),
			Color:  hexColor(op.Color),
			Points: pointsToJSON([]vec.Vec2{op.A, op.B}),
		}
	case testcases.Polygon:
		return jsonOp{
			Op:     "polygon",
			Mode:   op.Mode.String(),
			Color:  hexColor(op.Color),
			Points: pointsToJSON(op.Points),
		}
	case testcases.Fill:
		j := jsonOp{
			Op:    "fill",
			Mode:  op.Mode.String(),
			Color: hexColor(op.Color),
			Path:  pathToJSON(op.Path.Iter()),
		}
		if op.CTM != (matrix.Matrix{}) {
			j.CTM = op.CTM[:]
		}
		return j
	case testcases.Sprite:
		b := op.Image.Bounds()
		j := jsonOp{
			Op:     "sprite",
			Mode:   op.Mode.String(),
			Points: [][]float64{{float64(op.X), float64(op.Y)}},
			Width:  b.Dx(),
			Height: b.Dy(),
		}
		for _, c := range op.Image.Palette {
			j.Palette = append(j.Palette, hexColor(color.NRGBAModel.Convert(c).(color.NRGBA)))
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := op.Image.PixOffset(b.Min.X, y)
			j.Pixels = append(j.Pixels, op.Image.Pix[i:i+b.Dx()]...)
		}
		return j
	case testcases.Text:
		return jsonOp{
			Op:     "text",
			Mode:   op.Mode.String(),
			Color:  hexColor(op.Color),
			Points: [][]float64{{float64(op.X), float64(op.Y)}},
			Text:   op.Text,
			Scale:  op.Scale,
		}
	case testcases.Dither:
		j := jsonOp{
			Op:         "dither",
			Brightness: op.Brightness,
			Millis:     op.Millis,
		}
		for _, v := range op.V {
			j.Points = append(j.Points, []float64{float64(v.X), float64(v.Y)})
		}
		return j
	default:
		panic(fmt.Sprintf("unexpected operation %T", op))
	}
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: pointsToJSON(pts)}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		segs = append(segs, seg)
	}
	return segs
}
