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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jadraw/testcases"
)

// vectorSkip lists vector cases which x/image/vector cannot reproduce:
// either the even-odd rule and the nonzero winding rule give different
// shapes, or the geometry extends far beyond the canvas.
var vectorSkip = map[string]bool{
	"polygon_star":                  true,
	"subpath_overlapping_rect":      true,
	"curve_cubic_loop":              true,
	"polygon_clipped":               true,
	"precision_large_coord_clipped": true,
	"large_large_clipped":           true,
}

func TestRenderExampleOpaque(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				c, err := New(tc.Width, tc.Height)
				if err != nil {
					t.Fatal(err)
				}
				RenderExample(tc, c)

				for i, p := range c.Pix() {
					if p.A() != 0xFF {
						t.Fatalf("pixel (%d,%d) has alpha %d",
							i%tc.Width, i/tc.Width, p.A())
					}
				}
			})
		}
	}
}

// TestRenderExampleReuse checks that drawing onto a reused canvas, whose
// scratch buffers are already in use, gives the same result as drawing
// onto a fresh one.
func TestRenderExampleReuse(t *testing.T) {
	shared := map[image.Point]*Canvas{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				size := image.Pt(tc.Width, tc.Height)
				c := shared[size]
				if c == nil {
					c, _ = New(tc.Width, tc.Height)
					shared[size] = c
				}
				fresh, _ := New(tc.Width, tc.Height)

				RenderExample(tc, c)
				RenderExample(tc, fresh)
				if !slices.Equal(c.Pix(), fresh.Pix()) {
					t.Error("reused canvas differs from fresh canvas")
				}
			})
		}
	}
}

// TestAgainstVector compares the polygon and path fills with the area
// coverage computed by x/image/vector. The two cannot agree exactly, since
// one samples and the other integrates, but the total coverage must be
// close and no pixel may be far off.
func TestAgainstVector(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if !tc.IsVector() || vectorSkip[name] {
				continue
			}
			t.Run(name, func(t *testing.T) {
				actual := renderMask(tc)
				expected := renderVectorMask(tc)
				if err := compareCoverage(name, expected, actual); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestAgainstReference compares the polygon and path fills with the
// images rendered by Ghostscript. Run "go run ./testcases/genpdf" to
// create the reference images.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if !tc.IsVector() {
				continue
			}
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				actual := renderMask(tc)
				if err := compareImages(name, ref, actual); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderMask draws the polygon and path fills of tc in white on black.
func renderMask(tc testcases.TestCase) *image.Gray {
	c, err := New(tc.Width, tc.Height)
	if err != nil {
		panic(err)
	}
	c.Clear(Black)
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Polygon:
			c.FillPolygon(op.Points, White, ModeOpaque)
		case testcases.Fill:
			c.FillPath(op.Path, op.CTM, White, ModeOpaque)
		}
	}

	img := image.NewGray(c.Bounds())
	for i, p := range c.Pix() {
		img.Pix[i] = p.R()
	}
	return img
}

// renderVectorMask draws the polygon and path fills of tc using
// x/image/vector. Coordinates are shifted by half a pixel, so that pixel
// centres correspond to the integer sample positions of the canvas.
func renderVectorMask(tc testcases.TestCase) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	for _, op := range tc.Ops {
		r := vector.NewRasterizer(tc.Width, tc.Height)
		r.DrawOp = draw.Over

		m := matrix.Identity
		var p *path.Data
		switch op := op.(type) {
		case testcases.Polygon:
			if len(op.Points) < 3 {
				continue
			}
			p = &path.Data{}
			p = p.MoveTo(op.Points[0])
			for _, q := range op.Points[1:] {
				p = p.LineTo(q)
			}
			p = p.Close()
		case testcases.Fill:
			p = op.Path
			if op.CTM != (matrix.Matrix{}) {
				m = op.CTM
			}
		default:
			continue
		}

		tr := func(v vec.Vec2) (float32, float32) {
			x := m[0]*v.X + m[2]*v.Y + m[4] + 0.5
			y := m[1]*v.X + m[3]*v.Y + m[5] + 0.5
			return float32(x), float32(y)
		}
		open := false
		for cmd, pts := range p.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				if open {
					r.ClosePath()
				}
				r.MoveTo(tr(pts[0]))
				open = true
			case path.CmdLineTo:
				r.LineTo(tr(pts[0]))
			case path.CmdQuadTo:
				x1, y1 := tr(pts[0])
				x2, y2 := tr(pts[1])
				r.QuadTo(x1, y1, x2, y2)
			case path.CmdCubeTo:
				x1, y1 := tr(pts[0])
				x2, y2 := tr(pts[1])
				x3, y3 := tr(pts[2])
				r.CubeTo(x1, y1, x2, y2, x3, y3)
			case path.CmdClose:
				r.ClosePath()
				open = false
			}
		}
		if open {
			r.ClosePath()
		}

		r.Draw(dst, dst.Bounds(), image.White, image.Point{})
	}
	return dst
}

func compareCoverage(name string, expected, actual *image.Gray) error {
	const maxOutlierPercent = 2

	var sumE, sumA, edge int
	outliers := 0
	for i := range expected.Pix {
		e, a := int(expected.Pix[i]), int(actual.Pix[i])
		sumE += e
		sumA += a
		if e != 0 && e != 255 {
			edge++
		}
		if abs(e-a) > 192 {
			outliers++
		}
	}

	var err error
	// Each partially covered pixel may be off by at most one pixel worth
	// of coverage; on average the errors cancel.
	if d := abs(sumE - sumA); d > 255*(sumE/255*3/100+edge/4+2) {
		err = fmt.Errorf("total coverage %d, expected %d", sumA, sumE)
	} else if maxAllowed := len(expected.Pix)*maxOutlierPercent/100 + 2; outliers > maxAllowed {
		err = fmt.Errorf("%d pixels differ by >192 (max allowed: %d)", outliers, maxAllowed)
	}
	if err != nil {
		writeDiffImage(name, expected, actual)
	}
	return err
}

func loadGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray.SetGray(x, y, c)
		}
	}
	return gray, nil
}

func compareImages(name string, expected, actual *image.Gray) error {
	const maxDiffPercent = 1

	if expected.Bounds() != actual.Bounds() {
		return fmt.Errorf("size mismatch: %v vs %v", expected.Bounds(), actual.Bounds())
	}

	total := len(expected.Pix)
	diffCount := 0
	for i := range total {
		if abs(int(expected.Pix[i])-int(actual.Pix[i])) > 128 {
			diffCount++
		}
	}

	maxAllowed := total*maxDiffPercent/100 + 2
	if diffCount > 0 {
		writeDiffImage(name, expected, actual)
	}
	if diffCount > maxAllowed {
		return fmt.Errorf("%d pixels differ (max allowed: %d)", diffCount, maxAllowed)
	}
	return nil
}

func writeDiffImage(name string, expected, actual *image.Gray) {
	os.MkdirAll("debug", 0755)

	b := expected.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.RGBA{
				R: expected.GrayAt(x, y).Y, // expected in red
				G: actual.GrayAt(x, y).Y,   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
