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

// Command genpdf generates reference images for the polygon and path tests.
// It writes the vector test cases as PDF files and renders them to PNGs
// using Ghostscript, without anti-aliasing.
//
// Only the geometry is exported: every shape is filled white on black with
// the even-odd rule, whatever its color and mode.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/jadraw/testcases"
)

func main() {
	refDir := flag.String("o", "testdata/reference", "output directory")
	skipPNG := flag.Bool("pdf-only", false, "do not run Ghostscript")
	flag.Parse()

	if err := run(*refDir, !*skipPNG); err != nil {
		fmt.Fprintln(os.Stderr, "genpdf:", err)
		os.Exit(1)
	}
}

func run(refDir string, png bool) error {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if !tc.IsVector() {
				continue
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Info("wrote", "file", pdfPath)

			if !png {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// The canvas samples pixels at integer coordinates, Ghostscript at
	// pixel centres.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})

	page.SetFillColor(color.DeviceGray(1))

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Polygon:
			if len(op.Points) < 3 {
				continue
			}
			page.MoveTo(op.Points[0].X, op.Points[0].Y)
			for _, p := range op.Points[1:] {
				page.LineTo(p.X, p.Y)
			}
			page.ClosePath()
			page.FillEvenOdd()

		case testcases.Fill:
			m := op.CTM
			if m == (matrix.Matrix{}) {
				m = matrix.Identity
			}
			// PDF has no quadratic curves
			for cmd, pts := range op.Path.Iter().ToCubic() {
				var q [3]vec.Vec2
				for i, p := range pts {
					q[i] = vec.Vec2{
						X: m[0]*p.X + m[2]*p.Y + m[4],
						Y: m[1]*p.X + m[3]*p.Y + m[5],
					}
				}
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(q[0].X, q[0].Y)
				case path.CmdLineTo:
					page.LineTo(q[0].X, q[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(q[0].X, q[0].Y, q[1].X, q[1].Y, q[2].X, q[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.FillEvenOdd()
		}
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, to match the scanline filler
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
