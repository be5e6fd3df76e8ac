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
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/jadraw"
	"seehuhn.de/go/jadraw/applet"
)

func TestUpscale(t *testing.T) {
	c, _ := jadraw.New(2, 1)
	c.SetPixel(0, 0, jadraw.Red)
	c.SetPixel(1, 0, jadraw.Blue.WithAlpha(0x80))

	img := upscale(c, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds %v", b)
	}
	for y := range 3 {
		for x := range 6 {
			want := color.NRGBA{255, 0, 0, 255}
			if x >= 3 {
				want = color.NRGBA{0, 0, 255, 0x80}
			}
			got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if got != want {
				t.Errorf("(%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}

	if img := upscale(c, 1); img.Bounds().Dx() != 2 {
		t.Errorf("scale 1: bounds %v", img.Bounds())
	}
}

func TestRunReproducible(t *testing.T) {
	render := func() []jadraw.Color {
		a, err := applet.Lookup("shapes")
		if err != nil {
			t.Fatal(err)
		}
		c, _ := jadraw.New(64, 32)
		if err := run(a, c, 20, 30); err != nil {
			t.Fatal(err)
		}
		return c.Pix()
	}
	if !slices.Equal(render(), render()) {
		t.Error("two runs gave different frames")
	}
}

func TestWritePNG(t *testing.T) {
	c, _ := jadraw.New(4, 4)
	c.Clear(jadraw.Green)
	fname := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(fname, upscale(c, 2)); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("bounds %v", b)
	}
	r, g, b, a := img.At(7, 7).RGBA()
	if r != 0 || g != 0xffff || b != 0 || a != 0xffff {
		t.Errorf("pixel (7,7) = %04x %04x %04x %04x", r, g, b, a)
	}
}
