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

// Command jadraw-snap renders an applet or a test case without a display
// and writes the final frame as a PNG image.
//
// Applets are run for a fixed number of frames at a fixed frame rate,
// with no input, so that the output is reproducible.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/term"

	"seehuhn.de/go/jadraw"
	"seehuhn.de/go/jadraw/applet"
	"seehuhn.de/go/jadraw/internal/cli"
)

var errTerminal = errors.New("refusing to write PNG data to a terminal")

func main() {
	appletName := flag.String("applet", "hello", "name of a built-in applet")
	script := flag.String("script", "", "run the Lua applet in this file")
	size := flag.String("size", cli.DefaultSize, "canvas size, WxH")
	frames := flag.Int("frames", 60, "number of frames to render")
	fps := flag.Float64("fps", 30, "simulated frames per second")
	caseName := flag.String("case", "", "render the named test case instead of an applet")
	scale := flag.Int("scale", 4, "pixels per canvas pixel in the output")
	outName := flag.String("o", "-", "output file, or - for stdout")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	logger := cli.SetupLogging(*verbose)

	if *scale < 1 || *frames < 1 || !(*fps > 0) {
		cli.Fatal("jadraw-snap", fmt.Errorf("invalid scale %d, frames %d or fps %g", *scale, *frames, *fps))
	}

	var c *jadraw.Canvas
	if *caseName != "" {
		tc, err := cli.FindCase(*caseName)
		if err != nil {
			cli.Fatal("jadraw-snap", err)
		}
		c, err = jadraw.New(tc.Width, tc.Height)
		if err != nil {
			cli.Fatal("jadraw-snap", err)
		}
		jadraw.RenderExample(tc, c)
	} else {
		w, h, err := cli.ParseSize(*size)
		if err != nil {
			cli.Fatal("jadraw-snap", err)
		}
		c, err = jadraw.New(w, h)
		if err != nil {
			cli.Fatal("jadraw-snap", err)
		}
		a, done, err := cli.OpenApplet(*appletName, *script)
		if err != nil {
			cli.Fatal("jadraw-snap", err)
		}
		err = run(a, c, *frames, *fps)
		done()
		if err != nil {
			cli.Fatal("jadraw-snap", err)
		}
		logger.Debug("applet rendered", "applet", a.Name(), "frames", *frames)
	}

	img := upscale(c, *scale)
	if err := writePNG(*outName, img); err != nil {
		cli.Fatal("jadraw-snap", err)
	}
}

// run calls Setup and then renders the given number of frames.
func run(a applet.Applet, c *jadraw.Canvas, frames int, fps float64) error {
	if err := a.Setup(); err != nil {
		return err
	}
	dt := 1 / fps
	for range frames {
		a.Loop(c, dt, applet.Input{})
	}
	return nil
}

// upscale enlarges the canvas by an integer factor, without smoothing.
func upscale(c *jadraw.Canvas, scale int) image.Image {
	src := c.NRGBA()
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writePNG(name string, img image.Image) error {
	if name == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		return encode(os.Stdout, img)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
