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

// Command jadraw-view shows an applet or a test case in a desktop window.
//
// The arrow keys left and right turn the knob, Z is the button.
// P pauses the applet, C or F12 copies the current frame to the clipboard
// as a PNG image, and Escape quits.
package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/jadraw"
	"seehuhn.de/go/jadraw/internal/cli"
)

func main() {
	appletName := flag.String("applet", "hello", "name of a built-in applet")
	script := flag.String("script", "", "run the Lua applet in this file")
	size := flag.String("size", cli.DefaultSize, "canvas size, WxH")
	scale := flag.Int("scale", 6, "pixels per canvas pixel")
	fps := flag.Int("fps", 60, "frames per second")
	caseName := flag.String("case", "", "show the named test case instead of an applet")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	logger := cli.SetupLogging(*verbose)

	if *scale < 1 || *fps < 1 {
		cli.Fatal("jadraw-view", fmt.Errorf("invalid scale %d or fps %d", *scale, *fps))
	}

	v := &viewer{scale: *scale}
	if *caseName != "" {
		tc, err := cli.FindCase(*caseName)
		if err != nil {
			cli.Fatal("jadraw-view", err)
		}
		c, err := jadraw.New(tc.Width, tc.Height)
		if err != nil {
			cli.Fatal("jadraw-view", err)
		}
		jadraw.RenderExample(tc, c)
		v.canvas = c
		v.title = *caseName
	} else {
		w, h, err := cli.ParseSize(*size)
		if err != nil {
			cli.Fatal("jadraw-view", err)
		}
		c, err := jadraw.New(w, h)
		if err != nil {
			cli.Fatal("jadraw-view", err)
		}
		a, done, err := cli.OpenApplet(*appletName, *script)
		if err != nil {
			cli.Fatal("jadraw-view", err)
		}
		defer done()
		if err := a.Setup(); err != nil {
			cli.Fatal("jadraw-view", err)
		}
		v.canvas = c
		v.applet = a
		v.title = a.Name()
	}
	v.pixels = make([]byte, 4*v.canvas.Width()*v.canvas.Height())

	ebiten.SetWindowSize(v.canvas.Width()*v.scale, v.canvas.Height()*v.scale)
	ebiten.SetWindowTitle("jadraw: " + v.title)
	ebiten.SetTPS(*fps)

	logger.Debug("starting viewer", "title", v.title,
		"width", v.canvas.Width(), "height", v.canvas.Height())
	if err := ebiten.RunGame(v); err != nil {
		cli.Fatal("jadraw-view", err)
	}
}
