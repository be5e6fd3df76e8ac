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

// Command jadraw-term runs an applet inside a terminal. Every character
// cell shows two canvas pixels, using the upper half block character.
//
// The arrow keys left and right turn the knob, space or z presses the
// button, and q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/jadraw"
	"seehuhn.de/go/jadraw/applet"
	"seehuhn.de/go/jadraw/internal/cli"
)

const knobStep = 20

func main() {
	appletName := flag.String("applet", "hello", "name of a built-in applet")
	script := flag.String("script", "", "run the Lua applet in this file")
	size := flag.String("size", cli.DefaultSize, "canvas size, WxH")
	fps := flag.Int("fps", 30, "frames per second")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	cli.SetupLogging(*verbose)

	if *fps < 1 {
		cli.Fatal("jadraw-term", fmt.Errorf("invalid fps %d", *fps))
	}
	w, h, err := cli.ParseSize(*size)
	if err != nil {
		cli.Fatal("jadraw-term", err)
	}
	c, err := jadraw.New(w, h)
	if err != nil {
		cli.Fatal("jadraw-term", err)
	}
	a, done, err := cli.OpenApplet(*appletName, *script)
	if err != nil {
		cli.Fatal("jadraw-term", err)
	}
	defer done()
	if err := a.Setup(); err != nil {
		cli.Fatal("jadraw-term", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		cli.Fatal("jadraw-term", err)
	}
	if err := screen.Init(); err != nil {
		cli.Fatal("jadraw-term", err)
	}

	frames, elapsed := runLoop(screen, a, c, *fps)
	screen.Fini()

	fmt.Fprintf(os.Stderr, "%s: %d frames in %v (%.1f FPS)\n",
		a.Name(), frames, elapsed.Round(time.Millisecond), float64(frames)/elapsed.Seconds())
}

func runLoop(screen tcell.Screen, a applet.Applet, c *jadraw.Canvas, fps int) (int, time.Duration) {
	quit := make(chan struct{})
	input := make(chan applet.Input, 16)

	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				// the screen was finalized
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				in, stop := keyInput(ev)
				if stop {
					close(quit)
					return
				}
				select {
				case input <- in:
				default:
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var frames int
	start := time.Now()
	last := start
	for {
		select {
		case <-quit:
			return frames, time.Since(start)
		case now := <-ticker.C:
			// Terminals report no key releases, so a press lasts one frame.
			var in applet.Input
		drain:
			for {
				select {
				case k := <-input:
					in.Rotation += k.Rotation
					in.Pressed = in.Pressed || k.Pressed
				default:
					break drain
				}
			}

			a.Loop(c, now.Sub(last).Seconds(), in)
			last = now

			screen.Clear()
			drawCanvas(screen, c)
			screen.Show()
			frames++
		}
	}
}

// keyInput translates a key event into applet input.
func keyInput(ev *tcell.EventKey) (in applet.Input, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return in, true
	case tcell.KeyLeft:
		in.Rotation = -knobStep
	case tcell.KeyRight:
		in.Rotation = knobStep
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return in, true
		case ' ', 'z', 'Z':
			in.Pressed = true
		}
	}
	return in, false
}
