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
	"bytes"
	"image/png"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"seehuhn.de/go/jadraw"
	"seehuhn.de/go/jadraw/applet"
)

// knobStep is the knob rotation for one press of an arrow key.
const knobStep = 20

// viewer implements ebiten.Game.
type viewer struct {
	canvas *jadraw.Canvas
	applet applet.Applet // nil for a static test case
	title  string
	scale  int

	pixels []byte
	window *ebiten.Image

	paused bool
	last   time.Time

	clipboardOnce sync.Once
	clipboardOK   bool
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		v.copyToClipboard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
	}

	now := time.Now()
	dt := 0.0
	if !v.last.IsZero() {
		dt = now.Sub(v.last).Seconds()
	}
	v.last = now

	if v.applet == nil || v.paused {
		return nil
	}

	var in applet.Input
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		in.Rotation += knobStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		in.Rotation -= knobStep
	}
	in.Pressed = ebiten.IsKeyPressed(ebiten.KeyZ)

	v.applet.Loop(v.canvas, dt, in)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.window == nil {
		v.window = ebiten.NewImage(v.canvas.Width(), v.canvas.Height())
	}
	v.canvas.WritePremultipliedRGBA(v.pixels)
	v.window.WritePixels(v.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(v.window, op)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.canvas.Width() * v.scale, v.canvas.Height() * v.scale
}

func (v *viewer) copyToClipboard() {
	v.clipboardOnce.Do(func() {
		err := clipboard.Init()
		if err != nil {
			jadraw.Logger().Warn("clipboard unavailable", "error", err)
		}
		v.clipboardOK = err == nil
	})
	if !v.clipboardOK {
		return
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, v.canvas.NRGBA()); err != nil {
		jadraw.Logger().Warn("screenshot failed", "error", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	jadraw.Logger().Info("frame copied to clipboard", "bytes", buf.Len())
}
