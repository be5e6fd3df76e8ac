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

// Package luaapplet runs applets written in Lua.
//
// A script defines the global functions
//
//	setup()                      -- optional, called once
//	loop(dt, rotation, pressed)  -- called once per frame
//
// and may set the global string name. Inside loop the script draws with
//
//	clear(color)
//	pixel(x, y, color)
//	line(x0, y0, x1, y1, color [, thickness [, mode]])
//	lineaa(x0, y0, x1, y1, color [, mode])
//	rect(x, y, w, h, color [, mode])
//	poly({x1, y1, x2, y2, ...}, color [, mode])
//	text(s, x, y, scale, color [, mode [, aa]])
//
// Colors are numbers of the form 0xRRGGBBAA, as returned by hsv(h, s, v)
// and rgba(r, g, b [, a]). The modes are OPAQUE, BLEND and ADDITIVE.
// Text is anti-aliased unless aa is false.
// width() and height() return the canvas size of the most recent frame.
//
// Only the base, package, table, string and math libraries are available
// to scripts.
package luaapplet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jadraw"
	"seehuhn.de/go/jadraw/applet"
)

// Applet is an [applet.Applet] implemented by a Lua script.
type Applet struct {
	L    *lua.LState
	name string

	canvas        *jadraw.Canvas
	width, height int

	points  []vec.Vec2
	lastErr string
}

var _ applet.Applet = (*Applet)(nil)

// Load reads and runs the Lua script in the named file.
// The returned applet must be closed after use.
func Load(fname string) (*Applet, error) {
	src, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("luaapplet: %w", err)
	}
	base := filepath.Base(fname)
	return New(bytes.NewReader(src), strings.TrimSuffix(base, filepath.Ext(base)))
}

// New runs the Lua script read from r. The chunk name is used in error
// messages, and as the applet name if the script does not set one.
func New(r io.Reader, chunkName string) (*Applet, error) {
	a := &Applet{
		L:    lua.NewState(lua.Options{SkipOpenLibs: true}),
		name: chunkName,
	}
	a.openLibs()
	a.register()

	fn, err := a.L.Load(r, chunkName)
	if err != nil {
		a.L.Close()
		return nil, fmt.Errorf("luaapplet: %w", err)
	}
	a.L.Push(fn)
	if err := a.L.PCall(0, lua.MultRet, nil); err != nil {
		a.L.Close()
		return nil, fmt.Errorf("luaapplet: %s: %w", chunkName, err)
	}

	if name, ok := a.L.GetGlobal("name").(lua.LString); ok && name != "" {
		a.name = string(name)
	}
	jadraw.Logger().Debug("script loaded", "applet", a.name)
	return a, nil
}

// Close releases the Lua state.
func (a *Applet) Close() {
	a.L.Close()
}

// Name implements the [applet.Applet] interface.
func (a *Applet) Name() string {
	return a.name
}

// Setup implements the [applet.Applet] interface.
// It calls the setup function of the script, if there is one.
func (a *Applet) Setup() error {
	a.lastErr = ""
	fn := a.L.GetGlobal("setup")
	if fn.Type() != lua.LTFunction {
		return nil
	}
	err := a.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	if err != nil {
		return fmt.Errorf("luaapplet: %s: setup: %w", a.name, err)
	}
	return nil
}

// Loop implements the [applet.Applet] interface.
// Errors raised by the script are logged and the frame is skipped.
func (a *Applet) Loop(c *jadraw.Canvas, dt float64, in applet.Input) {
	fn := a.L.GetGlobal("loop")
	if fn.Type() != lua.LTFunction {
		return
	}

	a.canvas = c
	a.width, a.height = c.Width(), c.Height()
	err := a.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true},
		lua.LNumber(dt), lua.LNumber(in.Rotation), lua.LBool(in.Pressed))
	a.canvas = nil

	if err != nil {
		// a broken script fails on every frame
		if msg := err.Error(); msg != a.lastErr {
			a.lastErr = msg
			jadraw.Logger().Warn("script failed", "applet", a.name, "error", err)
		}
	} else {
		a.lastErr = ""
	}
}

func (a *Applet) openLibs() {
	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		a.L.Push(a.L.NewFunction(lib.open))
		a.L.Push(lua.LString(lib.name))
		a.L.Call(1, 0)
	}
}

func (a *Applet) register() {
	funcs := map[string]lua.LGFunction{
		"clear":  a.luaClear,
		"pixel":  a.luaPixel,
		"line":   a.luaLine,
		"lineaa": a.luaLineAA,
		"rect":   a.luaRect,
		"poly":   a.luaPoly,
		"text":   a.luaText,
		"width":  a.luaWidth,
		"height": a.luaHeight,
		"hsv":    luaHSV,
		"rgba":   luaRGBA,
	}
	for name, f := range funcs {
		a.L.SetGlobal(name, a.L.NewFunction(f))
	}
	a.L.SetGlobal("OPAQUE", lua.LNumber(jadraw.ModeOpaque))
	a.L.SetGlobal("BLEND", lua.LNumber(jadraw.ModeBlend))
	a.L.SetGlobal("ADDITIVE", lua.LNumber(jadraw.ModeAdditive))
}

func checkColor(L *lua.LState, n int) jadraw.Color {
	return jadraw.Color(uint32(int64(L.CheckNumber(n))))
}

func optMode(L *lua.LState, n int, def jadraw.DrawMode) jadraw.DrawMode {
	m := jadraw.DrawMode(L.OptInt(n, int(def)))
	if m < jadraw.ModeOpaque || m > jadraw.ModeAdditive {
		L.ArgError(n, "invalid draw mode")
	}
	return m
}

func (a *Applet) luaClear(L *lua.LState) int {
	col := checkColor(L, 1)
	if a.canvas != nil {
		a.canvas.Clear(col)
	}
	return 0
}

func (a *Applet) luaPixel(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	col := checkColor(L, 3)
	if a.canvas != nil {
		a.canvas.SetPixel(x, y, col)
	}
	return 0
}

func (a *Applet) luaLine(L *lua.LState) int {
	x0, y0 := L.CheckInt(1), L.CheckInt(2)
	x1, y1 := L.CheckInt(3), L.CheckInt(4)
	col := checkColor(L, 5)
	thickness := L.OptInt(6, 1)
	mode := optMode(L, 7, jadraw.ModeOpaque)
	if a.canvas != nil {
		a.canvas.DrawLine(x0, y0, x1, y1, thickness, col, mode)
	}
	return 0
}

func (a *Applet) luaLineAA(L *lua.LState) int {
	x0, y0 := float64(L.CheckNumber(1)), float64(L.CheckNumber(2))
	x1, y1 := float64(L.CheckNumber(3)), float64(L.CheckNumber(4))
	col := checkColor(L, 5)
	mode := optMode(L, 6, jadraw.ModeBlend)
	if a.canvas != nil {
		a.canvas.DrawLineAA(x0, y0, x1, y1, col, mode)
	}
	return 0
}

func (a *Applet) luaRect(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	w, h := L.CheckInt(3), L.CheckInt(4)
	col := checkColor(L, 5)
	mode := optMode(L, 6, jadraw.ModeOpaque)
	if a.canvas != nil {
		a.canvas.FillRect(x, y, w, h, col, mode)
	}
	return 0
}

func (a *Applet) luaPoly(L *lua.LState) int {
	tbl := L.CheckTable(1)
	col := checkColor(L, 2)
	mode := optMode(L, 3, jadraw.ModeBlend)

	n := tbl.Len()
	if n%2 != 0 {
		L.ArgError(1, "odd number of coordinates")
	}
	a.points = a.points[:0]
	for i := 1; i < n; i += 2 {
		x, okX := tbl.RawGetInt(i).(lua.LNumber)
		y, okY := tbl.RawGetInt(i + 1).(lua.LNumber)
		if !okX || !okY {
			L.ArgError(1, "coordinates must be numbers")
		}
		a.points = append(a.points, vec.Vec2{X: float64(x), Y: float64(y)})
	}
	if a.canvas != nil {
		a.canvas.FillPolygon(a.points, col, mode)
	}
	return 0
}

func (a *Applet) luaText(L *lua.LState) int {
	s := L.CheckString(1)
	x, y := L.CheckInt(2), L.CheckInt(3)
	scale := float64(L.CheckNumber(4))
	col := checkColor(L, 5)
	mode := optMode(L, 6, jadraw.ModeBlend)
	aa := L.OptBool(7, true)
	switch {
	case a.canvas == nil:
	case aa:
		a.canvas.DrawTextMode(s, x, y, scale, col, mode)
	default:
		a.canvas.DrawTextAliased(s, x, y, scale, col, mode)
	}
	return 0
}

func (a *Applet) luaWidth(L *lua.LState) int {
	L.Push(lua.LNumber(a.width))
	return 1
}

func (a *Applet) luaHeight(L *lua.LState) int {
	L.Push(lua.LNumber(a.height))
	return 1
}

func luaHSV(L *lua.LState) int {
	h := float64(L.CheckNumber(1))
	s := float64(L.CheckNumber(2))
	v := float64(L.CheckNumber(3))
	L.Push(lua.LNumber(jadraw.HSV(h, s, v)))
	return 1
}

func luaRGBA(L *lua.LState) int {
	r, g, b := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
	alpha := L.OptInt(4, 255)
	L.Push(lua.LNumber(jadraw.RGBA(clampByte(r), clampByte(g), clampByte(b), clampByte(alpha))))
	return 1
}

func clampByte(x int) uint8 {
	return uint8(min(max(x, 0), 255))
}
