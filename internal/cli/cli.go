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

// Package cli holds the command line handling shared by the jadraw
// commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/jadraw"
	"seehuhn.de/go/jadraw/applet"
	"seehuhn.de/go/jadraw/applet/luaapplet"
	"seehuhn.de/go/jadraw/testcases"
)

// DefaultSize is the canvas size used when no -size flag is given.
const DefaultSize = "128x64"

var (
	errSize = errors.New("invalid size")
	errCase = errors.New("unknown test case")
)

// ParseSize parses a canvas size of the form "WxH".
func ParseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, errSize)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%q: %w", s, errSize)
	}
	return w, h, nil
}

// OpenApplet returns the applet to run. If script is not empty, the
// Lua script is loaded from this file; otherwise the built-in applet
// with the given name is used. The returned function releases the
// applet's resources.
//
// Setup has not yet been called on the returned applet.
func OpenApplet(name, script string) (applet.Applet, func(), error) {
	if script != "" {
		a, err := luaapplet.Load(script)
		if err != nil {
			return nil, nil, err
		}
		return a, a.Close, nil
	}
	a, err := applet.Lookup(name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (available: %s)",
			err, strings.Join(applet.Names(), ", "))
	}
	return a, func() {}, nil
}

// FindCase returns the test case with the given full name, of the form
// "category_name".
func FindCase(fullName string) (testcases.TestCase, error) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		prefix, ok := strings.CutPrefix(fullName, category+"_")
		if !ok {
			continue
		}
		for _, tc := range testcases.All[category] {
			if tc.Name == prefix {
				return tc, nil
			}
		}
	}
	return testcases.TestCase{}, fmt.Errorf("%q: %w", fullName, errCase)
}

// CaseNames returns the full names of all test cases, in sorted order.
func CaseNames() []string {
	var names []string
	for category, cases := range testcases.All {
		for _, tc := range cases {
			names = append(names, category+"_"+tc.Name)
		}
	}
	slices.Sort(names)
	return names
}

// SetupLogging installs a text logger on stderr for the jadraw packages.
// Verbose output includes debug messages, otherwise only warnings and
// errors are shown.
func SetupLogging(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	jadraw.SetLogger(logger)
	return logger
}

// Fatal prints an error message on stderr and exits the program.
func Fatal(cmd string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
	os.Exit(1)
}
