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

package testcases

import "seehuhn.de/go/geom/path"

// kappa is the control point distance for approximating a quarter circle
// of radius 1 with a cubic Bézier curve.
const kappa = 0.5522847498

var curveCases = []TestCase{
	{
		Name:       "quadratic",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: quadraticCurve(10, 50, 32, 0, 54, 50), Color: white}},
	},
	{
		Name:       "cubic",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: cubicCurve(10, 50, 10, 0, 54, 0, 54, 50), Color: white}},
	},
	{
		Name:       "circle",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: circle(32, 32, 25), Color: white}},
	},
	{
		Name:       "circle_small",
		Width:      16,
		Height:     16,
		Background: black,
		Ops:        []Operation{Fill{Path: circle(8, 8, 3), Color: white}},
	},
	{
		Name:       "ellipse",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: ellipse(32, 32, 28, 14), Color: white}},
	},
	{
		Name:       "arc",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: arc(32, 32, 25, 0, 0.75), Color: white}},
	},
	{
		Name:       "quadratic_s_shape",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: sCurveQuadratic(8, 32, 56, 32), Color: white}},
	},
	{
		Name:       "cubic_loop",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: cubicCurve(10, 40, 70, 0, -6, 0, 54, 40), Color: white}},
	},
	{
		Name:       "cubic_degenerate",
		Width:      64,
		Height:     64,
		Background: black,
		Ops:        []Operation{Fill{Path: cubicCurve(10, 32, 10, 32, 54, 32, 54, 32), Color: white}},
	},
	{
		Name:       "quadratic_degenerate",
		Width:      64,
		Height:     64,
		Background: black,
		// control point on start endpoint
		Ops: []Operation{Fill{Path: quadraticCurve(10, 32, 10, 32, 54, 12), Color: white}},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// arc builds a pie slice covering the given fraction of a full circle,
// in whole quadrants, starting from the right.
func arc(cx, cy, r float64, startFraction, endFraction float64) *path.Data {
	k := r * kappa

	totalFraction := endFraction - startFraction
	if totalFraction <= 0 {
		return &path.Data{}
	}
	numQuadrants := min(max(int(totalFraction*4), 1), 4)

	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	if numQuadrants >= 1 {
		p = p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r))
	}
	if numQuadrants >= 2 {
		p = p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
	}
	if numQuadrants >= 3 {
		p = p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r))
	}
	if numQuadrants >= 4 {
		p = p.CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))
	}
	return p.Close()
}
