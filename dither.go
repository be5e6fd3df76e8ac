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
	"image"
	"time"
)

// fixedShift is the number of fractional bits of the edge positions in
// FillDitheredTriangle.
const fixedShift = 16

// Ditherer holds the clock which drives the temporal dither offset of
// FillDitheredTriangle. The zero value is ready to use.
type Ditherer struct {
	// Millis is the elapsed time in milliseconds.
	Millis uint64
}

// Tick advances the clock by dt. Negative durations are ignored.
func (d *Ditherer) Tick(dt time.Duration) {
	if dt > 0 {
		d.Millis += uint64(dt / time.Millisecond)
	}
}

// Offset returns the current offset into BlueNoise. The noise table itself
// is used as the source of pseudo-random offsets. The value changes every
// 15ms.
func (d *Ditherer) Offset() (ox, oy int) {
	k := d.Millis / 15
	ox = int(BlueNoise[k&31][k&31])
	oy = int(BlueNoise[(k+1)&31][(k+1)&31])
	return ox, oy
}

// FillDitheredTriangle fills a triangle with a black and white pattern
// whose density of white pixels approximates brightness, which is clamped
// to [0, 1]. Pixels are written directly, without blending. A nil d uses
// offset (0, 0).
//
// The triangle is split at the middle vertex. With p0, p1, p2 the vertices
// sorted by y, the top part covers the scanlines p0.Y <= y < p1.Y and the
// bottom part p1.Y <= y <= p2.Y. On each scanline the pixels start <= x < end
// are painted, where the edge positions are tracked in 16.16 fixed point.
func (c *Canvas) FillDitheredTriangle(d *Ditherer, v0, v1, v2 image.Point, brightness float64) {
	p0, p1, p2 := v0, v1, v2
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}

	if p2.Y < 0 || p0.Y >= c.height {
		return
	}
	if max(p0.X, p1.X, p2.X) < 0 || min(p0.X, p1.X, p2.X) >= c.width {
		return
	}

	if !(brightness > 0) {
		brightness = 0
	} else if brightness > 1 {
		brightness = 1
	}
	level := int(brightness * 255)
	if level == 255 {
		// full brightness must beat a threshold of 255, too
		level = 256
	}

	var ox, oy int
	if d != nil {
		ox, oy = d.Offset()
	}

	span := func(y int, x1, x2 int64) {
		if y < 0 || y >= c.height {
			return
		}
		start := x1 >> fixedShift
		end := x2 >> fixedShift
		if start > end {
			start, end = end, start
		}
		start = max(start, 0)
		end = min(end, int64(c.width))
		noise := &BlueNoise[(y+oy)&31]
		row := c.pix[y*c.width : (y+1)*c.width]
		for x := int(start); x < int(end); x++ {
			if level > int(noise[(x+ox)&31]) {
				row[x] = White
			} else {
				row[x] = Black
			}
		}
	}

	h01 := int64(p1.Y - p0.Y)
	h02 := int64(p2.Y - p0.Y)
	h12 := int64(p2.Y - p1.Y)

	if h01 > 0 {
		slope1 := (int64(p1.X-p0.X) << fixedShift) / h01
		slope2 := (int64(p2.X-p0.X) << fixedShift) / h02
		x1 := int64(p0.X) << fixedShift
		x2 := x1
		for y := p0.Y; y < p1.Y; y++ {
			span(y, x1, x2)
			x1 += slope1
			x2 += slope2
		}
	}

	if h12 > 0 {
		slope1 := (int64(p2.X-p1.X) << fixedShift) / h12
		slope2 := (int64(p2.X-p0.X) << fixedShift) / h02
		x1 := int64(p1.X) << fixedShift
		x2 := int64(p0.X)<<fixedShift + slope2*h01
		for y := p1.Y; y <= p2.Y; y++ {
			span(y, x1, x2)
			x1 += slope1
			x2 += slope2
		}
	}
}

// BlueNoise is a 32×32 table of dither thresholds with a blue noise
// spectrum. It is addressed modulo 32 in both directions.
var BlueNoise = [32][32]uint8{
	{0xe5, 0x91, 0xf4, 0x9e, 0xc0, 0xf9, 0x3d, 0xdc, 0xa6, 0x2e, 0x1f, 0xc2, 0xf2, 0x15, 0xcd, 0x27, 0x6e, 0x59, 0x97, 0x7a, 0x20, 0x70, 0x07, 0x7f, 0xa8, 0x3e, 0x99, 0xff, 0x5c, 0xbf, 0x09, 0x6c},
	{0x2d, 0xba, 0x48, 0x08, 0xcd, 0x7c, 0x1c, 0xb3, 0x6d, 0xfe, 0x9c, 0x4b, 0x79, 0x68, 0x91, 0x3e, 0xf1, 0xb1, 0x47, 0xfc, 0xc5, 0xe3, 0x5d, 0x49, 0xda, 0x10, 0xcb, 0x26, 0x36, 0x90, 0xed, 0x41},
	{0xa2, 0xd4, 0x23, 0x89, 0x68, 0x31, 0x51, 0x8f, 0x0e, 0x5a, 0x86, 0xe3, 0xb5, 0x30, 0xd9, 0x07, 0x82, 0xbe, 0x2e, 0x0d, 0xa1, 0x3a, 0xb2, 0x94, 0xf0, 0x55, 0x68, 0xe2, 0xaf, 0x73, 0xdb, 0x11},
	{0x39, 0x77, 0x5d, 0xef, 0xa8, 0xe5, 0xbb, 0xd6, 0xee, 0x39, 0xc9, 0x01, 0x41, 0xa3, 0xf8, 0x62, 0x9c, 0x14, 0xdb, 0x67, 0x52, 0x83, 0x25, 0xc3, 0x19, 0x89, 0xa3, 0x03, 0x4b, 0x1c, 0xa0, 0x57},
	{0x00, 0xb1, 0xdd, 0x14, 0x40, 0x73, 0x27, 0x7f, 0x18, 0xaa, 0x71, 0x25, 0xd5, 0x58, 0x1c, 0xc3, 0x50, 0xe6, 0x76, 0xaa, 0xcf, 0x01, 0xf8, 0x72, 0x35, 0xd3, 0x7b, 0xbe, 0xf7, 0x87, 0x2d, 0xba},
	{0x99, 0xc8, 0x4f, 0x90, 0xc2, 0x04, 0xa1, 0x60, 0x46, 0xbf, 0xe8, 0x97, 0x7c, 0xb0, 0x8b, 0x70, 0x34, 0x23, 0x8f, 0x40, 0xea, 0x98, 0xb7, 0x60, 0x45, 0xe9, 0x2b, 0x5d, 0x3e, 0xcd, 0x66, 0xd6},
	{0x43, 0x1e, 0xf2, 0x2d, 0x5a, 0xfc, 0xd2, 0x94, 0xf4, 0x2e, 0x66, 0x13, 0x4c, 0xed, 0x09, 0xce, 0xfe, 0xb4, 0xc8, 0x5b, 0x1c, 0x30, 0xdf, 0x11, 0xab, 0x91, 0x0b, 0xb1, 0xe7, 0x97, 0x0d, 0x50},
	{0x60, 0x80, 0xa5, 0x6d, 0xb5, 0x84, 0x3a, 0x0d, 0xca, 0x53, 0x86, 0xb8, 0xd8, 0x2a, 0x3e, 0xa4, 0x4a, 0x81, 0x0c, 0xf4, 0x6e, 0x89, 0x4c, 0x7d, 0xca, 0xfa, 0x53, 0x70, 0x17, 0x7d, 0xa8, 0x23},
	{0xd5, 0x36, 0x07, 0xe7, 0x1b, 0x4a, 0xe1, 0x23, 0x75, 0xa7, 0x05, 0xfa, 0x9d, 0x60, 0x78, 0xde, 0x17, 0x63, 0x99, 0x39, 0xbd, 0xa4, 0xd5, 0x21, 0x66, 0x9e, 0x25, 0xda, 0xc6, 0x32, 0xee, 0xdd},
	{0x4d, 0x97, 0xc3, 0x78, 0xce, 0x9e, 0x67, 0xb0, 0x8c, 0xe5, 0x43, 0x35, 0xc2, 0x1e, 0x92, 0xbb, 0xee, 0x2e, 0xac, 0xe2, 0x08, 0x57, 0xed, 0x40, 0x04, 0xbf, 0x38, 0x8d, 0x49, 0xb4, 0x6c, 0x58},
	{0x18, 0xb3, 0xf7, 0x57, 0x32, 0x11, 0xbe, 0xf1, 0x59, 0x19, 0xd1, 0x6e, 0x80, 0xf2, 0x54, 0x04, 0x6c, 0xd1, 0x50, 0x77, 0xc8, 0x29, 0x95, 0xb5, 0x73, 0xe1, 0x81, 0xf0, 0x61, 0x01, 0x92, 0x1a},
	{0xde, 0x6a, 0x42, 0x25, 0x92, 0xdb, 0x7e, 0x3d, 0x2a, 0x97, 0xb4, 0x4d, 0x0d, 0xab, 0xc9, 0x44, 0x84, 0x20, 0x8e, 0xf8, 0x17, 0x6a, 0x85, 0xfd, 0x14, 0x59, 0xac, 0x10, 0xa0, 0xd6, 0xfe, 0x3c},
	{0xa7, 0x0d, 0x81, 0xe8, 0xab, 0x63, 0x4e, 0x01, 0xc4, 0xff, 0x5e, 0xdf, 0x27, 0xe7, 0x32, 0x9b, 0xdb, 0xb7, 0x3c, 0x9f, 0x48, 0xda, 0x36, 0xa5, 0x4b, 0xd2, 0x2c, 0x43, 0xc1, 0x21, 0x73, 0x85},
	{0x38, 0x8b, 0xd1, 0xbb, 0x0a, 0xf6, 0x9d, 0xd3, 0x70, 0x84, 0x10, 0xa2, 0x8b, 0x74, 0x64, 0xfc, 0x13, 0x5c, 0xe5, 0x00, 0xad, 0x5e, 0xc4, 0x1e, 0xe8, 0x8a, 0x69, 0xf6, 0x7c, 0x52, 0x30, 0xca},
	{0xc2, 0x20, 0x5a, 0x4a, 0x72, 0x38, 0x21, 0xe5, 0xad, 0x31, 0x46, 0xce, 0xbd, 0x3e, 0x09, 0xa8, 0x7b, 0x2d, 0xc1, 0x72, 0x83, 0xf2, 0x0d, 0x7a, 0x99, 0xcb, 0x08, 0xb4, 0x91, 0xda, 0xae, 0x14},
	{0xfe, 0x9c, 0xed, 0x16, 0x90, 0xcb, 0x82, 0x57, 0x14, 0x94, 0x69, 0xf6, 0x1f, 0x58, 0xd6, 0xc5, 0x8e, 0x50, 0xf6, 0x21, 0xd0, 0x2e, 0xb7, 0x53, 0x3e, 0x27, 0x5b, 0xe3, 0x19, 0x3f, 0x66, 0xf8},
	{0x67, 0xad, 0x7b, 0xdf, 0x2d, 0xa4, 0xbe, 0x42, 0xef, 0xb8, 0xde, 0x04, 0x7c, 0x98, 0xf1, 0x47, 0x1b, 0xb3, 0x68, 0x9d, 0x43, 0x92, 0x6c, 0xed, 0xa1, 0xbe, 0x72, 0x34, 0xa7, 0xec, 0x03, 0x88},
	{0x48, 0x01, 0x3f, 0xb5, 0x6a, 0xfb, 0x06, 0x64, 0x79, 0x25, 0x51, 0xa7, 0x36, 0xb5, 0x2a, 0x6e, 0xeb, 0x39, 0xd9, 0x12, 0x59, 0xe4, 0x08, 0xd4, 0x18, 0xfa, 0x86, 0xd0, 0x50, 0x78, 0x9f, 0xcb},
	{0x8c, 0xc5, 0x26, 0xd3, 0x4e, 0x12, 0xe3, 0x8d, 0xd8, 0x3b, 0xc5, 0x87, 0x61, 0xe4, 0x0f, 0x83, 0x95, 0x05, 0xa5, 0xc6, 0x87, 0xb0, 0x36, 0x7e, 0x62, 0x48, 0x05, 0x95, 0x21, 0xbf, 0x2d, 0x5f},
	{0x57, 0xf8, 0x99, 0x85, 0x5d, 0x9e, 0x33, 0xad, 0x1a, 0x99, 0xfd, 0x14, 0xd4, 0x49, 0xa2, 0xca, 0x5e, 0xe1, 0x76, 0x2a, 0xff, 0x4b, 0xc2, 0x23, 0xaa, 0xdd, 0xb5, 0xe8, 0x6b, 0xfd, 0x41, 0xad},
	{0xa3, 0x35, 0x6d, 0x1c, 0xed, 0xc6, 0x75, 0x49, 0xcd, 0x5a, 0x6d, 0x2f, 0xbc, 0x76, 0xf9, 0x25, 0x51, 0xb9, 0x41, 0x65, 0x1c, 0x9b, 0x71, 0xf4, 0x8d, 0x3d, 0x2f, 0x5a, 0x13, 0x83, 0xd8, 0x1a},
	{0xe0, 0xbc, 0x06, 0xdb, 0x3d, 0xb8, 0x23, 0xf5, 0x82, 0x00, 0xb2, 0xe6, 0x8f, 0x08, 0x3c, 0xae, 0x18, 0xf3, 0x80, 0xcc, 0xe7, 0x01, 0x56, 0xce, 0x0e, 0x9d, 0x7a, 0xc8, 0xa8, 0x4b, 0x97, 0xb9},
	{0x12, 0x4c, 0xab, 0x7a, 0x8c, 0x55, 0x0b, 0x66, 0xde, 0xa0, 0x43, 0x21, 0x55, 0x9d, 0x66, 0xd9, 0x8b, 0x34, 0x0f, 0xab, 0x91, 0xbb, 0x2d, 0xeb, 0x69, 0x4f, 0xd7, 0xf3, 0x09, 0x2a, 0xe6, 0x65},
	{0x83, 0xe9, 0xc5, 0x2d, 0xf8, 0xa5, 0xd5, 0x92, 0x2c, 0xc0, 0x74, 0xf3, 0xcc, 0x80, 0xeb, 0xc2, 0x71, 0x99, 0xd5, 0x48, 0x5d, 0x38, 0x86, 0xa7, 0x15, 0xb8, 0x22, 0x8c, 0x6f, 0xc1, 0x38, 0x56},
	{0x9a, 0x59, 0x21, 0x67, 0x47, 0x15, 0xb3, 0x3a, 0xef, 0x51, 0x0d, 0xa9, 0x34, 0x12, 0x46, 0x29, 0x03, 0x55, 0xe4, 0x21, 0x79, 0xfa, 0xda, 0x46, 0x76, 0xe3, 0x3a, 0x5e, 0xa1, 0xd4, 0x7c, 0xb1},
	{0x73, 0x09, 0x90, 0xce, 0xe3, 0x86, 0x71, 0x5d, 0x1c, 0xcf, 0x8b, 0x63, 0xb9, 0xdf, 0x5d, 0xa7, 0xfd, 0xb6, 0x6a, 0xc0, 0xa0, 0x07, 0x64, 0x26, 0xc5, 0x95, 0x03, 0xfe, 0x44, 0x19, 0xf0, 0x92},
	{0xc1, 0xb1, 0xfc, 0xa1, 0x35, 0x02, 0xc8, 0xe7, 0x9c, 0x7b, 0x40, 0xf7, 0x97, 0x1e, 0x89, 0xce, 0x7b, 0x3e, 0x2f, 0xf0, 0x14, 0xcf, 0xb4, 0x89, 0xed, 0x50, 0xad, 0x80, 0xbb, 0x0c, 0x6a, 0x2f},
	{0x2a, 0x3e, 0x51, 0x18, 0x78, 0xb9, 0x49, 0x27, 0xab, 0x06, 0xd9, 0x2b, 0x71, 0x51, 0xed, 0x0d, 0x9e, 0x18, 0x91, 0x82, 0x53, 0x41, 0x98, 0x1b, 0x33, 0x6e, 0xcd, 0x2a, 0xde, 0x55, 0xa7, 0xea},
	{0x11, 0xdd, 0x82, 0x62, 0xd7, 0xf3, 0x90, 0x6b, 0xff, 0xbe, 0x4d, 0x15, 0xc5, 0xad, 0x33, 0x65, 0xdd, 0x4e, 0xca, 0xaf, 0xe9, 0x72, 0xdf, 0x5b, 0xf9, 0x0f, 0x9d, 0x61, 0x8f, 0xc7, 0x78, 0x1c},
	{0xf4, 0x96, 0xc3, 0xaa, 0x21, 0x56, 0x3d, 0x10, 0x84, 0x5b, 0xe2, 0xa0, 0x83, 0xd3, 0x43, 0xb7, 0x74, 0xf4, 0x22, 0x63, 0x0b, 0x2b, 0xc2, 0xa7, 0x7e, 0xd5, 0x40, 0x1f, 0xf6, 0x34, 0x4d, 0xb0},
	{0xb5, 0x44, 0x06, 0x31, 0xe9, 0x9e, 0xb2, 0xd4, 0x2f, 0x94, 0x38, 0x67, 0x07, 0xfa, 0x24, 0x8b, 0x02, 0xbd, 0x37, 0xa3, 0xd4, 0x8d, 0x3b, 0x00, 0xbb, 0x4b, 0xe7, 0xb5, 0x05, 0x83, 0xef, 0x0e},
	{0x8a, 0x2d, 0x6e, 0x9b, 0x50, 0xba, 0x32, 0x43, 0x76, 0xc2, 0x66, 0x49, 0x03, 0xeb, 0x5a, 0x0c, 0x6c, 0xae, 0x18, 0x2f, 0x91, 0x75, 0x5c, 0x83, 0x08, 0x54, 0x77, 0x3a, 0x82, 0xd4, 0x9f, 0x1f},
}
