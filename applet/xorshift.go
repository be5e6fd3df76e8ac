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

package applet

// XorShift32 is Marsaglia's 32-bit xorshift generator with the shift
// triple (13, 17, 5). It is small enough for microcontrollers and gives
// the same sequence on every platform.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 returns a generator with the given seed. The all-zero
// state is a fixed point, so a seed of 0 is replaced by a fixed constant.
func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return &XorShift32{state: seed}
}

// Uint32 returns the next value. The result is never zero.
func (r *XorShift32) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n). It returns 0 if n <= 0.
func (r *XorShift32) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(uint64(r.Uint32()) % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *XorShift32) Float64() float64 {
	return float64(r.Uint32()>>8) / (1 << 24)
}

// Range returns a value in [lo, hi).
func (r *XorShift32) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
