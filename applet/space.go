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

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/jadraw"
)

// Space world coordinates range over [-1, 1] × [-1, 1], with y pointing up.
const (
	maxAsteroids = 20
	maxBullets   = 15

	playerWidth     = 0.12
	playerHeight    = 0.1
	playerY         = -0.85
	playerSpeed     = 2.5
	playerInitialHP = 100

	bulletSpeed  = 3.0
	bulletWidth  = 0.03
	bulletHeight = 0.05
	bulletDamage = 10.0

	laserMinCharge  = 0.2 // seconds; shorter presses fire a bullet
	laserMaxCharge  = 2.0
	laserWidth      = 0.04
	laserDuration   = 0.15
	laserDamageRate = 50.0 // hit points per second at full power

	asteroidSpawnInterval = 1.5
	asteroidMinSpeed      = 0.2
	asteroidMaxSpeed      = 0.6
	asteroidMinSize       = 0.08
	asteroidMaxSize       = 0.2

	// objects are removed once they leave [-spaceEdge, spaceEdge] vertically
	spaceEdge = 1.1
)

type bullet struct {
	active bool
	pos    vec.Vec2
}

type asteroid struct {
	active bool
	pos    vec.Vec2
	vel    vec.Vec2
	size   float64
	hp     float64
}

type laser struct {
	active   bool
	x        float64
	power    float64
	duration float64
}

// Space is a small shoot 'em up. The knob moves the ship left and right.
// A short press of the button fires a bullet, holding the button charges
// a laser which fires on release. Asteroids which reach the ship reduce
// its hit points. Once these are used up, the next button press restarts
// the game.
type Space struct {
	seed uint32
	rng  *XorShift32

	player     vec.Vec2
	hp         float64
	charge     float64
	asteroids  [maxAsteroids]asteroid
	bullets    [maxBullets]bullet
	laser      laser
	spawnTimer float64
	wasPressed bool
	gameOver   bool
}

// NewSpace returns a new Space applet. The asteroids are placed using a
// generator with the given seed.
func NewSpace(seed uint32) *Space {
	s := &Space{seed: seed}
	s.Setup()
	return s
}

// Setup implements the Applet interface. It starts a new game.
func (s *Space) Setup() error {
	*s = Space{
		seed:       s.seed,
		rng:        NewXorShift32(s.seed),
		player:     vec.Vec2{Y: playerY},
		hp:         playerInitialHP,
		spawnTimer: asteroidSpawnInterval,
	}
	return nil
}

// HP returns the remaining hit points of the ship.
func (s *Space) HP() float64 {
	return s.hp
}

// GameOver reports whether the ship has been destroyed.
func (s *Space) GameOver() bool {
	return s.gameOver
}

// Loop implements the Applet interface.
func (s *Space) Loop(c *jadraw.Canvas, dt float64, in Input) {
	if !(dt >= 0) {
		dt = 0
	}

	if s.gameOver {
		if in.Pressed && !s.wasPressed {
			s.Setup()
		}
		s.wasPressed = in.Pressed
	} else {
		s.updatePlayer(dt, in)
		s.updateObjects(dt)
		s.collide(dt)
		s.spawn(dt)
		if s.hp <= 0 {
			s.gameOver = true
		}
	}

	s.draw(c)
}

func (s *Space) updatePlayer(dt float64, in Input) {
	stick := float64(in.Rotation) / 100
	s.player.X += stick * playerSpeed * dt
	s.player.X = max(-1+playerWidth/2, min(1-playerWidth/2, s.player.X))

	if in.Pressed {
		s.charge += dt
	} else {
		if s.wasPressed {
			if s.charge > laserMinCharge {
				s.fireLaser()
			} else {
				s.fireBullet()
			}
		}
		s.charge = 0
	}
	s.wasPressed = in.Pressed
}

func (s *Space) fireBullet() {
	for i := range s.bullets {
		b := &s.bullets[i]
		if !b.active {
			b.active = true
			b.pos = s.player.Add(vec.Vec2{Y: playerHeight / 2})
			return
		}
	}
}

func (s *Space) fireLaser() {
	if s.laser.active {
		return
	}
	s.laser = laser{
		active:   true,
		x:        s.player.X,
		power:    min(s.charge/laserMaxCharge, 1),
		duration: laserDuration,
	}
}

func (s *Space) updateObjects(dt float64) {
	for i := range s.bullets {
		b := &s.bullets[i]
		if !b.active {
			continue
		}
		b.pos.Y += bulletSpeed * dt
		if b.pos.Y > spaceEdge {
			b.active = false
		}
	}
	for i := range s.asteroids {
		a := &s.asteroids[i]
		if !a.active {
			continue
		}
		a.pos = a.pos.Add(a.vel.Mul(dt))
		if a.pos.Y < -spaceEdge {
			a.active = false
		}
	}
	if s.laser.active {
		s.laser.duration -= dt
		if s.laser.duration <= 0 {
			s.laser.active = false
		}
	}
}

// collide applies the effects of bullets, the laser and the ship on the
// asteroids. All objects are treated as axis-aligned boxes.
func (s *Space) collide(dt float64) {
	for i := range s.bullets {
		b := &s.bullets[i]
		if !b.active {
			continue
		}
		for j := range s.asteroids {
			a := &s.asteroids[j]
			if !a.active || !overlap(b.pos, a.pos, bulletWidth+a.size, bulletHeight+a.size) {
				continue
			}
			a.hp -= bulletDamage
			if a.hp <= 0 {
				a.active = false
			}
			b.active = false
			break
		}
	}

	if s.laser.active {
		for j := range s.asteroids {
			a := &s.asteroids[j]
			if !a.active || math.Abs(s.laser.x-a.pos.X) >= (laserWidth+a.size)/2 {
				continue
			}
			a.hp -= laserDamageRate * s.laser.power * dt
			if a.hp <= 0 {
				a.active = false
			}
		}
	}

	for j := range s.asteroids {
		a := &s.asteroids[j]
		if a.active && overlap(s.player, a.pos, playerWidth+a.size, playerHeight+a.size) {
			s.hp -= a.size * 100
			a.active = false
		}
	}
}

// overlap reports whether two boxes centred at p and q overlap, where w
// and h are the sums of the box widths and heights.
func overlap(p, q vec.Vec2, w, h float64) bool {
	return math.Abs(p.X-q.X) < w/2 && math.Abs(p.Y-q.Y) < h/2
}

// spawn starts at most one new asteroid whenever the spawn timer runs out.
func (s *Space) spawn(dt float64) {
	s.spawnTimer -= dt
	if s.spawnTimer > 0 {
		return
	}
	s.spawnTimer = asteroidSpawnInterval * s.rng.Range(0.7, 1.3)
	for i := range s.asteroids {
		a := &s.asteroids[i]
		if a.active {
			continue
		}
		size := s.rng.Range(asteroidMinSize, asteroidMaxSize)
		*a = asteroid{
			active: true,
			pos:    vec.Vec2{X: s.rng.Range(-1, 1), Y: spaceEdge},
			vel: vec.Vec2{
				X: s.rng.Range(-0.1, 0.1),
				Y: -s.rng.Range(asteroidMinSpeed, asteroidMaxSpeed),
			},
			size: size,
			hp:   size * 150,
		}
		return
	}
}

func (s *Space) draw(c *jadraw.Canvas) {
	c.Clear(jadraw.Black)
	w, h := float64(c.Width()), float64(c.Height())

	if s.gameOver {
		const msg = "GAME OVER"
		scale := 2.0
		if tw := jadraw.TextWidth(msg, 1); float64(tw)*scale > w {
			scale = w / float64(tw)
		}
		x := (c.Width() - jadraw.TextWidth(msg, scale)) / 2
		y := int((h - jadraw.GlyphHeight*scale) / 2)
		c.DrawTextAliased(msg, x, y, scale, jadraw.Red, jadraw.ModeOpaque)
		return
	}

	if s.laser.active {
		x0, _ := toScreen(vec.Vec2{X: s.laser.x - laserWidth/2}, w, h)
		lw := max(int(laserWidth*w/2), 1)
		col := jadraw.Cyan.WithAlpha(uint8(64 + 191*s.laser.power))
		c.FillRect(x0, 0, lw, c.Height(), col, jadraw.ModeBlend)
	}

	// the ship is a triangle pointing up
	nose := toScreenVec(s.player.Add(vec.Vec2{Y: playerHeight / 2}), w, h)
	left := toScreenVec(s.player.Add(vec.Vec2{X: -playerWidth / 2, Y: -playerHeight / 2}), w, h)
	right := toScreenVec(s.player.Add(vec.Vec2{X: playerWidth / 2, Y: -playerHeight / 2}), w, h)
	c.FillPolygon([]vec.Vec2{nose, right, left}, jadraw.White, jadraw.ModeOpaque)

	for _, b := range s.bullets {
		if !b.active {
			continue
		}
		x, y := toScreen(b.pos.Add(vec.Vec2{X: -bulletWidth / 2, Y: bulletHeight / 2}), w, h)
		c.FillRect(x, y, max(int(bulletWidth*w/2), 1), max(int(bulletHeight*h/2), 1), jadraw.Yellow, jadraw.ModeOpaque)
	}

	for _, a := range s.asteroids {
		if !a.active {
			continue
		}
		x, y := toScreen(a.pos.Add(vec.Vec2{X: -a.size / 2, Y: a.size / 2}), w, h)
		side := max(int(a.size*w/2), 1)
		c.FillRect(x, y, side, side, jadraw.Grey, jadraw.ModeOpaque)
		c.DrawRect(x, y, side, side, jadraw.White, jadraw.ModeOpaque)
	}

	barWidth := int(max(s.hp, 0) / playerInitialHP * (w - 4))
	c.FillRect(2, c.Height()-5, barWidth, 3, jadraw.Green, jadraw.ModeOpaque)
}

// toScreen converts world coordinates to pixel coordinates.
func toScreen(p vec.Vec2, w, h float64) (int, int) {
	q := toScreenVec(p, w, h)
	return int(math.Floor(q.X)), int(math.Floor(q.Y))
}

func toScreenVec(p vec.Vec2, w, h float64) vec.Vec2 {
	return vec.Vec2{X: (p.X + 1) * 0.5 * w, Y: (1 - p.Y) * 0.5 * h}
}

// Name implements the Applet interface.
func (s *Space) Name() string {
	return "Space game"
}
