package entity

import "math"

const (
	PlayerRadius = 12.0

	playerAccel   = 900.0 // px/sec^2
	playerDamping = 6.0   // velocity fraction shed per second
	playerMaxSpd  = 320.0
)

// Input carries the normalized movement axes for one tick.
type Input struct {
	Ax, Ay float64
}

// Player is the ship the enemies collide with.
type Player struct {
	Pos Vec
	Vel Vec
}

// Move integrates one tick of acceleration, damping and clamping.
func (p *Player) Move(dt, w, h float64, in Input) {
	mag := math.Hypot(in.Ax, in.Ay)
	if mag > 0 {
		p.Vel.X += in.Ax / mag * playerAccel * dt
		p.Vel.Y += in.Ay / mag * playerAccel * dt
	}

	p.Vel = p.Vel.Scale(1 - playerDamping*dt)
	if spd := math.Hypot(p.Vel.X, p.Vel.Y); spd > playerMaxSpd {
		p.Vel = p.Vel.Scale(playerMaxSpd / spd)
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if p.Pos.X < PlayerRadius {
		p.Pos.X, p.Vel.X = PlayerRadius, 0
	} else if p.Pos.X > w-PlayerRadius {
		p.Pos.X, p.Vel.X = w-PlayerRadius, 0
	}
	if p.Pos.Y < PlayerRadius {
		p.Pos.Y, p.Vel.Y = PlayerRadius, 0
	} else if p.Pos.Y > h-PlayerRadius {
		p.Pos.Y, p.Vel.Y = h-PlayerRadius, 0
	}
}
