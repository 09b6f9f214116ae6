package entity

import "math"

// Pattern selects how an enemy moves once it has drifted into the field.
type Pattern int

const (
	PatternLinear Pattern = iota
	PatternSine
	PatternCircular
	PatternAccel
)

const (
	EnemyRadius    = 14.0
	enemySpeedBase = 60.0 // px/sec before the tier multiplier

	accelCycle = 3.0 // seconds per accelerating burst
	orbitR     = 50.0
)

// Enemy is a drifting glyph. It spawns outside the field with an inward
// velocity and bounces off the walls after entering.
type Enemy struct {
	Pos   Vec
	Vel   Vec
	HP    int
	MaxHP int
	Speed float64
	Glyph rune

	Pattern Pattern
	Dir     float64 // heading in radians
	Timer   float64
	Anchor  Vec // orbit center for PatternCircular

	Seq   int // creation order, used for shot tie-breaking
	Alive bool

	inside bool
}

// ascii only, the 7x13 bitmap face has no coverage beyond it
var glyphs = []rune{'+', '-', '*', '/', '%', '^', '=', '?', '#', '&'}

// tier maps level to (hp, speed multiplier): 1-3 weak and slow, 4-8 middle,
// 9+ tough and fast.
func enemyTier(level int) (int, float64) {
	switch {
	case level <= 3:
		return 1, 0.8
	case level <= 8:
		return 2, 1.2
	default:
		return 3, 1.5
	}
}

func (e *Enemy) advance(dt, w, h float64) {
	e.Timer += dt

	switch e.Pattern {
	case PatternSine:
		wave := math.Sin(e.Timer*2) * e.Speed * 0.5
		e.Vel = Vec{
			math.Cos(e.Dir) * e.Speed,
			math.Sin(e.Dir)*e.Speed + wave,
		}
	case PatternCircular:
		if e.inside {
			// orbit the anchor; velocity is the tangent. The wall clamp
			// still applies: an anchor near an edge would otherwise swing
			// the body off the field.
			e.Pos = Vec{
				e.Anchor.X + math.Cos(e.Timer)*orbitR,
				e.Anchor.Y + math.Sin(e.Timer)*orbitR,
			}
			e.Vel = Vec{-math.Sin(e.Timer) * orbitR, math.Cos(e.Timer) * orbitR}
			e.bounce(w, h)
			return
		}
		e.Vel = Vec{math.Cos(e.Dir) * e.Speed, math.Sin(e.Dir) * e.Speed}
	case PatternAccel:
		frac := math.Mod(e.Timer, accelCycle) / accelCycle
		boost := 1.5 * (1 - (1-frac)*(1-frac)) // ease-out ramp
		e.Vel = Vec{math.Cos(e.Dir) * e.Speed * boost, math.Sin(e.Dir) * e.Speed * boost}
	default:
		e.Vel = Vec{math.Cos(e.Dir) * e.Speed, math.Sin(e.Dir) * e.Speed}
	}

	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	if !e.inside {
		if e.Pos.X > EnemyRadius && e.Pos.X < w-EnemyRadius &&
			e.Pos.Y > EnemyRadius && e.Pos.Y < h-EnemyRadius {
			e.inside = true
			e.Anchor = e.Pos
		}
		return
	}

	e.bounce(w, h)
}

// bounce clamps the body to the field and reflects the heading off any wall
// it crossed.
func (e *Enemy) bounce(w, h float64) {
	if e.Pos.X < EnemyRadius {
		e.Pos.X = EnemyRadius
		e.Dir = math.Pi - e.Dir
	} else if e.Pos.X > w-EnemyRadius {
		e.Pos.X = w - EnemyRadius
		e.Dir = math.Pi - e.Dir
	}
	if e.Pos.Y < EnemyRadius {
		e.Pos.Y = EnemyRadius
		e.Dir = -e.Dir
	} else if e.Pos.Y > h-EnemyRadius {
		e.Pos.Y = h - EnemyRadius
		e.Dir = -e.Dir
	}
}
