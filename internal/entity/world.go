package entity

import (
	"math"
	"math/rand"
)

const maxWaveSize = 10

// World owns every live enemy and particle and steps them each tick.
type World struct {
	W, H float64

	Enemies   []*Enemy
	Particles []*Particle

	rand *rand.Rand
	seq  int
}

func NewWorld(w, h float64, r *rand.Rand) *World {
	return &World{W: w, H: h, rand: r}
}

// SpawnEnemy creates one enemy just outside a random edge, drifting inward,
// with level-scaled health and speed.
func (w *World) SpawnEnemy(level int) *Enemy {
	hp, mult := enemyTier(level)

	var pos Vec
	switch w.rand.Intn(4) {
	case 0: // left
		pos = Vec{-EnemyRadius, w.rand.Float64() * w.H}
	case 1: // right
		pos = Vec{w.W + EnemyRadius, w.rand.Float64() * w.H}
	case 2: // top
		pos = Vec{w.rand.Float64() * w.W, -EnemyRadius}
	default: // bottom
		pos = Vec{w.rand.Float64() * w.W, w.H + EnemyRadius}
	}

	// drift toward a random point well inside the field so every spawn
	// eventually enters it
	margin := 0.2
	target := Vec{
		w.W * (margin + w.rand.Float64()*(1-2*margin)),
		w.H * (margin + w.rand.Float64()*(1-2*margin)),
	}
	dir := math.Atan2(target.Y-pos.Y, target.X-pos.X)

	w.seq++
	e := &Enemy{
		Pos:     pos,
		HP:      hp,
		MaxHP:   hp,
		Speed:   enemySpeedBase * mult,
		Glyph:   glyphs[w.rand.Intn(len(glyphs))],
		Pattern: Pattern(w.rand.Intn(4)),
		Dir:     dir,
		Seq:     w.seq,
		Alive:   true,
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

// SpawnWave spawns the level's enemy count, min(3+level/2, 10).
func (w *World) SpawnWave(level int) {
	n := 3 + level/2
	if n > maxWaveSize {
		n = maxWaveSize
	}
	for i := 0; i < n; i++ {
		w.SpawnEnemy(level)
	}
}

// AddExplosion emits a radial particle burst at p.
func (w *World) AddExplosion(p Vec, count int, speedMin, speedMax float64) {
	for i := 0; i < count; i++ {
		ang := w.rand.Float64() * 2 * math.Pi
		spd := speedMin + w.rand.Float64()*(speedMax-speedMin)
		life := 20 + w.rand.Intn(21)
		w.Particles = append(w.Particles, &Particle{
			Pos:  p,
			Vel:  Vec{math.Cos(ang) * spd, math.Sin(ang) * spd},
			Life: life,
			Max:  life,
		})
	}
}

// Tick advances every live entity by dt and drops terminal ones. A zero or
// negative dt is a no-op.
func (w *World) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if !e.Alive || e.HP <= 0 {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			continue
		}
		e.advance(dt, w.W, w.H)
	}

	w.TickParticles(dt)
}

// TickParticles steps only the cosmetic layer. Used on its own by the menu
// and game-over screens, where enemies are gone but embers keep drifting.
func (w *World) TickParticles(dt float64) {
	if dt <= 0 {
		return
	}
	for i := len(w.Particles) - 1; i >= 0; i-- {
		p := w.Particles[i]
		p.advance(dt)
		if p.Life <= 0 {
			w.Particles = append(w.Particles[:i], w.Particles[i+1:]...)
		}
	}
}

// Clear discards every live enemy and particle.
func (w *World) Clear() {
	w.Enemies = nil
	w.Particles = nil
}
