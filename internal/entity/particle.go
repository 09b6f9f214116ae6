package entity

// Particle is purely cosmetic: it drifts under drag until its life runs out.
type Particle struct {
	Pos  Vec
	Vel  Vec
	Life int // remaining ticks
	Max  int
}

const particleDrag = 0.96

func (p *Particle) advance(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel = p.Vel.Scale(particleDrag)
	p.Life--
}
