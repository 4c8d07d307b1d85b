package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Particle is a short-lived visual effect with no gameplay effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // ticks left
	Color  core.Color
}

// Emitter spawns particle bursts from a seeded RNG so runs replay identically.
type Emitter struct {
	cfg config.ParticleConfig
	rng *rand.Rand
}

// NewEmitter creates an emitter seeded for deterministic bursts.
func NewEmitter(cfg config.ParticleConfig, seed int64) *Emitter {
	return &Emitter{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Burst appends count particles at (x, y) to dst and returns the grown slice.
func (e *Emitter) Burst(dst []Particle, x, y float64, count int, c core.Color) []Particle {
	for range count {
		p := Particle{
			X:     x,
			Y:     y,
			VX:    e.spread(),
			VY:    e.spread() - e.cfg.Lift,
			Life:  e.cfg.MinLife,
			Color: c,
		}
		if e.cfg.LifeRange > 0 {
			p.Life += e.rng.Intn(e.cfg.LifeRange)
		}
		if p.Life < 1 {
			p.Life = 1
		}
		dst = append(dst, p)
	}
	return dst
}

// spread returns a uniform value in [-Spread, Spread).
func (e *Emitter) spread() float64 {
	return (e.rng.Float64()*2 - 1) * e.cfg.Spread
}

// updateParticles advances every particle one tick and drops expired ones in place.
func updateParticles(ps []Particle, gravity float64) []Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	return alive
}
