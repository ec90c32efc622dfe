package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// ParticleKind selects which payload of a Particle is meaningful.
type ParticleKind int

const (
	ParticleLine ParticleKind = iota // Rotating line segment (debris)
	ParticleDot                      // Shrinking dot (sparks)
)

// LineParticle is the payload of a ParticleLine.
type LineParticle struct {
	Rot    float64
	Length float64
}

// DotParticle is the payload of a ParticleDot.
type DotParticle struct {
	Radius float64 // Radius at spawn
}

// Particle is a short-lived visual effect. It never collides.
type Particle struct {
	Pos    physics.Vec2
	Vel    physics.Vec2
	TTL    float64 // Seconds remaining
	MaxTTL float64 // Lifetime at spawn (for shrinking)
	Kind   ParticleKind
	Line   LineParticle // Valid when Kind == ParticleLine
	Dot    DotParticle  // Valid when Kind == ParticleDot
}

// Age moves the particle, wraps it and spends dt of its lifetime.
// Returns true once the particle has expired.
func (p *Particle) Age(dt float64) bool {
	p.Pos = Advance(p.Pos, p.Vel)
	if p.TTL <= dt {
		p.TTL = 0
		return true
	}
	p.TTL -= dt
	return false
}

// DotRadius returns the current radius of a dot, shrinking linearly to zero
// over its lifetime.
func (p *Particle) DotRadius() float64 {
	if p.MaxTTL <= 0 {
		return p.Dot.Radius
	}
	return p.Dot.Radius * math.Max(p.TTL/p.MaxTTL, 0)
}

// SpawnDots bursts count spark particles around pos. Particles that do not
// fit in the collection are dropped.
func SpawnDots(particles *Bounded[Particle], rng *rand.Rand, pos physics.Vec2, count int) {
	for range count {
		angle := 2 * math.Pi * rng.Float64()
		ttl := 0.5 + 0.4*rng.Float64()
		particles.Push(Particle{
			Pos:    jitter(rng, pos),
			Vel:    physics.FromAngle(angle).Scale(2.0 + 4.0*rng.Float64()),
			TTL:    ttl,
			MaxTTL: ttl,
			Kind:   ParticleDot,
			Dot:    DotParticle{Radius: config.Scale * 0.05},
		})
	}
}

// SpawnLines bursts count debris segments around pos.
func SpawnLines(particles *Bounded[Particle], rng *rand.Rand, pos physics.Vec2, count int) {
	for range count {
		angle := 2 * math.Pi * rng.Float64()
		ttl := 3.0 + rng.Float64()
		particles.Push(Particle{
			Pos:    jitter(rng, pos),
			Vel:    physics.FromAngle(angle).Scale(2.0 * rng.Float64()),
			TTL:    ttl,
			MaxTTL: ttl,
			Kind:   ParticleLine,
			Line: LineParticle{
				Rot:    2 * math.Pi * rng.Float64(),
				Length: config.Scale * (0.6 + 0.4*rng.Float64()),
			},
		})
	}
}

func jitter(rng *rand.Rand, pos physics.Vec2) physics.Vec2 {
	return pos.Add(physics.Vec2{X: rng.Float64() * 3, Y: rng.Float64() * 3}).
		Wrap(config.FieldWidth, config.FieldHeight)
}
