package object

import (
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Projectile is a bullet fired by the ship or an alien.
type Projectile struct {
	Pos    physics.Vec2
	Vel    physics.Vec2 // Displacement per tick
	TTL    float64      // Seconds remaining before removal
	Spawn  float64      // Time the projectile was fired
	Remove bool
}

// NewProjectile creates a projectile at pos traveling along the unit vector
// dir at speed, fired at time now. pos is wrapped into the field.
func NewProjectile(pos, dir physics.Vec2, speed, now float64) Projectile {
	return Projectile{
		Pos:   pos.Wrap(config.FieldWidth, config.FieldHeight),
		Vel:   dir.Scale(speed),
		TTL:   config.ProjectileTTL,
		Spawn: now,
	}
}

// Armed reports whether the grace window has passed, so the projectile can
// hit a ship or an alien (including whoever fired it).
func (p *Projectile) Armed(now float64) bool {
	return now-p.Spawn > config.ProjectileGrace
}

// Move advances the projectile by one tick and wraps it.
func (p *Projectile) Move() {
	p.Pos = Advance(p.Pos, p.Vel)
}

// Age spends dt of the projectile's lifetime. Returns true if the projectile
// should be removed (expired or flagged).
func (p *Projectile) Age(dt float64) bool {
	if p.Remove || p.TTL <= dt {
		return true
	}
	p.TTL -= dt
	return false
}
