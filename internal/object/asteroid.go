package object

import (
	"fmt"

	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidBig    AsteroidSize = 3
)

// asteroidClass holds the fixed properties of one size category.
type asteroidClass struct {
	size           float64 // Visual radius
	velocityScale  float64
	collisionScale float64
	score          int
}

var asteroidClasses = [...]asteroidClass{
	AsteroidSmall:  {size: config.Scale * 0.8, velocityScale: 3.0, collisionScale: 1.0, score: 100},
	AsteroidMedium: {size: config.Scale * 1.4, velocityScale: 1.8, collisionScale: 0.65, score: 50},
	AsteroidBig:    {size: config.Scale * 3.0, velocityScale: 0.75, collisionScale: 0.4, score: 20},
}

func (s AsteroidSize) class() asteroidClass {
	if s < AsteroidSmall || s > AsteroidBig {
		panic(fmt.Sprintf("object: invalid asteroid size %d", int(s)))
	}
	return asteroidClasses[s]
}

// Radius returns the visual radius used for drawing.
func (s AsteroidSize) Radius() float64 { return s.class().size }

// VelocityScale returns the speed factor for spawns of this size.
func (s AsteroidSize) VelocityScale() float64 { return s.class().velocityScale }

// CollisionScale returns the fraction of Radius that counts as a hit.
func (s AsteroidSize) CollisionScale() float64 { return s.class().collisionScale }

// CollisionRadius is Radius scaled by CollisionScale.
func (s AsteroidSize) CollisionRadius() float64 {
	c := s.class()
	return c.size * c.collisionScale
}

// Score returns the points awarded for destroying an asteroid of this size.
func (s AsteroidSize) Score() int { return s.class().score }

// Smaller returns the size of the fragments. ok is false for AsteroidSmall,
// which never splits.
func (s AsteroidSize) Smaller() (size AsteroidSize, ok bool) {
	s.class()
	if s == AsteroidSmall {
		return 0, false
	}
	return s - 1, true
}

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidBig:
		return "big"
	default:
		return fmt.Sprintf("AsteroidSize(%d)", int(s))
	}
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	Pos    physics.Vec2
	Vel    physics.Vec2 // Displacement per tick
	Size   AsteroidSize
	Seed   uint64 // Shape seed, see AsteroidShape; never used for physics
	Remove bool   // Flagged by the resolver, swept in the same tick
}

// Move advances the asteroid by one tick and wraps it.
func (a *Asteroid) Move() {
	a.Pos = Advance(a.Pos, a.Vel)
}

// Hits reports whether pos lies inside the asteroid's collision radius.
func (a *Asteroid) Hits(pos physics.Vec2) bool {
	return physics.Within(a.Pos, pos, a.Size.CollisionRadius())
}
