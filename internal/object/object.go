// Package object defines the simulated entities (ship, asteroids, aliens,
// projectiles, particles), their size-class tables and the bounded
// collections that hold them.
package object

import (
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Advance moves pos by one tick of vel and wraps it around the field (Asteroids-style).
func Advance(pos, vel physics.Vec2) physics.Vec2 {
	return pos.Add(vel).Wrap(config.FieldWidth, config.FieldHeight)
}

// FieldCenter returns the middle of the play field.
func FieldCenter() physics.Vec2 {
	return physics.Vec2{X: config.FieldWidth / 2, Y: config.FieldHeight / 2}
}

// InField reports whether pos lies inside [0, width) x [0, height).
func InField(pos physics.Vec2) bool {
	return pos.X >= 0 && pos.X < config.FieldWidth && pos.Y >= 0 && pos.Y < config.FieldHeight
}
