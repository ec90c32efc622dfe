package object

import (
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Pos       physics.Vec2
	Vel       physics.Vec2 // Displacement per tick
	Rot       float64      // Radians, 0 = nose pointing up, increases clockwise
	DeathTime float64      // 0 while alive, otherwise the time of death
	Thrusting bool         // Thrust held this tick (drives the flame)
}

// NewShip creates a live ship at rest at pos.
func NewShip(pos physics.Vec2) Ship {
	return Ship{Pos: pos}
}

// IsDead reports whether the ship has a recorded death time.
func (s *Ship) IsDead() bool {
	return s.DeathTime != 0
}

// Kill records the time of death.
func (s *Ship) Kill(now float64) {
	s.DeathTime = now
}

// Facing returns the unit vector the nose points along.
func (s *Ship) Facing() physics.Vec2 {
	return physics.Vec2{X: 0, Y: -1}.Rotate(s.Rot)
}

// Nose returns the muzzle position projectiles spawn from.
func (s *Ship) Nose() physics.Vec2 {
	return s.Pos.Add(s.Facing().Scale(config.ProjectileMuzzle))
}
