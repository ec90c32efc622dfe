package object

import (
	"fmt"

	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// AlienSize represents the size category of an alien saucer.
type AlienSize int

const (
	AlienBig AlienSize = iota
	AlienSmall
)

type alienClass struct {
	collisionRadius float64
	dirChange       float64 // Seconds between heading changes
	shotInterval    float64 // Seconds between shots
	speed           float64 // Displacement per tick
	drawScale       float64
}

var alienClasses = [...]alienClass{
	AlienBig:   {collisionRadius: config.Scale * 0.8, dirChange: 0.85, shotInterval: 1.25, speed: 3, drawScale: 1.0},
	AlienSmall: {collisionRadius: config.Scale * 0.5, dirChange: 0.35, shotInterval: 0.75, speed: 6, drawScale: 0.5},
}

func (s AlienSize) class() alienClass {
	if s < AlienBig || s > AlienSmall {
		panic(fmt.Sprintf("object: invalid alien size %d", int(s)))
	}
	return alienClasses[s]
}

func (s AlienSize) CollisionRadius() float64   { return s.class().collisionRadius }
func (s AlienSize) DirChangeInterval() float64 { return s.class().dirChange }
func (s AlienSize) ShotInterval() float64      { return s.class().shotInterval }
func (s AlienSize) Speed() float64             { return s.class().speed }

// DrawScale is the outline size relative to config.Scale.
func (s AlienSize) DrawScale() float64 { return s.class().drawScale }

func (s AlienSize) String() string {
	switch s {
	case AlienBig:
		return "big"
	case AlienSmall:
		return "small"
	default:
		return fmt.Sprintf("AlienSize(%d)", int(s))
	}
}

// Alien is an enemy saucer that wanders and shoots at the ship.
type Alien struct {
	Pos      physics.Vec2
	Dir      physics.Vec2 // Unit heading, zero until the first heading change
	Size     AlienSize
	LastDir  float64 // Time of the last heading change
	LastShot float64 // Time of the last shot
	Remove   bool
}

// Move advances the alien along its heading and wraps it.
func (a *Alien) Move() {
	a.Pos = Advance(a.Pos, a.Dir.Scale(a.Size.Speed()))
}

// Hits reports whether pos lies inside the alien's collision radius.
func (a *Alien) Hits(pos physics.Vec2) bool {
	return physics.Within(a.Pos, pos, a.Size.CollisionRadius())
}

// DueDirChange reports whether the heading interval has elapsed at now.
func (a *Alien) DueDirChange(now float64) bool {
	return now-a.LastDir > a.Size.DirChangeInterval()
}

// DueShot reports whether the shot interval has elapsed at now.
func (a *Alien) DueShot(now float64) bool {
	return now-a.LastShot > a.Size.ShotInterval()
}
