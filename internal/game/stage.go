package game

import (
	"math"

	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// spawnClearance keeps stage asteroids from appearing on top of the
// respawned ship at the field center.
const spawnClearance = config.Scale * 4

// resetStage spends a life for a dead ship (or schedules a full reset when
// none are left) and puts a fresh ship at the field center.
func (w *World) resetStage() {
	if w.ship.IsDead() {
		if w.lives == 0 {
			w.reset = true
		} else {
			w.lives--
		}
	}
	w.ship = object.NewShip(object.FieldCenter())
}

// resetAsteroids replaces the asteroid field with a new wave. The wave grows
// by one asteroid per ScorePerExtraAsteroid points.
func (w *World) resetAsteroids() {
	w.asteroids.Clear()
	w.queue.Clear()

	count := min(config.StageBaseAsteroids+w.score/config.ScorePerExtraAsteroid, config.AsteroidCapacity)
	center := object.FieldCenter()
	for range count {
		pos := w.randomPos()
		for physics.Within(pos, center, spawnClearance) {
			pos = w.randomPos()
		}
		size := object.AsteroidSize(1 + w.rng.IntN(3))
		speed := size.VelocityScale() * config.AsteroidSpawnSpeed * w.rng.Float64()
		w.queueAsteroid(object.Asteroid{
			Pos:  pos,
			Vel:  physics.FromAngle(2 * math.Pi * w.rng.Float64()).Scale(speed),
			Size: size,
			Seed: w.rng.Uint64(),
		})
	}
	w.stageStart = w.now
}

// resetGame starts a new game. Aliens, projectiles and the alien score
// baseline are cleared along with the score so the next game starts clean.
func (w *World) resetGame() {
	w.lives = config.InitialLives
	w.score = 0
	w.lastScore = 0
	w.aliens.Clear()
	w.projectiles.Clear()
	w.resetStage()
	w.resetAsteroids()
}

// spawnAliens enters a saucer for every score threshold crossed this tick.
func (w *World) spawnAliens() {
	if w.lastScore/config.BigAlienScoreStep != w.score/config.BigAlienScoreStep {
		w.spawnAlien(object.AlienBig)
	}
	if w.lastScore/config.SmallAlienScoreStep != w.score/config.SmallAlienScoreStep {
		w.spawnAlien(object.AlienSmall)
	}
	w.lastScore = w.score
}

// spawnAlien enters an alien at a random height on the left or right edge.
// It picks a heading on its first tick and holds fire for one shot interval.
func (w *World) spawnAlien(size object.AlienSize) {
	x := 0.0
	if w.rng.IntN(2) == 1 {
		x = config.FieldWidth - config.Scale
	}
	w.aliens.Push(object.Alien{
		Pos:      physics.Vec2{X: x, Y: w.rng.Float64() * config.FieldHeight},
		Size:     size,
		LastShot: w.now,
	})
}
