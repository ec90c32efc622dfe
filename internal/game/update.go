package game

import (
	"math"

	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/input"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Update advances the world by one tick. now is the elapsed time in seconds
// and must be > 0 and non-decreasing; delta is derived from the previous call.
func (w *World) Update(now float64, in input.Source) {
	w.delta = now - w.now
	w.now = now

	if w.reset {
		w.reset = false
		if w.onGameOver != nil {
			w.onGameOver(w.score)
		}
		w.resetGame()
	}

	if w.ship.IsDead() {
		w.ship.Thrusting = false
	} else {
		w.updateShip(in)
		w.resolveShip()
	}

	w.drainQueue()
	w.updateAsteroids()

	w.particles.Sweep(func(p *object.Particle) bool {
		return p.Age(w.delta)
	})
	w.projectiles.Sweep(func(p *object.Projectile) bool {
		p.Move()
		return p.Age(w.delta)
	})

	w.updateAliens()

	if w.ship.IsDead() && w.ship.DeathTime == w.now {
		w.audio.Play(audio.Explode)
		object.SpawnDots(&w.particles, w.rng, w.ship.Pos, 20)
		object.SpawnLines(&w.particles, w.rng, w.ship.Pos, 5)
	}
	if w.ship.IsDead() && w.now-w.ship.DeathTime > config.RespawnDelay {
		w.resetStage()
	}

	w.heartbeat()

	if w.asteroids.Len() == 0 && w.queue.Len() == 0 && w.aliens.Len() == 0 {
		w.resetAsteroids()
	}
	w.spawnAliens()

	w.frame++
}

// updateShip applies steering, thrust, drag and fire to the live ship.
func (w *World) updateShip(in input.Source) {
	s := &w.ship
	turn := 2 * math.Pi * config.ShipRotationSpeed * w.delta
	if in.Held(input.Left) {
		s.Rot -= turn
	}
	if in.Held(input.Right) {
		s.Rot += turn
	}

	facing := s.Facing()
	s.Thrusting = in.Held(input.Thrust)
	if s.Thrusting {
		s.Vel = s.Vel.Add(facing.Scale(config.ShipThrust * w.delta))
		if w.frame%2 == 0 {
			w.audio.Play(audio.Thrust)
		}
	}

	s.Vel = s.Vel.Scale(config.ShipDrag)
	s.Pos = object.Advance(s.Pos, s.Vel)

	if in.Pressed(input.Fire) {
		w.projectiles.Push(object.NewProjectile(s.Nose(), facing, config.ShipProjectileSpeed, w.now))
		w.audio.Play(audio.Shoot)
		s.Vel = s.Vel.Add(facing.Scale(-config.ShipRecoil))
	}
}

// updateAsteroids moves every asteroid, resolves its collisions and then
// sweeps the destroyed ones.
func (w *World) updateAsteroids() {
	w.indexProjectiles()
	for i := range w.asteroids.Len() {
		a := w.asteroids.At(i)
		a.Move()
		w.resolveAsteroid(a)
	}
	w.asteroids.Sweep(func(a *object.Asteroid) bool {
		return a.Remove
	})
}

// updateAliens resolves collisions, steers and fires every alien, then
// sweeps the destroyed ones with a burst.
func (w *World) updateAliens() {
	for i := range w.aliens.Len() {
		al := w.aliens.At(i)
		w.resolveAlien(al)
		if al.Remove {
			continue
		}

		if al.DueDirChange(w.now) {
			al.Dir = physics.FromAngle(2 * math.Pi * w.rng.Float64())
			al.LastDir = w.now
		}
		al.Move()

		if al.DueShot(w.now) {
			dir := w.ship.Pos.Sub(al.Pos).NormalizeOrZero()
			muzzle := al.Pos.Add(dir.Scale(config.ProjectileMuzzle))
			w.projectiles.Push(object.NewProjectile(muzzle, dir, config.AlienProjectileSpeed, w.now))
			w.audio.Play(audio.Shoot)
			al.LastShot = w.now
		}
	}

	w.aliens.Sweep(func(al *object.Alien) bool {
		if !al.Remove {
			return false
		}
		w.audio.Play(audio.Asteroid)
		object.SpawnDots(&w.particles, w.rng, al.Pos, 15)
		object.SpawnLines(&w.particles, w.rng, al.Pos, 4)
		return true
	})
}

// bloopModulus returns the number of frames between bloops after elapsed
// seconds of stage time: 60, 30, 15, then 7.
func bloopModulus(elapsed float64) uint64 {
	intensity := min(int(elapsed)/config.BloopStageSeconds, config.BloopMaxIntensity)
	return uint64(config.BloopBaseModulus >> intensity)
}

// heartbeat advances the ambient bloop and plays it while the ship lives.
func (w *World) heartbeat() {
	if w.frame%bloopModulus(w.now-w.stageStart) == 0 {
		w.bloop++
	}

	if !w.ship.IsDead() && w.bloop != w.lastBloop {
		if w.bloop%2 == 1 {
			w.audio.Play(audio.BloopHi)
		} else {
			w.audio.Play(audio.BloopLo)
		}
	}
	w.lastBloop = w.bloop
}
