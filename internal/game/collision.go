package game

import (
	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// shipHitsAsteroid reports whether a live ship overlaps the asteroid.
func shipHitsAsteroid(s *object.Ship, a *object.Asteroid) bool {
	return !s.IsDead() && a.Hits(s.Pos)
}

// alienHitsAsteroid reports whether a live alien overlaps the asteroid.
func alienHitsAsteroid(al *object.Alien, a *object.Asteroid) bool {
	return !al.Remove && a.Hits(al.Pos)
}

// projectileHitsAsteroid ignores the grace window: a fresh projectile can
// still break an asteroid it was fired into.
func projectileHitsAsteroid(p *object.Projectile, a *object.Asteroid) bool {
	return !p.Remove && a.Hits(p.Pos)
}

func projectileHitsShip(p *object.Projectile, s *object.Ship, now float64) bool {
	return !p.Remove && p.Armed(now) && physics.Within(s.Pos, p.Pos, config.ShipHitRadius)
}

func projectileHitsAlien(p *object.Projectile, al *object.Alien, now float64) bool {
	return !p.Remove && p.Armed(now) && al.Hits(p.Pos)
}

func alienHitsShip(al *object.Alien, s *object.Ship) bool {
	return !al.Remove && !s.IsDead() && al.Hits(s.Pos)
}

// indexProjectiles rebuilds the projectile broad-phase grid.
func (w *World) indexProjectiles() {
	w.grid.Clear()
	for i, p := range w.projectiles.Items() {
		w.grid.Insert(p.Pos, i)
	}
}

// projectileHitting returns the lowest-index projectile that hits a, so
// the grid query resolves the same way a linear scan would.
func (w *World) projectileHitting(a *object.Asteroid) (int, bool) {
	best := -1
	w.grid.QueryAround(a.Pos, func(j int) bool {
		if (best < 0 || j < best) && projectileHitsAsteroid(w.projectiles.At(j), a) {
			best = j
		}
		return false
	})
	return best, best >= 0
}

// resolveAsteroid tests a against the ship, then every alien, then the
// projectiles. Every test is guarded by a.Remove, so the first collider
// wins and the asteroid is scored at most once.
func (w *World) resolveAsteroid(a *object.Asteroid) {
	if !a.Remove && shipHitsAsteroid(&w.ship, a) {
		w.ship.Kill(w.now)
		w.hitAsteroid(a, w.ship.Vel.NormalizeOrZero())
	}

	for i := range w.aliens.Len() {
		al := w.aliens.At(i)
		if !a.Remove && alienHitsAsteroid(al, a) {
			al.Remove = true
			w.hitAsteroid(a, al.Dir)
		}
	}

	if a.Remove {
		return
	}
	if j, ok := w.projectileHitting(a); ok {
		p := w.projectiles.At(j)
		p.Remove = true
		w.hitAsteroid(a, p.Vel.NormalizeOrZero())
	}
}

// hitAsteroid destroys a: it credits the score, flags it for removal, bursts
// sparks and queues the fragments. impact is the unit direction of whatever
// hit it.
func (w *World) hitAsteroid(a *object.Asteroid, impact physics.Vec2) {
	w.audio.Play(audio.Asteroid)
	w.score += a.Size.Score()
	a.Remove = true
	object.SpawnDots(&w.particles, w.rng, a.Pos, 10)

	child, ok := a.Size.Smaller()
	if !ok {
		return
	}
	dir := a.Vel.NormalizeOrZero()
	for range config.AsteroidSplitCount {
		speed := child.VelocityScale() * config.AsteroidSplitSpeed * w.rng.Float64()
		w.queueAsteroid(object.Asteroid{
			Pos:  a.Pos,
			Vel:  dir.Scale(speed).Add(impact.Scale(config.AsteroidImpactTransfer)),
			Size: child,
			Seed: w.rng.Uint64(),
		})
	}
}

// resolveAlien handles projectiles and the ship against one alien. A
// projectile destroys the alien; touching the ship kills only the ship.
func (w *World) resolveAlien(al *object.Alien) {
	if al.Remove {
		return
	}
	for i := range w.projectiles.Len() {
		p := w.projectiles.At(i)
		if projectileHitsAlien(p, al, w.now) {
			p.Remove = true
			al.Remove = true
			break
		}
	}

	if alienHitsShip(al, &w.ship) {
		w.ship.Kill(w.now)
	}
}

// resolveShip tests incoming projectiles against the live ship.
func (w *World) resolveShip() {
	for i := range w.projectiles.Len() {
		p := w.projectiles.At(i)
		if projectileHitsShip(p, &w.ship, w.now) {
			p.Remove = true
			w.ship.Kill(w.now)
			return
		}
	}
}
