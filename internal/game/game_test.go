package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/input"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

const tick = 1.0 / 60

// cueRecorder records every cue the world plays.
type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(c audio.Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c audio.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newTestWorld() (*World, *cueRecorder) {
	rec := &cueRecorder{}
	return NewWorld(Options{Seed: 7, Audio: rec}), rec
}

// parkedPos is far from the field center where the ship spawns.
var parkedPos = physics.Vec2{X: 40, Y: 40}

// clearField empties every collection and parks one motionless small
// asteroid in a corner so the stage does not repopulate.
func clearField(w *World) {
	w.asteroids.Clear()
	w.queue.Clear()
	w.aliens.Clear()
	w.projectiles.Clear()
	w.particles.Clear()
	w.asteroids.Push(object.Asteroid{Pos: parkedPos, Size: object.AsteroidSmall, Seed: 1})
}

func stillProjectile(pos physics.Vec2, spawn float64) object.Projectile {
	return object.Projectile{Pos: pos, TTL: config.ProjectileTTL, Spawn: spawn}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewWorldStartsGame(t *testing.T) {
	w, _ := newTestWorld()
	if w.Lives() != config.InitialLives || w.Score() != 0 {
		t.Errorf("expected %d lives and score 0, got %d and %d", config.InitialLives, w.Lives(), w.Score())
	}
	if w.Queued() != config.StageBaseAsteroids || len(w.Asteroids()) != 0 {
		t.Errorf("expected %d queued asteroids, got %d queued and %d active", config.StageBaseAsteroids, w.Queued(), len(w.Asteroids()))
	}
	if s := w.Ship(); s.IsDead() || s.Pos != object.FieldCenter() {
		t.Errorf("expected live ship at center, got %+v", s)
	}

	w.Update(tick, input.State{})
	if len(w.Asteroids()) != config.StageBaseAsteroids {
		t.Errorf("expected queue drained into %d asteroids, got %d", config.StageBaseAsteroids, len(w.Asteroids()))
	}
	for _, a := range w.Asteroids() {
		if physics.Within(a.Pos, object.FieldCenter(), a.Size.CollisionRadius()) {
			t.Errorf("asteroid spawned on top of the ship at %v", a.Pos)
		}
	}
}

func TestScenarioFieldExhaustion(t *testing.T) {
	w, _ := newTestWorld()
	w.asteroids.Clear()
	w.queue.Clear()

	w.asteroids.Push(object.Asteroid{
		Pos:  physics.Vec2{X: 300, Y: 300},
		Vel:  physics.Vec2{X: 1.5},
		Size: object.AsteroidBig,
		Seed: 99,
	})
	hitPos := physics.Vec2{X: 301.5, Y: 300}
	w.projectiles.Push(stillProjectile(hitPos, 0))

	w.Update(tick, input.State{})

	if w.Score() != 20 {
		t.Errorf("expected score 20, got %d", w.Score())
	}
	if len(w.Asteroids()) != 0 || w.Queued() != 2 {
		t.Fatalf("expected 0 active and 2 queued asteroids (no repopulation), got %d and %d", len(w.Asteroids()), w.Queued())
	}

	children := w.queue.Items()
	for _, c := range children {
		if c.Size != object.AsteroidMedium {
			t.Errorf("expected medium child, got %v", c.Size)
		}
		if c.Pos != hitPos {
			t.Errorf("expected child at parent's last position %v, got %v", hitPos, c.Pos)
		}
		if c.Seed == 99 {
			t.Error("child should draw a fresh seed")
		}
	}
	if children[0].Seed == children[1].Seed {
		t.Error("children should have distinct seeds")
	}

	w.Update(2*tick, input.State{})
	if len(w.Asteroids()) != 2 || w.Queued() != 0 {
		t.Errorf("expected children to enter the field, got %d active, %d queued", len(w.Asteroids()), w.Queued())
	}
}

func TestScenarioFullDepletion(t *testing.T) {
	w, _ := newTestWorld()
	w.asteroids.Clear()
	w.queue.Clear()
	w.aliens.Clear()
	w.score, w.lastScore = 3000, 3000

	pos := physics.Vec2{X: 300, Y: 300}
	w.asteroids.Push(object.Asteroid{Pos: pos, Size: object.AsteroidSmall, Seed: 3})
	w.projectiles.Push(stillProjectile(pos, 0))

	w.Update(tick, input.State{})

	want := min(config.StageBaseAsteroids+3100/config.ScorePerExtraAsteroid, config.AsteroidCapacity)
	if w.Score() != 3100 {
		t.Fatalf("expected score 3100, got %d", w.Score())
	}
	if w.Queued() != want || len(w.Asteroids()) != 0 {
		t.Fatalf("expected %d queued asteroids after depletion, got %d queued, %d active", want, w.Queued(), len(w.Asteroids()))
	}
	if w.stageStart != tick {
		t.Errorf("expected stage start %f, got %f", tick, w.stageStart)
	}

	w.Update(2*tick, input.State{})
	if len(w.Asteroids()) != want {
		t.Errorf("expected %d asteroids in play on the next tick, got %d", want, len(w.Asteroids()))
	}
}

func TestResetAsteroidsCapped(t *testing.T) {
	w, _ := newTestWorld()
	w.score = 1_000_000
	w.resetAsteroids()
	if w.Queued() != config.AsteroidCapacity {
		t.Errorf("expected wave capped at %d, got %d", config.AsteroidCapacity, w.Queued())
	}
}

func TestNoDoubleScoring(t *testing.T) {
	t.Run("alien before projectiles", func(t *testing.T) {
		w, rec := newTestWorld()
		clearField(w)
		pos := physics.Vec2{X: 300, Y: 300}
		w.asteroids.Push(object.Asteroid{Pos: pos, Size: object.AsteroidBig, Seed: 5})
		w.aliens.Push(object.Alien{Pos: pos, Size: object.AlienBig})
		w.projectiles.Push(stillProjectile(pos, 0))
		w.projectiles.Push(stillProjectile(pos, 0))

		w.Update(tick, input.State{})

		if w.Score() != 20 {
			t.Errorf("expected asteroid scored once (20), got %d", w.Score())
		}
		if w.Queued() != 2 {
			t.Errorf("expected exactly one split, got %d children", w.Queued())
		}
		if len(w.Aliens()) != 0 {
			t.Error("alien that hit the asteroid should be destroyed")
		}
		if len(w.Projectiles()) != 2 {
			t.Errorf("projectiles should not be consumed after the alien won, got %d left", len(w.Projectiles()))
		}
		if got := rec.count(audio.Asteroid); got != 2 {
			t.Errorf("expected 2 asteroid cues (rock + alien), got %d", got)
		}
	})

	t.Run("lowest projectile wins", func(t *testing.T) {
		w, _ := newTestWorld()
		clearField(w)
		pos := physics.Vec2{X: 300, Y: 300}
		w.asteroids.Push(object.Asteroid{Pos: pos, Size: object.AsteroidMedium, Seed: 5})
		w.projectiles.Push(stillProjectile(pos, 0))
		w.projectiles.Push(stillProjectile(pos.Add(physics.Vec2{X: 5}), 0))

		w.Update(tick, input.State{})

		if w.Score() != 50 {
			t.Errorf("expected 50, got %d", w.Score())
		}
		left := w.Projectiles()
		if len(left) != 1 || left[0].Pos.X != 305 {
			t.Errorf("expected only the second projectile to survive, got %+v", left)
		}
	})

	t.Run("ship before projectiles", func(t *testing.T) {
		w, _ := newTestWorld()
		clearField(w)
		center := object.FieldCenter()
		w.asteroids.Push(object.Asteroid{Pos: center, Size: object.AsteroidSmall, Seed: 5})
		w.projectiles.Push(stillProjectile(center.Add(physics.Vec2{Y: 60}), 0))
		w.projectiles.Push(stillProjectile(center, 0))

		w.Update(tick, input.State{})

		if !w.ship.IsDead() {
			t.Error("ship should die hitting the asteroid")
		}
		if w.Score() != 100 {
			t.Errorf("expected 100, got %d", w.Score())
		}
		if len(w.Projectiles()) != 2 {
			t.Errorf("expected both projectiles to survive, got %d", len(w.Projectiles()))
		}
	})
}

func TestSplitConservation(t *testing.T) {
	tests := []struct {
		size     object.AsteroidSize
		score    int
		children int
		child    object.AsteroidSize
	}{
		{object.AsteroidBig, 20, 2, object.AsteroidMedium},
		{object.AsteroidMedium, 50, 2, object.AsteroidSmall},
		{object.AsteroidSmall, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			w, _ := newTestWorld()
			w.asteroids.Clear()
			w.queue.Clear()
			w.particles.Clear()

			a := object.Asteroid{Pos: physics.Vec2{X: 10, Y: 20}, Vel: physics.Vec2{X: 3, Y: 4}, Size: tt.size}
			w.hitAsteroid(&a, physics.Vec2{Y: 1})

			if !a.Remove {
				t.Error("expected asteroid flagged for removal")
			}
			if w.Score() != tt.score {
				t.Errorf("expected score %d, got %d", tt.score, w.Score())
			}
			if w.Queued() != tt.children {
				t.Fatalf("expected %d children, got %d", tt.children, w.Queued())
			}
			for _, c := range w.queue.Items() {
				if c.Size != tt.child {
					t.Errorf("expected child size %v, got %v", tt.child, c.Size)
				}
				// Parent direction plus 70% of the impact.
				maxSpeed := tt.child.VelocityScale() * config.AsteroidSplitSpeed
				base := c.Vel.Sub(physics.Vec2{Y: config.AsteroidImpactTransfer})
				if base.Length() > maxSpeed+1e-9 {
					t.Errorf("child speed %f exceeds %f", base.Length(), maxSpeed)
				}
				if base.Length() > 1e-9 && math.Abs(base.NormalizeOrZero().Sub(physics.Vec2{X: 0.6, Y: 0.8}).Length()) > 1e-9 {
					t.Errorf("child should travel along the parent direction, got %v", base)
				}
			}
			if len(w.Particles()) != 10 {
				t.Errorf("expected 10 dot particles, got %d", len(w.Particles()))
			}
		})
	}
}

func TestAsteroidCapacityGate(t *testing.T) {
	w, _ := newTestWorld()
	w.asteroids.Clear()
	w.queue.Clear()

	pos := physics.Vec2{X: 100, Y: 100}
	for range config.AsteroidCapacity - 1 {
		w.asteroids.Push(object.Asteroid{Pos: pos, Size: object.AsteroidBig})
	}
	w.projectiles.Push(stillProjectile(pos, 0))

	w.Update(tick, input.State{})

	if w.Score() != 20 {
		t.Errorf("expected one projectile to score once, got %d", w.Score())
	}
	if w.Queued() != 1 {
		t.Errorf("expected one child to fit under the cap, got %d", w.Queued())
	}
	if total := len(w.Asteroids()) + w.Queued(); total > config.AsteroidCapacity {
		t.Errorf("asteroids plus queue %d exceed capacity", total)
	}

	for w.asteroids.Len() < config.AsteroidCapacity {
		w.asteroids.Push(object.Asteroid{Pos: pos, Size: object.AsteroidSmall})
	}
	w.queue.Clear()
	if w.queueAsteroid(object.Asteroid{Size: object.AsteroidSmall}) {
		t.Error("queue should reject spawns when the field is full")
	}
}

func TestAlienThresholds(t *testing.T) {
	tests := []struct {
		before, after int
		big, small    int
	}{
		{4990, 5090, 1, 0},
		{7990, 8090, 0, 1},
		{9950, 10050, 1, 0},
		{15990, 16090, 0, 1},
		{39990, 40090, 1, 1},
		{100, 200, 0, 0},
	}
	for _, tt := range tests {
		w, _ := newTestWorld()
		w.lastScore, w.score = tt.before, tt.after
		w.spawnAliens()

		big, small := 0, 0
		for _, a := range w.Aliens() {
			switch a.Size {
			case object.AlienBig:
				big++
			case object.AlienSmall:
				small++
			}
			if a.Pos.X != 0 && a.Pos.X != config.FieldWidth-config.Scale {
				t.Errorf("alien should enter on an edge, got x=%f", a.Pos.X)
			}
			if !object.InField(a.Pos) {
				t.Errorf("alien spawned outside the field at %v", a.Pos)
			}
		}
		if big != tt.big || small != tt.small {
			t.Errorf("%d -> %d: expected %d big and %d small, got %d and %d", tt.before, tt.after, tt.big, tt.small, big, small)
		}
		if w.lastScore != tt.after {
			t.Errorf("expected baseline updated to %d, got %d", tt.after, w.lastScore)
		}
	}
}

func TestAlienSpawnsFromScore(t *testing.T) {
	w, _ := newTestWorld()
	clearField(w)
	w.score, w.lastScore = 4950, 4950

	pos := physics.Vec2{X: 300, Y: 300}
	w.asteroids.Push(object.Asteroid{Pos: pos, Size: object.AsteroidSmall})
	w.projectiles.Push(stillProjectile(pos, 0))
	w.Update(tick, input.State{})

	if len(w.Aliens()) != 1 || w.Aliens()[0].Size != object.AlienBig {
		t.Errorf("expected one big alien after crossing 5000, got %+v", w.Aliens())
	}
}

func TestShipLifecycle(t *testing.T) {
	w, rec := newTestWorld()
	clearField(w)

	w.ship.Kill(1.0)
	w.Update(1.0, input.State{})
	if got := rec.count(audio.Explode); got != 1 {
		t.Errorf("expected explosion cue on the tick of death, got %d", got)
	}
	if len(w.Particles()) != 25 {
		t.Errorf("expected 20 dots and 5 lines, got %d particles", len(w.Particles()))
	}

	w.Update(4.0, input.State{})
	if !w.ship.IsDead() || w.Lives() != 3 {
		t.Fatalf("ship must stay dead until more than %.1fs have passed", config.RespawnDelay)
	}

	w.Update(4.01, input.State{})
	if w.ship.IsDead() || w.Lives() != 2 {
		t.Fatalf("expected respawn with 2 lives, got dead=%v lives=%d", w.ship.IsDead(), w.Lives())
	}
	if w.ship.Pos != object.FieldCenter() || w.ship.Vel != (physics.Vec2{}) || w.ship.Rot != 0 {
		t.Errorf("expected fresh ship at center, got %+v", w.ship)
	}
	if got := rec.count(audio.Explode); got != 1 {
		t.Errorf("explosion should play once per death, got %d", got)
	}
}

func TestGameOverResetsGame(t *testing.T) {
	var final []int
	w := NewWorld(Options{Seed: 3, OnGameOver: func(score int) { final = append(final, score) }})
	clearField(w)
	w.lives = 0
	w.score, w.lastScore = 1234, 1234

	w.ship.Kill(1.0)
	w.Update(1.0, input.State{})
	w.Update(4.5, input.State{})
	if !w.reset || w.Lives() != 0 {
		t.Fatalf("expected pending reset with 0 lives, got reset=%v lives=%d", w.reset, w.Lives())
	}

	w.Update(4.5+tick, input.State{})
	if w.reset {
		t.Error("reset flag should be cleared")
	}
	if w.Lives() != config.InitialLives || w.Score() != 0 {
		t.Errorf("expected %d lives and score 0, got %d and %d", config.InitialLives, w.Lives(), w.Score())
	}
	if len(final) != 1 || final[0] != 1234 {
		t.Errorf("expected game over hook with 1234, got %v", final)
	}
	if len(w.Asteroids()) != config.StageBaseAsteroids {
		t.Errorf("expected a fresh wave of %d, got %d", config.StageBaseAsteroids, len(w.Asteroids()))
	}
}

func TestProjectileGraceWindow(t *testing.T) {
	w, _ := newTestWorld()
	clearField(w)
	w.projectiles.Push(stillProjectile(object.FieldCenter(), 1.0))

	w.Update(1.1, input.State{})
	if w.ship.IsDead() {
		t.Fatal("projectile inside its grace window must not hit the ship")
	}

	w.Update(1.2, input.State{})
	if !w.ship.IsDead() || w.ship.DeathTime != 1.2 {
		t.Errorf("expected ship killed at 1.2, got death time %f", w.ship.DeathTime)
	}
}

func TestFireAndRecoil(t *testing.T) {
	w, rec := newTestWorld()
	clearField(w)

	w.Update(tick, input.State{}.With(input.Fire, false))
	if len(w.Projectiles()) != 0 {
		t.Fatal("holding fire without a new press must not shoot")
	}

	w.Update(2*tick, input.State{}.With(input.Fire, true))
	if len(w.Projectiles()) != 1 {
		t.Fatalf("expected one projectile, got %d", len(w.Projectiles()))
	}
	p := w.Projectiles()[0]
	if !near(p.Vel.X, 0) || !near(p.Vel.Y, -config.ShipProjectileSpeed) {
		t.Errorf("expected projectile fired up at speed %f, got %v", config.ShipProjectileSpeed, p.Vel)
	}
	wantY := object.FieldCenter().Y - config.ProjectileMuzzle - config.ShipProjectileSpeed
	if !near(p.Pos.Y, wantY) {
		t.Errorf("expected projectile at y=%f after one move, got %f", wantY, p.Pos.Y)
	}
	if !near(w.ship.Vel.Y, config.ShipRecoil) {
		t.Errorf("expected recoil %f, got %v", config.ShipRecoil, w.ship.Vel)
	}
	if rec.count(audio.Shoot) != 1 {
		t.Errorf("expected one shoot cue, got %d", rec.count(audio.Shoot))
	}
}

func TestSteeringAndThrust(t *testing.T) {
	w, rec := newTestWorld()
	clearField(w)

	w.Update(0.25, input.State{}.With(input.Right, false))
	if !near(w.ship.Rot, math.Pi) {
		t.Errorf("expected half a turn after 0.25s, got %f", w.ship.Rot)
	}

	w.ship.Rot = 0
	w.Update(0.5, input.State{}.With(input.Thrust, false))
	if !w.ship.Thrusting {
		t.Error("expected thrusting flag")
	}
	wantVel := -config.ShipThrust * 0.25 * config.ShipDrag
	if !near(w.ship.Vel.Y, wantVel) {
		t.Errorf("expected velocity %f, got %v", wantVel, w.ship.Vel)
	}
	// Frame 1 is odd, so no thrust cue yet.
	if rec.count(audio.Thrust) != 0 {
		t.Errorf("thrust cue should only play on even frames, got %d", rec.count(audio.Thrust))
	}
	w.Update(0.5+tick, input.State{}.With(input.Thrust, false))
	if rec.count(audio.Thrust) != 1 {
		t.Errorf("expected thrust cue on frame 2, got %d", rec.count(audio.Thrust))
	}

	w.Update(0.5+2*tick, input.State{})
	if w.ship.Thrusting {
		t.Error("thrusting should clear when the key is released")
	}
}

func TestBloopModulus(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    uint64
	}{
		{0, 60},
		{14.9, 60},
		{15, 30},
		{30, 15},
		{45, 7},
		{500, 7},
	}
	for _, tt := range tests {
		if got := bloopModulus(tt.elapsed); got != tt.want {
			t.Errorf("bloopModulus(%f): expected %d, got %d", tt.elapsed, tt.want, got)
		}
	}
}

func TestHeartbeatAlternates(t *testing.T) {
	w, rec := newTestWorld()
	clearField(w)

	for i := range 121 {
		w.Update(float64(i+1)*tick, input.State{})
	}

	var bloops []audio.Cue
	for _, c := range rec.cues {
		if c == audio.BloopHi || c == audio.BloopLo {
			bloops = append(bloops, c)
		}
	}
	want := []audio.Cue{audio.BloopHi, audio.BloopLo, audio.BloopHi}
	if len(bloops) != len(want) {
		t.Fatalf("expected bloops %v, got %v", want, bloops)
	}
	for i := range want {
		if bloops[i] != want[i] {
			t.Errorf("bloop %d: expected %v, got %v", i, want[i], bloops[i])
		}
	}

	w.ship.Kill(w.now)
	before := len(rec.cues)
	bloop := w.bloop
	for range 60 {
		w.Update(w.now+tick, input.State{})
	}
	if w.bloop == bloop {
		t.Error("bloop counter should keep advancing while dead")
	}
	for _, c := range rec.cues[before:] {
		if c == audio.BloopHi || c == audio.BloopLo {
			t.Fatal("no bloops should play while the ship is dead")
		}
	}
}

func TestAlienTouchingShip(t *testing.T) {
	w, _ := newTestWorld()
	clearField(w)
	w.aliens.Push(object.Alien{Pos: object.FieldCenter(), Size: object.AlienBig})

	w.Update(tick, input.State{})

	if !w.ship.IsDead() {
		t.Error("alien contact should kill the ship")
	}
	if len(w.Aliens()) != 1 {
		t.Error("alien contact should not destroy the alien")
	}
}

func TestProjectileDestroysAlien(t *testing.T) {
	w, rec := newTestWorld()
	clearField(w)
	pos := physics.Vec2{X: 600, Y: 200}
	w.aliens.Push(object.Alien{Pos: pos, Size: object.AlienSmall, LastDir: 1, LastShot: 1})
	w.projectiles.Push(stillProjectile(pos, 0))

	w.Update(1.0, input.State{})

	if len(w.Aliens()) != 0 {
		t.Fatal("armed projectile should destroy the alien")
	}
	if len(w.Particles()) != 19 {
		t.Errorf("expected 15 dots and 4 lines, got %d particles", len(w.Particles()))
	}
	if rec.count(audio.Asteroid) != 1 {
		t.Errorf("expected destruction cue, got %d", rec.count(audio.Asteroid))
	}
	if w.Score() != 0 {
		t.Errorf("aliens are not scored, got %d", w.Score())
	}
}

func TestAlienFiresAtShip(t *testing.T) {
	w, rec := newTestWorld()
	clearField(w)
	w.aliens.Push(object.Alien{Pos: physics.Vec2{X: 200, Y: object.FieldCenter().Y}, Size: object.AlienBig})

	w.Update(2.0, input.State{})

	if len(w.Projectiles()) != 1 {
		t.Fatalf("expected the alien to fire, got %d projectiles", len(w.Projectiles()))
	}
	if p := w.Projectiles()[0]; p.Vel.X < config.AlienProjectileSpeed*0.999 {
		t.Errorf("expected the shot aimed at the ship, got velocity %v", p.Vel)
	}
	al := w.Aliens()[0]
	if al.LastShot != 2.0 || al.LastDir != 2.0 {
		t.Errorf("expected timers reset to 2.0, got shot=%f dir=%f", al.LastShot, al.LastDir)
	}
	if al.Dir.Length() < 0.999 {
		t.Errorf("expected a unit heading, got %v", al.Dir)
	}
	if rec.count(audio.Shoot) != 1 {
		t.Errorf("expected shoot cue, got %d", rec.count(audio.Shoot))
	}
}

// TestInvariantsUnderPlay drives the world with random input and checks
// the wrap, capacity and score invariants after every tick.
func TestInvariantsUnderPlay(t *testing.T) {
	gameOver := false
	w := NewWorld(Options{Seed: 11, OnGameOver: func(int) { gameOver = true }})
	rng := rand.New(rand.NewPCG(1, 2))

	now := 0.0
	prevScore := 0
	for i := range 3000 {
		now += tick
		var in input.State
		for _, c := range []input.Control{input.Left, input.Right, input.Thrust} {
			if rng.IntN(3) == 0 {
				in = in.With(c, false)
			}
		}
		if i%5 == 0 {
			in = in.With(input.Fire, true)
		}
		// Keep the score climbing so aliens show up.
		if i%600 == 0 {
			w.score += 2500
		}

		w.Update(now, in)

		if !object.InField(w.ship.Pos) {
			t.Fatalf("tick %d: ship outside field at %v", i, w.ship.Pos)
		}
		for _, a := range w.Asteroids() {
			if !object.InField(a.Pos) {
				t.Fatalf("tick %d: asteroid outside field at %v", i, a.Pos)
			}
		}
		for _, p := range w.Projectiles() {
			if !object.InField(p.Pos) {
				t.Fatalf("tick %d: projectile outside field at %v", i, p.Pos)
			}
		}
		for _, p := range w.Particles() {
			if !object.InField(p.Pos) {
				t.Fatalf("tick %d: particle outside field at %v", i, p.Pos)
			}
		}
		for _, a := range w.Aliens() {
			if !object.InField(a.Pos) {
				t.Fatalf("tick %d: alien outside field at %v", i, a.Pos)
			}
		}

		if n := len(w.Asteroids()) + w.Queued(); n > config.AsteroidCapacity {
			t.Fatalf("tick %d: %d asteroids exceed capacity", i, n)
		}
		if len(w.Particles()) > config.ParticleCapacity ||
			len(w.Projectiles()) > config.ProjectileCapacity ||
			len(w.Aliens()) > config.AlienCapacity {
			t.Fatalf("tick %d: collection over capacity", i)
		}

		if w.Score() < prevScore && !gameOver {
			t.Fatalf("tick %d: score dropped from %d to %d without a game over", i, prevScore, w.Score())
		}
		gameOver = false
		prevScore = w.Score()
	}
}
