// Package game is the simulation core: it owns the world state and advances
// it one tick at a time.
//
// The world has a single writer, Update. Renderers read it through the
// accessor methods after Update returns and before the next call.
package game

import (
	"math/rand/v2"

	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// collisionGridCellSize is the cell size of the projectile broad-phase grid.
// Must be >= the largest asteroid collision radius (Scale*3.0*0.4 = 45.6).
const collisionGridCellSize = 48.0

// rngStream is the PCG stream selector mixed into the simulation seed.
const rngStream = 0x5851f42d4c957f2d

// Options configures a new World.
type Options struct {
	Seed  uint64       // Seeds the simulation PRNG
	Audio audio.Player // Receives cues; nil plays nothing

	// OnGameOver is called with the final score when the last life is lost,
	// just before the world resets for a new game.
	OnGameOver func(score int)
}

// World holds all simulation state.
type World struct {
	ship        object.Ship
	asteroids   object.Bounded[object.Asteroid]
	queue       object.Bounded[object.Asteroid] // Spawned asteroids, drained at the start of the next asteroid pass
	particles   object.Bounded[object.Particle]
	projectiles object.Bounded[object.Projectile]
	aliens      object.Bounded[object.Alien]

	frame      uint64
	score      int
	lastScore  int // Score at the end of the previous tick, for alien thresholds
	lives      int
	reset      bool // Full game reset pending
	bloop      int
	lastBloop  int
	now        float64
	delta      float64
	stageStart float64

	rng        *rand.Rand
	audio      audio.Player
	grid       *physics.SpatialGrid
	onGameOver func(score int)
}

// NewWorld creates a world with a fresh game already set up at time 0.
func NewWorld(opts Options) *World {
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	w := &World{
		asteroids:   object.NewBounded[object.Asteroid](config.AsteroidCapacity),
		queue:       object.NewBounded[object.Asteroid](config.AsteroidCapacity),
		particles:   object.NewBounded[object.Particle](config.ParticleCapacity),
		projectiles: object.NewBounded[object.Projectile](config.ProjectileCapacity),
		aliens:      object.NewBounded[object.Alien](config.AlienCapacity),
		rng:         rand.New(rand.NewPCG(opts.Seed, opts.Seed^rngStream)),
		audio:       player,
		grid:        physics.NewSpatialGrid(config.FieldWidth, config.FieldHeight, collisionGridCellSize),
		onGameOver:  opts.OnGameOver,
	}
	w.resetGame()
	return w
}

// Ship returns a copy of the player ship.
func (w *World) Ship() object.Ship { return w.ship }

// Asteroids returns the active asteroids. The slice must not be modified.
func (w *World) Asteroids() []object.Asteroid { return w.asteroids.Items() }

// Particles returns the live particles. The slice must not be modified.
func (w *World) Particles() []object.Particle { return w.particles.Items() }

// Projectiles returns the live projectiles. The slice must not be modified.
func (w *World) Projectiles() []object.Projectile { return w.projectiles.Items() }

// Aliens returns the live aliens. The slice must not be modified.
func (w *World) Aliens() []object.Alien { return w.aliens.Items() }

// Queued returns the number of asteroids waiting to enter the field.
func (w *World) Queued() int { return w.queue.Len() }

func (w *World) Score() int     { return w.score }
func (w *World) Lives() int     { return w.lives }
func (w *World) Frame() uint64  { return w.frame }
func (w *World) Now() float64   { return w.now }
func (w *World) Delta() float64 { return w.delta }

// queueAsteroid adds a to the spawn queue unless the active asteroids plus
// the queue are already at capacity.
func (w *World) queueAsteroid(a object.Asteroid) bool {
	if w.asteroids.Len()+w.queue.Len() >= config.AsteroidCapacity {
		return false
	}
	return w.queue.Push(a)
}

// drainQueue moves every queued asteroid into the active collection.
func (w *World) drainQueue() {
	for _, a := range w.queue.Items() {
		w.asteroids.Push(a)
	}
	w.queue.Clear()
}

// randomPos returns a uniformly random point in the field.
func (w *World) randomPos() physics.Vec2 {
	return physics.Vec2{
		X: w.rng.Float64() * config.FieldWidth,
		Y: w.rng.Float64() * config.FieldHeight,
	}
}
