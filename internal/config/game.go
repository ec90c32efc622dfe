package config

import "time"

// Field geometry. The play field wraps at both edges.
const (
	FieldWidth  = 1280.0
	FieldHeight = 960.0
	Scale       = 38.0 // Base unit for entity sizes and HUD layout
)

// Collection capacities. Spawns beyond these are dropped.
const (
	AsteroidCapacity   = 256 // Active asteroids plus the spawn queue
	ParticleCapacity   = 256
	ProjectileCapacity = 256
	AlienCapacity      = 16
)

// Player
const (
	InitialLives      = 3
	RespawnDelay      = 3.0  // Seconds a dead ship waits before the stage resets
	ShipRotationSpeed = 2.0  // Turns per second
	ShipThrust        = 24.0 // Velocity gained per second of thrust
	ShipDrag          = 0.985
	ShipRecoil        = 0.5
	ShipHitRadius     = Scale * 0.7 // Projectile vs ship
)

// Projectiles
const (
	ProjectileTTL        = 2.0
	ProjectileGrace      = 0.15 // Seconds after spawn a projectile cannot hit ship or alien
	ProjectileMuzzle     = Scale * 0.55
	ShipProjectileSpeed  = 10.0
	AlienProjectileSpeed = 6.0
)

// Waves
const (
	StageBaseAsteroids     = 30
	ScorePerExtraAsteroid  = 1500
	BigAlienScoreStep      = 5000
	SmallAlienScoreStep    = 8000
	AsteroidSplitCount     = 2
	AsteroidSplitSpeed     = 2.2
	AsteroidImpactTransfer = 0.7
	AsteroidSpawnSpeed     = 3.0
)

// Heartbeat
const (
	BloopBaseModulus  = 60
	BloopStageSeconds = 15
	BloopMaxIntensity = 3
)

// Terminal rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxTermWidth    = 200 // Wider terminals are letterboxed
	MaxTermHeight   = 75
)

// Sessions
const (
	SessionIdleTimeout = 120 * time.Second // Remote sessions without input are disconnected
)
