// Package audio provides the game's one-shot sound cues.
//
// Cues are synthesized at startup into PCM buffers and played through the
// beep speaker. Playback is fire-and-forget: the simulation never waits on
// or inspects a cue.
package audio

import "fmt"

// Cue names one of the fixed sound effects.
type Cue int

const (
	BloopLo Cue = iota
	BloopHi
	Shoot
	Thrust
	Asteroid
	Explode
	numCues
)

// Cues lists every cue, in declaration order.
func Cues() []Cue {
	cues := make([]Cue, numCues)
	for i := range cues {
		cues[i] = Cue(i)
	}
	return cues
}

func (c Cue) String() string {
	switch c {
	case BloopLo:
		return "bloop-lo"
	case BloopHi:
		return "bloop-hi"
	case Shoot:
		return "shoot"
	case Thrust:
		return "thrust"
	case Asteroid:
		return "asteroid"
	case Explode:
		return "explode"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// Player triggers cues.
type Player interface {
	Play(c Cue)
}

// Nop discards every cue. Used for SSH sessions, where sound cannot reach
// the player, and when audio is disabled.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Cue) {}

var _ Player = Nop{}
