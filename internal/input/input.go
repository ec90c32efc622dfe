// Package input decodes raw terminal bytes into per-tick control state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never key releases.
const keyHoldDuration = 60 * time.Millisecond

// Control is one of the game's inputs.
type Control int

const (
	Left Control = iota
	Right
	Thrust
	Fire
	numControls
)

func (c Control) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Thrust:
		return "thrust"
	case Fire:
		return "fire"
	default:
		return "unknown"
	}
}

// Source answers the two questions the simulation asks about each control.
type Source interface {
	// Held reports whether the control is currently down.
	Held(c Control) bool
	// Pressed reports whether the control went down this tick.
	Pressed(c Control) bool
}

// State is the input for a single tick.
type State struct {
	held    [numControls]bool
	pressed [numControls]bool
	Quit    bool
	Any     bool // Any byte arrived this tick
}

// Held implements Source.
func (s State) Held(c Control) bool {
	return c >= 0 && c < numControls && s.held[c]
}

// Pressed implements Source.
func (s State) Pressed(c Control) bool {
	return c >= 0 && c < numControls && s.pressed[c]
}

// With returns a copy of s with c held, and also newly pressed if pressed is true.
func (s State) With(c Control, pressed bool) State {
	s.held[c] = true
	s.pressed[c] = s.pressed[c] || pressed
	return s
}

var _ Source = State{}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit     time.Time
	controls [numControls]time.Time
}

// Stream delivers input bytes via a channel and tracks key state between ticks.
type Stream struct {
	ch      chan byte
	state   keyState
	wasHeld [numControls]bool // Held state of the previous tick, for Pressed
	closed  bool
	buf     []byte // Reused drain buffer
	nowFunc func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error (e.g. the session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:      make(chan byte, 128),
		nowFunc: time.Now,
	}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the control state for this tick. Arrow keys arrive as escape
// sequences; everything else is a single byte.
func (s *Stream) ReadInput() State {
	now := s.nowFunc()
	s.buf = s.buf[:0]

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}

	buf := s.buf
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if c, ok := arrowControl(buf[i+2]); ok {
				s.state.controls[c] = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	st := State{
		Quit: now.Sub(s.state.quit) < keyHoldDuration || s.closed,
		Any:  len(buf) > 0,
	}
	for c := range numControls {
		held := now.Sub(s.state.controls[c]) < keyHoldDuration
		st.held[c] = held
		st.pressed[c] = held && !s.wasHeld[c]
		s.wasHeld[c] = held
	}
	return st
}

func arrowControl(code byte) (Control, bool) {
	switch code {
	case 'A':
		return Thrust, true
	case 'C':
		return Right, true
	case 'D':
		return Left, true
	}
	return 0, false
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.controls[Left] = now
	case 'd', 'D', 'l', 'L':
		state.controls[Right] = now
	case 'w', 'W', 'i', 'I':
		state.controls[Thrust] = now
	case ' ', 'k', 'K':
		state.controls[Fire] = now
	}
}
