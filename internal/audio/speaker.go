package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"
)

// speakerBuffer is the device buffer length. Shorter buffers reduce latency
// between a game event and its cue.
const speakerBuffer = 50 * time.Millisecond

// Speaker plays cues on the local audio device.
type Speaker struct {
	bank *Bank
}

// NewSpeaker synthesizes the cue bank and opens the audio device.
// Errors are returned rather than ignored so the caller can decide whether
// to run silent.
func NewSpeaker() (*Speaker, error) {
	bank, err := NewBank(SampleRate)
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(SampleRate, SampleRate.N(speakerBuffer)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Speaker{bank: bank}, nil
}

// Play implements Player. Cues overlap freely; the speaker mixes them.
func (s *Speaker) Play(c Cue) {
	st, err := s.bank.Streamer(c)
	if err != nil {
		return
	}
	speaker.Play(st)
}

// Close stops all cues and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

var _ Player = (*Speaker)(nil)
