package audio

import (
	"errors"
	"fmt"

	"github.com/gopxl/beep"
)

// SampleRate is the output rate cues are synthesized at.
const SampleRate = beep.SampleRate(44100)

// ErrMissingCue is returned when a cue has no usable sample data.
var ErrMissingCue = errors.New("missing cue")

// Bank holds one pre-rendered buffer per cue.
type Bank struct {
	format beep.Format
	cues   [numCues]*beep.Buffer
}

// NewBank synthesizes every cue at the given rate. The returned bank has
// already been validated.
func NewBank(rate beep.SampleRate) (*Bank, error) {
	b := &Bank{format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}}
	for _, c := range Cues() {
		r, ok := recipes[c]
		if !ok {
			continue
		}
		buf := beep.NewBuffer(b.format)
		buf.Append(r.synthesize(rate))
		b.cues[c] = buf
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks that every cue has sample data.
func (b *Bank) Validate() error {
	var errs []error
	for _, c := range Cues() {
		if buf := b.cues[c]; buf == nil || buf.Len() == 0 {
			errs = append(errs, fmt.Errorf("audio: cue %s: %w", c, ErrMissingCue))
		}
	}
	return errors.Join(errs...)
}

// Format returns the sample format of every buffer in the bank.
func (b *Bank) Format() beep.Format {
	return b.format
}

// Len returns the length of a cue in samples, or 0 if it is unknown.
func (b *Bank) Len(c Cue) int {
	if c < 0 || c >= numCues || b.cues[c] == nil {
		return 0
	}
	return b.cues[c].Len()
}

// Streamer returns a fresh streamer over the cue's samples.
func (b *Bank) Streamer(c Cue) (beep.StreamSeeker, error) {
	if b.Len(c) == 0 {
		return nil, fmt.Errorf("audio: cue %s: %w", c, ErrMissingCue)
	}
	buf := b.cues[c]
	return buf.Streamer(0, buf.Len()), nil
}
