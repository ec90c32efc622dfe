package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a wave whose frequency glides linearly from
// startFreq to endFreq over its duration.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a finite streamer of the given wave.
func NewOscillator(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential decay to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	decay    float64 // Per-sample gain multiplier after the attack
	gain     float64
}

// NewEnvelope shapes s with an attack ramp followed by a decay that drops
// to about 1% after release.
func NewEnvelope(s beep.Streamer, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	rel := max(rate.N(release), 1)
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		decay:    math.Pow(0.01, 1/float64(rel)),
		gain:     1,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			e.gain *= e.decay
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear factor.
// math.Log2(0) is -Inf, so zero volume is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// recipe describes how to synthesize one cue.
type recipe struct {
	wave      WaveType
	startFreq float64
	endFreq   float64
	duration  time.Duration
	attack    time.Duration
	volume    float64
}

var recipes = map[Cue]recipe{
	BloopLo:  {wave: WaveSquare, startFreq: 70, endFreq: 66, duration: 90 * time.Millisecond, attack: 4 * time.Millisecond, volume: 0.35},
	BloopHi:  {wave: WaveSquare, startFreq: 92, endFreq: 88, duration: 90 * time.Millisecond, attack: 4 * time.Millisecond, volume: 0.35},
	Shoot:    {wave: WaveSquare, startFreq: 1400, endFreq: 300, duration: 110 * time.Millisecond, attack: 2 * time.Millisecond, volume: 0.2},
	Thrust:   {wave: WaveNoise, duration: 50 * time.Millisecond, attack: 5 * time.Millisecond, volume: 0.12},
	Asteroid: {wave: WaveNoise, duration: 250 * time.Millisecond, attack: 2 * time.Millisecond, volume: 0.4},
	Explode:  {wave: WaveNoise, duration: 700 * time.Millisecond, attack: 3 * time.Millisecond, volume: 0.6},
}

// synthesize renders a recipe into a finite streamer.
func (r recipe) synthesize(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(r.startFreq, r.endFreq, r.duration, r.wave, rate)
	return newVolume(NewEnvelope(osc, r.attack, r.duration-r.attack, rate), r.volume)
}
