package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes one synthesized sound effect.
type Tone struct {
	Freq     float64
	EndFreq  float64 // 0 means no sweep
	Duration time.Duration
	Wave     WaveType
	Gain     float64
}

// oscillator generates a single tone with a linear frequency sweep and a short release.
type oscillator struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64
	position int
	length   int
	noise    uint32
}

// NewOscillator creates a finite streamer for the tone.
func NewOscillator(tone Tone, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		tone:   tone,
		rate:   rate,
		length: rate.N(tone.Duration),
		noise:  0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		progress := float64(o.position) / float64(o.length)

		var val float64
		switch o.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift, чтобы не трогать общий генератор
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		envelope := 1.0 - progress
		val *= o.tone.Gain * envelope
		samples[i][0] = val
		samples[i][1] = val

		freq := o.tone.Freq
		if o.tone.EndFreq > 0 {
			freq += (o.tone.EndFreq - o.tone.Freq) * progress
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// DroneGenerator is the endless background layer; its pulse rate follows the music mode.
type DroneGenerator struct {
	sr    beep.SampleRate
	base  float64
	pulse time.Duration
	pos   int
}

// NewDroneGenerator creates a drone at base Hz pulsing every pulse.
func NewDroneGenerator(sr beep.SampleRate, base float64, pulse time.Duration) *DroneGenerator {
	return &DroneGenerator{sr: sr, base: base, pulse: pulse}
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	period := g.sr.N(g.pulse)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		beatPos := g.pos % period
		env := 1.0 - float64(beatPos)/float64(period)

		sample := 0.08*math.Sin(2*math.Pi*g.base*t) + 0.05*env*math.Sin(2*math.Pi*g.base*2*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error {
	return nil
}
