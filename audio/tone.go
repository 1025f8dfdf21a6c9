package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone describes a short synthesized effect: a sine sweep from StartHz to
// EndHz with a linear attack and an exponential release.
type tone struct {
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Attack   time.Duration
	Decay    float64
	Volume   float64
	// Noise mixes white noise into the sweep, 0..1.
	Noise float64
	// Loop keeps the tone cycling until it is stopped.
	Loop bool
}

// toneGenerator streams one tone. It ends after Duration samples unless the
// tone loops.
type toneGenerator struct {
	sr    beep.SampleRate
	tone  tone
	pos   int
	total int
	phase float64
	seed  uint32
}

func newToneGenerator(sr beep.SampleRate, t tone) *toneGenerator {
	return &toneGenerator{
		sr:    sr,
		tone:  t,
		total: sr.N(t.Duration),
		seed:  0x9e3779b9,
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.total <= 0 {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			if !g.tone.Loop {
				return i, i > 0
			}
			g.pos = 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.tone.StartHz + (g.tone.EndHz-g.tone.StartHz)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		sample := math.Sin(g.phase)
		if g.tone.Noise > 0 {
			g.seed = g.seed*1664525 + 1013904223
			noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1
			sample = sample*(1-g.tone.Noise) + noise*g.tone.Noise
		}
		sample *= g.envelope(progress) * g.tone.Volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

func (g *toneGenerator) envelope(progress float64) float64 {
	env := 1.0
	if attack := g.sr.N(g.tone.Attack); attack > 0 && g.pos < attack {
		env = float64(g.pos) / float64(attack)
	}
	if g.tone.Decay > 0 {
		env *= math.Exp(-progress * g.tone.Decay)
	}
	return env
}
