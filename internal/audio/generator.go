package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	// jumpImpact is the nominal impact used to pitch the take-off boing.
	jumpImpact = 700.0
	// maxImpact maps to the highest landing pitch.
	maxImpact = 1500.0
)

// Cue is a finite mono generator shared by every sound effect. sample returns
// the value at time t (seconds) with progress p in [0,1).
type Cue struct {
	sr     beep.SampleRate
	pos    int
	total  int
	sample func(t, p float64) float64
}

func (g *Cue) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		p := float64(g.pos) / float64(g.total)
		v := clampSample(g.sample(t, p))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *Cue) Err() error {
	return nil
}

// Len returns the number of samples the cue produces.
func (g *Cue) Len() int {
	return g.total
}

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// NewBoingGenerator returns a falling spring "boing" whose pitch rises with
// the impact speed.
func NewBoingGenerator(sr beep.SampleRate, impact float64) *Cue {
	k := math.Min(math.Abs(impact), maxImpact) / maxImpact
	start := 180 + 320*k
	amp := 0.12 + 0.18*k
	var phase float64
	return &Cue{
		sr:    sr,
		total: sr.N(180 * time.Millisecond),
		sample: func(_, p float64) float64 {
			freq := start * (1 - 0.5*p)
			phase += 2 * math.Pi * freq / float64(sr)
			wobble := 1 + 0.15*math.Sin(p*math.Pi*10)
			return amp * (1 - p) * math.Sin(phase*wobble)
		},
	}
}

// NewBonkGenerator returns a short dull thud.
func NewBonkGenerator(sr beep.SampleRate) *Cue {
	return &Cue{
		sr:    sr,
		total: sr.N(90 * time.Millisecond),
		sample: func(t, p float64) float64 {
			env := math.Exp(-p * 6)
			v := math.Sin(2 * math.Pi * 140 * t)
			if v > 0 {
				v = 1
			} else {
				v = -1
			}
			return 0.2 * env * v
		},
	}
}

// NewSlideGenerator returns the descending failure slide.
func NewSlideGenerator(sr beep.SampleRate) *Cue {
	var phase float64
	return &Cue{
		sr:    sr,
		total: sr.N(600 * time.Millisecond),
		sample: func(_, p float64) float64 {
			freq := 400 - 300*p
			phase += 2 * math.Pi * freq / float64(sr)
			return 0.25 * (1 - p) * math.Sin(phase)
		},
	}
}

// fanfare is C5 E5 G5 C6.
var fanfare = []float64{523.25, 659.25, 783.99, 1046.50}

// NewFanfareGenerator returns a rising four-note arpeggio.
func NewFanfareGenerator(sr beep.SampleRate) *Cue {
	return &Cue{
		sr:    sr,
		total: sr.N(time.Duration(len(fanfare)) * 120 * time.Millisecond),
		sample: func(t, p float64) float64 {
			idx := int(p * float64(len(fanfare)))
			if idx >= len(fanfare) {
				idx = len(fanfare) - 1
			}
			local := p*float64(len(fanfare)) - float64(idx)
			env := 1 - 0.7*local
			return 0.2 * env * math.Sin(2*math.Pi*fanfare[idx]*t)
		},
	}
}
