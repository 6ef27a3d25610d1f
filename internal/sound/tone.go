package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	toneLength  = 450 * time.Millisecond
	toneAttack  = 0.005 // seconds
	toneRelease = 9.0   // exponential decay rate per second
	toneGain    = 0.4
)

// C major pentatonic, one note per circle; further circles climb octaves.
var pentatonic = []float64{523.25, 587.33, 659.25, 783.99, 880.00}

func noteFor(index int) float64 {
	if index < 0 {
		index = 0
	}
	octave := index / len(pentatonic)
	return pentatonic[index%len(pentatonic)] * math.Pow(2, float64(octave))
}

// pluckGenerator is a sine with a soft second harmonic and a fast attack,
// exponential release envelope. It never ends on its own; wrap it in beep.Take.
type pluckGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newPluckGenerator(sr beep.SampleRate, freq float64) *pluckGenerator {
	return &pluckGenerator{sr: sr, freq: freq}
}

func (g *pluckGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t*toneRelease) * math.Min(t/toneAttack, 1)
		sample := math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*2*g.freq*t)
		sample *= toneGain * envelope / 1.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *pluckGenerator) Err() error {
	return nil
}

func impactTone(sr beep.SampleRate, index int) beep.Streamer {
	return beep.Take(sr.N(toneLength), newPluckGenerator(sr, noteFor(index)))
}
