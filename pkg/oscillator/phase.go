package oscillator

import "math"

// Phase is the direct-evaluation generator: it accumulates phase and calls
// math.Cos every sample. Its output matches Resonator, at a much higher cost
// per sample, so it is never the default.
type Phase struct {
	phase     float64
	increment float64
}

func NewPhase(frequency, sampleRate float64) *Phase {
	return &Phase{
		increment: 2 * math.Pi * frequency / sampleRate,
	}
}

func (p *Phase) Advance() float64 {
	o := math.Cos(p.phase)

	p.phase = math.Mod(p.phase+p.increment, 2*math.Pi)
	if p.phase < 0 {
		p.phase += 2 * math.Pi
	}

	return o
}

func (p *Phase) Reset() {
	p.phase = 0
}
