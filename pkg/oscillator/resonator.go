package oscillator

import "math"

// Resonator is a second-order digital resonator whose poles lie on the unit
// circle. Kicked by a unit impulse it rings forever at the target frequency,
// producing cos(2*pi*f*n/fs) for n = 0, 1, 2, ...
type Resonator struct {
	x1Coeff float64 // cos(w)
	y1Coeff float64 // 2*cos(w)

	y [3]float64 // y[0] current, y[1] previous, y[2] two before
	x [2]float64 // excitation, x[0] is zero after the first sample
}

type ResonatorState struct {
	Y [3]float64
	X [2]float64
}

// NewResonator evaluates the only cosine the resonator ever needs. The
// frequency should lie in (0, sampleRate/2); anything else still yields a
// valid coefficient, but for an aliased tone.
func NewResonator(frequency, sampleRate float64) *Resonator {
	c := math.Cos(2 * math.Pi * frequency / sampleRate)
	r := &Resonator{
		x1Coeff: c,
		y1Coeff: 2 * c,
	}
	r.Reset()
	return r
}

func (r *Resonator) Advance() float64 {
	r.y[0] = r.y1Coeff*r.y[1] - r.y[2] + r.x[0] - r.x1Coeff*r.x[1]

	r.y[2] = r.y[1]
	r.y[1] = r.y[0]
	r.x[1] = r.x[0]
	r.x[0] = 0

	return r.y[0]
}

// Reset restores the impulse-primed state without touching the coefficients.
func (r *Resonator) Reset() {
	r.y = [3]float64{0, 0, 0}
	r.x = [2]float64{1, 0}
}

func (r *Resonator) Coefficients() (x1, y1 float64) {
	return r.x1Coeff, r.y1Coeff
}

func (r *Resonator) State() ResonatorState {
	return ResonatorState{Y: r.y, X: r.x}
}
