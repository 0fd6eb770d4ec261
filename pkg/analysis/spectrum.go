// Package analysis checks generated tones offline: reference waveforms and
// spectral peak measurement of captured frames.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

var ErrTooShort = errors.New("analysis: need at least 4 samples")

// PeakFrequency returns the frequency of the strongest spectral component of
// samples, refined by parabolic interpolation of the log magnitude around the
// peak bin. The signal is Hann windowed and zero padded to a power of two.
func PeakFrequency(samples []float64, sampleRate float64) (float64, error) {
	if len(samples) < 4 {
		return 0, ErrTooShort
	}

	fftSize := nextPow2(len(samples))
	coeffs := window.Generate(window.TypeHann, len(samples))

	in := make([]complex128, fftSize)
	for i, v := range samples {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("failed to create fft plan: %v", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("failed to transform: %v", err)
	}

	// skip DC, search up to Nyquist
	half := fftSize / 2
	peak := 1
	for k := 2; k < half; k++ {
		if cmplx.Abs(out[k]) > cmplx.Abs(out[peak]) {
			peak = k
		}
	}

	offset := 0.0
	if peak > 1 && peak < half-1 {
		a := logMag(out[peak-1])
		b := logMag(out[peak])
		c := logMag(out[peak+1])
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
	}

	return (float64(peak) + offset) * sampleRate / float64(fftSize), nil
}

func logMag(c complex128) float64 {
	return math.Log(cmplx.Abs(c) + 1e-300)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
