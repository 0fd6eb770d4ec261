package analysis

import (
	"math"

	"Sinegen/pkg/frame"
)

// Tone is the closed form of what one synthesizer channel should emit:
// Amplitude·cos(2π·Frequency·n/SampleRate), evaluated directly per sample.
type Tone struct {
	Amplitude  float64
	Frequency  float64
	SampleRate float64
}

func (t Tone) At(n int) float64 {
	return t.Amplitude * math.Cos(2*math.Pi*t.Frequency*float64(n)/t.SampleRate)
}

// Samples evaluates the first size samples without narrowing.
func (t Tone) Samples(size int) []float64 {
	signal := make([]float64, size)
	for i := range signal {
		signal[i] = t.At(i)
	}
	return signal
}

// Scaled is the reference a codec channel is compared against: every sample
// rounded and clamped to int16 the way the handler narrows its output.
func (t Tone) Scaled(size int) []int16 {
	signal := make([]int16, size)
	for i := range signal {
		signal[i] = frame.Saturate(t.At(i))
	}
	return signal
}
