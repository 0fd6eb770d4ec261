package analysis

import (
	"math"

	"Sinegen/pkg/frame"
)

// Channel extracts one channel of a frame capture as raw sample values.
func Channel(frames []frame.Packed, ch int) []float64 {
	output := make([]float64, len(frames))
	for i, f := range frames {
		output[i] = float64(f.Channel(ch))
	}
	return output
}

// Normalize extracts one channel of a frame capture scaled to [-1, 1).
func Normalize(frames []frame.Packed, ch int) []float64 {
	output := make([]float64, len(frames))
	for i, f := range frames {
		output[i] = frame.ToFloat(f.Channel(ch))
	}
	return output
}

// PeakLevel is the largest magnitude in samples, 0 for an empty slice.
func PeakLevel(samples []float64) float64 {
	peak := 0.0
	for _, v := range samples {
		peak = max(peak, math.Abs(v))
	}
	return peak
}
