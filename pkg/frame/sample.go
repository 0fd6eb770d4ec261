package frame

import "math"

// 16 = 1 + 15, full scale is 1 << 15
const (
	FullScale = 1 << 15

	MaxSample = math.MaxInt16
	MinSample = math.MinInt16
)

// Saturate narrows v to the int16 range: it rounds half away from zero and
// clamps to [MinSample, MaxSample] instead of wrapping. NaN maps to zero.
func Saturate(v float64) int16 {
	if v != v {
		return 0
	}
	r := math.Round(v)
	if r >= MaxSample {
		return MaxSample
	}
	if r <= MinSample {
		return MinSample
	}
	return int16(r)
}

// Scale multiplies a normalized sample by amplitude and saturates the result.
func Scale(v, amplitude float64) int16 {
	return Saturate(amplitude * v)
}

// ToFloat maps a sample back to [-1, 1).
func ToFloat(s int16) float64 {
	return float64(s) / FullScale
}

// ToInt32 widens a sample to the 32-bit container used by ASIO buffers.
func ToInt32(s int16) int32 {
	return int32(s) << 16
}

// FromInt32 keeps the most significant 16 bits of a 32-bit ASIO sample.
func FromInt32(v int32) int16 {
	return int16(v >> 16)
}
