package synth

import (
	"fmt"

	"Sinegen/pkg/frame"
	"Sinegen/pkg/oscillator"
)

// Config is read once by Initialize and never consulted again.
type Config struct {
	Amplitude  float64
	SampleRate float64
	Frequency  [frame.Channels]float64 // indexed by frame.Left, frame.Right
	Strategy   oscillator.Strategy
}

// Validate reports frequencies outside (0, SampleRate/2). Such a tone still
// plays, aliased, so callers may choose to only warn.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %v", c.SampleRate)
	}
	nyquist := c.SampleRate / 2
	for ch, f := range c.Frequency {
		if f <= 0 || f >= nyquist {
			return fmt.Errorf("channel %d: frequency %v Hz outside (0, %v) Hz, the tone will alias", ch, f, nyquist)
		}
	}
	if c.Amplitude > frame.MaxSample {
		return fmt.Errorf("amplitude %v exceeds %d, peaks will be clipped", c.Amplitude, frame.MaxSample)
	}
	return nil
}
