// Package oscillator implements single-tone generators that produce one
// normalized sample per call.
package oscillator

import (
	"fmt"
	"strings"
)

// Oscillator produces the next sample of a tone in [-1, 1].
type Oscillator interface {
	Advance() float64
	Reset()
}

type Strategy int

const (
	// StrategyResonator is the coupled-form recurrence, two multiplies per sample.
	StrategyResonator Strategy = iota
	// StrategyPhase evaluates cos on an accumulated phase every sample.
	StrategyPhase
)

func (s Strategy) String() string {
	switch s {
	case StrategyResonator:
		return "resonator"
	case StrategyPhase:
		return "phase"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "resonator":
		return StrategyResonator, nil
	case "phase":
		return StrategyPhase, nil
	default:
		return StrategyResonator, fmt.Errorf("unknown oscillator strategy %q", name)
	}
}

func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// New builds the oscillator for strategy. Unknown strategies get a Resonator.
func New(strategy Strategy, frequency, sampleRate float64) Oscillator {
	if strategy == StrategyPhase {
		return NewPhase(frequency, sampleRate)
	}
	return NewResonator(frequency, sampleRate)
}
