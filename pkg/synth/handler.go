// Package synth contains the per-sample interrupt handler that feeds two
// oscillators to a stereo codec.
package synth

import (
	"sync/atomic"

	"Sinegen/pkg/device"
	"Sinegen/pkg/frame"
	"Sinegen/pkg/oscillator"
)

type State int32

const (
	Normal State = iota
	Recovering
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Recovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// Handler owns both oscillators for the lifetime of the process. Only the
// interrupt context calls OnSampleInterrupt or touches the oscillators; State,
// LastInput and the counters may be read from any goroutine.
type Handler struct {
	transport device.Transport
	osc       [frame.Channels]oscillator.Oscillator
	amplitude float64

	state     atomic.Int32
	lastInput atomic.Uint32
	periods   atomic.Uint64
	overruns  atomic.Uint64
}

// Initialize computes every coefficient up front. It must return before the
// device is started with h.OnSampleInterrupt.
func Initialize(cfg Config, t device.Transport) *Handler {
	h := &Handler{
		transport: t,
		amplitude: cfg.Amplitude,
	}
	for ch := range h.osc {
		h.osc[ch] = oscillator.New(cfg.Strategy, cfg.Frequency[ch], cfg.SampleRate)
	}
	return h
}

// OnSampleInterrupt services one sample period. On overrun the period is
// skipped entirely: no input is read, the oscillators do not move and nothing
// is written, since catching up would only emit stale samples.
func (h *Handler) OnSampleInterrupt() {
	if h.transport.OverrunPending() {
		h.state.Store(int32(Recovering))
		h.transport.Recover()
		h.overruns.Add(1)
		return
	}
	h.state.Store(int32(Normal))

	// input is not used by the synthesis, reading keeps the codec in step
	h.lastInput.Store(h.transport.ReadSample().Uint32())

	l := h.osc[frame.Left].Advance()
	r := h.osc[frame.Right].Advance()

	h.transport.WriteSample(frame.Pack(
		frame.Scale(l, h.amplitude),
		frame.Scale(r, h.amplitude),
	))
	h.periods.Add(1)
}

func (h *Handler) State() State {
	return State(h.state.Load())
}

// Periods counts the serviced sample periods.
func (h *Handler) Periods() uint64 {
	return h.periods.Load()
}

// Overruns counts the skipped sample periods.
func (h *Handler) Overruns() uint64 {
	return h.overruns.Load()
}

func (h *Handler) LastInput() frame.Packed {
	return frame.Packed(h.lastInput.Load())
}

func (h *Handler) Oscillator(ch int) oscillator.Oscillator {
	return h.osc[ch]
}

func (h *Handler) Amplitude() float64 {
	return h.amplitude
}
