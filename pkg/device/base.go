package device

import "Sinegen/pkg/frame"

// Transport is the codec side seen from the sample interrupt. All calls have
// fixed latency and never block.
type Transport interface {
	OverrunPending() bool
	ReadSample() frame.Packed
	WriteSample(frame.Packed)
	Recover()
}

// Device is a Transport that also owns the sample clock. Start invokes isr
// once per sample period from a single context and never re-enters it; Stop
// returns once isr will no longer be called.
type Device interface {
	Transport
	Start(isr func())
	Stop()
}

const BufferSize = 512
