package speaker

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"Sinegen/pkg/frame"
	"Sinegen/pkg/synth"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRead_OneInterruptPerFrame(t *testing.T) {
	s := &Speaker{SampleRate: 8000}
	h := synth.Initialize(synth.Config{
		Amplitude:  32000,
		SampleRate: 8000,
		Frequency:  [2]float64{2000, 6000},
	}, s)
	s.isr = h.OnSampleInterrupt

	p := make([]byte, 16)
	n, err := s.Read(p)
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Errorf("Expected %d, got %d", 16, n)
	}
	if h.Periods() != 4 {
		t.Errorf("Expected %d periods, got %d", 4, h.Periods())
	}

	expected := []byte{
		0x00, 0x7d, 0x00, 0x7d, // 32000, 32000
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x83, 0x00, 0x83, // -32000, -32000
		0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(p, expected) {
		t.Errorf("Expected % x, got % x", expected, p)
	}
	if f := frame.Packed(binary.LittleEndian.Uint32(p)); f != frame.Pack(32000, 32000) {
		t.Errorf("Expected %v, got %v", frame.Pack(32000, 32000), f)
	}
}

func TestRead_PartialFrame(t *testing.T) {
	calls := 0
	s := &Speaker{SampleRate: 8000}
	s.isr = func() {
		calls++
		s.WriteSample(frame.Pack(-1, -1))
	}

	p := bytes.Repeat([]byte{0xaa}, 10)
	n, err := s.Read(p)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("Expected %d, got %d", 8, n)
	}
	if calls != 2 {
		t.Errorf("Expected %d interrupts, got %d", 2, calls)
	}
	expected := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0, 0}
	if !bytes.Equal(p, expected) {
		t.Errorf("Expected % x, got % x", expected, p)
	}
}

func TestRead_Overrun(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := &Speaker{
		SampleRate: 1000,
		BufferSize: 10 * time.Millisecond,
		clock:      clock.now,
	}
	s.isr = func() {}

	// 10 frames at 1 kHz cover 10 ms, plus 10 ms of device buffer
	p := make([]byte, 10*bytesPerFrame)
	s.Read(p)

	clock.advance(20 * time.Millisecond)
	s.Read(p)
	if s.OverrunPending() {
		t.Errorf("Expected no overrun for a gap of exactly pending+buffer")
	}

	clock.advance(21 * time.Millisecond)
	s.Read(p)
	if !s.OverrunPending() {
		t.Errorf("Expected an overrun after the device ran dry")
	}

	s.WriteSample(frame.Pack(5, 5))
	s.Recover()
	if s.OverrunPending() {
		t.Errorf("Expected the overrun to be cleared")
	}
	if s.out != 0 {
		t.Errorf("Expected silence after recovery, got %v", s.out)
	}
}

func TestRead_NoBufferSizeNeverOverruns(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := &Speaker{SampleRate: 1000, clock: clock.now}
	s.isr = func() {}

	p := make([]byte, bytesPerFrame)
	s.Read(p)
	clock.advance(time.Hour)
	s.Read(p)
	if s.OverrunPending() {
		t.Errorf("Expected no overrun without a known buffer size")
	}
}

func TestRead_OverrunSkipsPeriod(t *testing.T) {
	s := &Speaker{SampleRate: 8000}
	h := synth.Initialize(synth.Config{
		Amplitude:  32000,
		SampleRate: 8000,
		Frequency:  [2]float64{2000, 2000},
	}, s)
	s.isr = h.OnSampleInterrupt

	s.overrun.Store(true)
	p := make([]byte, 2*bytesPerFrame)
	s.Read(p)

	// the first interrupt recovers and leaves silence, the second plays sample 0
	expected := []byte{0, 0, 0, 0, 0x00, 0x7d, 0x00, 0x7d}
	if !bytes.Equal(p, expected) {
		t.Errorf("Expected % x, got % x", expected, p)
	}
	if h.Overruns() != 1 || h.Periods() != 1 {
		t.Errorf("Expected 1 overrun and 1 period, got %d and %d", h.Overruns(), h.Periods())
	}
}
