//go:build windows

package device

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"Sinegen/pkg/frame"

	"github.com/xsjk/go-asio"
)

// how long Start waits for the first buffer before reporting a dead driver
const asioWatchdog = time.Second

// ASIOStereo drives the sample interrupt from ASIO buffer callbacks. Each
// buffer is walked sample by sample so isr still sees exactly one frame per
// period. Channels InChannel, InChannel+1 and OutChannel, OutChannel+1 carry
// left and right.
type ASIOStereo struct {
	DeviceName string
	SampleRate float64
	InChannel  int
	OutChannel int

	device  asio.Device
	in, out frame.Packed
	last    time.Time
	overrun atomic.Bool

	buffers   atomic.Uint64
	badLayout atomic.Bool
	done      chan struct{}
}

// Open checks the settings the driver cannot report back on.
func (a *ASIOStereo) Open() error {
	if a.DeviceName == "" {
		return errors.New("asio: no device name")
	}
	if a.SampleRate <= 0 {
		return fmt.Errorf("asio: sample rate must be positive, got %v", a.SampleRate)
	}
	if a.InChannel < 0 || a.OutChannel < 0 {
		return fmt.Errorf("asio: negative channel index (in %d, out %d)", a.InChannel, a.OutChannel)
	}
	return nil
}

func (a *ASIOStereo) OverrunPending() bool {
	return a.overrun.Load()
}

func (a *ASIOStereo) ReadSample() frame.Packed {
	return a.in
}

func (a *ASIOStereo) WriteSample(f frame.Packed) {
	a.out = f
}

func (a *ASIOStereo) Recover() {
	a.in, a.out = 0, 0
	a.overrun.Store(false)
}

// Buffers counts the driver callbacks serviced so far.
func (a *ASIOStereo) Buffers() uint64 {
	return a.buffers.Load()
}

func (a *ASIOStereo) process(isr func(), in, out [][]int32) {
	if a.InChannel+1 >= len(in) || a.OutChannel+1 >= len(out) {
		a.badLayout.Store(true)
		return
	}
	inL, inR := in[a.InChannel], in[a.InChannel+1]
	outL, outR := out[a.OutChannel], out[a.OutChannel+1]

	// a callback later than two buffers means the driver already lost one
	now := time.Now()
	if !a.last.IsZero() && a.SampleRate > 0 {
		budget := time.Duration(float64(2*len(outL)) / a.SampleRate * float64(time.Second))
		if now.Sub(a.last) > budget {
			a.overrun.Store(true)
		}
	}
	a.last = now

	for i := range outL {
		a.in = frame.Pack(frame.FromInt32(inL[i]), frame.FromInt32(inR[i]))
		isr()
		outL[i] = frame.ToInt32(a.out.Left())
		outR[i] = frame.ToInt32(a.out.Right())
	}
	a.buffers.Add(1)
}

// Start cannot fail synchronously: the driver calls give no status back, so
// a watchdog logs when no usable buffer arrives in time.
func (a *ASIOStereo) Start(isr func()) {
	if err := a.Open(); err != nil {
		log.Printf("[ASIO] %v", err)
		return
	}

	a.device.Load(a.DeviceName)
	a.device.SetSampleRate(a.SampleRate)
	a.device.Open()
	a.device.Start(func(in, out [][]int32) {
		a.process(isr, in, out)
	})

	a.done = make(chan struct{})
	go a.watch(a.done)
}

func (a *ASIOStereo) watch(done <-chan struct{}) {
	select {
	case <-done:
		return
	case <-time.After(asioWatchdog):
	}
	if a.badLayout.Load() {
		log.Printf("[ASIO] %q has no channels %d/%d in and %d/%d out", a.DeviceName, a.InChannel, a.InChannel+1, a.OutChannel, a.OutChannel+1)
	} else if a.buffers.Load() == 0 {
		log.Printf("[ASIO] no buffer from %q within %v, check the device name and sample rate %v", a.DeviceName, asioWatchdog, a.SampleRate)
	}
}

func (a *ASIOStereo) Stop() {
	if a.done == nil {
		return
	}
	close(a.done)
	a.done = nil

	a.device.Stop()
	a.device.Close()
	a.device.Unload()
}
