package device

import (
	"sync/atomic"
	"time"

	"Sinegen/pkg/frame"
)

// Loopback is a simulated codec: every period the frame written in the
// previous period comes back as input.
type Loopback struct {
	SampleRate float64        // the fake sample rate, 0 or less means no limit
	Capture    []frame.Packed // written frames are appended up to cap(Capture)

	in, out frame.Packed

	overrun    atomic.Bool
	dropped    atomic.Uint64
	recoveries atomic.Uint64

	done    chan struct{}
	stopped chan struct{}
}

func (d *Loopback) OverrunPending() bool {
	return d.overrun.Load()
}

func (d *Loopback) ReadSample() frame.Packed {
	return d.in
}

func (d *Loopback) WriteSample(f frame.Packed) {
	d.out = f
	if len(d.Capture) < cap(d.Capture) {
		d.Capture = append(d.Capture, f)
	}
}

func (d *Loopback) Recover() {
	d.in, d.out = 0, 0
	d.overrun.Store(false)
	d.recoveries.Add(1)
}

// InjectOverrun raises the overrun flag as if a period had been missed.
func (d *Loopback) InjectOverrun() {
	d.overrun.Store(true)
}

// Dropped counts the sample periods the clock skipped because isr was late.
func (d *Loopback) Dropped() uint64 {
	return d.dropped.Load()
}

func (d *Loopback) Recoveries() uint64 {
	return d.recoveries.Load()
}

func (d *Loopback) tick(isr func()) {
	d.in = d.out
	isr()
}

// Pump runs n sample periods synchronously on the calling goroutine.
func (d *Loopback) Pump(isr func(), n int) {
	for range n {
		d.tick(isr)
	}
}

func (d *Loopback) Start(isr func()) {
	d.done = make(chan struct{})
	d.stopped = make(chan struct{})
	go func() {
		defer close(d.stopped)

		if d.SampleRate <= 0 {
			for {
				select {
				case <-d.done:
					return
				default:
					d.tick(isr)
				}
			}
		} else {
			period := d.period()
			ticker := time.NewTicker(period)
			defer ticker.Stop()

			var last time.Time
			for {
				select {
				case <-d.done:
					return
				case now := <-ticker.C:
					// the ticker drops ticks for slow receivers
					if !last.IsZero() {
						if missed := now.Sub(last)/period - 1; missed > 0 {
							d.dropped.Add(uint64(missed))
							d.overrun.Store(true)
						}
					}
					last = now
					d.tick(isr)
				}
			}
		}
	}()
}

// period is at least one nanosecond, sub-hertz rates give periods above a second.
func (d *Loopback) period() time.Duration {
	return max(time.Duration(float64(time.Second)/d.SampleRate), 1)
}

func (d *Loopback) Stop() {
	close(d.done)
	<-d.stopped
}
