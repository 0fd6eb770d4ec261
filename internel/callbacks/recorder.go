package callbacks

import (
	"Sinegen/pkg/device"
	"Sinegen/pkg/frame"
)

// Recorder taps the frames written to a device. Track must be allocated with
// enough capacity up front; once it is full further frames are only
// forwarded, so the interrupt path never allocates.
type Recorder struct {
	device.Device
	Track []frame.Packed
}

func NewRecorder(d device.Device, frames int) *Recorder {
	return &Recorder{
		Device: d,
		Track:  make([]frame.Packed, 0, frames),
	}
}

func (r *Recorder) WriteSample(f frame.Packed) {
	if len(r.Track) < cap(r.Track) {
		r.Track = append(r.Track, f)
	}
	r.Device.WriteSample(f)
}

func (r *Recorder) Full() bool {
	return len(r.Track) == cap(r.Track)
}

func (r *Recorder) Reset() {
	r.Track = r.Track[:0]
}
