// Package speaker plays the sample interrupt's output on the default audio
// output through oto. oto pulls audio, so the interrupt is driven from the
// player's Read: one invocation per 4-byte stereo frame.
package speaker

import (
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"Sinegen/pkg/frame"

	"github.com/ebitengine/oto/v3"
)

const bytesPerFrame = 4

type Speaker struct {
	SampleRate int
	BufferSize time.Duration // 0 lets oto decide

	ctx    *oto.Context
	player *oto.Player
	mutex  sync.Mutex // setup and teardown only

	isr     func()
	out     frame.Packed
	overrun atomic.Bool

	clock   func() time.Time
	last    time.Time
	pending time.Duration
}

func (s *Speaker) Open() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.ctx != nil {
		return nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   s.SampleRate,
		ChannelCount: frame.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   s.BufferSize,
	})
	if err != nil {
		return fmt.Errorf("failed to open audio context: %v", err)
	}
	<-ready

	s.ctx = ctx
	return nil
}

func (s *Speaker) OverrunPending() bool {
	return s.overrun.Load()
}

// ReadSample returns silence, there is no capture path.
func (s *Speaker) ReadSample() frame.Packed {
	return 0
}

func (s *Speaker) WriteSample(f frame.Packed) {
	s.out = f
}

func (s *Speaker) Recover() {
	s.out = 0
	s.overrun.Store(false)
}

// Read is called by oto on its own goroutine. Only whole frames are
// produced; a trailing partial frame in p is zeroed and not counted.
func (s *Speaker) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFrame

	// the previous chunk plus the device buffer should cover the gap between
	// two pulls, otherwise the device ran dry
	now := s.now()
	if !s.last.IsZero() && s.BufferSize > 0 && now.Sub(s.last) > s.pending+s.BufferSize {
		s.overrun.Store(true)
	}
	s.last = now
	s.pending = time.Duration(n) * time.Second / time.Duration(s.SampleRate)

	for i := 0; i < n; i++ {
		s.isr()
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame:], s.out.Uint32())
	}
	clear(p[n*bytesPerFrame:])
	return n * bytesPerFrame, nil
}

func (s *Speaker) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}

func (s *Speaker) Start(isr func()) {
	if err := s.Open(); err != nil {
		panic(err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.isr = isr
	s.player = s.ctx.NewPlayer(s)
	s.player.Play()
}

func (s *Speaker) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.player != nil {
		s.player.Pause()
		s.player.Close()
		s.player = nil
	}
}
