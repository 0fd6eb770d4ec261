package main

import (
	"fmt"

	"Sinegen/cmd/sinegen/config"
	"Sinegen/pkg/device"
	"Sinegen/pkg/speaker"
)

func newDevice(cfg *config.Config, backend string) (device.Device, error) {
	if cfg.Device.SampleRate < 1 {
		return nil, fmt.Errorf("sample rate must be at least 1 Hz, got %v", cfg.Device.SampleRate)
	}
	switch backend {
	case "", "loopback":
		return &device.Loopback{SampleRate: cfg.Device.SampleRate}, nil
	case "speaker":
		s := &speaker.Speaker{
			SampleRate: int(cfg.Device.SampleRate),
			BufferSize: cfg.BufferSize(),
		}
		if err := s.Open(); err != nil {
			return nil, err
		}
		return s, nil
	case "asio":
		return newASIO(cfg)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
