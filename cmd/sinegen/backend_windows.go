//go:build windows

package main

import (
	"fmt"

	"Sinegen/cmd/sinegen/config"
	"Sinegen/pkg/device"
)

func newASIO(cfg *config.Config) (device.Device, error) {
	a := &device.ASIOStereo{
		DeviceName: cfg.Device.DeviceName,
		SampleRate: cfg.Device.SampleRate,
		InChannel:  cfg.Device.InChannel,
		OutChannel: cfg.Device.OutChannel,
	}
	if err := a.Open(); err != nil {
		return nil, fmt.Errorf("failed to open asio device: %v", err)
	}
	return a, nil
}
