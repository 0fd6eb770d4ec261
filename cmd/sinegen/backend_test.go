package main

import (
	"testing"

	"Sinegen/cmd/sinegen/config"
	"Sinegen/pkg/device"
)

func TestNewDevice_SampleRate(t *testing.T) {
	for _, rate := range []float64{-8000, 0, 0.5} {
		cfg := config.Default()
		cfg.Device.SampleRate = rate
		for _, backend := range []string{"loopback", "speaker", "asio"} {
			if dev, err := newDevice(cfg, backend); err == nil {
				t.Errorf("%s at %v Hz: Expected an error, got %T", backend, rate, dev)
			}
		}
	}
}

func TestNewDevice_Loopback(t *testing.T) {
	cfg := config.Default()
	for _, backend := range []string{"", "loopback"} {
		dev, err := newDevice(cfg, backend)
		if err != nil {
			t.Fatal(err)
		}
		l, ok := dev.(*device.Loopback)
		if !ok {
			t.Fatalf("Expected *device.Loopback, got %T", dev)
		}
		if l.SampleRate != cfg.Device.SampleRate {
			t.Errorf("Expected %v, got %v", cfg.Device.SampleRate, l.SampleRate)
		}
	}
}

func TestNewDevice_Unknown(t *testing.T) {
	if _, err := newDevice(config.Default(), "alsa"); err == nil {
		t.Errorf("Expected an error for an unknown backend")
	}
}
