//go:build !windows

package main

import (
	"errors"

	"Sinegen/cmd/sinegen/config"
	"Sinegen/pkg/device"
)

func newASIO(*config.Config) (device.Device, error) {
	return nil, errors.New("the asio backend is only available on windows")
}
