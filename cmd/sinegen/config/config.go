package config

import (
	"fmt"
	"os"
	"time"

	"Sinegen/pkg/frame"
	"Sinegen/pkg/oscillator"
	"Sinegen/pkg/synth"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device struct {
		Backend    string  `yaml:"backend"`
		DeviceName string  `yaml:"device_name"`
		SampleRate float64 `yaml:"sample_rate"`
		InChannel  int     `yaml:"in_channel"`
		OutChannel int     `yaml:"out_channel"`
		BufferMs   int     `yaml:"buffer_ms"`
	} `yaml:"device"`

	Synthesis struct {
		Amplitude      float64             `yaml:"amplitude"`
		LeftFrequency  float64             `yaml:"left_frequency"`
		RightFrequency float64             `yaml:"right_frequency"`
		Strategy       oscillator.Strategy `yaml:"strategy"`
	} `yaml:"synthesis"`

	Capture struct {
		Frames int    `yaml:"frames"`
		Path   string `yaml:"path"`
	} `yaml:"capture"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	config := Default()
	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	return config, nil
}

// Default reproduces the classic lab setup: 8 kHz codec, 2 kHz left and
// 6 kHz right. The right tone is above Nyquist and aliases onto 2 kHz.
func Default() *Config {
	var config Config
	config.Device.Backend = "loopback"
	config.Device.DeviceName = "ASIO4ALL v2"
	config.Device.SampleRate = 8000
	config.Device.BufferMs = 40
	config.Synthesis.Amplitude = 32000
	config.Synthesis.LeftFrequency = 2000
	config.Synthesis.RightFrequency = 6000
	config.Synthesis.Strategy = oscillator.StrategyResonator
	config.Capture.Frames = 8000
	return &config
}

func (c *Config) SynthesisConfig() synth.Config {
	var freq [frame.Channels]float64
	freq[frame.Left] = c.Synthesis.LeftFrequency
	freq[frame.Right] = c.Synthesis.RightFrequency
	return synth.Config{
		Amplitude:  c.Synthesis.Amplitude,
		SampleRate: c.Device.SampleRate,
		Frequency:  freq,
		Strategy:   c.Synthesis.Strategy,
	}
}

func (c *Config) BufferSize() time.Duration {
	return time.Duration(c.Device.BufferMs) * time.Millisecond
}
