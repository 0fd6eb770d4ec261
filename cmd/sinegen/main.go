package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"Sinegen/cmd/sinegen/config"
	"Sinegen/internel/callbacks"
	"Sinegen/internel/utils"
	"Sinegen/pkg/analysis"
	"Sinegen/pkg/frame"
	"Sinegen/pkg/synth"
)

func parse_args() (string, string, float64, string, bool) {
	config_path_var := flag.String("c", "config.yaml", "Set the path for the config file")
	backend_var := flag.String("b", "", "Override the backend (loopback, speaker, asio)")
	duration_var := flag.Float64("t", 0, "Set the duration in seconds, 0 waits for enter")
	output_path_var := flag.String("o", "", "Set the path for the captured frames")
	verify_var := flag.Bool("verify", false, "Report the measured frequency of each channel")
	flag.Parse()
	return *config_path_var, *backend_var, *duration_var, *output_path_var, *verify_var
}

func main() {

	config_path, backend, duration, output_path, verify := parse_args()

	cfg, err := config.LoadConfig(config_path)
	if err != nil {
		log.Fatalf("Unable to load %s: %v", config_path, err)
	}
	if backend == "" {
		backend = cfg.Device.Backend
	}
	if output_path == "" {
		output_path = cfg.Capture.Path
	}

	synthConfig := cfg.SynthesisConfig()
	if err := synthConfig.Validate(); err != nil {
		log.Printf("[Config] warning: %v", err)
	}

	dev, err := newDevice(cfg, backend)
	if err != nil {
		log.Fatalf("Unable to open %s backend: %v", backend, err)
	}
	recorder := callbacks.NewRecorder(dev, cfg.Capture.Frames)

	// every coefficient is computed before the first interrupt can fire
	handler := synth.Initialize(synthConfig, recorder)

	fmt.Printf("Backend: %s\nSample Rate: %.0f\nLeft: %.2f Hz\nRight: %.2f Hz\nAmplitude: %.0f\nStrategy: %v\n",
		backend, synthConfig.SampleRate,
		synthConfig.Frequency[frame.Left], synthConfig.Frequency[frame.Right],
		handler.Amplitude(), synthConfig.Strategy)
	if duration <= 0 {
		fmt.Println("press enter to stop...")
	}

	recorder.Start(handler.OnSampleInterrupt)
	monitor(handler, utils.WaitAsync(time.Duration(duration*float64(time.Second))))
	recorder.Stop()

	log.Printf("[Handler] %d periods serviced, %d overruns, state %v", handler.Periods(), handler.Overruns(), handler.State())

	if output_path != "" {
		if err := utils.WriteCapture(output_path, recorder.Track); err != nil {
			log.Fatalf("Unable to save capture: %v", err)
		}
		log.Printf("[Capture] %d frames saved to %s", len(recorder.Track), output_path)
	}

	if verify {
		for ch, name := range []string{"left", "right"} {
			f, err := analysis.PeakFrequency(analysis.Channel(recorder.Track, ch), synthConfig.SampleRate)
			if err != nil {
				log.Printf("[Verify] %s: %v", name, err)
				continue
			}
			level := analysis.PeakLevel(analysis.Normalize(recorder.Track, ch))
			fmt.Printf("[Verify] %s: configured %.2f Hz, measured %.2f Hz, peak %.3f FS (expected %.3f)\n",
				name, synthConfig.Frequency[ch], f, level, min(handler.Amplitude()/frame.FullScale, 1))
		}
	}
}

// monitor reports new overruns once a second until done is closed.
func monitor(h *synth.Handler, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var overruns uint64
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if n := h.Overruns(); n != overruns {
				log.Printf("[Handler] %d new overruns (state %v)", n-overruns, h.State())
				overruns = n
			}
		}
	}
}
