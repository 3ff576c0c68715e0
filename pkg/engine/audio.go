package engine

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"neonhex/internal/util"
	"neonhex/pkg/config"
)

const (
	sampleRate      = 44100
	framesPerBuffer = 1024
	numChannels     = 2

	droneBaseFreq = 55.0  // A1
	droneMaxFreq  = 220.0 // A3
	droneDetune   = 1.007
)

// AudioEngine plays a two-oscillator ambient drone whose pitch
// follows the terrain height under the camera.
type AudioEngine struct {
	config config.AudioConfig
	stream *portaudio.Stream

	masterMutex sync.Mutex
	isRunning   bool
	volume      float32

	phaseA     float64
	phaseB     float64
	targetFreq float64
	freq       float64
}

// NewAudioEngine creates a new audio engine
func NewAudioEngine(cfg config.AudioConfig) (*AudioEngine, error) {
	engine := &AudioEngine{
		config:     cfg,
		volume:     float32(cfg.Volume),
		targetFreq: droneBaseFreq,
		freq:       droneBaseFreq,
	}
	if !cfg.Enabled {
		return engine, nil
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %v", err)
	}

	var err error
	engine.stream, err = portaudio.OpenDefaultStream(0, numChannels, sampleRate, framesPerBuffer, engine.audioCallback)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %v", err)
	}

	if err := engine.stream.Start(); err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start audio stream: %v", err)
	}

	engine.isRunning = true
	return engine, nil
}

// SetMuted silences or restores the drone.
func (ae *AudioEngine) SetMuted(muted bool) {
	ae.masterMutex.Lock()
	defer ae.masterMutex.Unlock()

	if muted {
		ae.volume = 0
	} else {
		ae.volume = float32(ae.config.Volume)
	}
}

// SetHeight retunes the drone from the normalized terrain height in
// [0,1] under the camera.
func (ae *AudioEngine) SetHeight(normalized float32) {
	ae.masterMutex.Lock()
	defer ae.masterMutex.Unlock()

	t := util.Clamp(normalized, 0, 1)
	ae.targetFreq = droneBaseFreq * math.Pow(droneMaxFreq/droneBaseFreq, float64(t))
}

// audioCallback is called by PortAudio to fill the output buffer
func (ae *AudioEngine) audioCallback(out []float32) {
	ae.masterMutex.Lock()
	target := ae.targetFreq
	volume := ae.volume
	ae.masterMutex.Unlock()

	for i := 0; i < len(out); i += numChannels {
		// Glide toward the target pitch to avoid zipper noise.
		ae.freq += (target - ae.freq) * 0.0005

		ae.phaseA += 2 * math.Pi * ae.freq / sampleRate
		ae.phaseB += 2 * math.Pi * ae.freq * droneDetune / sampleRate
		if ae.phaseA > 2*math.Pi {
			ae.phaseA -= 2 * math.Pi
		}
		if ae.phaseB > 2*math.Pi {
			ae.phaseB -= 2 * math.Pi
		}

		a := float32(math.Sin(ae.phaseA))
		b := float32(math.Sin(ae.phaseB))
		sample := (a*0.6 + b*0.4) * 0.25 * volume

		out[i] = sample
		if numChannels > 1 {
			out[i+1] = sample
		}
	}
}

// Shutdown stops the stream and releases PortAudio
func (ae *AudioEngine) Shutdown() {
	ae.masterMutex.Lock()
	defer ae.masterMutex.Unlock()

	if !ae.isRunning {
		return
	}
	ae.isRunning = false
	ae.stream.Stop()
	ae.stream.Close()
	portaudio.Terminate()
}
