package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Grid     GridConfig     `yaml:"grid"`
	Petal    PetalConfig    `yaml:"petal"`
	Camera   CameraConfig   `yaml:"camera"`
	Intro    IntroConfig    `yaml:"intro"`
	Audio    AudioConfig    `yaml:"audio"`
}

// GraphicsConfig contains window and render configuration
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FrameRate  int    `yaml:"framerate"`
	RenderMode string `yaml:"render_mode"` // perimeter, crossgap, full
}

// GridConfig contains terrain field generation configuration
type GridConfig struct {
	Radius       int     `yaml:"radius"`
	Spacing      float32 `yaml:"spacing"`
	HeightSeed   int64   `yaml:"height_seed"`
	HeightOctave int     `yaml:"height_octaves"`
	HeightScale  float64 `yaml:"height_scale"`
	RadiusSeed   int64   `yaml:"radius_seed"`
	RadiusOctave int     `yaml:"radius_octaves"`
	RadiusScale  float64 `yaml:"radius_scale"`
	MaxHeight    float32 `yaml:"max_height"`
	MinHexRadius float32 `yaml:"min_hex_radius"`
	MaxHexRadius float32 `yaml:"max_hex_radius"`
	PoleFactor   float32 `yaml:"pole_factor"`
	PoleFade     float32 `yaml:"pole_fade_distance"`
	PoleMinAlpha float32 `yaml:"pole_min_alpha"`
	Gap          float32 `yaml:"gap"`
}

// PetalConfig contains gap-fill reveal configuration
type PetalConfig struct {
	EdgeThickness float32 `yaml:"edge_thickness"`
	RevealRadius  int     `yaml:"reveal_radius"`
}

// CameraConfig contains fly-camera configuration
type CameraConfig struct {
	MoveSpeed    float32 `yaml:"move_speed"`
	SensitivityX float32 `yaml:"sensitivity_x"`
	SensitivityY float32 `yaml:"sensitivity_y"`
	PitchMargin  float32 `yaml:"pitch_margin"`
	HeightLerp   float32 `yaml:"height_lerp"`
	HeightOffset float32 `yaml:"height_offset"`
}

// IntroConfig contains the opening camera sweep configuration
type IntroConfig struct {
	Duration  float32 `yaml:"duration"`
	FadeIn    float32 `yaml:"fade_in"`
	HoldAfter float32 `yaml:"hold_after"`
	SweepDeg  float32 `yaml:"sweep_degrees"`
}

// AudioConfig contains ambient audio configuration
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FrameRate:  60,
			RenderMode: "full",
		},
		Grid: GridConfig{
			Radius:       20,
			Spacing:      4.0,
			HeightSeed:   42,
			HeightOctave: 4,
			HeightScale:  50.0,
			RadiusSeed:   137,
			RadiusOctave: 3,
			RadiusScale:  30.0,
			MaxHeight:    20.0,
			MinHexRadius: 0.2,
			MaxHexRadius: 2.6,
			PoleFactor:   0.06,
			PoleFade:     40.0,
			PoleMinAlpha: 0.05,
			Gap:          0.05,
		},
		Petal: PetalConfig{
			EdgeThickness: 0.03,
			RevealRadius:  2,
		},
		Camera: CameraConfig{
			MoveSpeed:    15.0,
			SensitivityX: 0.003,
			SensitivityY: 0.002,
			PitchMargin:  0.05,
			HeightLerp:   0.1,
			HeightOffset: 6.0,
		},
		Intro: IntroConfig{
			Duration:  1.5,
			FadeIn:    0.4,
			HoldAfter: 0.4,
			SweepDeg:  10.0,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	// Create default config
	config := DefaultConfig()

	// Read file
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	// Convert to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	// Write file
	err = ioutil.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
