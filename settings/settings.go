package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/voxelarena/skelsim/game"
	"github.com/voxelarena/skelsim/skeleton"
	"gopkg.in/yaml.v3"
)

// Settings contains everything that can be configured for a simulation.
type Settings struct {
	Physics    Physics `toml:"physics" yaml:"physics"`
	Simulation struct {
		// TickRate is the amount of steps per second the driver runs at.
		TickRate int `toml:"tick_rate" yaml:"tick_rate"`
		// Parallel ticks entities on the worker pool instead of one after another.
		Parallel bool `toml:"parallel" yaml:"parallel"`
		// HistorySize is the amount of frames kept per entity for reconciliation.
		HistorySize int `toml:"history_size" yaml:"history_size"`
		// CorrectionThreshold is how far a client frame may drift before it is corrected.
		CorrectionThreshold float32 `toml:"correction_threshold" yaml:"correction_threshold"`
	} `toml:"simulation" yaml:"simulation"`
	Log struct {
		// Level is the logrus level name the driver logs at.
		Level string `toml:"level" yaml:"level"`
	} `toml:"log" yaml:"log"`
}

// Physics holds the tunables of the skeleton tick. See skeleton.Config for what every value does.
type Physics struct {
	Gravity            float32 `toml:"gravity" yaml:"gravity"`
	GravityDamping     float32 `toml:"gravity_damping" yaml:"gravity_damping"`
	Substeps           int     `toml:"substeps" yaml:"substeps"`
	StairStepHeight    float32 `toml:"stair_step_height" yaml:"stair_step_height"`
	RescueSpeed        float32 `toml:"rescue_speed" yaml:"rescue_speed"`
	GroundProbe        float32 `toml:"ground_probe" yaml:"ground_probe"`
	MaxAirControlSpeed float32 `toml:"max_air_control_speed" yaml:"max_air_control_speed"`
	AirControl         float32 `toml:"air_control" yaml:"air_control"`
	AirDamping         float32 `toml:"air_damping" yaml:"air_damping"`
}

// Config converts the physics settings to a skeleton.Config.
func (p Physics) Config() skeleton.Config {
	return skeleton.Config{
		Gravity:            p.Gravity,
		GravityDamping:     p.GravityDamping,
		Substeps:           p.Substeps,
		StairStepHeight:    p.StairStepHeight,
		RescueSpeed:        p.RescueSpeed,
		GroundProbe:        p.GroundProbe,
		MaxAirControlSpeed: p.MaxAirControlSpeed,
		AirControl:         p.AirControl,
		AirDamping:         p.AirDamping,
	}
}

// DefaultSettings returns the default settings. The physics section matches skeleton.DefaultConfig.
func DefaultSettings() Settings {
	cfg := skeleton.DefaultConfig()

	settings := Settings{}
	settings.Physics = Physics{
		Gravity:            cfg.Gravity,
		GravityDamping:     cfg.GravityDamping,
		Substeps:           cfg.Substeps,
		StairStepHeight:    cfg.StairStepHeight,
		RescueSpeed:        cfg.RescueSpeed,
		GroundProbe:        cfg.GroundProbe,
		MaxAirControlSpeed: cfg.MaxAirControlSpeed,
		AirControl:         cfg.AirControl,
		AirDamping:         cfg.AirDamping,
	}
	settings.Simulation.TickRate = game.DefaultTickRate
	settings.Simulation.HistorySize = game.DefaultHistorySize
	settings.Simulation.CorrectionThreshold = game.DefaultCorrectionThreshold
	settings.Log.Level = "info"
	return settings
}

// Validate returns an error if the settings cannot be simulated with.
func (s Settings) Validate() error {
	if s.Physics.Substeps <= 0 {
		return fmt.Errorf("physics.substeps must be positive, got %d", s.Physics.Substeps)
	}
	if s.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %d", s.Simulation.TickRate)
	}
	if s.Simulation.HistorySize <= 0 {
		return fmt.Errorf("simulation.history_size must be positive, got %d", s.Simulation.HistorySize)
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}

	data, err := marshal(path, DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist. Values
// missing from the file keep their defaults. Files ending in .yaml or .yml are decoded as YAML, anything else
// as TOML.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err := unmarshal(path, data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// LoadOrCreate loads the settings at path, writing the defaults there first if the file does not exist yet.
func LoadOrCreate(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
		return DefaultSettings(), nil
	}
	return Load(path)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func marshal(path string, s Settings) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(s)
	}
	return toml.Marshal(s)
}

func unmarshal(path string, data []byte, s *Settings) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, s)
	}
	return toml.Unmarshal(data, s)
}
