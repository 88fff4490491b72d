package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"rigid-kernel/internal/env"
	"rigid-kernel/internal/logger"
	"rigid-kernel/internal/physics"
)

// DefaultPath is the path to the engine config file, relative to the process working directory.
const DefaultPath = "config/engine.yaml"

// EngineConfig holds the scene driver and viewer settings. Persisted as YAML.
type EngineConfig struct {
	// Processor is cpu, parallel (alias mixed) or gpu. gpu is not implemented.
	Processor string `yaml:"processor"`
	// Workers bounds the parallel processor; 0 uses GOMAXPROCS.
	Workers  int     `yaml:"workers"`
	TimeStep float64 `yaml:"time_step"`
	Steps    int     `yaml:"steps"`
	// LegacyZVelocity makes predictions reproduce the historical Z velocity formula.
	LegacyZVelocity bool   `yaml:"legacy_z_velocity"`
	LogPath         string `yaml:"log_path"`

	Viewer ViewerConfig `yaml:"viewer"`
}

// ViewerConfig holds raylib viewer preferences.
type ViewerConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	TargetFPS   int  `yaml:"target_fps"`
	ShowFPS     bool `yaml:"show_fps"`
	GridVisible bool `yaml:"grid_visible"`
	// PredictStates is how many predicted positions are drawn ahead of each body.
	PredictStates int `yaml:"predict_states"`
	// Colors are #RRGGBB or #RRGGBBAA.
	BodyColor  string `yaml:"body_color"`
	PathColor  string `yaml:"path_color"`
	PanelColor string `yaml:"panel_color"`
}

// Default returns the default configuration: serial processor, 60 Hz step.
func Default() EngineConfig {
	return EngineConfig{
		Processor: "cpu",
		TimeStep:  1.0 / 60,
		Steps:     60,
		LogPath:   logger.DefaultPath,
		Viewer: ViewerConfig{
			Width:         1280,
			Height:        720,
			TargetFPS:     60,
			ShowFPS:       true,
			GridVisible:   true,
			PredictStates: 30,
			BodyColor:     "#e6a03c",
			PathColor:     "#5ac8fab4",
			PanelColor:    "#14161cc8",
		},
	}
}

// Load reads the config at path on top of Default(). A missing file yields Default() and no error.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg EngineConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from KERNEL_* environment variables.
func (c *EngineConfig) ApplyEnv() error {
	var err error
	c.Processor = env.String("KERNEL_PROCESSOR", c.Processor)
	c.LogPath = env.String("KERNEL_LOG_PATH", c.LogPath)
	if c.Workers, err = env.Int("KERNEL_WORKERS", c.Workers); err != nil {
		return err
	}
	if c.TimeStep, err = env.Float("KERNEL_TIME_STEP", c.TimeStep); err != nil {
		return err
	}
	if c.Steps, err = env.Int("KERNEL_STEPS", c.Steps); err != nil {
		return err
	}
	if c.LegacyZVelocity, err = env.Bool("KERNEL_LEGACY_Z_VELOCITY", c.LegacyZVelocity); err != nil {
		return err
	}
	return nil
}

// Validate checks ranges and that the processor name parses.
func (c EngineConfig) Validate() error {
	if _, err := physics.ParseProcessor(c.Processor); err != nil {
		return err
	}
	if !(c.TimeStep > 0) {
		return fmt.Errorf("time_step must be positive, got %g", c.TimeStep)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", c.Steps)
	}
	return nil
}

// WorldConfig converts the config into a physics.WorldConfig using log for world events.
func (c EngineConfig) WorldConfig(log physics.Logger) (physics.WorldConfig, error) {
	p, err := physics.ParseProcessor(c.Processor)
	if err != nil {
		return physics.WorldConfig{}, err
	}
	return physics.WorldConfig{Processor: p, Workers: c.Workers, Logger: log}, nil
}

// Predictor returns the kinematic predictor the config selects.
func (c EngineConfig) Predictor() physics.Predictor {
	return physics.Predictor{LegacyZVelocity: c.LegacyZVelocity}
}
