// Package config loads MazeRun settings from MAZERUN_* environment variables.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Profile  string `env:"MAZERUN_PROFILE"`
	DataDir  string `env:"MAZERUN_DATA_DIR"`
	Platform string `env:"MAZERUN_PLATFORM" envDefault:"desktop"`

	Storage   string `env:"MAZERUN_STORAGE" envDefault:"file"`
	LevelsDir string `env:"MAZERUN_LEVELS_DIR"`

	// GyroAddr is the listen address of the phone tilt relay; empty disables it.
	GyroAddr      string        `env:"MAZERUN_GYRO_ADDR"`
	GyroPublicURL string        `env:"MAZERUN_GYRO_PUBLIC_URL"`
	GyroTokenTTL  time.Duration `env:"MAZERUN_GYRO_TOKEN_TTL" envDefault:"12h"`

	Input Input
}

// Input tunes the input-to-velocity pipeline.
type Input struct {
	Speed              float64       `env:"MAZERUN_SPEED" envDefault:"160"`
	DeadZone           float64       `env:"MAZERUN_DEADZONE" envDefault:"0.08"`
	Curve              float64       `env:"MAZERUN_CURVE" envDefault:"1"`
	Smoothing          float64       `env:"MAZERUN_SMOOTHING" envDefault:"0.6"`
	JoystickRadiusFrac float64       `env:"MAZERUN_JOYSTICK_RADIUS" envDefault:"0.05"`
	GyroMaxTilt        float64       `env:"MAZERUN_GYRO_MAX_TILT" envDefault:"8"`
	GyroStaleAfter     time.Duration `env:"MAZERUN_GYRO_STALE_AFTER" envDefault:"500ms"`
}

func Default() Config {
	return Config{
		Platform:     "desktop",
		Storage:      "file",
		GyroTokenTTL: 12 * time.Hour,
		Input: Input{
			Speed:              160,
			DeadZone:           0.08,
			Curve:              1,
			Smoothing:          0.6,
			JoystickRadiusFrac: 0.05,
			GyroMaxTilt:        8,
			GyroStaleAfter:     500 * time.Millisecond,
		},
	}
}

// Parse reads the environment on top of defaults.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Load is Parse with a logged fallback to Default.
func Load() Config {
	cfg, err := Parse()
	if err != nil {
		log.Println("config:", err, "- using defaults")
		return Default()
	}
	return cfg
}

func (c *Config) normalize() {
	d := Default()
	if c.Input.Speed <= 0 {
		c.Input.Speed = d.Input.Speed
	}
	if c.Input.DeadZone < 0 || c.Input.DeadZone >= 1 {
		c.Input.DeadZone = d.Input.DeadZone
	}
	if c.Input.Curve <= 0 {
		c.Input.Curve = d.Input.Curve
	}
	if c.Input.Smoothing < 0 || c.Input.Smoothing >= 1 {
		c.Input.Smoothing = d.Input.Smoothing
	}
	if c.Input.JoystickRadiusFrac <= 0 {
		c.Input.JoystickRadiusFrac = d.Input.JoystickRadiusFrac
	}
	if c.Input.GyroMaxTilt <= 0 {
		c.Input.GyroMaxTilt = d.Input.GyroMaxTilt
	}
	if c.GyroTokenTTL <= 0 {
		c.GyroTokenTTL = d.GyroTokenTTL
	}
}

func (c Config) Mobile() bool {
	return c.Platform == "android" || c.Platform == "ios"
}
