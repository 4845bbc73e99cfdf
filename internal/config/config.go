package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelzoom/internal/fractal"
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultMaxIter = 300
	DefaultXCenter = -0.5
	DefaultYCenter = 0.0
	DefaultScale   = 1.5
	DefaultSteps   = 15
	DefaultFPS     = 10
)

type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	MaxIter int     `yaml:"max_iter"`
	XCenter float64 `yaml:"x_center"`
	YCenter float64 `yaml:"y_center"`
	Scale   float64 `yaml:"scale"`
	Movie   Movie   `yaml:"movie"`
}

// Movie holds animation assembly settings.
type Movie struct {
	Steps int `yaml:"steps"`
	FPS   int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		MaxIter: DefaultMaxIter,
		XCenter: DefaultXCenter,
		YCenter: DefaultYCenter,
		Scale:   DefaultScale,
		Movie: Movie{
			Steps: DefaultSteps,
			FPS:   DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Viewport assembles the render viewport described by the config.
func (c *Config) Viewport() fractal.Viewport {
	return fractal.Viewport{
		Width:   c.Width,
		Height:  c.Height,
		MaxIter: c.MaxIter,
		XCenter: c.XCenter,
		YCenter: c.YCenter,
		Scale:   c.Scale,
	}
}
