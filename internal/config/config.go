package config

import (
	"fmt"
	"os"
	"time"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/kuramoto/internal/render"
)

const (
	DefaultIntervalMs    = 50
	DefaultStepsPerFrame = 3
	DefaultSizeInches    = 4.0
	DefaultDPI           = 100
	DefaultMarkerRadius  = 3.0
	DefaultSupersample   = 1
)

type Config struct {
	IntervalMs    int     `yaml:"interval_ms"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
	ShowAverage   bool    `yaml:"show_average"`
	Output        string  `yaml:"output,omitempty"`
	Frequencies   string  `yaml:"frequencies,omitempty"`
	Canvas        Canvas  `yaml:"canvas"`
	Preview       Preview `yaml:"preview"`
}

type Canvas struct {
	SizeInches   float64 `yaml:"size_inches"`
	DPI          int     `yaml:"dpi"`
	MarkerRadius float64 `yaml:"marker_radius"`
	Supersample  int     `yaml:"supersample"`
}

// Preview holds terminal preview settings.
type Preview struct {
	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		IntervalMs:    DefaultIntervalMs,
		StepsPerFrame: DefaultStepsPerFrame,
		Canvas: Canvas{
			SizeInches:   DefaultSizeInches,
			DPI:          DefaultDPI,
			MarkerRadius: DefaultMarkerRadius,
			Supersample:  DefaultSupersample,
		},
		Preview: Preview{Theme: "cyberpunk"},
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

// RenderOptions converts the config into renderer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Interval:      time.Duration(c.IntervalMs) * time.Millisecond,
		StepsPerFrame: c.StepsPerFrame,
		ShowAverage:   c.ShowAverage,
		Output:        c.Output,
		Size:          vg.Length(c.Canvas.SizeInches) * vg.Inch,
		DPI:           c.Canvas.DPI,
		MarkerRadius:  vg.Length(c.Canvas.MarkerRadius),
		Supersample:   c.Canvas.Supersample,
	}
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	if err := c.RenderOptions().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
