package gizmo

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/gizmo/rt/core"
	"github.com/gekko3d/gizmo/rt/handles"
	"github.com/gekko3d/gizmo/rt/mesh"
)

var ErrInvalidConfig = errors.New("invalid gizmo config")

// Config is the tunable part of a gizmo session. Zero-valued fields left out
// of a YAML file keep their defaults.
type Config struct {
	MinimumRadius float64 `yaml:"minimum_radius"`
	RadiusFactor  float64 `yaml:"radius_factor"`

	// OrientWithObject aligns the axes with the object's rotation instead of
	// the world.
	OrientWithObject bool    `yaml:"orient_with_object"`
	Body             string  `yaml:"body"` // "flat" or "wgs84"
	ScaleBoxFactor   float64 `yaml:"scale_box_factor"`
	DepthFailAlpha   float32 `yaml:"depth_fail_alpha"`

	Ring RingConfig `yaml:"ring"`
	Log  LogConfig  `yaml:"log"`
}

type RingConfig struct {
	TubeFactor       float64 `yaml:"tube_factor"`
	RadialSegments   int     `yaml:"radial_segments"`
	TubularSegments  int     `yaml:"tubular_segments"`
	RecomputeNormals bool    `yaml:"recompute_normals"`
	Compress         bool    `yaml:"compress"`
}

// LogConfig is used when no logger is passed to NewSession. With Enabled
// false the session stays silent.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Prefix  string `yaml:"prefix"`
	Debug   bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		MinimumRadius:  core.DefaultMinimumRadius,
		RadiusFactor:   core.DefaultRadiusFactor,
		Body:           "flat",
		ScaleBoxFactor: 0.1,
		DepthFailAlpha: handles.DefaultDepthFailAlpha,
		Ring: RingConfig{
			TubeFactor:      0.02,
			RadialSegments:  32,
			TubularSegments: 100,
		},
		Log: LogConfig{Prefix: "gizmo"},
	}
}

// ParseConfig overlays YAML onto the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse gizmo config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read gizmo config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	switch {
	case c.MinimumRadius <= 0:
		return fmt.Errorf("%w: minimum_radius must be positive", ErrInvalidConfig)
	case c.RadiusFactor <= 0:
		return fmt.Errorf("%w: radius_factor must be positive", ErrInvalidConfig)
	case c.Ring.TubeFactor <= 0:
		return fmt.Errorf("%w: ring.tube_factor must be positive", ErrInvalidConfig)
	case c.Ring.RadialSegments < 1 || c.Ring.TubularSegments < 1:
		return fmt.Errorf("%w: ring segments must be at least 1", ErrInvalidConfig)
	case c.DepthFailAlpha < 0 || c.DepthFailAlpha > 1:
		return fmt.Errorf("%w: depth_fail_alpha must be within [0, 1]", ErrInvalidConfig)
	}
	if n := mesh.TorusVertexCount(c.Ring.RadialSegments, c.Ring.TubularSegments); n > mesh.MaxVertices {
		return fmt.Errorf("%w: ring has %d vertices: %w", ErrInvalidConfig, n, mesh.ErrTooManyVertices)
	}
	if _, err := c.body(); err != nil {
		return err
	}
	return nil
}

func (c Config) body() (core.Body, error) {
	switch c.Body {
	case "", "flat":
		return core.Flat{}, nil
	case "wgs84":
		return core.WGS84, nil
	}
	return nil, fmt.Errorf("%w: unknown body %q", ErrInvalidConfig, c.Body)
}

func (c Config) style() handles.Style {
	return handles.Style{DepthFailAlpha: c.DepthFailAlpha}
}
