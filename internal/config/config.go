package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/metaballs/assets"
	"github.com/san-kum/metaballs/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPreset    = "classic"
	DefaultWidth     = 1080
	DefaultHeight    = 720
	DefaultThreshold = 1000.0
	DefaultDistance  = 600.0
	DefaultStepDeg   = 0.5
)

type Config struct {
	Preset      string        `yaml:"preset,omitempty"`
	Mode        string        `yaml:"mode"`
	Count       int           `yaml:"count"`
	Threshold   float32       `yaml:"threshold"`
	Seed        int64         `yaml:"seed"`
	TimeUniform bool          `yaml:"time_uniform"`
	Window      WindowConfig  `yaml:"window"`
	Bounds      BoundsConfig  `yaml:"bounds"`
	Spawn       SpawnConfig   `yaml:"spawn"`
	Camera      CameraConfig  `yaml:"camera"`
	Shaders     ShadersConfig `yaml:"shaders"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BoundsConfig holds the half-extents of the bounding box.
type BoundsConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

type SpawnConfig struct {
	Speed  dynamo.Range `yaml:"speed"`
	Radius dynamo.Range `yaml:"radius"`
}

type CameraConfig struct {
	Distance float32    `yaml:"distance"`
	Axis     [3]float32 `yaml:"axis,flow"`
	StepDeg  float32    `yaml:"step_deg"`
}

// ShadersConfig names the GLSL sources. An empty Dir uses the embedded set.
type ShadersConfig struct {
	Dir        string `yaml:"dir,omitempty"`
	Vertex     string `yaml:"vertex"`
	Fragment2D string `yaml:"fragment_2d"`
	Fragment3D string `yaml:"fragment_3d"`
}

// DefaultConfig is the classic 2D layout: a full store bouncing around a
// 1080x720 window.
func DefaultConfig() *Config {
	return &Config{
		Mode:      "2d",
		Count:     dynamo.MaxEntities,
		Threshold: DefaultThreshold,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  "Metaballs",
		},
		Bounds: BoundsConfig{X: DefaultWidth / 2, Y: DefaultHeight / 2},
		Spawn: SpawnConfig{
			Speed:  dynamo.Range{Min: -5, Max: 5},
			Radius: dynamo.Range{Min: 100, Max: 600},
		},
		Camera: CameraConfig{
			Distance: DefaultDistance,
			Axis:     [3]float32{0, 1, 0},
			StepDeg:  DefaultStepDeg,
		},
		Shaders: ShadersConfig{
			Vertex:     assets.Vertex,
			Fragment2D: assets.Fragment2D,
			Fragment3D: assets.Fragment3D,
		},
	}
}

// Load reads a YAML file over base. A nil base starts from DefaultConfig.
func Load(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if base != nil {
		cfg = base.Clone()
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate reports the first out-of-range field. Entity counts above the
// shader capacity are rejected, never truncated.
func (c *Config) Validate() error {
	bad := func(field string, value any, err error) error {
		return &dynamo.ConfigError{Field: field, Value: value, Wrapped: err}
	}

	if _, err := dynamo.ParseMode(c.Mode); err != nil {
		return bad("mode", c.Mode, dynamo.ErrInvalidConfig)
	}
	if c.Count > dynamo.MaxEntities {
		return bad("count", c.Count, dynamo.ErrTooManyEntities)
	}
	if c.Count < 0 {
		return bad("count", c.Count, dynamo.ErrInvalidConfig)
	}
	if c.Threshold <= 0 {
		return bad("threshold", c.Threshold, dynamo.ErrInvalidConfig)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return bad("window", fmt.Sprintf("%dx%d", c.Window.Width, c.Window.Height), dynamo.ErrInvalidConfig)
	}
	for _, b := range []struct {
		field string
		v     float32
	}{{"bounds.x", c.Bounds.X}, {"bounds.y", c.Bounds.Y}, {"bounds.z", c.Bounds.Z}} {
		if b.v < 0 {
			return bad(b.field, b.v, dynamo.ErrInvalidConfig)
		}
	}
	if c.Spawn.Speed.Min > c.Spawn.Speed.Max {
		return bad("spawn.speed", c.Spawn.Speed, dynamo.ErrInvalidConfig)
	}
	if c.Spawn.Radius.Min <= 0 || c.Spawn.Radius.Min > c.Spawn.Radius.Max {
		return bad("spawn.radius", c.Spawn.Radius, dynamo.ErrInvalidConfig)
	}
	if c.Camera.Distance <= 0 {
		return bad("camera.distance", c.Camera.Distance, dynamo.ErrInvalidConfig)
	}
	if c.CameraAxis().Len() == 0 {
		return bad("camera.axis", c.Camera.Axis, dynamo.ErrInvalidConfig)
	}
	return nil
}

func (c *Config) RenderMode() dynamo.Mode {
	m, _ := dynamo.ParseMode(c.Mode)
	return m
}

func (c *Config) Box() dynamo.Box {
	return dynamo.NewBox(c.Bounds.X, c.Bounds.Y, c.Bounds.Z)
}

func (c *Config) CameraAxis() mgl32.Vec3 {
	return mgl32.Vec3(c.Camera.Axis)
}
