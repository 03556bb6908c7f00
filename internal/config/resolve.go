package config

import "fmt"

// Overrides are values set explicitly on the command line. Nil fields were
// not given and leave the preset or file value alone.
type Overrides struct {
	Mode        *string
	Count       *int
	Threshold   *float32
	Seed        *int64
	Width       *int
	Height      *int
	ShaderDir   *string
	TimeUniform *bool
}

func (o Overrides) apply(cfg *Config) {
	if o.Mode != nil {
		cfg.Mode = *o.Mode
	}
	if o.Count != nil {
		cfg.Count = *o.Count
	}
	if o.Threshold != nil {
		cfg.Threshold = *o.Threshold
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.Width != nil {
		cfg.Window.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Window.Height = *o.Height
	}
	if o.ShaderDir != nil {
		cfg.Shaders.Dir = *o.ShaderDir
	}
	if o.TimeUniform != nil {
		cfg.TimeUniform = *o.TimeUniform
	}
}

// Resolve layers the named preset, an optional config file and the
// overrides, lowest precedence first, and validates the result.
func Resolve(preset, file string, o Overrides) (*Config, error) {
	cfg := GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, ListPresets())
	}

	if file != "" {
		loaded, err := Load(file, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	o.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
