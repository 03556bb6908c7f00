package config

import (
	"sort"

	"github.com/san-kum/metaballs/internal/dynamo"
)

// Presets are the three program variants: the classic 2D metaballs, 3D
// charges and 3D metaballs with an animated time uniform.
var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"charges": {
		Mode: "3d", Count: 30, Threshold: 1,
		Window: WindowConfig{Width: 1080, Height: 720, Title: "Charges"},
		Bounds: BoundsConfig{X: 150, Y: 150, Z: 150},
		Spawn: SpawnConfig{
			Speed:  rangeOf(-2, 2),
			Radius: rangeOf(10, 30),
		},
		Camera:  CameraConfig{Distance: DefaultDistance, Axis: [3]float32{0, 1, 0}, StepDeg: DefaultStepDeg},
		Shaders: DefaultConfig().Shaders,
	},
	"metaballs3d": {
		Mode: "3d", Count: 20, Threshold: 1.5, TimeUniform: true,
		Window: WindowConfig{Width: 1080, Height: 720, Title: "Metaballs 3D"},
		Bounds: BoundsConfig{X: 120, Y: 120, Z: 120},
		Spawn: SpawnConfig{
			Speed:  rangeOf(-1.5, 1.5),
			Radius: rangeOf(15, 35),
		},
		Camera:  CameraConfig{Distance: 500, Axis: [3]float32{1, 1, 0}, StepDeg: 0.3},
		Shaders: DefaultConfig().Shaders,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := p.Clone()
	cfg.Preset = name
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func rangeOf(min, max float32) dynamo.Range {
	return dynamo.Range{Min: min, Max: max}
}
