package render

import (
	"fmt"

	"github.com/san-kum/metaballs/internal/dynamo"
)

// Uniform names shared with the fragment shaders.
const (
	UniformMetaballs     = "metaballs"
	UniformMetaballCount = "metaball_count"
	UniformThreshold     = "threshold"
	UniformCameraOrigin  = "camera_origin"
	UniformCameraMatrix  = "camera_matrix"
	UniformTime          = "time"
	UniformResolution    = "resolution"
	UniformPixelScale    = "pixel_scale"
)

var (
	required2D = []string{UniformMetaballs, UniformMetaballCount, UniformThreshold}
	required3D = []string{UniformMetaballs, UniformMetaballCount, UniformThreshold, UniformCameraOrigin, UniformCameraMatrix}
	optional   = []string{UniformTime, UniformResolution, UniformPixelScale}
)

// Shader is a compiled program and the locations of its uniforms.
type Shader struct {
	Mode     dynamo.Mode
	Program  uint32
	Uniforms map[string]int32
}

// Loc returns the location for name, or -1 if the program does not use it.
func (s *Shader) Loc(name string) int32 {
	if loc, ok := s.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (s *Shader) Has(name string) bool {
	return s.Loc(name) >= 0
}

// loadShader compiles one program and resolves its uniforms. Missing required
// uniforms and an array capacity other than dynamo.MaxEntities are errors.
func loadShader(stage Stage, mode dynamo.Mode, vertexFile, fragmentFile string) (*Shader, error) {
	program, err := stage.CompileProgram(vertexFile, fragmentFile)
	if err != nil {
		return nil, fmt.Errorf("%s program (%s, %s): %w", mode, vertexFile, fragmentFile, err)
	}

	required := required2D
	if mode == dynamo.Mode3D {
		required = required3D
	}

	sh := &Shader{Mode: mode, Program: program, Uniforms: make(map[string]int32)}
	for _, name := range required {
		loc := stage.UniformLocation(program, name)
		if loc < 0 {
			return nil, fmt.Errorf("%s program: %q: %w", mode, name, dynamo.ErrUniformNotFound)
		}
		sh.Uniforms[name] = loc
	}
	for _, name := range optional {
		if loc := stage.UniformLocation(program, name); loc >= 0 {
			sh.Uniforms[name] = loc
		}
	}

	if size := stage.UniformSize(program, UniformMetaballs); size != dynamo.MaxEntities {
		return nil, fmt.Errorf("%s program: %s[%d], host expects %d: %w",
			mode, UniformMetaballs, size, dynamo.MaxEntities, dynamo.ErrCapacityMismatch)
	}
	return sh, nil
}
