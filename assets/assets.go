// Package assets embeds the GLSL programs used by the OpenGL stage.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

// Default file names inside the shader directory.
const (
	Vertex     = "pass_through.vert"
	Fragment2D = "metaball_2d.frag"
	Fragment3D = "metaball_3d.frag"
)

//go:embed shaders/*
var embedded embed.FS

// Shaders returns the shader sources. An empty dir selects the embedded set,
// anything else reads from disk so programs can be edited without a rebuild.
func Shaders(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, "shaders")
}
