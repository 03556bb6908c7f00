package render

import "github.com/go-gl/mathgl/mgl32"

// Stage is the shading backend. Implementations compile programs from file
// names, resolve uniforms and perform value uploads on integer handles.
type Stage interface {
	CompileProgram(vertexFile, fragmentFile string) (uint32, error)
	// UniformLocation returns -1 when the program has no such active uniform.
	UniformLocation(program uint32, name string) int32
	// UniformSize returns the declared array length of an active uniform,
	// 1 for non-arrays and 0 when it does not exist.
	UniformSize(program uint32, name string) int

	UseProgram(program uint32)
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4fv(loc int32, count int32, data []float32)
	UniformMatrix4fv(loc int32, m *mgl32.Mat4)

	Clear()
	DrawQuad()
	Present()
}
