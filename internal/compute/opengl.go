package compute

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/metaballs/internal/dynamo"
)

// OpenGLStage drives a GL 4.1 core context. It must be created and used on
// the goroutine that owns the context.
type OpenGLStage struct {
	sources fs.FS
	present func()
	vao     uint32
}

// NewOpenGLStage loads GL entry points for the current context. present is
// called at the end of every frame, typically the window's SwapBuffers.
func NewOpenGLStage(sources fs.FS, present func()) (*OpenGLStage, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to init opengl: %w", err)
	}
	slog.Info("opengl initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	s := &OpenGLStage{sources: sources, present: present}

	// core profile refuses to draw without a bound VAO, even an empty one
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.ClearColor(0, 0, 0, 1)

	return s, nil
}

func (s *OpenGLStage) CompileProgram(vertexFile, fragmentFile string) (uint32, error) {
	vShader, err := s.compileShader(vertexFile, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vShader)

	fShader, err := s.compileShader(fragmentFile, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vShader)
	gl.AttachShader(program, fShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: link %s+%s: %s", dynamo.ErrShaderCompile, vertexFile, fragmentFile, strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func (s *OpenGLStage) compileShader(name string, kind uint32) (uint32, error) {
	source, err := fs.ReadFile(s.sources, name)
	if err != nil {
		return 0, fmt.Errorf("read shader: %w", err)
	}

	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s: %s", dynamo.ErrShaderCompile, name, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func (s *OpenGLStage) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// UniformSize reports the declared element count of an active uniform, or 0
// when the program does not use it.
func (s *OpenGLStage) UniformSize(program uint32, name string) int {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen == 0 {
		return 0
	}

	buf := make([]uint8, maxLen)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, uint32(i), maxLen, &length, &size, &xtype, &buf[0])

		if strings.TrimSuffix(string(buf[:length]), "[0]") == name {
			return int(size)
		}
	}
	return 0
}

func (s *OpenGLStage) UseProgram(program uint32) { gl.UseProgram(program) }

func (s *OpenGLStage) Uniform1i(loc int32, v int32)   { gl.Uniform1i(loc, v) }
func (s *OpenGLStage) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (s *OpenGLStage) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }

func (s *OpenGLStage) Uniform3f(loc int32, x, y, z float32) { gl.Uniform3f(loc, x, y, z) }

func (s *OpenGLStage) Uniform4fv(loc int32, count int32, data []float32) {
	if count == 0 || len(data) < int(count)*4 {
		return
	}
	gl.Uniform4fv(loc, count, &data[0])
}

func (s *OpenGLStage) UniformMatrix4fv(loc int32, m *mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (s *OpenGLStage) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT) }

// DrawQuad covers the viewport with one triangle generated from gl_VertexID.
func (s *OpenGLStage) DrawQuad() { gl.DrawArrays(gl.TRIANGLES, 0, 3) }

func (s *OpenGLStage) Present() {
	if s.present != nil {
		s.present()
	}
}

func (s *OpenGLStage) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (s *OpenGLStage) Cleanup() {
	gl.DeleteVertexArrays(1, &s.vao)
}
