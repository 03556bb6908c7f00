package render

import (
	"log/slog"

	"github.com/san-kum/metaballs/internal/camera"
	"github.com/san-kum/metaballs/internal/dynamo"
	"github.com/san-kum/metaballs/internal/frame"
)

// Files names the shader sources for both modes.
type Files struct {
	Vertex     string
	Fragment2D string
	Fragment3D string
}

// Dispatcher selects the program for the current mode, uploads the frame and
// issues the full-screen draw.
type Dispatcher struct {
	stage      Stage
	files      Files
	shaders    [2]*Shader
	serializer *frame.Serializer
	viewport   camera.Viewport
	pixelScale float32
	timeOn     bool
}

// fallbackViewport stands in until a non-empty size is known, keeping the
// camera matrix finite.
var fallbackViewport = camera.Viewport{Width: 1, Height: 1}

func NewDispatcher(stage Stage, files Files, vp camera.Viewport, timeUniform bool) *Dispatcher {
	d := &Dispatcher{
		stage:      stage,
		files:      files,
		serializer: frame.NewSerializer(),
		viewport:   fallbackViewport,
		pixelScale: 1,
		timeOn:     timeUniform,
	}
	d.SetViewport(vp)
	return d
}

// Init compiles both programs. Any error is fatal for the caller.
func (d *Dispatcher) Init() error {
	sh2, err := loadShader(d.stage, dynamo.Mode2D, d.files.Vertex, d.files.Fragment2D)
	if err != nil {
		return err
	}
	sh3, err := loadShader(d.stage, dynamo.Mode3D, d.files.Vertex, d.files.Fragment3D)
	if err != nil {
		return err
	}
	d.shaders[dynamo.Mode2D], d.shaders[dynamo.Mode3D] = sh2, sh3
	slog.Debug("shaders ready", "program2d", sh2.Program, "program3d", sh3.Program)
	return nil
}

func (d *Dispatcher) Shader(m dynamo.Mode) *Shader { return d.shaders[m] }

func (d *Dispatcher) Viewport() camera.Viewport { return d.viewport }

func (d *Dispatcher) SetViewport(vp camera.Viewport) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	d.viewport = vp
}

// SetPixelScale sets framebuffer pixels per window unit. World units in 2D
// are window units, so HiDPI framebuffers keep the same layout.
func (d *Dispatcher) SetPixelScale(s float32) {
	if s <= 0 {
		return
	}
	d.pixelScale = s
}

// Draw uploads the active entities and mode-specific uniforms, draws one
// quad and presents it. Init must have succeeded.
func (d *Dispatcher) Draw(settings *dynamo.Settings, store *dynamo.Store, orbit *camera.Orbit) {
	sh := d.shaders[settings.Mode]
	data := d.serializer.Serialize(store)
	count := int32(store.Active())

	d.stage.Clear()
	d.stage.UseProgram(sh.Program)
	if count > 0 {
		d.stage.Uniform4fv(sh.Loc(UniformMetaballs), count, data)
	}
	d.stage.Uniform1i(sh.Loc(UniformMetaballCount), count)
	d.stage.Uniform1f(sh.Loc(UniformThreshold), settings.Threshold)
	if sh.Has(UniformResolution) {
		d.stage.Uniform2f(sh.Loc(UniformResolution), d.viewport.Width, d.viewport.Height)
	}
	if sh.Has(UniformPixelScale) {
		d.stage.Uniform1f(sh.Loc(UniformPixelScale), d.pixelScale)
	}

	if settings.Mode == dynamo.Mode3D {
		view := orbit.Derive(d.viewport)
		d.stage.Uniform3f(sh.Loc(UniformCameraOrigin), view.Eye.X(), view.Eye.Y(), view.Eye.Z())
		d.stage.UniformMatrix4fv(sh.Loc(UniformCameraMatrix), &view.Matrix)
		if d.timeOn && sh.Has(UniformTime) {
			d.stage.Uniform1i(sh.Loc(UniformTime), int32(settings.Frame))
		}
	}

	d.stage.DrawQuad()
	d.stage.Present()
}
