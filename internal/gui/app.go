package gui

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/san-kum/metaballs/assets"
	"github.com/san-kum/metaballs/internal/camera"
	"github.com/san-kum/metaballs/internal/compute"
	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/control"
	"github.com/san-kum/metaballs/internal/render"
	"github.com/san-kum/metaballs/internal/sim"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread
	runtime.LockOSThread()
}

// App hosts the window and drives the engine once per loop iteration.
type App struct {
	window     *glfw.Window
	engine     *sim.Engine
	stage      *compute.OpenGLStage
	dispatcher *render.Dispatcher
	control    *control.Controller
	title      string

	frames    int
	lastTitle time.Time
}

// NewApp opens the window, creates the GL context and compiles both shader
// programs. Any failure here is fatal.
func NewApp(cfg *config.Config, engine *sim.Engine) (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	// unthrottled: frame pacing is left to the driver
	glfw.SwapInterval(0)

	app, err := setup(cfg, engine, window)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	return app, nil
}

func setup(cfg *config.Config, engine *sim.Engine, window *glfw.Window) (*App, error) {
	sources, err := assets.Shaders(cfg.Shaders.Dir)
	if err != nil {
		return nil, err
	}

	stage, err := compute.NewOpenGLStage(sources, window.SwapBuffers)
	if err != nil {
		return nil, err
	}

	fbw, fbh := window.GetFramebufferSize()
	stage.SetViewport(fbw, fbh)

	files := render.Files{
		Vertex:     cfg.Shaders.Vertex,
		Fragment2D: cfg.Shaders.Fragment2D,
		Fragment3D: cfg.Shaders.Fragment3D,
	}
	dispatcher := render.NewDispatcher(stage, files, camera.Viewport{Width: float32(fbw), Height: float32(fbh)}, cfg.TimeUniform)
	dispatcher.SetPixelScale(pixelScale(window, fbw))
	if err := dispatcher.Init(); err != nil {
		return nil, err
	}

	app := &App{
		window:     window,
		engine:     engine,
		stage:      stage,
		dispatcher: dispatcher,
		control:    control.New(engine.Settings),
		title:      cfg.Window.Title,
		lastTitle:  time.Now(),
	}

	window.SetKeyCallback(app.onKey)
	window.SetMouseButtonCallback(app.onMouseButton)
	window.SetFramebufferSizeCallback(app.onResize)

	slog.Info("window ready", "width", fbw, "height", fbh, "mode", engine.Settings.Mode)
	return app, nil
}

// Run ticks until the window is closed or ctx is done. Input callbacks fire
// from PollEvents, between ticks.
func (a *App) Run(ctx context.Context) error {
	for !a.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.engine.Tick(a.dispatcher)
		glfw.PollEvents()
		a.updateTitle()
	}
	return nil
}

func (a *App) Close() {
	a.stage.Cleanup()
	glfw.Terminate()
}

func (a *App) updateTitle() {
	a.frames++
	elapsed := time.Since(a.lastTitle)
	if elapsed < time.Second {
		return
	}

	s := a.engine.Settings
	title := fmt.Sprintf("%s | %s | %.0f fps", a.title, s.Mode, float64(a.frames)/elapsed.Seconds())
	if s.Paused {
		title += " | paused"
	}
	a.window.SetTitle(title)

	a.frames = 0
	a.lastTitle = time.Now()
}
