package gui

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/san-kum/metaballs/internal/camera"
	"github.com/san-kum/metaballs/internal/control"
)

var keyNames = map[glfw.Key]string{
	glfw.KeySpace:  "space",
	glfw.KeyP:      "p",
	glfw.KeyM:      "m",
	glfw.KeyTab:    "tab",
	glfw.KeyQ:      "q",
	glfw.KeyEscape: "esc",
	glfw.KeyW:      "w",
	glfw.KeyA:      "a",
	glfw.KeyS:      "s",
	glfw.KeyD:      "d",
	glfw.KeyUp:     "up",
	glfw.KeyDown:   "down",
	glfw.KeyLeft:   "left",
	glfw.KeyRight:  "right",
}

var buttons = map[glfw.MouseButton]control.Button{
	glfw.MouseButtonLeft:   control.ButtonLeft,
	glfw.MouseButtonRight:  control.ButtonRight,
	glfw.MouseButtonMiddle: control.ButtonMiddle,
}

func (a *App) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if name, ok := keyNames[key]; ok {
		a.control.Handle(control.FromKey(name))
	}
}

func (a *App) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if b, ok := buttons[button]; ok {
		a.control.Handle(control.FromButton(b))
	}
}

// onResize keeps the GL viewport and the camera's pixel space in step with
// the framebuffer. Minimized windows report 0x0 and are ignored.
func (a *App) onResize(w *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.stage.SetViewport(width, height)
	a.dispatcher.SetViewport(camera.Viewport{Width: float32(width), Height: float32(height)})
	a.dispatcher.SetPixelScale(pixelScale(w, width))
	slog.Debug("viewport resized", "width", width, "height", height)
}

// pixelScale is framebuffer pixels per window unit: 2 on a Retina display,
// 1 where the platform already reports window sizes in pixels.
func pixelScale(w *glfw.Window, fbWidth int) float32 {
	ww, _ := w.GetSize()
	if ww <= 0 {
		return 1
	}
	return float32(fbWidth) / float32(ww)
}
