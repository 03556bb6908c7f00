package control

import (
	"log/slog"
	"os"

	"github.com/san-kum/metaballs/internal/dynamo"
)

type Event int

const (
	None Event = iota
	TogglePause
	ToggleMode
	Quit
)

func (e Event) String() string {
	switch e {
	case TogglePause:
		return "toggle-pause"
	case ToggleMode:
		return "toggle-mode"
	case Quit:
		return "quit"
	}
	return "none"
}

// Controller applies events to the settings owned by the tick driver. It is
// called between ticks on the same goroutine, so no locking is done.
type Controller struct {
	settings *dynamo.Settings
	// Exit ends the process on Quit. Defaults to os.Exit.
	Exit func(code int)
}

func New(settings *dynamo.Settings) *Controller {
	return &Controller{settings: settings, Exit: os.Exit}
}

// Handle applies ev and reports whether the settings changed.
func (c *Controller) Handle(ev Event) bool {
	switch ev {
	case TogglePause:
		c.settings.Paused = !c.settings.Paused
		slog.Debug("pause toggled", "paused", c.settings.Paused)
		return true
	case ToggleMode:
		if c.settings.Mode == dynamo.Mode2D {
			c.settings.Mode = dynamo.Mode3D
		} else {
			c.settings.Mode = dynamo.Mode2D
		}
		slog.Debug("mode toggled", "mode", c.settings.Mode)
		return true
	case Quit:
		slog.Info("quit requested", "frame", c.settings.Frame)
		c.Exit(0)
	}
	return false
}
