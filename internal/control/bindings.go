package control

import "strings"

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

var keyBindings = map[string]Event{
	"space":  TogglePause,
	" ":      TogglePause,
	"p":      TogglePause,
	"m":      ToggleMode,
	"tab":    ToggleMode,
	"q":      Quit,
	"esc":    Quit,
	"escape": Quit,
}

// FromKey maps a key name to an event. Names are case-insensitive; unbound
// keys, including the reserved movement keys, map to None.
func FromKey(name string) Event {
	return keyBindings[strings.ToLower(name)]
}

func FromButton(b Button) Event {
	if b == ButtonLeft {
		return TogglePause
	}
	return None
}
