// Package gui is the desktop host: a GLFW window with a GL 4.1 core
// context, input callbacks routed to the controller, and the tick loop.
//
// The package locks the calling goroutine to its OS thread at init, so
// NewApp and Run must be called from main.
package gui
