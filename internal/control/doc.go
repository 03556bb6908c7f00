// Package control turns window and terminal input into changes of the render
// settings.
//
// Two flags are toggled independently: pause and render mode. Quit is
// terminal and hands off to the exit hook.
//
//	ctl := control.New(settings)
//	ctl.Handle(control.FromKey("m"))  // 2D <-> 3D
//
// Bindings:
//
//	left mouse, space, p   pause / resume
//	m, tab                 switch 2D / 3D
//	q, esc                 quit
//	right mouse, wasd, arrows  reserved, no effect
package control
