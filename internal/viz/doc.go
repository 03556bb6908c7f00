// Package viz is a terminal preview of the metaball field, for machines
// without a GL 4.1 context.
//
// The preview runs the same engine and controller as the window and evaluates
// the field on the CPU into a braille [Canvas]:
//
//   - 2D: the xy plane of the bounding box
//   - 3D: the orbit camera's focal plane, mapped through the camera matrix
//
// # Key Bindings
//
//	Space, P  - Pause/Resume
//	M, Tab    - Switch 2D/3D
//	Q, Esc    - Quit
package viz
