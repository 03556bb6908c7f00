// Package compute holds the hardware-facing side of the visualizer.
//
//   - OpenGLStage: the shading stage. Compiles the embedded GLSL programs,
//     looks up uniforms, uploads frame data and draws a full-screen triangle.
//   - CPUBackend: evaluates the same field as the fragment shaders on the CPU,
//     used by the terminal preview.
//
// Field value at a point p is the sum over active entities of r²/|p-c|². A
// point is inside the surface when the value reaches the threshold.
//
//	backend := compute.GetBackend()
//	backend.Field(serializer.Serialize(store), points, values)
package compute
