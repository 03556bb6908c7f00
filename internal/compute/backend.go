package compute

import "github.com/go-gl/mathgl/mgl32"

// Backend evaluates the metaball field outside the GPU pipeline.
type Backend interface {
	Name() string
	Available() bool
	// Field writes the field value at each point into out. balls is the
	// serialized frame buffer, four floats per entity.
	Field(balls []float32, points []mgl32.Vec3, out []float32)
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

func AutoSelectBackend() Backend {
	return NewCPUBackend()
}
