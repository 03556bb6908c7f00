package compute

import (
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/metaballs/internal/dynamo"
)

// minParallel is the smallest chunk of points handed to a worker.
const minParallel = 256

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

// NewCPUBackendWorkers caps the sampler at n goroutines. n <= 0 means one
// per CPU.
func NewCPUBackendWorkers(n int) *CPUBackend {
	if n <= 0 {
		return NewCPUBackend()
	}
	return &CPUBackend{workers: n}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) Field(balls []float32, points []mgl32.Vec3, out []float32) {
	n := len(points)
	if len(out) < n {
		n = len(out)
	}

	dynamo.ParallelFor(n, minParallel, c.workers, func(start, end int) {
		fieldRange(balls, points, out, start, end)
	})
}

// fieldRange fills out[start:end]. A point on an entity center evaluates to +Inf.
func fieldRange(balls []float32, points []mgl32.Vec3, out []float32, start, end int) {
	for i := start; i < end; i++ {
		p := points[i]
		var sum float32

		for j := 0; j+3 < len(balls); j += 4 {
			dx := p[0] - balls[j]
			dy := p[1] - balls[j+1]
			dz := p[2] - balls[j+2]
			r := balls[j+3]
			sum += r * r / (dx*dx + dy*dy + dz*dz)
		}

		out[i] = sum
	}
}
