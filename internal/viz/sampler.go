package viz

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/metaballs/internal/camera"
	"github.com/san-kum/metaballs/internal/compute"
	"github.com/san-kum/metaballs/internal/dynamo"
	"github.com/san-kum/metaballs/internal/frame"
)

// Sampler rasterizes the metaball field onto a Canvas using a compute
// backend. In 2D the canvas covers the box's xy extent; in 3D it shows the
// orbit camera's focal plane through the origin.
type Sampler struct {
	backend    compute.Backend
	serializer *frame.Serializer
	points     []mgl32.Vec3
	values     []float32
}

func NewSampler(backend compute.Backend) *Sampler {
	return &Sampler{backend: backend, serializer: frame.NewSerializer()}
}

// Draw clears c and sets every dot whose field value reaches the threshold.
func (s *Sampler) Draw(c *Canvas, settings *dynamo.Settings, store *dynamo.Store, box dynamo.Box, orbit *camera.Orbit) {
	w, h := c.Pixels()
	n := w * h
	if cap(s.points) < n {
		s.points = make([]mgl32.Vec3, n)
		s.values = make([]float32, n)
	}
	s.points, s.values = s.points[:n], s.values[:n]

	if settings.Mode == dynamo.Mode3D {
		s.focalPlane(w, h, orbit)
	} else {
		s.plane(w, h, box)
	}

	s.backend.Field(s.serializer.Serialize(store), s.points, s.values)

	c.Clear()
	for i, v := range s.values {
		if v >= settings.Threshold {
			c.Set(i%w, i/w)
		}
	}
}

// plane maps pixel centers onto [-hx, hx] x [-hy, hy], y up.
func (s *Sampler) plane(w, h int, box dynamo.Box) {
	hx, hy := box.Half.X(), box.Half.Y()
	if hx == 0 {
		hx = 1
	}
	if hy == 0 {
		hy = 1
	}
	for py := 0; py < h; py++ {
		y := hy - (float32(py)+0.5)/float32(h)*2*hy
		for px := 0; px < w; px++ {
			x := (float32(px)+0.5)/float32(w)*2*hx - hx
			s.points[py*w+px] = mgl32.Vec3{x, y, 0}
		}
	}
}

// focalPlane unprojects pixel centers through the camera matrix, the same
// mapping the 3D fragment shader applies to gl_FragCoord.
func (s *Sampler) focalPlane(w, h int, orbit *camera.Orbit) {
	view := orbit.Derive(camera.Viewport{Width: float32(w), Height: float32(h)})
	for py := 0; py < h; py++ {
		// canvas rows grow downward, window coordinates grow upward
		fy := float32(h-py) - 0.5
		for px := 0; px < w; px++ {
			s.points[py*w+px] = view.Unproject(float32(px)+0.5, fy)
		}
	}
}
