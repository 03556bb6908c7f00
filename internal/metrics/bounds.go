package metrics

import (
	"math"

	"github.com/san-kum/metaballs/internal/sim"
)

// Reflections counts axis reflections across all observed ticks.
type Reflections struct {
	name  string
	total int
}

func NewReflections() *Reflections {
	return &Reflections{name: "reflections"}
}

func (r *Reflections) Name() string { return r.name }

func (r *Reflections) Observe(s sim.Sample) { r.total += s.Reflections }

func (r *Reflections) Value() float64 { return float64(r.total) }

func (r *Reflections) Reset() { r.total = 0 }

// Containment tracks the largest distance any entity has been seen outside
// the box. The integrator clamps every tick, so anything but 0 is a bug.
type Containment struct {
	name  string
	worst float64
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(s sim.Sample) {
	for _, e := range s.Store.Entities() {
		for a := 0; a < 3; a++ {
			over := math.Abs(float64(e.Position[a])) - float64(s.Box.Half[a])
			c.worst = math.Max(c.worst, over)
		}
	}
}

func (c *Containment) Value() float64 { return c.worst }

func (c *Containment) Reset() { c.worst = 0 }

// All returns one of each metric, in report order.
func All() []sim.Metric {
	return []sim.Metric{
		NewKineticEnergy(),
		NewEnergyDecay(),
		NewReflections(),
		NewContainment(),
	}
}
