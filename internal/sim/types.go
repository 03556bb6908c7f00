package sim

import (
	"github.com/san-kum/metaballs/internal/camera"
	"github.com/san-kum/metaballs/internal/dynamo"
)

// Sample is what metrics and observers see after each advancing tick.
type Sample struct {
	Store       *dynamo.Store
	Box         dynamo.Box
	Frame       uint64
	Reflections int
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(s Sample)
}

// Renderer draws the current state. *render.Dispatcher satisfies it.
type Renderer interface {
	Draw(settings *dynamo.Settings, store *dynamo.Store, orbit *camera.Orbit)
}

type Result struct {
	Ticks   int
	Energy  []float64
	Metrics map[string]float64
}
