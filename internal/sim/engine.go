package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/metaballs/internal/camera"
	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/dynamo"
	"github.com/san-kum/metaballs/internal/integrators"
)

// Engine owns the simulated state and the single tick driver. It is not
// safe for concurrent use; input handlers run between ticks.
type Engine struct {
	Store    *dynamo.Store
	Box      dynamo.Box
	Orbit    *camera.Orbit
	Settings *dynamo.Settings
	Seed     int64

	integrator *integrators.Bounce
	metrics    []Metric
	observers  []Observer
}

// New validates cfg and spawns the population. A zero seed uses the wall
// clock.
func New(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := dynamo.NewStore(cfg.Count)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	box := cfg.Box()
	store.Spawn(rand.New(rand.NewSource(seed)), box, cfg.Spawn.Speed, cfg.Spawn.Radius)

	slog.Debug("engine ready", "entities", store.Active(), "mode", cfg.RenderMode(), "seed", seed)

	return &Engine{
		Store: store,
		Box:   box,
		Orbit: camera.NewOrbit(cfg.Camera.Distance, cfg.CameraAxis(), cfg.Camera.StepDeg),
		Settings: &dynamo.Settings{
			Threshold: cfg.Threshold,
			Mode:      cfg.RenderMode(),
		},
		Seed:       seed,
		integrator: integrators.NewBounce(),
	}, nil
}

func (e *Engine) AddMetric(m Metric)     { e.metrics = append(e.metrics, m) }
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Step advances physics, orbit and frame counter by one tick unless paused.
// It reports whether anything moved.
func (e *Engine) Step() bool {
	if e.Settings.Paused {
		return false
	}

	reflections := e.integrator.Step(e.Store, e.Box)
	e.Orbit.Step()
	e.Settings.Frame++

	s := Sample{Store: e.Store, Box: e.Box, Frame: e.Settings.Frame, Reflections: reflections}
	for _, m := range e.metrics {
		m.Observe(s)
	}
	for _, o := range e.observers {
		o.OnTick(s)
	}
	return true
}

// Tick is one iteration of the display loop: step, then draw. The frame is
// drawn even while paused.
func (e *Engine) Tick(r Renderer) {
	e.Step()
	if r != nil {
		r.Draw(e.Settings, e.Store, e.Orbit)
	}
}

// Run steps the engine headless for the given number of ticks, recording the
// kinetic energy after each one. Paused engines record a flat history.
func (e *Engine) Run(ctx context.Context, ticks int) (*Result, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("ticks must be positive, got %d", ticks)
	}

	result := &Result{
		Energy:  make([]float64, 0, ticks+1),
		Metrics: make(map[string]float64),
	}
	for _, m := range e.metrics {
		m.Reset()
	}

	result.Energy = append(result.Energy, e.Store.KineticEnergy())

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			e.collect(result)
			return result, ctx.Err()
		default:
		}

		e.Step()
		result.Ticks++
		result.Energy = append(result.Energy, e.Store.KineticEnergy())
	}

	e.collect(result)
	return result, nil
}

func (e *Engine) collect(r *Result) {
	for _, m := range e.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
}
