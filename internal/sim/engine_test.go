package sim_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/metaballs/internal/camera"
	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/control"
	"github.com/san-kum/metaballs/internal/dynamo"
	"github.com/san-kum/metaballs/internal/metrics"
	"github.com/san-kum/metaballs/internal/sim"
)

type recordingRenderer struct {
	draws  int
	modes  []dynamo.Mode
	frames []uint64
}

func (r *recordingRenderer) Draw(s *dynamo.Settings, _ *dynamo.Store, _ *camera.Orbit) {
	r.draws++
	r.modes = append(r.modes, s.Mode)
	r.frames = append(r.frames, s.Frame)
}

type tickCounter struct{ ticks int }

func (c *tickCounter) OnTick(sim.Sample) { c.ticks++ }

var _ = Describe("Engine", func() {
	var (
		cfg    *config.Config
		engine *sim.Engine
	)

	BeforeEach(func() {
		cfg = config.GetPreset("charges")
		cfg.Seed = 42
		var err error
		engine, err = sim.New(cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("spawns the configured population inside the box", func() {
			Expect(engine.Store.Active()).To(Equal(30))
			for _, e := range engine.Store.Entities() {
				Expect(engine.Box.Contains(e.Position)).To(BeTrue())
				Expect(e.Radius).To(BeNumerically(">=", cfg.Spawn.Radius.Min))
			}
		})

		It("is deterministic for a fixed seed", func() {
			other, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(other.Store.Entities()).To(Equal(engine.Store.Entities()))
		})

		It("seeds from the clock when seed is zero", func() {
			cfg.Seed = 0
			e, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Seed).NotTo(BeZero())
		})

		It("rejects entity counts above the shader capacity", func() {
			cfg.Count = dynamo.MaxEntities + 1
			_, err := sim.New(cfg)
			Expect(errors.Is(err, dynamo.ErrTooManyEntities)).To(BeTrue())
		})

		It("takes mode and threshold from the config", func() {
			Expect(engine.Settings.Mode).To(Equal(dynamo.Mode3D))
			Expect(engine.Settings.Threshold).To(Equal(cfg.Threshold))
			Expect(engine.Settings.Frame).To(BeZero())
		})
	})

	Describe("Tick", func() {
		var r *recordingRenderer

		BeforeEach(func() { r = &recordingRenderer{} })

		It("advances state, orbit and frame, then draws once", func() {
			before := engine.Store.At(0).Position
			eye := engine.Orbit.Eye()

			engine.Tick(r)

			Expect(engine.Settings.Frame).To(Equal(uint64(1)))
			Expect(engine.Store.At(0).Position).NotTo(Equal(before))
			Expect(engine.Orbit.Eye().ApproxEqual(eye)).To(BeFalse())
			Expect(r.draws).To(Equal(1))
			Expect(r.frames).To(Equal([]uint64{1}))
		})

		It("freezes state while paused but keeps drawing", func() {
			engine.Settings.Paused = true
			before := engine.Store.At(3).Position
			orientation := engine.Orbit.Orientation

			for i := 0; i < 5; i++ {
				engine.Tick(r)
			}

			Expect(engine.Store.At(3).Position).To(Equal(before))
			Expect(engine.Orbit.Orientation).To(Equal(orientation))
			Expect(engine.Settings.Frame).To(BeZero())
			Expect(r.draws).To(Equal(5))
		})

		It("tolerates a nil renderer", func() {
			Expect(func() { engine.Tick(nil) }).NotTo(Panic())
			Expect(engine.Settings.Frame).To(Equal(uint64(1)))
		})

		It("notifies observers only on advancing ticks", func() {
			c := &tickCounter{}
			engine.AddObserver(c)

			engine.Tick(r)
			engine.Settings.Paused = true
			engine.Tick(r)

			Expect(c.ticks).To(Equal(1))
		})
	})

	Describe("with the interaction controller", func() {
		var (
			ctl  *control.Controller
			r    *recordingRenderer
			exit int
		)

		BeforeEach(func() {
			r = &recordingRenderer{}
			ctl = control.New(engine.Settings)
			exit = -1
			ctl.Exit = func(code int) { exit = code }
		})

		It("switches the program used on the next draw", func() {
			engine.Tick(r)
			ctl.Handle(control.FromKey("m"))
			engine.Tick(r)
			ctl.Handle(control.FromKey("tab"))
			engine.Tick(r)

			Expect(r.modes).To(Equal([]dynamo.Mode{dynamo.Mode3D, dynamo.Mode2D, dynamo.Mode3D}))
		})

		It("pauses and resumes from the mouse", func() {
			ctl.Handle(control.FromButton(control.ButtonLeft))
			engine.Tick(r)
			Expect(engine.Settings.Frame).To(BeZero())

			ctl.Handle(control.FromButton(control.ButtonLeft))
			engine.Tick(r)
			Expect(engine.Settings.Frame).To(Equal(uint64(1)))
		})

		It("ignores reserved inputs", func() {
			for _, k := range []string{"w", "a", "s", "d", "up", "down", "left", "right"} {
				Expect(ctl.Handle(control.FromKey(k))).To(BeFalse())
			}
			Expect(ctl.Handle(control.FromButton(control.ButtonRight))).To(BeFalse())
			Expect(engine.Settings.Paused).To(BeFalse())
			Expect(engine.Settings.Mode).To(Equal(dynamo.Mode3D))
		})

		It("hands quit to the exit hook", func() {
			ctl.Handle(control.FromKey("esc"))
			Expect(exit).To(Equal(0))
		})
	})

	Describe("Run", func() {
		It("records energy per tick and collects metrics", func() {
			engine.AddMetric(metrics.NewReflections())
			engine.AddMetric(metrics.NewContainment())

			result, err := engine.Run(context.Background(), 500)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Ticks).To(Equal(500))
			Expect(result.Energy).To(HaveLen(501))
			Expect(result.Metrics).To(HaveKeyWithValue("containment", 0.0))
			Expect(result.Metrics).To(HaveKey("reflections"))
		})

		It("never gains energy", func() {
			result, err := engine.Run(context.Background(), 1000)
			Expect(err).NotTo(HaveOccurred())
			for i := 1; i < len(result.Energy); i++ {
				Expect(result.Energy[i]).To(BeNumerically("<=", result.Energy[i-1]+1e-9))
			}
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			result, err := engine.Run(ctx, 100)
			Expect(err).To(MatchError(context.Canceled))
			Expect(result.Ticks).To(BeZero())
		})

		It("rejects a non-positive tick count", func() {
			_, err := engine.Run(context.Background(), 0)
			Expect(err).To(HaveOccurred())
		})

		It("keeps a flat layout flat", func() {
			flat := config.GetPreset("classic")
			flat.Seed = 7
			e, err := sim.New(flat)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.Run(context.Background(), 200)
			Expect(err).NotTo(HaveOccurred())
			for _, ent := range e.Store.Entities() {
				Expect(ent.Position.Z()).To(BeZero())
				Expect(ent.Velocity.Z()).To(BeZero())
			}
		})
	})

	Describe("empty population", func() {
		It("ticks and draws without entities", func() {
			cfg.Count = 0
			e, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			r := &recordingRenderer{}
			e.Tick(r)
			Expect(r.draws).To(Equal(1))
			Expect(e.Store.KineticEnergy()).To(BeZero())
			Expect(e.Orbit.Eye().Len()).To(BeNumerically("~", cfg.Camera.Distance, 1e-2))
		})
	})
})
