package viz

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/metaballs/internal/camera"
	"github.com/san-kum/metaballs/internal/compute"
	"github.com/san-kum/metaballs/internal/dynamo"
)

func storeWith(t *testing.T, pos mgl32.Vec3, radius float32) *dynamo.Store {
	t.Helper()
	s, err := dynamo.NewStore(1)
	if err != nil {
		t.Fatal(err)
	}
	s.At(0).Position = pos
	s.At(0).Radius = radius
	return s
}

func countSet(c *Canvas) int {
	n := 0
	w, h := c.Pixels()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.IsSet(x, y) {
				n++
			}
		}
	}
	return n
}

func TestSampler2D(t *testing.T) {
	c := NewCanvas(20, 10) // 40x40 dots over a 100x100 box
	box := dynamo.NewBox(50, 50, 0)
	settings := &dynamo.Settings{Threshold: 1, Mode: dynamo.Mode2D}

	// solid disc of radius 25 in the upper-right quadrant
	store := storeWith(t, mgl32.Vec3{25, 25, 0}, 25)
	NewSampler(compute.NewCPUBackend()).Draw(c, settings, store, box, camera.NewOrbit(1, mgl32.Vec3{0, 1, 0}, 1))

	if !c.IsSet(30, 10) {
		t.Error("center of the disc not drawn")
	}
	if c.IsSet(10, 30) {
		t.Error("opposite quadrant drawn")
	}
	// disc covers roughly pi*10^2 dots
	if n := countSet(c); n < 250 || n > 380 {
		t.Errorf("%d dots set, want about 314", n)
	}
}

func TestSamplerEmpty(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(0, 0)
	store, _ := dynamo.NewStore(0)

	NewSampler(compute.NewCPUBackend()).Draw(c, &dynamo.Settings{Threshold: 1}, store,
		dynamo.NewBox(10, 10, 0), camera.NewOrbit(1, mgl32.Vec3{0, 1, 0}, 1))

	if countSet(c) != 0 {
		t.Error("empty store drew dots")
	}
}

func TestSampler3DFocalPlane(t *testing.T) {
	c := NewCanvas(20, 10)
	settings := &dynamo.Settings{Threshold: 1, Mode: dynamo.Mode3D}
	orbit := camera.NewOrbit(100, mgl32.Vec3{0, 1, 0}, 90)

	// ball on the +y axis lies in every focal plane of a y-axis orbit
	store := storeWith(t, mgl32.Vec3{0, 20, 0}, 10)
	s := NewSampler(compute.NewCPUBackend())

	for i := 0; i < 4; i++ {
		s.Draw(c, settings, store, dynamo.NewBox(50, 50, 50), orbit)
		w, h := c.Pixels()
		top, bottom := 0, 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !c.IsSet(x, y) {
					continue
				}
				if y < h/2 {
					top++
				} else {
					bottom++
				}
			}
		}
		if top == 0 || bottom != 0 {
			t.Errorf("orientation %d: top=%d bottom=%d, want ball above center only", i, top, bottom)
		}
		orbit.Step()
	}
}
