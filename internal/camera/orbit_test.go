package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tol = 1e-3

var vp = Viewport{Width: 1080, Height: 720}

// near compares by absolute distance; mgl32's threshold is relative and
// collapses to eps² around zero components.
func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() <= tol
}

func TestOrbitIdentityEye(t *testing.T) {
	o := NewOrbit(500, mgl32.Vec3{0, 1, 0}, 1)
	eye := o.Eye()
	if !near(eye, mgl32.Vec3{0, 0, -500}) {
		t.Errorf("eye = %v, want (0,0,-500)", eye)
	}
}

func TestOrbitQuarterTurns(t *testing.T) {
	const d = 100
	tests := []struct {
		name string
		axis mgl32.Vec3
		want mgl32.Vec3
	}{
		{"about y", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-d, 0, 0}},
		{"about x", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, d, 0}},
		{"about z", mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -d}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrbit(d, tt.axis, 22.5)
			for i := 0; i < 4; i++ {
				o.Step()
			}
			if eye := o.Eye(); !near(eye, tt.want) {
				t.Errorf("eye after 90 deg = %v, want %v", eye, tt.want)
			}
		})
	}
}

func TestOrbitStaysUnitAndRadius(t *testing.T) {
	o := NewOrbit(250, mgl32.Vec3{1, 1, 0}, 0.7)
	for i := 0; i < 10000; i++ {
		o.Step()
	}
	if l := o.Orientation.Len(); math.Abs(float64(l)-1) > 1e-4 {
		t.Errorf("orientation norm = %f, want 1", l)
	}
	if r := o.Eye().Len(); math.Abs(float64(r)-250) > 0.05 {
		t.Errorf("eye radius = %f, want 250", r)
	}
}

func TestLookAtCenterHitsOrigin(t *testing.T) {
	o := NewOrbit(400, mgl32.Vec3{0, 1, 0}, 13)
	for i := 0; i < 5; i++ {
		o.Step()
		v := o.Derive(vp)
		p := v.Unproject(vp.Width/2, vp.Height/2)
		if !near(p, mgl32.Vec3{}) {
			t.Fatalf("step %d: center pixel maps to %v, want origin", i, p)
		}
		if !near(v.Eye, o.Eye()) {
			t.Fatalf("step %d: view eye %v != orbit eye %v", i, v.Eye, o.Eye())
		}
	}
}

func TestLookAtPixelScale(t *testing.T) {
	const d = 600
	v := LookAt(mgl32.Vec3{0, 0, -d}, mgl32.Vec3{}, vp)

	h := 2 * d * math.Tan(math.Pi/6)
	perPixel := float32(h / float64(vp.Height))

	right := v.Unproject(vp.Width/2+1, vp.Height/2)
	up := v.Unproject(vp.Width/2, vp.Height/2+1)

	// looking down +z with +y up, screen right is world -x
	if !near(right, mgl32.Vec3{-perPixel, 0, 0}) {
		t.Errorf("one pixel right = %v, want (%f,0,0)", right, -perPixel)
	}
	if !near(up, mgl32.Vec3{0, perPixel, 0}) {
		t.Errorf("one pixel up = %v, want (0,%f,0)", up, perPixel)
	}

	top := v.Unproject(vp.Width/2, vp.Height)
	if math.Abs(float64(top.Y())-h/2) > 0.01 {
		t.Errorf("top edge y = %f, want %f", top.Y(), h/2)
	}
}

func TestLookAtMultiplicationOrder(t *testing.T) {
	eye := mgl32.Vec3{30, 40, -200}
	v := LookAt(eye, mgl32.Vec3{}, vp)

	depth := eye.Len()
	view := eye.Mul(-1 / depth)
	s := mgl32.Vec3{0, 1, 0}.Cross(view).Normalize()
	u := s.Cross(view)
	k := -2 * depth * float32(math.Tan(math.Pi/6)) / vp.Height

	px, py := float32(100), float32(650)
	lx, ly := (px-vp.Width/2)*k, (py-vp.Height/2)*k
	want := eye.Add(s.Mul(lx)).Add(u.Mul(ly)).Add(view.Mul(depth))

	if got := v.Unproject(px, py); got.Sub(want).Len() > 1e-2 {
		t.Errorf("Unproject = %v, want %v", got, want)
	}
}

func TestLookAtDegenerate(t *testing.T) {
	v := LookAt(mgl32.Vec3{}, mgl32.Vec3{}, vp)
	for i, x := range v.Matrix {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			t.Fatalf("matrix[%d] = %f, want finite", i, x)
		}
	}
	p := v.Unproject(vp.Width/2, vp.Height/2)
	if !near(p, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("fallback center = %v, want (0,0,1)", p)
	}
}
