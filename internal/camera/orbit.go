// Package camera builds the orbiting view used by the 3D shader.
//
// The camera matrix maps a window-space fragment (x, y, 0, 1) to a world
// point on the plane through the origin facing the eye. The shader marches
// from [View.Eye] towards that point.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FieldOfView is the fixed vertical field of view in degrees.
const FieldOfView = 60.0

// degenerate is the eye-to-origin distance below which the view direction
// is undefined.
const degenerate = 1e-6

var (
	worldUp     = mgl32.Vec3{0, 1, 0}
	fallbackDir = mgl32.Vec3{0, 0, 1}
)

// Viewport is the render target size in pixels.
type Viewport struct {
	Width, Height float32
}

// View is the camera state uploaded to the 3D shader.
type View struct {
	Eye    mgl32.Vec3
	Origin mgl32.Vec3
	Matrix mgl32.Mat4
}

// Orbit circles the scene origin at a constant distance. Orientation
// accumulates Increment once per Step.
type Orbit struct {
	Orientation mgl32.Quat
	Increment   mgl32.Quat
	Distance    float32
}

// NewOrbit returns an orbit starting behind the origin that turns stepDeg
// degrees about axis per tick.
func NewOrbit(distance float32, axis mgl32.Vec3, stepDeg float32) *Orbit {
	return &Orbit{
		Orientation: mgl32.QuatIdent(),
		Increment:   mgl32.QuatRotate(mgl32.DegToRad(stepDeg), axis.Normalize()),
		Distance:    distance,
	}
}

func (o *Orbit) Step() {
	o.Orientation = o.Increment.Mul(o.Orientation).Normalize()
}

// Eye is the point (0, 0, -Distance) rotated by the current orientation.
func (o *Orbit) Eye() mgl32.Vec3 {
	return o.Orientation.Rotate(mgl32.Vec3{0, 0, -o.Distance})
}

// Derive computes the view for the current orientation, looking at the
// world origin.
func (o *Orbit) Derive(vp Viewport) View {
	return LookAt(o.Eye(), mgl32.Vec3{}, vp)
}

// LookAt builds the camera matrix T4 * R3 * S2 * T1:
//
//	T1  translate by (-W/2, -H/2, depth)
//	S2  scale by (-h/H, -h/H, 1), h = 2 * depth * tan(fov/2)
//	R3  basis (s, u, view), s = up x view, u = s x view
//	T4  translate by eye
//
// depth is the eye-to-origin distance. The negative scale flips window
// handedness into the world basis. When eye and origin coincide the view
// falls back to +z with unit depth. View parallel to up is not handled.
func LookAt(eye, origin mgl32.Vec3, vp Viewport) View {
	toOrigin := origin.Sub(eye)
	depth := toOrigin.Len()
	view := fallbackDir
	if depth < degenerate {
		depth = 1
	} else {
		view = toOrigin.Mul(1 / depth)
	}

	h := 2 * depth * float32(math.Tan(float64(mgl32.DegToRad(FieldOfView))/2))
	s := worldUp.Cross(view).Normalize()
	u := s.Cross(view)

	t1 := mgl32.Translate3D(-vp.Width/2, -vp.Height/2, depth)
	k := -h / vp.Height
	s2 := mgl32.Scale3D(k, k, 1)
	r3 := mgl32.Mat4FromCols(s.Vec4(0), u.Vec4(0), view.Vec4(0), mgl32.Vec4{0, 0, 0, 1})
	t4 := mgl32.Translate3D(eye.X(), eye.Y(), eye.Z())

	return View{
		Eye:    eye,
		Origin: origin,
		Matrix: t4.Mul4(r3).Mul4(s2).Mul4(t1),
	}
}

// Unproject maps a window-space pixel to the world point the matrix sends
// it to.
func (v View) Unproject(x, y float32) mgl32.Vec3 {
	return v.Matrix.Mul4x1(mgl32.Vec4{x, y, 0, 1}).Vec3()
}
