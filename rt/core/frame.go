package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AxisGeometry is everything a handle builder or the drag controller needs to
// know about one axis.
type AxisGeometry struct {
	Axis            Axis
	Direction       mgl64.Vec3 // unit length
	Ray             Ray
	EndPoint        mgl64.Vec3
	DirectionScaled mgl64.Vec3
}

// AxisFrame is an immutable set of three orthonormal axes at an anchor.
// Recompute it with ComputeFrame instead of editing it.
type AxisFrame struct {
	Center mgl64.Vec3
	Radius float64
	axes   [3]AxisGeometry
}

// ComputeFrame builds the axis frame at the anchor center. A non-nil
// orientation rotates the tangent basis with the object; only its rotation
// part is used.
func ComputeFrame(body Body, anchor Anchor, radius float64, orientation *mgl64.Mat4) AxisFrame {
	if body == nil {
		body = Flat{}
	}
	basis := body.EastNorthUp(anchor.Center)
	if orientation != nil {
		basis = RotationPart(*orientation).Mul3(basis)
	}

	f := AxisFrame{Center: anchor.Center, Radius: radius}
	for _, a := range Axes {
		f.axes[a] = axisGeometry(a, anchor.Center, basis.Col(int(a)), radius)
	}
	return f
}

func axisGeometry(a Axis, center, dir mgl64.Vec3, radius float64) AxisGeometry {
	dir = dir.Normalize()
	ray := Ray{Origin: center, Direction: dir}
	return AxisGeometry{
		Axis:            a,
		Direction:       dir,
		Ray:             ray,
		EndPoint:        ray.At(radius),
		DirectionScaled: dir.Mul(radius),
	}
}

func (f AxisFrame) Axis(a Axis) AxisGeometry {
	return f.axes[a]
}

func (f AxisFrame) Axes() [3]AxisGeometry {
	return f.axes
}

func (f AxisFrame) Direction(a Axis) mgl64.Vec3 {
	return f.axes[a].Direction
}

// Basis returns the directions as matrix columns.
func (f AxisFrame) Basis() mgl64.Mat3 {
	return mgl64.Mat3FromCols(f.axes[AxisX].Direction, f.axes[AxisY].Direction, f.axes[AxisZ].Direction)
}

// ModelMatrix maps frame-local coordinates to world space.
func (f AxisFrame) ModelMatrix() mgl64.Mat4 {
	return FromRotationTranslation(f.Basis(), f.Center)
}

// InverseModelMatrix maps world space back into the frame. The basis is
// orthonormal, so this is the transpose rather than a general inverse.
func (f AxisFrame) InverseModelMatrix() mgl64.Mat4 {
	rt := f.Basis().Transpose()
	return FromRotationTranslation(rt, rt.Mul3x1(f.Center).Mul(-1))
}

const maxPolarIterations = 64

// RotationPart is the orthonormal factor of the polar decomposition of the
// upper 3x3 of an affine matrix: translation, scale and shear are dropped. A
// scale along any axis, aligned or not, leaves the rotation unchanged.
func RotationPart(m mgl64.Mat4) mgl64.Mat3 {
	r := m.Mat3()
	if math.Abs(r.Det()) < 1e-12 {
		return orthonormalize(r)
	}
	for i := 0; i < maxPolarIterations; i++ {
		next := r.Add(r.Inv().Transpose()).Mul(0.5)
		step := 0.0
		for k := range next {
			step = math.Max(step, math.Abs(next[k]-r[k]))
		}
		r = next
		if step < 1e-15 {
			break
		}
	}
	return orthonormalize(r)
}

// orthonormalize runs Gram-Schmidt on the first two columns and derives the
// third, so the result is always a right-handed rotation.
func orthonormalize(r mgl64.Mat3) mgl64.Mat3 {
	x := r.Col(0)
	if x.Len() < 1e-12 {
		x = mgl64.Vec3{1, 0, 0}
	}
	x = x.Normalize()
	y := r.Col(1)
	y = y.Sub(x.Mul(y.Dot(x)))
	if y.Len() < 1e-12 {
		y = anyPerpendicular(x)
	}
	y = y.Normalize()
	return mgl64.Mat3FromCols(x, y, x.Cross(y))
}

func anyPerpendicular(v mgl64.Vec3) mgl64.Vec3 {
	if math.Abs(v.X()) < 0.9 {
		return mgl64.Vec3{1, 0, 0}.Cross(v)
	}
	return mgl64.Vec3{0, 1, 0}.Cross(v)
}

func FromRotationTranslation(r mgl64.Mat3, t mgl64.Vec3) mgl64.Mat4 {
	m := r.Mat4()
	m.SetCol(3, t.Vec4(1))
	return m
}
