package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

const parallelEpsilon = 1e-6

// IntersectRayPlane reports where the ray meets the plane. Rays parallel to the
// plane or pointing away from it do not intersect.
func IntersectRayPlane(r Ray, p Plane) (mgl64.Vec3, bool) {
	denom := r.Direction.Dot(p.Normal)
	if math.Abs(denom) < parallelEpsilon {
		return mgl64.Vec3{}, false
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return mgl64.Vec3{}, false
	}
	return r.At(t), true
}
