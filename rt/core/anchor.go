package core

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultMinimumRadius keeps handles usable on tiny objects.
	DefaultMinimumRadius = 10.0
	// DefaultRadiusFactor scales the bounding radius into the handle radius.
	DefaultRadiusFactor = 0.5
)

var ErrMissingAnchor = errors.New("anchor has no usable center or bounding radius")

// Anchor is the point a gizmo is centered on, usually the bounding sphere of
// the manipulated object.
type Anchor struct {
	Center         mgl64.Vec3
	BoundingRadius float64
}

func (a Anchor) Validate() error {
	for _, c := range a.Center {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrMissingAnchor
		}
	}
	r := a.BoundingRadius
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return ErrMissingAnchor
	}
	return nil
}

// Radius returns max(BoundingRadius*factor, minimum).
func (a Anchor) Radius(minimum, factor float64) float64 {
	return math.Max(a.BoundingRadius*factor, minimum)
}

// EffectiveRadius uses the default factor and floor.
func (a Anchor) EffectiveRadius() float64 {
	return a.Radius(DefaultMinimumRadius, DefaultRadiusFactor)
}
