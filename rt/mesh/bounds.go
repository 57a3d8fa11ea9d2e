package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type BoundingSphere struct {
	Center mgl64.Vec3
	Radius float64
}

// BoundingSphereFromPositions centers the sphere on the box around the
// vertices and grows it to reach the farthest one.
func BoundingSphereFromPositions(positions []float64) BoundingSphere {
	if len(positions) < 3 {
		return BoundingSphere{}
	}
	minB := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxB := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i+2 < len(positions); i += 3 {
		for k := 0; k < 3; k++ {
			minB[k] = math.Min(minB[k], positions[i+k])
			maxB[k] = math.Max(maxB[k], positions[i+k])
		}
	}
	center := minB.Add(maxB).Mul(0.5)

	var r2 float64
	for i := 0; i+2 < len(positions); i += 3 {
		d := mgl64.Vec3{positions[i], positions[i+1], positions[i+2]}.Sub(center)
		r2 = math.Max(r2, d.Dot(d))
	}
	return BoundingSphere{Center: center, Radius: math.Sqrt(r2)}
}

func (s BoundingSphere) Contains(p mgl64.Vec3, tolerance float64) bool {
	return p.Sub(s.Center).Len() <= s.Radius+tolerance
}
