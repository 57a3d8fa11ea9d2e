package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestIntersectRayPlane(t *testing.T) {
	plane := Plane{Point: mgl64.Vec3{0, 0, 0}, Normal: mgl64.Vec3{0, 0, -1}}

	tests := []struct {
		name string
		ray  Ray
		hit  bool
		want mgl64.Vec3
	}{
		{
			name: "straight down",
			ray:  Ray{Origin: mgl64.Vec3{3, 4, 10}, Direction: mgl64.Vec3{0, 0, -1}},
			hit:  true,
			want: mgl64.Vec3{3, 4, 0},
		},
		{
			name: "oblique",
			ray:  Ray{Origin: mgl64.Vec3{0, 0, 10}, Direction: mgl64.Vec3{1, 0, -1}.Normalize()},
			hit:  true,
			want: mgl64.Vec3{10, 0, 0},
		},
		{
			name: "parallel",
			ray:  Ray{Origin: mgl64.Vec3{0, 0, 10}, Direction: mgl64.Vec3{1, 0, 0}},
		},
		{
			name: "pointing away",
			ray:  Ray{Origin: mgl64.Vec3{0, 0, 10}, Direction: mgl64.Vec3{0, 0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := IntersectRayPlane(tt.ray, plane)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.True(t, near(p, tt.want, 1e-9), "got %v", p)
			}
		})
	}
}
