package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraPickRayCenter(t *testing.T) {
	cam := NewCameraState(800, 600)
	cam.Yaw = 0.3
	cam.Pitch = -0.2

	ray, ok := cam.PickRay(mgl64.Vec2{400, 300})
	require.True(t, ok)
	assert.Equal(t, cam.Position, ray.Origin)
	assert.True(t, near(ray.Direction, cam.Forward(), 1e-12), "dir %v", ray.Direction)
}

func TestCameraPickRayEdges(t *testing.T) {
	cam := NewCameraState(100, 100)
	cam.Position = mgl64.Vec3{}

	// Default yaw looks down -Y with Z up, so the right edge leans toward -X.
	right, ok := cam.PickRay(mgl64.Vec2{100, 50})
	require.True(t, ok)
	assert.Less(t, right.Direction.X(), 0.0)

	top, ok := cam.PickRay(mgl64.Vec2{50, 0})
	require.True(t, ok)
	assert.Greater(t, top.Direction.Z(), 0.0)

	// Half the vertical FOV at the top edge.
	angle := math.Acos(top.Direction.Dot(cam.Forward()))
	assert.InDelta(t, cam.FovY/2, angle, 1e-9)
}

func TestCameraPickRayDegenerate(t *testing.T) {
	cam := NewCameraState(0, 0)
	_, ok := cam.PickRay(mgl64.Vec2{0, 0})
	assert.False(t, ok)

	cam = NewCameraState(100, 100)
	cam.Pitch = math.Pi / 2
	_, ok = cam.PickRay(mgl64.Vec2{50, 50})
	assert.False(t, ok)
}
