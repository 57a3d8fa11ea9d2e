package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraState is a Z-up perspective camera driven by yaw and pitch. It is a
// ready-made pick-ray source for hosts that have no camera of their own.
type CameraState struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
	FovY     float64 // radians
	Width    int
	Height   int
}

func NewCameraState(width, height int) *CameraState {
	return &CameraState{
		Position: mgl64.Vec3{0, 2, 20},
		FovY:     mgl64.DegToRad(60.0),
		Width:    width,
		Height:   height,
	}
}

func (c *CameraState) GetForward() mgl64.Vec3 {
	// Z-up: Forward in XY plane, Z for pitch
	return mgl64.Vec3{
		math.Cos(c.Pitch) * math.Sin(c.Yaw),
		-math.Cos(c.Pitch) * math.Cos(c.Yaw),
		math.Sin(c.Pitch),
	}
}

func (c *CameraState) GetRight() mgl64.Vec3 {
	return c.GetForward().Cross(mgl64.Vec3{0, 0, 1})
}

func (c *CameraState) GetViewMatrix() mgl64.Mat4 {
	eye := c.Position
	return mgl64.LookAtV(eye, eye.Add(c.GetForward()), mgl64.Vec3{0, 0, 1})
}

// Forward is the unit view direction.
func (c *CameraState) Forward() mgl64.Vec3 {
	return c.GetForward().Normalize()
}

// PickRay casts a ray from the eye through a pixel. It fails when the viewport
// is empty or the camera looks straight up or down.
func (c *CameraState) PickRay(screen mgl64.Vec2) (Ray, bool) {
	if c.Width <= 0 || c.Height <= 0 || c.FovY <= 0 {
		return Ray{}, false
	}
	forward := c.Forward()
	right := c.GetRight()
	if right.Len() < 1e-9 {
		return Ray{}, false
	}
	right = right.Normalize()
	up := right.Cross(forward)

	// Normalized Device Coordinates
	nx := 2.0*screen.X()/float64(c.Width) - 1.0
	ny := 1.0 - 2.0*screen.Y()/float64(c.Height) // Flip Y for NDC

	aspect := float64(c.Width) / float64(c.Height)
	tanHalfFov := math.Tan(c.FovY / 2.0)

	dir := forward.Add(right.Mul(nx * aspect * tanHalfFov)).Add(up.Mul(ny * tanHalfFov))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}, true
}
