// Package interact turns pointer events into gizmo transforms.
//
// Everything here runs on the host's input loop; nothing is safe for
// concurrent use.
package interact

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/gizmo/rt/core"
)

// PickResult is what the host's hit test returned. Primitive is whatever the
// host has registered at that pixel; only *handles.Primitive values count as
// gizmo handles. ID is the pick id the handle was registered with.
type PickResult struct {
	Primitive any
	ID        int
}

type Picker interface {
	Pick(screen mgl64.Vec2) (PickResult, bool)
}

// Camera is satisfied by *core.CameraState.
type Camera interface {
	PickRay(screen mgl64.Vec2) (core.Ray, bool)
	Forward() mgl64.Vec3
}

// InputToggle lets the controller switch the host's camera controls off for
// the duration of a drag.
type InputToggle interface {
	SetCameraInputEnabled(rotate, translate bool)
}

type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
