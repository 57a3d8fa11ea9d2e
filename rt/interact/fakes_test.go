package interact

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/gizmo/rt/core"
	"github.com/gekko3d/gizmo/rt/handles"
)

// orthoCamera looks down -Z from height z. Screen (x, y) maps straight onto
// world (x, y) on any plane facing the camera.
type orthoCamera struct {
	z      float64
	broken bool
}

func (c orthoCamera) PickRay(screen mgl64.Vec2) (core.Ray, bool) {
	if c.broken {
		return core.Ray{}, false
	}
	return core.Ray{Origin: mgl64.Vec3{screen.X(), screen.Y(), c.z}, Direction: mgl64.Vec3{0, 0, -1}}, true
}

func (c orthoCamera) Forward() mgl64.Vec3 {
	return mgl64.Vec3{0, 0, -1}
}

type fakePicker struct {
	result PickResult
	ok     bool
}

func (p *fakePicker) Pick(mgl64.Vec2) (PickResult, bool) {
	return p.result, p.ok
}

type recordingToggle struct {
	calls [][2]bool
}

func (r *recordingToggle) SetCameraInputEnabled(rotate, translate bool) {
	r.calls = append(r.calls, [2]bool{rotate, translate})
}

func (r *recordingToggle) last() [2]bool {
	if len(r.calls) == 0 {
		return [2]bool{true, true}
	}
	return r.calls[len(r.calls)-1]
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

type testRig struct {
	frame  core.AxisFrame
	picker *fakePicker
	toggle *recordingToggle
	ctrl   *DragController
	set    handles.Set
}

func newRig(center mgl64.Vec3, boundingRadius float64, kind handles.Kind) *testRig {
	anchor := core.Anchor{Center: center, BoundingRadius: boundingRadius}
	frame := core.ComputeFrame(core.Flat{}, anchor, anchor.EffectiveRadius(), nil)
	r := &testRig{
		frame:  frame,
		picker: &fakePicker{},
		toggle: &recordingToggle{},
	}
	switch kind {
	case handles.KindScale:
		r.set = handles.ScaleHandleBuilder{}.Build(frame)
	case handles.KindRotate:
		set, err := handles.RotateHandleBuilder{TubeFactor: 0.05, RadialSegments: 4, TubularSegments: 8}.Build(frame)
		if err != nil {
			panic(err)
		}
		r.set = set
	default:
		r.set = handles.TranslateHandleBuilder{}.Build(frame)
	}
	r.ctrl = NewDragController(frame, r.picker, r.toggle, nil)
	r.ctrl.SetHandles(r.set)
	return r
}

func (r *testRig) pick(a core.Axis) PickResult {
	h := r.set.ForAxis(a)[0]
	return PickResult{Primitive: h, ID: h.PickID()}
}
