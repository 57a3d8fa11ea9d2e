package interact

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/gizmo/rt/core"
	"github.com/gekko3d/gizmo/rt/handles"
)

type State int

const (
	Idle State = iota
	Armed
)

func (s State) String() string {
	if s == Armed {
		return "armed"
	}
	return "idle"
}

// Cursor is the affordance the host should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorHover
	CursorDrag
)

// minScaleFactor keeps a scale drag from collapsing or mirroring the object.
const minScaleFactor = 1e-3

// DragSession lives from pointer-down on a handle to pointer-up.
type DragSession struct {
	Axis   core.Axis
	Handle *handles.Primitive

	// Start and Current are the last drag-plane intersections.
	Start, Current mgl64.Vec3
}

// Update is the outcome of one pointer move. When Applied is false the move
// changed nothing and Matrix is the identity.
type Update struct {
	Kind    handles.Kind
	Axis    core.Axis
	Delta   float64 // distance for translate, angle for rotate, factor for scale
	Matrix  mgl64.Mat4
	Applied bool
	Cursor  Cursor
}

// DragController is the gizmo's pointer state machine. It never accumulates
// transforms: every Update holds only that move's increment, which the caller
// left-multiplies into its model matrices.
type DragController struct {
	frame   core.AxisFrame
	picker  Picker
	input   InputToggle
	log     Logger
	owned   handles.Set
	session *DragSession
	cursor  Cursor
}

func NewDragController(frame core.AxisFrame, picker Picker, input InputToggle, log Logger) *DragController {
	if log == nil {
		log = nopLogger{}
	}
	return &DragController{
		frame:  frame,
		picker: picker,
		input:  input,
		log:    log,
	}
}

// SetFrame swaps in a recomputed frame.
func (c *DragController) SetFrame(f core.AxisFrame) {
	c.frame = f
}

func (c *DragController) Frame() core.AxisFrame {
	return c.frame
}

// SetHandles restricts arming to the given primitives. With no set, any
// handle primitive is accepted.
func (c *DragController) SetHandles(set handles.Set) {
	c.owned = set
}

func (c *DragController) State() State {
	if c.session != nil {
		return Armed
	}
	return Idle
}

func (c *DragController) Dragging() bool {
	return c.session != nil
}

func (c *DragController) ActiveAxis() (core.Axis, bool) {
	if c.session == nil {
		return 0, false
	}
	return c.session.Axis, true
}

// Session returns a copy of the active session.
func (c *DragController) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

func (c *DragController) Cursor() Cursor {
	return c.cursor
}

func (c *DragController) decode(pick PickResult) (*handles.Primitive, core.Axis, bool) {
	h, ok := pick.Primitive.(*handles.Primitive)
	if !ok || h == nil {
		return nil, 0, false
	}
	if c.owned != nil && !c.owned.Contains(h) {
		return nil, 0, false
	}
	axis, ok := core.AxisFromID(pick.ID)
	if !ok {
		return nil, 0, false
	}
	return h, axis, true
}

// OnPointerDown arms a drag when the pick hit one of the gizmo's handles.
// Anything else leaves the controller idle.
func (c *DragController) OnPointerDown(pick PickResult) bool {
	h, axis, ok := c.decode(pick)
	if !ok {
		if c.endSession() {
			c.setCameraInput(true)
		}
		c.cursor = CursorDefault
		return false
	}
	// A second press while armed replaces the drag; the camera is already off.
	replaced := c.endSession()
	c.session = &DragSession{Axis: axis, Handle: h}
	c.cursor = CursorDrag
	if !replaced {
		c.setCameraInput(false)
	}
	c.log.Debugf("armed %s drag on axis %s", h.Kind, axis)
	return true
}

// OnPointerMove handles a pointer move from start to end. While idle it only
// refreshes the hover cursor.
func (c *DragController) OnPointerMove(start, end mgl64.Vec2, cam Camera) Update {
	if c.session == nil {
		c.cursor = CursorDefault
		if c.picker != nil {
			if pick, ok := c.picker.Pick(end); ok {
				if _, _, valid := c.decode(pick); valid {
					c.cursor = CursorHover
				}
			}
		}
		return Update{Matrix: mgl64.Ident4(), Cursor: c.cursor}
	}

	s := c.session
	u := Update{Kind: s.Handle.Kind, Axis: s.Axis, Matrix: mgl64.Ident4(), Cursor: c.cursor}
	dir := c.frame.Direction(s.Axis)
	center := c.frame.Center

	if cam == nil {
		c.log.Debugf("drag skipped: no camera")
		return u
	}

	plane := core.Plane{Point: center, Normal: cam.Forward()}
	if s.Handle.Kind == handles.KindRotate {
		plane.Normal = dir
	}
	p0, p1, ok := intersectDrag(plane, start, end, cam)
	if !ok {
		c.log.Debugf("drag skipped: pick rays miss the drag plane")
		return u
	}

	var m mgl64.Mat4
	var delta float64
	switch s.Handle.Kind {
	case handles.KindRotate:
		delta, ok = SignedAngle(p0.Sub(center), p1.Sub(center), dir)
		if !ok {
			c.log.Debugf("drag skipped: rotation through the anchor")
			return u
		}
		m = RotationAbout(center, dir, delta)
	case handles.KindScale:
		d, _ := AxisTranslation(p1.Sub(p0), dir)
		delta = 1 + d/c.frame.Radius
		if delta < minScaleFactor {
			c.log.Debugf("drag skipped: scale factor %v too small", delta)
			return u
		}
		m = ScaleAlong(center, dir, delta)
	default:
		delta, m = AxisTranslation(p1.Sub(p0), dir)
	}

	s.Start, s.Current = p0, p1
	u.Delta = delta
	u.Matrix = m
	u.Applied = true
	return u
}

// OnPointerUp ends any drag and gives the camera back to the host.
func (c *DragController) OnPointerUp() {
	c.endSession()
	c.cursor = CursorDefault
	c.setCameraInput(true)
}

// Release drops the session without waiting for pointer-up, e.g. when the
// gizmo is destroyed mid-drag.
func (c *DragController) Release() {
	c.OnPointerUp()
}

func (c *DragController) endSession() bool {
	if c.session == nil {
		return false
	}
	c.log.Debugf("released drag on axis %s", c.session.Axis)
	c.session = nil
	return true
}

func (c *DragController) setCameraInput(enabled bool) {
	if c.input != nil {
		c.input.SetCameraInputEnabled(enabled, enabled)
	}
}

func intersectDrag(plane core.Plane, start, end mgl64.Vec2, cam Camera) (mgl64.Vec3, mgl64.Vec3, bool) {
	r0, ok := cam.PickRay(start)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	r1, ok := cam.PickRay(end)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	p0, ok := core.IntersectRayPlane(r0, plane)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	p1, ok := core.IntersectRayPlane(r1, plane)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return p0, p1, true
}

// AxisTranslation projects offset onto the axis and returns the signed
// distance with the matching pure translation. The perpendicular part of
// offset is dropped.
func AxisTranslation(offset, axisDir mgl64.Vec3) (float64, mgl64.Mat4) {
	l := axisDir.Len()
	if l == 0 {
		return 0, mgl64.Ident4()
	}
	dir := axisDir.Mul(1 / l)
	d := offset.Dot(dir)
	t := dir.Mul(d)
	return d, mgl64.Translate3D(t.X(), t.Y(), t.Z())
}

// SignedAngle is the angle from a to b about axis, both projected onto the
// plane perpendicular to axis.
func SignedAngle(a, b, axis mgl64.Vec3) (float64, bool) {
	axis = axis.Normalize()
	a = a.Sub(axis.Mul(a.Dot(axis)))
	b = b.Sub(axis.Mul(b.Dot(axis)))
	if a.Len() < 1e-12 || b.Len() < 1e-12 {
		return 0, false
	}
	return math.Atan2(a.Cross(b).Dot(axis), a.Dot(b)), true
}

// RotationAbout rotates by angle around the line through center along axis.
func RotationAbout(center, axis mgl64.Vec3, angle float64) mgl64.Mat4 {
	to := mgl64.Translate3D(center.X(), center.Y(), center.Z())
	back := mgl64.Translate3D(-center.X(), -center.Y(), -center.Z())
	return to.Mul4(mgl64.HomogRotate3D(angle, axis.Normalize())).Mul4(back)
}

// ScaleAlong scales by factor along axis, keeping center fixed.
func ScaleAlong(center, axis mgl64.Vec3, factor float64) mgl64.Mat4 {
	n := axis.Normalize()
	k := factor - 1
	s := mgl64.Ident3()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			s.Set(row, col, s.At(row, col)+k*n[row]*n[col])
		}
	}
	to := mgl64.Translate3D(center.X(), center.Y(), center.Z())
	back := mgl64.Translate3D(-center.X(), -center.Y(), -center.Z())
	return to.Mul4(s.Mat4()).Mul4(back)
}
