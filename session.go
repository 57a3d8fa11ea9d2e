// Package gizmo is a translate/rotate/scale gizmo for one object anchored at
// a point with a bounding radius. It owns the handle geometry and the pointer
// state machine; drawing, picking and cursor styling stay with the host.
package gizmo

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/gekko3d/gizmo/rt/core"
	"github.com/gekko3d/gizmo/rt/handles"
	"github.com/gekko3d/gizmo/rt/interact"
	"github.com/gekko3d/gizmo/rt/mesh"
)

var (
	ErrDestroyed     = errors.New("gizmo session destroyed")
	ErrInvalidUpdate = errors.New("invalid gizmo update")
)

// Host is what the session needs from the embedding application. Both fields
// may be nil: no hover feedback, no camera toggling.
type Host struct {
	Picker interact.Picker
	Input  interact.InputToggle
}

type Option func(*Session)

func WithConfig(cfg Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

func WithLogger(l Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session is one gizmo attached to one object. Like everything in this
// module it expects to be driven from a single input loop.
type Session struct {
	ID string

	cfg    Config
	log    Logger
	body   core.Body
	anchor core.Anchor
	radius float64

	model mgl64.Mat4 // object model matrix
	delta mgl64.Mat4 // everything applied since construction
	frame core.AxisFrame
	home  mgl64.Mat4 // inverse of the frame the handles were built in
	cache *core.CachedTransformState

	Translate handles.Set
	Scale     handles.Set
	Rotate    handles.Set

	ctrl      *interact.DragController
	destroyed bool
}

// NewSession builds the frame and all handles up front. It refuses to build a
// partial session: any error leaves nothing behind.
func NewSession(anchor core.Anchor, model mgl64.Mat4, host Host, opts ...Option) (*Session, error) {
	s := &Session{
		ID:    uuid.NewString(),
		cfg:   DefaultConfig(),
		model: model,
		delta: mgl64.Ident4(),
		cache: core.NewCachedTransformState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = newConfiguredLogger(s.cfg.Log)
	}
	if s.log == nil {
		s.log = NewNopLogger()
	}
	s.log = forSession(s.log, s.ID)

	if err := anchor.Validate(); err != nil {
		return nil, fmt.Errorf("new gizmo session: %w", err)
	}
	if !finite(model) {
		return nil, fmt.Errorf("new gizmo session: model matrix is not finite: %w", core.ErrMissingAnchor)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new gizmo session: %w", err)
	}
	body, err := s.cfg.body()
	if err != nil {
		return nil, fmt.Errorf("new gizmo session: %w", err)
	}

	s.body = body
	s.anchor = anchor
	s.radius = anchor.Radius(s.cfg.MinimumRadius, s.cfg.RadiusFactor)
	s.frame = s.computeFrame()
	s.home = s.frame.InverseModelMatrix()

	style := s.cfg.style()
	s.Translate = handles.TranslateHandleBuilder{Style: style}.Build(s.frame)
	s.Scale = handles.ScaleHandleBuilder{Style: style, BoxFactor: s.cfg.ScaleBoxFactor}.Build(s.frame)
	s.Rotate, err = handles.RotateHandleBuilder{
		Style:           style,
		TubeFactor:      s.cfg.Ring.TubeFactor,
		RadialSegments:  s.cfg.Ring.RadialSegments,
		TubularSegments: s.cfg.Ring.TubularSegments,
		PostProcess: mesh.PostProcessOptions{
			RecomputeNormals: s.cfg.Ring.RecomputeNormals,
			Compress:         s.cfg.Ring.Compress,
		},
	}.Build(s.frame)
	if err != nil {
		return nil, fmt.Errorf("new gizmo session: %w", err)
	}

	s.ctrl = interact.NewDragController(s.frame, host.Picker, host.Input, s.log)
	s.ctrl.SetHandles(s.Handles())

	s.log.Infof("anchor %v radius %.3f", anchor.Center, s.radius)
	return s, nil
}

func (s *Session) computeFrame() core.AxisFrame {
	center := s.delta.Mul4x1(s.anchor.Center.Vec4(1)).Vec3()
	var orientation *mgl64.Mat4
	if s.cfg.OrientWithObject {
		m := s.model
		orientation = &m
	}
	return core.ComputeFrame(s.body, core.Anchor{Center: center, BoundingRadius: s.anchor.BoundingRadius}, s.radius, orientation)
}

// Handles returns every primitive the host should register.
func (s *Session) Handles() handles.Set {
	all := make(handles.Set, 0, len(s.Translate)+len(s.Scale)+len(s.Rotate))
	all = append(all, s.Translate...)
	all = append(all, s.Scale...)
	return append(all, s.Rotate...)
}

func (s *Session) Anchor() core.Anchor { return s.anchor }
func (s *Session) Radius() float64 { return s.radius }
func (s *Session) Frame() core.AxisFrame { return s.frame }
func (s *Session) Model() mgl64.Mat4 { return s.model }
func (s *Session) State() interact.State { return s.ctrl.State() }
func (s *Session) Cursor() interact.Cursor { return s.ctrl.Cursor() }
func (s *Session) Dragging() bool { return s.ctrl.Dragging() }
func (s *Session) Destroyed() bool { return s.destroyed }
func (s *Session) Config() Config { return s.cfg }
func (s *Session) Cache() core.CachedTransformState { return *s.cache }

func (s *Session) PointerDown(pick interact.PickResult) bool {
	if s.destroyed {
		return false
	}
	return s.ctrl.OnPointerDown(pick)
}

// PointerMove feeds one move to the controller and, when it produced a
// transform, folds it into the object and the handles.
func (s *Session) PointerMove(start, end mgl64.Vec2, cam interact.Camera) interact.Update {
	if s.destroyed {
		return interact.Update{Matrix: mgl64.Ident4()}
	}
	u := s.ctrl.OnPointerMove(start, end, cam)
	if u.Applied {
		if err := s.ApplyUpdate(u); err != nil {
			s.log.Warnf("%v", err)
			u.Applied = false
			u.Matrix = mgl64.Ident4()
		}
	}
	return u
}

func (s *Session) PointerUp() {
	if s.destroyed {
		return
	}
	s.ctrl.OnPointerUp()
}

// ApplyUpdate left-multiplies the update into the object's model matrix and
// moves the handles onto the recomputed frame. The handles follow the frame,
// not the object: they never pick up scale, and only pick up rotation when the
// frame is oriented with the object. An update that is malformed or would
// produce a non-finite result is rejected and nothing changes.
func (s *Session) ApplyUpdate(u interact.Update) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if !u.Axis.Valid() {
		return fmt.Errorf("%w: axis %s", ErrInvalidUpdate, u.Axis)
	}
	switch u.Kind {
	case handles.KindTranslate, handles.KindScale, handles.KindRotate:
	default:
		return fmt.Errorf("%w: kind %s", ErrInvalidUpdate, u.Kind)
	}
	model := u.Matrix.Mul4(s.model)
	delta := u.Matrix.Mul4(s.delta)
	if !finite(u.Matrix) || !finite(model) || !finite(delta) {
		return fmt.Errorf("%w: non-finite %s update on axis %s", ErrInvalidUpdate, u.Kind, u.Axis)
	}

	s.model = model
	s.delta = delta
	switch u.Kind {
	case handles.KindTranslate:
		s.cache.AccumulateTranslation(u.Axis, u.Matrix)
	case handles.KindScale:
		s.cache.AccumulateScale(u.Axis, u.Matrix)
	case handles.KindRotate:
		s.cache.AccumulateRotation(u.Matrix)
	}

	s.frame = s.computeFrame()
	s.ctrl.SetFrame(s.frame)
	s.Handles().Place(s.frame.ModelMatrix().Mul4(s.home))
	s.log.Debugf("%s %s by %.4f", u.Kind, u.Axis, u.Delta)
	return nil
}

// Destroy releases any drag in progress and turns the session into a no-op.
func (s *Session) Destroy() {
	if s.destroyed {
		return
	}
	if s.ctrl.Dragging() {
		s.ctrl.Release()
	}
	s.destroyed = true
	s.log.Infof("destroyed")
}

func finite(m mgl64.Mat4) bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
