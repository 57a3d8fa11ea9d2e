package core

import "github.com/go-gl/mathgl/mgl64"

// CachedTransformState accumulates the incremental transforms applied through
// a gizmo: one scale and one translation matrix per axis, plus a rotation
// shared by all axes.
type CachedTransformState struct {
	Scale       [3]mgl64.Mat4
	Translation [3]mgl64.Mat4
	Rotation    mgl64.Mat4
}

func NewCachedTransformState() *CachedTransformState {
	s := &CachedTransformState{}
	s.Reset()
	return s
}

func (s *CachedTransformState) Reset() {
	for i := range s.Scale {
		s.Scale[i] = mgl64.Ident4()
		s.Translation[i] = mgl64.Ident4()
	}
	s.Rotation = mgl64.Ident4()
}

func (s *CachedTransformState) AccumulateTranslation(a Axis, m mgl64.Mat4) {
	s.Translation[a] = m.Mul4(s.Translation[a])
}

func (s *CachedTransformState) AccumulateScale(a Axis, m mgl64.Mat4) {
	s.Scale[a] = m.Mul4(s.Scale[a])
}

func (s *CachedTransformState) AccumulateRotation(m mgl64.Mat4) {
	s.Rotation = m.Mul4(s.Rotation)
}

// TotalTranslation is the sum of the per-axis translations.
func (s CachedTransformState) TotalTranslation() mgl64.Vec3 {
	var t mgl64.Vec3
	for _, m := range s.Translation {
		t = t.Add(m.Col(3).Vec3())
	}
	return t
}
