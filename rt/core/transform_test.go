package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCachedTransformState(t *testing.T) {
	s := NewCachedTransformState()
	for i := range s.Translation {
		assert.Equal(t, mgl64.Ident4(), s.Translation[i])
		assert.Equal(t, mgl64.Ident4(), s.Scale[i])
	}
	assert.Equal(t, mgl64.Ident4(), s.Rotation)

	s.AccumulateTranslation(AxisX, mgl64.Translate3D(1, 0, 0))
	s.AccumulateTranslation(AxisX, mgl64.Translate3D(2, 0, 0))
	s.AccumulateTranslation(AxisZ, mgl64.Translate3D(0, 0, -4))
	assert.Equal(t, mgl64.Vec3{3, 0, -4}, s.TotalTranslation())

	s.AccumulateScale(AxisY, mgl64.Scale3D(1, 2, 1))
	s.AccumulateRotation(mgl64.HomogRotate3DZ(0.5))
	s.Reset()
	assert.Equal(t, mgl64.Vec3{}, s.TotalTranslation())
	assert.Equal(t, mgl64.Ident4(), s.Scale[AxisY])
	assert.Equal(t, mgl64.Ident4(), s.Rotation)
}
