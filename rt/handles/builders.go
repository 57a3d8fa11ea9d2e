package handles

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/gizmo/rt/core"
	"github.com/gekko3d/gizmo/rt/mesh"
)

// Style carries the look shared by all handle builders.
type Style struct {
	DepthFailAlpha float32
}

func DefaultStyle() Style {
	return Style{DepthFailAlpha: DefaultDepthFailAlpha}
}

// TranslateHandleBuilder makes one arrow shaft per axis.
type TranslateHandleBuilder struct {
	Style Style
}

func (b TranslateHandleBuilder) Build(f core.AxisFrame) Set {
	set := make(Set, 0, 3)
	for _, g := range f.Axes() {
		p := newPrimitive(KindTranslate, g.Axis, ShapeLine, b.Style)
		p.P1 = g.Ray.Origin
		p.P2 = g.EndPoint
		set = append(set, p)
	}
	return set
}

// ScaleHandleBuilder makes a shaft and an end box per axis. BoxFactor sizes
// the box relative to the frame radius.
type ScaleHandleBuilder struct {
	Style     Style
	BoxFactor float64
}

func (b ScaleHandleBuilder) Build(f core.AxisFrame) Set {
	boxFactor := b.BoxFactor
	if boxFactor <= 0 {
		boxFactor = 0.1
	}
	basis := f.Basis()
	set := make(Set, 0, 6)
	for _, g := range f.Axes() {
		shaft := newPrimitive(KindScale, g.Axis, ShapeLine, b.Style)
		shaft.P1 = g.Ray.Origin
		shaft.P2 = g.EndPoint

		box := newPrimitive(KindScale, g.Axis, ShapeCube, b.Style)
		box.P1 = g.EndPoint
		box.Size = f.Radius * boxFactor
		box.Basis = basis

		set = append(set, shaft, box)
	}
	return set
}

// RotateHandleBuilder makes one torus ring per axis, the ring's normal being
// that axis.
type RotateHandleBuilder struct {
	Style           Style
	TubeFactor      float64
	RadialSegments  int
	TubularSegments int
	PostProcess     mesh.PostProcessOptions
}

func (b RotateHandleBuilder) Build(f core.AxisFrame) (Set, error) {
	set := make(Set, 0, 3)
	for _, g := range f.Axes() {
		m, err := mesh.GenerateTorus(mesh.TorusParams{
			Radius:          f.Radius,
			TubeRadius:      f.Radius * b.TubeFactor,
			RadialSegments:  float64(b.RadialSegments),
			TubularSegments: float64(b.TubularSegments),
			Center:          f.Center,
			Orientation:     RingOrientation(f, g.Axis),
		})
		if err != nil {
			return nil, fmt.Errorf("rotate handle %s: %w", g.Axis, err)
		}
		m = mesh.PostProcess(m, b.PostProcess)

		p := newPrimitive(KindRotate, g.Axis, ShapeMesh, b.Style)
		p.P1 = f.Center
		p.Mesh = &m
		set = append(set, p)
	}
	return set, nil
}

// RingOrientation maps the torus' local Y axis onto the given frame axis with
// a cyclic permutation, so the basis stays right-handed.
func RingOrientation(f core.AxisFrame, a core.Axis) mgl64.Mat3 {
	return mgl64.Mat3FromCols(
		f.Direction((a+2)%3),
		f.Direction(a),
		f.Direction((a+1)%3),
	)
}
