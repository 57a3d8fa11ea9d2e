package handles

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/gekko3d/gizmo/rt/core"
	"github.com/gekko3d/gizmo/rt/mesh"
)

// Kind is the interaction a handle performs when dragged.
type Kind int

const (
	KindTranslate Kind = iota
	KindScale
	KindRotate
)

func (k Kind) String() string {
	switch k {
	case KindTranslate:
		return "translate"
	case KindScale:
		return "scale"
	case KindRotate:
		return "rotate"
	}
	return "unknown"
}

type Shape int

const (
	ShapeLine Shape = iota // P1 to P2
	ShapeCube              // centered on P1, edge Size, oriented by Basis
	ShapeMesh              // Mesh holds world-space triangles
)

// Primitive is one renderable, pickable piece of a handle. Geometry is in
// world space at construction; later drags are folded into ModelMatrix.
type Primitive struct {
	Ref  string
	Kind Kind
	Axis core.Axis

	Shape  Shape
	P1, P2 mgl64.Vec3
	Size   float64
	Basis  mgl64.Mat3
	Mesh   *mesh.TorusMeshData

	Color          [4]float32
	DepthFailColor [4]float32
	ModelMatrix    mgl64.Mat4
}

func newPrimitive(kind Kind, axis core.Axis, shape Shape, style Style) *Primitive {
	return &Primitive{
		Ref:            uuid.NewString(),
		Kind:           kind,
		Axis:           axis,
		Shape:          shape,
		Basis:          mgl64.Ident3(),
		Color:          AxisColor(axis),
		DepthFailColor: DepthFailColor(axis, style.DepthFailAlpha),
		ModelMatrix:    mgl64.Ident4(),
	}
}

// PickID is the id the host reports back when this primitive is hit.
func (p *Primitive) PickID() int {
	return int(p.Axis)
}

// Set is the primitive list one builder produced.
type Set []*Primitive

// Place replaces every primitive's model matrix with m.
func (s Set) Place(m mgl64.Mat4) {
	for _, p := range s {
		p.ModelMatrix = m
	}
}

func (s Set) ForAxis(a core.Axis) Set {
	var out Set
	for _, p := range s {
		if p.Axis == a {
			out = append(out, p)
		}
	}
	return out
}

// Contains reports whether p belongs to the set.
func (s Set) Contains(p *Primitive) bool {
	for _, q := range s {
		if q == p {
			return true
		}
	}
	return false
}
