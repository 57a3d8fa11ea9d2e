package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxVertices is the most vertices a 16-bit index buffer can address.
const MaxVertices = math.MaxUint16 + 1

var (
	ErrTooManyVertices = errors.New("torus exceeds the 16-bit index range")
	ErrInvalidSegments = errors.New("torus needs at least one radial and one tubular segment")
	ErrInvalidRadius   = errors.New("torus radius and tube radius must be positive")
)

// TorusParams describes a ring lying in the local XZ plane around the local Y
// axis. Segment counts are truncated to integers; an Arc of zero means a full
// turn. Orientation and Center place the ring in world space.
type TorusParams struct {
	Radius          float64
	TubeRadius      float64
	RadialSegments  float64
	TubularSegments float64
	Arc             float64
	Center          mgl64.Vec3
	Orientation     mgl64.Mat3
}

// TorusMeshData is a static triangle mesh. Positions and Normals hold three
// values per vertex, TexCoords two, Indices three per triangle.
type TorusMeshData struct {
	Positions  []float64
	Normals    []float64
	TexCoords  []float32
	Indices    []uint16
	Bounds     BoundingSphere
	Compressed *CompressedAttributes
}

func (m *TorusMeshData) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *TorusMeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *TorusMeshData) Position(i int) mgl64.Vec3 {
	return mgl64.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

func (m *TorusMeshData) Normal(i int) mgl64.Vec3 {
	return mgl64.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

// TorusVertexCount is the vertex count GenerateTorus would produce.
func TorusVertexCount(radialSegments, tubularSegments int) int {
	return (radialSegments + 1) * (tubularSegments + 1)
}

// GenerateTorus builds the rotation-ring surface. It returns an error instead
// of a partial mesh when the parameters cannot be represented.
func GenerateTorus(p TorusParams) (TorusMeshData, error) {
	radial := int(p.RadialSegments)
	tubular := int(p.TubularSegments)
	if radial < 1 || tubular < 1 {
		return TorusMeshData{}, fmt.Errorf("%w: radial=%d tubular=%d", ErrInvalidSegments, radial, tubular)
	}
	if !(p.Radius > 0) || !(p.TubeRadius > 0) {
		return TorusMeshData{}, fmt.Errorf("%w: radius=%v tube=%v", ErrInvalidRadius, p.Radius, p.TubeRadius)
	}
	count := TorusVertexCount(radial, tubular)
	if count > MaxVertices {
		return TorusMeshData{}, fmt.Errorf("%w: %d vertices for %dx%d segments", ErrTooManyVertices, count, radial, tubular)
	}
	arc := p.Arc
	if arc == 0 {
		arc = 2 * math.Pi
	}

	orientation := p.Orientation
	if orientation == (mgl64.Mat3{}) {
		orientation = mgl64.Ident3()
	}
	world := func(v mgl64.Vec3) mgl64.Vec3 {
		return orientation.Mul3x1(v).Add(p.Center)
	}

	m := TorusMeshData{
		Positions: make([]float64, 0, 3*count),
		Normals:   make([]float64, 0, 3*count),
		TexCoords: make([]float32, 0, 2*count),
		Indices:   make([]uint16, 0, 6*radial*tubular),
	}

	for j := 0; j <= radial; j++ {
		v := float64(j) / float64(radial) * 2 * math.Pi
		for i := 0; i <= tubular; i++ {
			u := float64(i) / float64(tubular) * arc

			ring := p.Radius + p.TubeRadius*math.Cos(v)
			local := mgl64.Vec3{ring * math.Cos(u), p.TubeRadius * math.Sin(v), ring * math.Sin(u)}
			centerline := mgl64.Vec3{p.Radius * math.Cos(u), 0, p.Radius * math.Sin(u)}

			pos := world(local)
			// Rotate the centerline offset rather than subtracting two world
			// points, which loses precision far from the origin.
			n := orientation.Mul3x1(local.Sub(centerline)).Normalize()

			m.Positions = append(m.Positions, pos.X(), pos.Y(), pos.Z())
			m.Normals = append(m.Normals, n.X(), n.Y(), n.Z())
			m.TexCoords = append(m.TexCoords, float32(float64(i)/float64(tubular)), float32(float64(j)/float64(radial)))
		}
	}

	stride := tubular + 1
	for j := 1; j <= radial; j++ {
		for i := 1; i <= tubular; i++ {
			a := uint16(stride*(j-1) + i - 1)
			b := uint16(stride*j + i - 1)
			c := uint16(stride*j + i)
			d := uint16(stride*(j-1) + i)

			m.Indices = append(m.Indices, a, b, d)
			m.Indices = append(m.Indices, b, c, d)
		}
	}

	m.Bounds = BoundingSphereFromPositions(m.Positions)
	return m, nil
}
