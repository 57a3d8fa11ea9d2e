package mesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitTorus(radial, tubular float64) TorusParams {
	return TorusParams{
		Radius:          1,
		TubeRadius:      0.25,
		RadialSegments:  radial,
		TubularSegments: tubular,
		Arc:             2 * math.Pi,
	}
}

func near(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func faceNormal(m *TorusMeshData, tri int) (mgl64.Vec3, mgl64.Vec3) {
	a := m.Position(int(m.Indices[3*tri]))
	b := m.Position(int(m.Indices[3*tri+1]))
	c := m.Position(int(m.Indices[3*tri+2]))
	centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
	return b.Sub(a).Cross(c.Sub(a)), centroid
}

func TestGenerateTorusCounts(t *testing.T) {
	m, err := GenerateTorus(unitTorus(4, 4))
	require.NoError(t, err)

	assert.Equal(t, 25, m.VertexCount())
	assert.Len(t, m.Normals, 75)
	assert.Len(t, m.TexCoords, 50)
	assert.Len(t, m.Indices, 96)
	assert.Equal(t, 32, m.TriangleCount())
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), 25)
	}
}

func TestGenerateTorusTruncatesSegments(t *testing.T) {
	m, err := GenerateTorus(unitTorus(4.9, 4.2))
	require.NoError(t, err)
	assert.Equal(t, 25, m.VertexCount())
}

func TestGenerateTorusTypicalHandle(t *testing.T) {
	m, err := GenerateTorus(TorusParams{Radius: 10, TubeRadius: 0.2, RadialSegments: 32, TubularSegments: 100})
	require.NoError(t, err)
	assert.Equal(t, 3333, m.VertexCount())
	assert.Equal(t, 2*32*100, m.TriangleCount())
}

func TestGenerateTorusErrors(t *testing.T) {
	tests := []struct {
		name string
		p    TorusParams
		err  error
	}{
		{"too many vertices", unitTorus(255, 256), ErrTooManyVertices},
		{"zero radial", unitTorus(0.9, 4), ErrInvalidSegments},
		{"negative tubular", unitTorus(4, -3), ErrInvalidSegments},
		{"zero radius", TorusParams{TubeRadius: 1, RadialSegments: 4, TubularSegments: 4}, ErrInvalidRadius},
		{"nan tube", TorusParams{Radius: 1, TubeRadius: math.NaN(), RadialSegments: 4, TubularSegments: 4}, ErrInvalidRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := GenerateTorus(tt.p)
			assert.ErrorIs(t, err, tt.err)
			assert.Zero(t, m.VertexCount())
		})
	}
}

func TestGenerateTorusAtIndexLimit(t *testing.T) {
	m, err := GenerateTorus(unitTorus(255, 255))
	require.NoError(t, err)
	assert.Equal(t, MaxVertices, m.VertexCount())

	var maxIdx uint16
	for _, idx := range m.Indices {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	assert.Equal(t, uint16(MaxVertices-1), maxIdx)
}

func TestGenerateTorusDefaultArc(t *testing.T) {
	p := unitTorus(4, 8)
	p.Arc = 0
	m, err := GenerateTorus(p)
	require.NoError(t, err)

	// A full turn closes the ring: the last column repeats the first.
	stride := 9
	for j := 0; j <= 4; j++ {
		first := m.Position(j * stride)
		last := m.Position(j*stride + 8)
		assert.True(t, near(first, last, 1e-12), "row %d: %v vs %v", j, first, last)
	}

	p.Arc = math.Pi
	half, err := GenerateTorus(p)
	require.NoError(t, err)
	assert.InDelta(t, -1.25, half.Position(8).X(), 1e-12)
}

func TestGenerateTorusAnalyticNormals(t *testing.T) {
	m, err := GenerateTorus(unitTorus(6, 12))
	require.NoError(t, err)

	for j := 0; j <= 6; j++ {
		v := float64(j) / 6 * 2 * math.Pi
		for i := 0; i <= 12; i++ {
			u := float64(i) / 12 * 2 * math.Pi
			want := mgl64.Vec3{math.Cos(v) * math.Cos(u), math.Sin(v), math.Cos(v) * math.Sin(u)}
			got := m.Normal(j*13 + i)
			assert.True(t, near(got, want, 1e-12), "vertex (%d,%d): %v want %v", j, i, got, want)
		}
	}
}

func TestGenerateTorusWindingAtSampledVertex(t *testing.T) {
	m, err := GenerateTorus(unitTorus(4, 4))
	require.NoError(t, err)

	// The first triangle starts at vertex 0 = (R+r, 0, 0), analytic normal +X.
	require.Equal(t, uint16(0), m.Indices[0])
	n, _ := faceNormal(&m, 0)
	assert.Greater(t, n.Dot(mgl64.Vec3{1, 0, 0}), 0.0)
	assert.Greater(t, n.Dot(m.Normal(0)), 0.0)
}

func TestGenerateTorusWindingOutward(t *testing.T) {
	m, err := GenerateTorus(unitTorus(16, 32))
	require.NoError(t, err)

	for tri := 0; tri < m.TriangleCount(); tri++ {
		n, centroid := faceNormal(&m, tri)
		u := math.Atan2(centroid.Z(), centroid.X())
		onRing := mgl64.Vec3{math.Cos(u), 0, math.Sin(u)}
		if !assert.Greater(t, n.Dot(centroid.Sub(onRing)), 0.0, "triangle %d faces inward", tri) {
			return
		}
	}
}

func TestGenerateTorusWorldTransform(t *testing.T) {
	center := mgl64.Vec3{6378137.0, 1234567.0, -42.5}
	orientation := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}).Mat4().Mat3()

	local, err := GenerateTorus(unitTorus(8, 16))
	require.NoError(t, err)

	p := unitTorus(8, 16)
	p.Center = center
	p.Orientation = orientation
	world, err := GenerateTorus(p)
	require.NoError(t, err)

	require.Equal(t, local.Indices, world.Indices)
	for i := 0; i < local.VertexCount(); i++ {
		want := orientation.Mul3x1(local.Position(i)).Add(center)
		assert.True(t, near(world.Position(i), want, 1e-8), "vertex %d", i)

		wantN := orientation.Mul3x1(local.Normal(i))
		assert.True(t, near(world.Normal(i), wantN, 1e-9), "normal %d", i)
		assert.True(t, world.Bounds.Contains(world.Position(i), 1e-6))
	}
	assert.True(t, near(world.Bounds.Center, center, 1e-6), "bounds center %v", world.Bounds.Center)
	assert.InDelta(t, 1.25, world.Bounds.Radius, 1e-6)
}
