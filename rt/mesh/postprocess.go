package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type PostProcessOptions struct {
	// RecomputeNormals replaces the authored normals with area-weighted face
	// normals. Otherwise the authored normals are only re-normalized.
	RecomputeNormals bool

	// Compress fills Compressed for transmission to the renderer.
	Compress bool
}

// CompressedAttributes stores positions relative to Center as high/low float32
// pairs (their sum restores double precision) and oct-encoded normals, two
// bytes per vertex.
type CompressedAttributes struct {
	Center        mgl64.Vec3
	PositionsHigh []float32
	PositionsLow  []float32
	Normals       []uint8
}

// PostProcess returns a finished copy of m. Vertex count, positions and
// indices are never changed.
func PostProcess(m TorusMeshData, opts PostProcessOptions) TorusMeshData {
	out := TorusMeshData{
		Positions: append([]float64(nil), m.Positions...),
		TexCoords: append([]float32(nil), m.TexCoords...),
		Indices:   append([]uint16(nil), m.Indices...),
		Bounds:    m.Bounds,
	}
	if opts.RecomputeNormals || len(m.Normals) != len(m.Positions) {
		out.Normals = faceWeightedNormals(out.Positions, out.Indices)
	} else {
		out.Normals = append([]float64(nil), m.Normals...)
		normalizeAll(out.Normals)
	}
	if opts.Compress {
		out.Compressed = compress(&out)
	}
	return out
}

func faceWeightedNormals(positions []float64, indices []uint16) []float64 {
	normals := make([]float64, len(positions))
	at := func(i uint16) mgl64.Vec3 {
		return mgl64.Vec3{positions[3*int(i)], positions[3*int(i)+1], positions[3*int(i)+2]}
	}
	for t := 0; t+2 < len(indices); t += 3 {
		ia, ib, ic := indices[t], indices[t+1], indices[t+2]
		a := at(ia)
		// Cross product length is twice the area, so larger faces weigh more.
		n := at(ib).Sub(a).Cross(at(ic).Sub(a))
		for _, idx := range [3]uint16{ia, ib, ic} {
			for k := 0; k < 3; k++ {
				normals[3*int(idx)+k] += n[k]
			}
		}
	}
	normalizeAll(normals)
	return normals
}

func normalizeAll(normals []float64) {
	for i := 0; i+2 < len(normals); i += 3 {
		n := mgl64.Vec3{normals[i], normals[i+1], normals[i+2]}
		l := n.Len()
		if l == 0 {
			continue
		}
		normals[i], normals[i+1], normals[i+2] = n[0]/l, n[1]/l, n[2]/l
	}
}

func compress(m *TorusMeshData) *CompressedAttributes {
	n := m.VertexCount()
	c := &CompressedAttributes{
		Center:        m.Bounds.Center,
		PositionsHigh: make([]float32, 3*n),
		PositionsLow:  make([]float32, 3*n),
		Normals:       make([]uint8, 2*n),
	}
	for i := 0; i < n; i++ {
		rel := m.Position(i).Sub(c.Center)
		for k := 0; k < 3; k++ {
			high := float32(rel[k])
			c.PositionsHigh[3*i+k] = high
			c.PositionsLow[3*i+k] = float32(rel[k] - float64(high))
		}
		e := OctEncode(m.Normal(i))
		c.Normals[2*i], c.Normals[2*i+1] = e[0], e[1]
	}
	return c
}

func (c *CompressedAttributes) Position(i int) mgl64.Vec3 {
	var p mgl64.Vec3
	for k := 0; k < 3; k++ {
		p[k] = float64(c.PositionsHigh[3*i+k]) + float64(c.PositionsLow[3*i+k])
	}
	return p.Add(c.Center)
}

func (c *CompressedAttributes) Normal(i int) mgl64.Vec3 {
	return OctDecode([2]uint8{c.Normals[2*i], c.Normals[2*i+1]})
}

const octRange = 255.0

// OctEncode maps a unit vector onto the octahedron and quantizes it to bytes.
func OctEncode(n mgl64.Vec3) [2]uint8 {
	l1 := math.Abs(n.X()) + math.Abs(n.Y()) + math.Abs(n.Z())
	if l1 == 0 {
		return [2]uint8{128, 128}
	}
	x, y := n.X()/l1, n.Y()/l1
	if n.Z() < 0 {
		x, y = (1-math.Abs(y))*signNotZero(x), (1-math.Abs(x))*signNotZero(y)
	}
	return [2]uint8{toSNorm(x), toSNorm(y)}
}

func OctDecode(e [2]uint8) mgl64.Vec3 {
	x := fromSNorm(e[0])
	y := fromSNorm(e[1])
	z := 1 - (math.Abs(x) + math.Abs(y))
	if z < 0 {
		x, y = (1-math.Abs(y))*signNotZero(x), (1-math.Abs(x))*signNotZero(y)
	}
	return mgl64.Vec3{x, y, z}.Normalize()
}

func signNotZero(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func toSNorm(v float64) uint8 {
	return uint8(math.Round((mgl64.Clamp(v, -1, 1)*0.5 + 0.5) * octRange))
}

func fromSNorm(b uint8) float64 {
	return mgl64.Clamp(float64(b), 0, octRange)/octRange*2 - 1
}
