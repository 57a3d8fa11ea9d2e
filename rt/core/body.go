package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body supplies the local tangent basis at a point: columns are east, north
// and up, forming a right-handed frame.
type Body interface {
	EastNorthUp(p mgl64.Vec3) mgl64.Mat3
}

// Flat is a Euclidean scene. Every point gets the identity basis.
type Flat struct{}

func (Flat) EastNorthUp(mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Ident3()
}

// Ellipsoid is a reference body centered at the origin. Up is the geodetic
// surface normal.
type Ellipsoid struct {
	Radii mgl64.Vec3
}

var WGS84 = Ellipsoid{Radii: mgl64.Vec3{6378137.0, 6378137.0, 6356752.3142451793}}

const enuEpsilon = 1e-14

// SurfaceNormal is the geodetic normal at p. It assumes p is not the center.
func (e Ellipsoid) SurfaceNormal(p mgl64.Vec3) mgl64.Vec3 {
	inv := mgl64.Vec3{
		1 / (e.Radii.X() * e.Radii.X()),
		1 / (e.Radii.Y() * e.Radii.Y()),
		1 / (e.Radii.Z() * e.Radii.Z()),
	}
	return mgl64.Vec3{p.X() * inv.X(), p.Y() * inv.Y(), p.Z() * inv.Z()}.Normalize()
}

func (e Ellipsoid) EastNorthUp(p mgl64.Vec3) mgl64.Mat3 {
	if p.Len() < enuEpsilon {
		return mgl64.Ident3()
	}
	up := e.SurfaceNormal(p)

	var east mgl64.Vec3
	if math.Abs(p.X()) < enuEpsilon && math.Abs(p.Y()) < enuEpsilon {
		// On the polar axis east is undefined, pick +Y.
		east = mgl64.Vec3{0, 1, 0}
	} else {
		east = mgl64.Vec3{-p.Y(), p.X(), 0}.Normalize()
	}
	north := up.Cross(east)
	return mgl64.Mat3FromCols(east, north, up)
}
