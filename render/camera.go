package render

import (
	"math"

	"github.com/EdwinChan/celestial-sphere/vectors"
)

// Camera is an orthographic view of the unit sphere, oriented by an
// elevation above the xy-plane and an azimuth around z, measured from
// the +x axis.
type Camera struct {
	Elevation float64 // radians
	Azimuth   float64 // radians

	right   vectors.Vec3
	up      vectors.Vec3
	forward vectors.Vec3 // toward the camera
}

// NewCamera constructs a camera from elevation and azimuth in degrees.
func NewCamera(elevDeg, azimDeg float64) Camera {
	e := elevDeg * math.Pi / 180
	a := azimDeg * math.Pi / 180
	sinE, cosE := math.Sincos(e)
	sinA, cosA := math.Sincos(a)
	forward := vectors.Vec3{X: cosE * cosA, Y: cosE * sinA, Z: sinE}
	right := vectors.Vec3{Z: 1}.Cross(forward).Normalize()
	if right == (vectors.Vec3{}) {
		// looking straight along z: keep the azimuth's screen orientation
		right = vectors.Vec3{X: -sinA, Y: cosA}
	}
	return Camera{
		Elevation: e,
		Azimuth:   a,
		right:     right,
		up:        forward.Cross(right),
		forward:   forward,
	}
}

// DefaultCamera matches the original figure: 10 degrees elevation,
// looking along +y with x to the right and z up.
func DefaultCamera() Camera {
	return NewCamera(10, -90)
}

// Project returns the screen-plane coordinates of v (x right, y up)
// and its depth toward the camera.
func (c Camera) Project(v vectors.Vec3) (x, y, depth float64) {
	return v.Dot(c.right), v.Dot(c.up), v.Dot(c.forward)
}
