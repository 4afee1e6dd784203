// Package location turns inertial ISS positions into geographic sub-points
// and names the place beneath them
package location

import (
	"math"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// Geodetic is a point above the WGS84 ellipsoid. Angles are in degrees,
// altitude in kilometres.
type Geodetic struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// Transformer converts Earth-centred inertial positions into Earth-fixed
// geodetic coordinates by rotating through Greenwich sidereal time
type Transformer struct{}

// NewTransformer creates a frame transformer
func NewTransformer() *Transformer {
	return &Transformer{}
}

// ToGeodetic converts an inertial position in kilometres, observed at the
// given instant, into latitude, longitude and altitude.
// go-satellite takes whole seconds; sub-second precision is dropped.
func (t *Transformer) ToGeodetic(x, y, z float64, at time.Time) Geodetic {
	at = at.UTC()
	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)

	alt, _, ll := satellite.ECIToLLA(satellite.Vector3{X: x, Y: y, Z: z}, gmst)

	return Geodetic{
		Latitude:  ll.Latitude * 180 / math.Pi,
		Longitude: wrapDegrees(ll.Longitude * 180 / math.Pi),
		Altitude:  alt,
	}
}

// wrapDegrees maps an angle into [-180, 180]
func wrapDegrees(deg float64) float64 {
	return math.Remainder(deg, 360)
}
