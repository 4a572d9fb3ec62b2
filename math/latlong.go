// math/latlong.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "fmt"

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

// DDString returns the position in decimal degrees, e.g.:
// (39.860901, -75.274864)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

const earthRadiusMeters = 6371e3

// metersPerDegreeLatitude is effectively constant; longitude spacing
// shrinks with the cosine of the latitude.
const metersPerDegreeLatitude = earthRadiusMeters * 2 * 3.14159265 / 360

// DistanceMeters returns the distance in meters between two points,
// using an equirectangular approximation. The radar plots objects at
// most a few tens of kilometers from its center, where the
// approximation error is far below display resolution.
func DistanceMeters(a Point2LL, b Point2LL) float32 {
	dlat := (b.Latitude() - a.Latitude()) * metersPerDegreeLatitude
	dlong := (b.Longitude() - a.Longitude()) * metersPerDegreeLatitude *
		Cos(Radians((a.Latitude()+b.Latitude())/2))
	return Sqrt(Sqr(dlat) + Sqr(dlong))
}

// BearingDegrees returns the initial bearing from a to b in degrees,
// normalized to [0, 360).
func BearingDegrees(a Point2LL, b Point2LL) float32 {
	dlat := b.Latitude() - a.Latitude()
	dlong := (b.Longitude() - a.Longitude()) * Cos(Radians((a.Latitude()+b.Latitude())/2))
	brg := Degrees(Atan2(dlong, dlat))
	if brg < 0 {
		brg += 360
	}
	return brg
}

// Lerp2LL linearly interpolates x of the way between a and b.
func Lerp2LL(x float32, a Point2LL, b Point2LL) Point2LL {
	return Point2LL{Lerp(x, a[0], b[0]), Lerp(x, a[1], b[1])}
}
