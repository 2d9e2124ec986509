// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package geo provides geographic coordinates on a spherical earth, distance
// and bearing calculations between them, and bounding regions that handle
// wraparound at the antimeridian.
package geo

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/s2"

	"m4o.io/geo/model"
)

const (

	// EarthRadius is the radius of the spherical earth model in meters.
	EarthRadius = 6376500

	// MetersPerDegree is the length of one degree of arc on a great circle.
	MetersPerDegree = 2 * math.Pi * EarthRadius / 360

	// PreciseThreshold is the latitude or longitude delta, in degrees, above
	// which DistanceTo switches from the planar approximation to haversine.
	PreciseThreshold = 6
)

// Coordinate is an immutable point given by latitude and longitude in
// degrees and an optional altitude in meters.
type Coordinate struct {
	lat    float64
	lon    float64
	alt    float64
	hasAlt bool
}

// Latitude returns the latitude in degrees.
func (c Coordinate) Latitude() float64 { return c.lat }

// Longitude returns the longitude in degrees.
func (c Coordinate) Longitude() float64 { return c.lon }

// Altitude returns the altitude in meters, or 0 if it was not given.
func (c Coordinate) Altitude() float64 {
	if !c.hasAlt {
		return 0
	}

	return c.alt
}

// HasAltitude reports whether the coordinate was created with an altitude.
func (c Coordinate) HasAltitude() bool { return c.hasAlt }

// AsArray returns a copy of [latitude, longitude] or, when an altitude was
// given, [latitude, longitude, altitude].
func (c Coordinate) AsArray() []float64 {
	if c.hasAlt {
		return []float64{c.lat, c.lon, c.alt}
	}

	return []float64{c.lat, c.lon}
}

// LatLng returns the equivalent s2.LatLng.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.lat, c.lon)
}

func (c Coordinate) String() string {
	if c.hasAlt {
		return fmt.Sprintf("(%g, %g, %gm)", c.lat, c.lon, c.alt)
	}

	return fmt.Sprintf("(%g, %g)", c.lat, c.lon)
}

// QuickDistanceTo calculates the distance in meters between two points,
// assuming they lie on a plane, corrected for the convergence of meridians
// at their average latitude. It gets increasingly wrong for long distances
// and for points close to the poles.
func (c Coordinate) QuickDistanceTo(o Coordinate) float64 {
	dLon := math.Abs(o.lon - c.lon)
	dLat := math.Abs(o.lat - c.lat)
	avgLat := (o.lat + c.lat) / 2
	x := dLon * math.Cos(radians(avgLat))

	return math.Sqrt(x*x+dLat*dLat) * MetersPerDegree
}

// PreciseDistanceTo calculates the great-circle distance in meters between
// two points using the haversine formula.
func (c Coordinate) PreciseDistanceTo(o Coordinate) float64 {
	dLon := radians(math.Abs(o.lon - c.lon))
	dLat := radians(math.Abs(o.lat - c.lat))
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(radians(c.lat))*math.Cos(radians(o.lat))*math.Pow(math.Sin(dLon/2), 2)
	k := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * k
}

// DistanceTo returns the distance in meters between two points. The planar
// approximation is used unless the points are more than PreciseThreshold
// degrees apart on either axis, or the Precise option is given.
func (c Coordinate) DistanceTo(o Coordinate, opts ...DistanceOption) float64 {
	cfg := defaultDistanceConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	dLon := math.Abs(o.lon - c.lon)
	dLat := math.Abs(o.lat - c.lat)

	if cfg.precise || dLat > cfg.threshold || dLon > cfg.threshold {
		return c.PreciseDistanceTo(o)
	}

	return c.QuickDistanceTo(o)
}

// Distance3DTo is QuickDistanceTo with the altitude difference folded in.
func (c Coordinate) Distance3DTo(o Coordinate) float64 {
	dLon := math.Abs(o.lon-c.lon) * MetersPerDegree
	dLat := math.Abs(o.lat-c.lat) * MetersPerDegree
	dAlt := math.Abs(o.Altitude() - c.Altitude())
	avgLat := (o.lat + c.lat) / 2
	x := dLon * math.Cos(radians(avgLat))

	return math.Sqrt(x*x + dLat*dLat + dAlt*dAlt)
}

// PointAtDistance returns the point distance meters away along bearing,
// given in radians clockwise from north. The result has no altitude.
func (c Coordinate) PointAtDistance(distance, bearing float64) Coordinate {
	lat1 := radians(c.lat)
	lon1 := radians(c.lon)
	delta := distance / EarthRadius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(math.Sin(bearing)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return Coordinate{lat: degrees(lat2), lon: degrees(lon2)}
}

// BearingRadTo returns the initial bearing towards o in radians, in [0, 2π).
func (c Coordinate) BearingRadTo(o Coordinate) float64 {
	dLon := radians(o.lon - c.lon)
	lat1 := radians(c.lat)
	lat2 := radians(o.lat)
	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := math.Atan2(y, x)
	if bearing < 0 {
		return 2*math.Pi + bearing
	}

	return bearing
}

// BearingTo returns the initial bearing towards o in degrees, in [0, 360).
func (c Coordinate) BearingTo(o Coordinate) float64 {
	return degrees(c.BearingRadTo(o))
}

// SortArrayByReferencePoint sorts coords in place by their quick distance
// from c and returns the same slice.
func (c Coordinate) SortArrayByReferencePoint(coords []Coordinate) []Coordinate {
	slices.SortFunc(coords, func(a, b Coordinate) int {
		return cmp.Compare(c.QuickDistanceTo(a), c.QuickDistanceTo(b))
	})

	return coords
}

// SortByReferencePoint sorts coordinate-like values in place by their quick
// distance from ref. The elements are coerced for comparison only. If any
// element cannot be coerced, coords is left untouched.
func SortByReferencePoint[T any](ref Coordinate, coords []T) error {
	type keyed struct {
		value    T
		distance float64
	}

	keys := make([]keyed, len(coords))

	for i, v := range coords {
		c, err := From(v)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}

		keys[i] = keyed{value: v, distance: ref.QuickDistanceTo(c)}
	}

	slices.SortFunc(keys, func(a, b keyed) int {
		return cmp.Compare(a.distance, b.distance)
	})

	for i, k := range keys {
		coords[i] = k.value
	}

	return nil
}

// Distance coerces a and b into coordinates and returns a.DistanceTo(b).
func Distance(a, b any, opts ...DistanceOption) (float64, error) {
	ca, err := From(a)
	if err != nil {
		return 0, err
	}

	cb, err := From(b)
	if err != nil {
		return 0, err
	}

	return ca.DistanceTo(cb, opts...), nil
}

// Bearing coerces a and b into coordinates and returns a.BearingTo(b).
func Bearing(a, b any) (float64, error) {
	ca, err := From(a)
	if err != nil {
		return 0, err
	}

	cb, err := From(b)
	if err != nil {
		return 0, err
	}

	return ca.BearingTo(cb), nil
}

func radians(deg float64) float64 { return model.Degrees(deg).Radians() }

func degrees(rad float64) float64 { return float64(model.Angle(rad).Degrees()) }
