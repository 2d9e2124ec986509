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

package geo

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"

	"m4o.io/geo/model"
)

const (
	latitudeKey  = "latitude"
	longitudeKey = "longitude"
	altitudeKey  = "altitude"
)

// Located is implemented by labeled structures that expose a position. If
// the value also has an Altitude() float64 method, a finite altitude is
// carried over.
type Located interface {
	Latitude() float64
	Longitude() float64
}

type altituder interface {
	Altitude() float64
}

// New creates a Coordinate from a latitude, a longitude and an optional
// altitude. Latitude and longitude must be finite.
func New(lat, lon float64, alt ...float64) (Coordinate, error) {
	if len(alt) > 1 {
		return Coordinate{}, fmt.Errorf("%w: expected at most 3 values, got %d", ErrInvalidInput, 2+len(alt))
	}

	return parseArray(append([]float64{lat, lon}, alt...))
}

// MustNew is like New but panics if the coordinate is invalid.
func MustNew(lat, lon float64, alt ...float64) Coordinate {
	c, err := New(lat, lon, alt...)
	if err != nil {
		panic(err)
	}

	return c
}

// From coerces a coordinate-like value into a Coordinate. Accepted are a
// Coordinate or a pointer to one, a slice or array of 2 or 3 finite numbers
// ([lat, lon] or [lat, lon, alt]), a map holding both "latitude" and
// "longitude" keys with an optional "altitude", a Located, an s2.LatLng and
// a model.Point. Anything else fails with ErrInvalidInput.
func From(v any) (Coordinate, error) {
	switch v := v.(type) {
	case nil:
		return Coordinate{}, fmt.Errorf("%w: empty value", ErrInvalidInput)
	case Coordinate:
		return v, nil
	case *Coordinate:
		if v == nil {
			return Coordinate{}, fmt.Errorf("%w: empty value", ErrInvalidInput)
		}

		return *v, nil
	case []float64:
		return parseArray(v)
	case [2]float64:
		return parseArray(v[:])
	case [3]float64:
		return parseArray(v[:])
	case []any:
		return parseAnyArray(v)
	case map[string]any:
		return parseObject(v)
	case s2.LatLng:
		return parseArray([]float64{v.Lat.Degrees(), v.Lng.Degrees()})
	case model.Point:
		return parseArray([]float64{float64(v.Latitude), float64(v.Longitude)})
	case Located:
		return parseLocated(v)
	default:
		return Coordinate{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)
	}
}

// FromArgs coerces loose arguments into a Coordinate. A single argument is
// handed to From; two or three are read as latitude, longitude and altitude.
func FromArgs(args ...any) (Coordinate, error) {
	switch len(args) {
	case 1:
		return From(args[0])
	case 2, 3:
		return parseAnyArray(args)
	default:
		return Coordinate{}, fmt.Errorf("%w: expected 1 to 3 arguments, got %d", ErrInvalidInput, len(args))
	}
}

func parseArray(values []float64) (Coordinate, error) {
	if len(values) != 2 && len(values) != 3 {
		return Coordinate{}, fmt.Errorf("%w: array of length %d", ErrInvalidInput, len(values))
	}

	for _, f := range values {
		if !isFinite(f) {
			return Coordinate{}, fmt.Errorf("%w: array %v holds a non-finite value", ErrInvalidInput, values)
		}
	}

	c := Coordinate{lat: values[0], lon: values[1]}
	if len(values) == 3 {
		c.alt = values[2]
		c.hasAlt = true
	}

	return c, nil
}

func parseAnyArray(values []any) (Coordinate, error) {
	floats := make([]float64, len(values))

	for i, v := range values {
		f, ok := toNumber(v, false)
		if !ok {
			return Coordinate{}, fmt.Errorf("%w: array element %d is %v", ErrInvalidInput, i, v)
		}

		floats[i] = f
	}

	return parseArray(floats)
}

func parseObject(obj map[string]any) (Coordinate, error) {
	rawLat, hasLat := obj[latitudeKey]
	rawLon, hasLon := obj[longitudeKey]

	if !hasLat || !hasLon {
		return Coordinate{}, fmt.Errorf("%w: object needs both %q and %q", ErrInvalidInput, latitudeKey, longitudeKey)
	}

	lat, latOK := toNumber(rawLat, true)
	lon, lonOK := toNumber(rawLon, true)

	if !latOK || !lonOK || !isFinite(lat) || !isFinite(lon) {
		return Coordinate{}, fmt.Errorf("%w: object with latitude %v and longitude %v", ErrInvalidInput, rawLat, rawLon)
	}

	c := Coordinate{lat: lat, lon: lon}
	if alt, ok := toNumber(obj[altitudeKey], true); ok && isFinite(alt) {
		c.alt = alt
		c.hasAlt = true
	}

	return c, nil
}

func parseLocated(l Located) (Coordinate, error) {
	lat, lon := l.Latitude(), l.Longitude()
	if !isFinite(lat) || !isFinite(lon) {
		return Coordinate{}, fmt.Errorf("%w: %T with latitude %v and longitude %v", ErrInvalidInput, l, lat, lon)
	}

	c := Coordinate{lat: lat, lon: lon}
	if a, ok := l.(altituder); ok {
		if alt := a.Altitude(); isFinite(alt) {
			c.alt = alt
			c.hasAlt = true
		}
	}

	return c, nil
}

// toNumber converts the numeric kinds produced by Go code and by
// encoding/json into a float64. Numeric strings are accepted only when
// allowStrings is set.
func toNumber(v any, allowStrings bool) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case model.Degrees:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()

		return f, err == nil
	case string:
		if !allowStrings {
			return 0, false
		}

		return parseNumeric(n)
	default:
		return 0, false
	}
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)

	return f, err == nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
