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

	"m4o.io/geo/model"
)

// Region is the smallest latitude/longitude box around the coordinates
// pushed into it. Longitude wraps at the antimeridian, so a region holding
// 179° and -179° is 2° wide.
//
// A Region is not safe for concurrent mutation.
type Region struct {
	latitude  axis
	longitude axis
	data      map[string]any
	locked    bool
}

// NewRegion returns an empty, mutable region.
func NewRegion() *Region {
	return &Region{
		latitude:  newAxis(latitudeRange),
		longitude: newAxis(longitudeRange),
		data:      make(map[string]any),
	}
}

// FromCoordinates returns a region around at least two coordinate-like
// values. The region is locked: any further mutation fails with
// ErrImmutableRegion.
func FromCoordinates(coords ...any) (*Region, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("%w: at least 2 coordinates needed, got %d", ErrInvalidInput, len(coords))
	}

	r := NewRegion()

	for i, v := range coords {
		c, err := From(v)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}

		r.push(c)
	}

	r.locked = true

	return r, nil
}

// Locked reports whether the region was created by FromCoordinates.
func (r *Region) Locked() bool { return r.locked }

// PushCoordinate widens the region to include a coordinate-like value,
// given either as a single argument or as loose latitude, longitude and
// altitude arguments.
func (r *Region) PushCoordinate(args ...any) error {
	if r.locked {
		return ErrImmutableRegion
	}

	c, err := FromArgs(args...)
	if err != nil {
		return err
	}

	r.push(c)

	return nil
}

// Push widens the region to include c.
func (r *Region) Push(c Coordinate) error {
	if r.locked {
		return ErrImmutableRegion
	}

	r.push(c)

	return nil
}

func (r *Region) push(c Coordinate) {
	r.latitude.push(c.lat)
	r.longitude.push(c.lon)
}

// MergeBox widens the region to include both corners of box.
func (r *Region) MergeBox(box model.Box) error {
	if r.locked {
		return ErrImmutableRegion
	}

	tl, err := New(float64(box.TopLeftLatitude), float64(box.TopLeftLongitude))
	if err != nil {
		return fmt.Errorf("top left corner: %w", err)
	}

	br, err := New(float64(box.BottomRightLatitude), float64(box.BottomRightLongitude))
	if err != nil {
		return fmt.Errorf("bottom right corner: %w", err)
	}

	r.push(tl)
	r.push(br)

	return nil
}

// MergeRegion widens the region to include the box of o.
func (r *Region) MergeRegion(o *Region) error {
	return r.MergeBox(o.Box())
}

// ContainCircle widens the region to include the points radius meters north,
// east, south and west of a coordinate-like center. This covers the four
// cardinal points only, not the whole circle.
func (r *Region) ContainCircle(center any, radius float64) error {
	if r.locked {
		return ErrImmutableRegion
	}

	c, err := From(center)
	if err != nil {
		return err
	}

	for _, bearing := range [...]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		r.push(c.PointAtDistance(radius, bearing))
	}

	return nil
}

// Contains reports whether a coordinate-like value, given either as a single
// argument or as loose arguments, lies within the region. Points on the
// boundary are contained; an empty region contains nothing.
func (r *Region) Contains(args ...any) (bool, error) {
	c, err := FromArgs(args...)
	if err != nil {
		return false, err
	}

	return r.ContainsCoordinate(c), nil
}

// ContainsCoordinate reports whether c lies within the region.
func (r *Region) ContainsCoordinate(c Coordinate) bool {
	return r.latitude.contains(c.lat) && r.longitude.contains(c.lon)
}

// Box returns the corners of the region. Every corner is NaN for an empty
// region.
func (r *Region) Box() model.Box {
	if !r.HasCoordinates() {
		return model.EmptyBox()
	}

	return model.Box{
		TopLeftLatitude:      model.Degrees(r.latitude.max),
		TopLeftLongitude:     model.Degrees(r.longitude.min),
		BottomRightLatitude:  model.Degrees(r.latitude.min),
		BottomRightLongitude: model.Degrees(r.longitude.max),
	}
}

// Values returns the corners as max latitude, min longitude, min latitude,
// max longitude.
func (r *Region) Values() [4]float64 {
	return r.Box().Values()
}

// CenterLatitude returns the mean of the latitude extremes.
func (r *Region) CenterLatitude() float64 { return r.latitude.center() }

// CenterLongitude returns the mean of the longitude extremes. It does not
// account for wraparound: a region from 166.8° to -170.8° reports -2°.
func (r *Region) CenterLongitude() float64 { return r.longitude.center() }

// Center returns the arithmetic center of the region.
func (r *Region) Center() model.Point {
	return model.Point{
		Latitude:  model.Degrees(r.CenterLatitude()),
		Longitude: model.Degrees(r.CenterLongitude()),
	}
}

// HasCoordinates reports whether at least one coordinate was pushed.
func (r *Region) HasCoordinates() bool {
	return r.latitude.set() && r.longitude.set()
}

// SetData attaches an arbitrary value to the region under key.
func (r *Region) SetData(key string, value any) {
	r.data[key] = value
}

// RemoveData detaches the value stored under key.
func (r *Region) RemoveData(key string) {
	delete(r.data, key)
}

// Data returns the value stored under key.
func (r *Region) Data(key string) (any, bool) {
	v, ok := r.data[key]

	return v, ok
}

func (r *Region) String() string {
	return r.Box().String()
}

func (r *Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Box    model.Box      `json:"box"`
		Center model.Point    `json:"center"`
		Data   map[string]any `json:"data,omitempty"`
	}{
		Box:    r.Box(),
		Center: r.Center(),
		Data:   r.data,
	})
}
