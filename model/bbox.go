// Copyright 2017-25 the original author or authors.
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

package model

import (
	"fmt"
	"math"
)

// Box holds the corners of a bounding region in map orientation: the top
// left corner is the north-west one (maximum latitude, minimum longitude)
// and the bottom right corner the south-east one.
//
// On a longitude axis that wraps at the antimeridian TopLeftLongitude may be
// greater than BottomRightLongitude.
type Box struct {
	TopLeftLatitude      Degrees `json:"topLeftLatitude"`
	TopLeftLongitude     Degrees `json:"topLeftLongitude"`
	BottomRightLatitude  Degrees `json:"bottomRightLatitude"`
	BottomRightLongitude Degrees `json:"bottomRightLongitude"`
}

// EmptyBox returns a Box with every corner unset.
func EmptyBox() Box {
	nan := Degrees(math.NaN())

	return Box{
		TopLeftLatitude:      nan,
		TopLeftLongitude:     nan,
		BottomRightLatitude:  nan,
		BottomRightLongitude: nan,
	}
}

// Values returns the corners as max latitude, min longitude, min latitude,
// max longitude.
func (b Box) Values() [4]float64 {
	return [4]float64{
		float64(b.TopLeftLatitude),
		float64(b.TopLeftLongitude),
		float64(b.BottomRightLatitude),
		float64(b.BottomRightLongitude),
	}
}

// CrossesAntimeridian reports whether the box spans the ±180° meridian.
func (b Box) CrossesAntimeridian() bool {
	return b.TopLeftLongitude > b.BottomRightLongitude
}

func (b Box) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		ftoa(b.TopLeftLatitude), ftoa(b.TopLeftLongitude),
		ftoa(b.BottomRightLatitude), ftoa(b.BottomRightLongitude))
}

// Point is a bare latitude/longitude pair. Unlike a coordinate it may hold
// NaN, which is how an empty region reports its center.
type Point struct {
	Latitude  Degrees `json:"latitude"`
	Longitude Degrees `json:"longitude"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", ftoa(p.Latitude), ftoa(p.Longitude))
}
