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

// Package model contains the value types shared by coordinates, bounding
// regions and the command line tooling.
package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/s1"
	"golang.org/x/exp/constraints"
)

// Degrees is the decimal degree representation of a longitude or latitude.
type Degrees float64

// Angle represents a 1D angle in radians.
type Angle s1.Angle

const (
	MinutesPerDegree = 60
	SecondsPerDegree = 3600

	// nanoDegrees is the finest resolution rendered by String and MarshalJSON.
	nanoDegrees = 1e9
)

// Angle returns the equivalent s1.Angle.
func (d Degrees) Angle() Angle { return Angle(float64(d) * float64(s1.Degree)) }

// Radians returns the angle in radians.
func (d Degrees) Radians() float64 { return s1.Angle(d.Angle()).Radians() }

// Degrees returns the angle in decimal degrees.
func (a Angle) Degrees() Degrees { return Degrees(s1.Angle(a).Degrees()) }

func (d Degrees) String() string {
	var sign string
	if d < 0 {
		sign = "-"
	} else {
		sign = ""
	}

	val := math.Abs(float64(d))
	degrees := int(math.Floor(val))
	minutes := int(math.Floor(MinutesPerDegree * (val - float64(degrees))))
	seconds := SecondsPerDegree * (val - float64(degrees) - (float64(minutes) / MinutesPerDegree))

	return fmt.Sprintf("%s%d° %d' %s\"", sign, degrees, minutes, ftoa(seconds))
}

func (d Degrees) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
		return []byte("null"), nil
	}

	return []byte(ftoa(d)), nil
}

// ParseDegrees converts a string to a Degrees instance.
func ParseDegrees(s string) (Degrees, error) {
	u, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return Degrees(u), nil
}

// ftoa renders f with at most nano degree resolution and no trailing zeros.
func ftoa[T constraints.Float](f T) string {
	v := float64(f)

	return strconv.FormatFloat(math.Round(v*nanoDegrees)/nanoDegrees, 'f', -1, 64)
}
