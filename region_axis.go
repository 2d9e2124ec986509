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

import "math"

const (
	latitudeRange  = 180
	longitudeRange = 360
)

// axis tracks the extremes of one circular dimension. Latitude is not
// really circular but shares the arithmetic; real inputs never come near
// the ±90° wrap.
type axis struct {
	rng float64
	min float64
	max float64
}

func newAxis(rng float64) axis {
	return axis{rng: rng, min: math.NaN(), max: math.NaN()}
}

func (a *axis) set() bool {
	return !math.IsNaN(a.min) && !math.IsNaN(a.max)
}

// push widens the axis so that it spans v.
func (a *axis) push(v float64) {
	if !a.set() {
		a.min = v
		a.max = v

		return
	}

	fromMin := smallestCircularDistance(a.rng, a.min, v)
	fromMax := smallestCircularDistance(a.rng, a.max, v)

	// on a boundary
	if fromMin == 0 || fromMax == 0 {
		return
	}

	// between min and max
	if (fromMin < 0) != (fromMax < 0) {
		return
	}

	if fromMin < 0 {
		a.min = v
	}

	if fromMax > 0 {
		a.max = v
	}
}

// contains reports whether v lies within [min, max], boundaries included.
func (a *axis) contains(v float64) bool {
	if !a.set() {
		return false
	}

	fromMin := smallestCircularDistance(a.rng, a.min, v)
	fromMax := smallestCircularDistance(a.rng, a.max, v)

	if fromMin == 0 || fromMax == 0 {
		return true
	}

	return (fromMin < 0) != (fromMax < 0)
}

func (a *axis) center() float64 {
	return (a.min + a.max) / 2
}

// smallestCircularDistance returns the signed offset from a to the
// representative of b closest to a, on a circle of circumference rng. An
// offset of exactly half the circumference is reported as positive.
func smallestCircularDistance(rng, a, b float64) float64 {
	d := b - a

	return d - rng*math.Ceil(d/rng-0.5)
}
