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

// distanceOptions provides optional configuration parameters for DistanceTo.
type distanceOptions struct {
	precise   bool    // always use the haversine formula
	threshold float64 // degrees above which haversine is used
}

// DistanceOption configures how DistanceTo picks its formula.
type DistanceOption func(*distanceOptions)

// Precise forces DistanceTo to use the haversine formula.
func Precise() DistanceOption {
	return func(o *distanceOptions) {
		o.precise = true
	}
}

// WithPrecise forces the haversine formula when precise is true. It is a
// convenience for callers holding a flag.
func WithPrecise(precise bool) DistanceOption {
	return func(o *distanceOptions) {
		o.precise = o.precise || precise
	}
}

// defaultDistanceConfig provides the default configuration for DistanceTo.
var defaultDistanceConfig = distanceOptions{
	threshold: PreciseThreshold,
}
