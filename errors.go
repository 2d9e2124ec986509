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

import "errors"

var (
	// ErrInvalidInput is returned when a value cannot be coerced into a
	// Coordinate, or when a region is built from too few coordinates.
	ErrInvalidInput = errors.New("invalid input")

	// ErrImmutableRegion is returned when a region created by
	// FromCoordinates is mutated.
	ErrImmutableRegion = errors.New("region created by FromCoordinates is locked")
)
