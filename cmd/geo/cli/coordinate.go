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

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"m4o.io/geo"
	"m4o.io/geo/model"
)

// -- geo.Coordinate Value
type coordinateValue struct {
	value *geo.Coordinate
	raw   string
}

// NewCoordinateValue creates a cobra Value object for a geo.Coordinate given
// as "lat,lon" or "lat,lon,alt".
func NewCoordinateValue(p *geo.Coordinate) pflag.Value {
	return &coordinateValue{value: p}
}

func (c *coordinateValue) Set(val string) error {
	coord, err := ParseCoordinate(val)
	if err != nil {
		return err
	}

	*c.value = coord
	c.raw = val

	return nil
}

func (c *coordinateValue) Type() string {
	return "coordinate"
}

func (c *coordinateValue) String() string {
	return c.raw
}

// ParseCoordinate parses "lat,lon" or "lat,lon,alt".
func ParseCoordinate(s string) (geo.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return geo.Coordinate{}, fmt.Errorf("%w: %q is not lat,lon[,alt]", geo.ErrInvalidInput, s)
	}

	values := make([]float64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)

		var err error
		if i < 2 {
			var d model.Degrees
			d, err = model.ParseDegrees(p)
			values[i] = float64(d)
		} else {
			values[i], err = strconv.ParseFloat(p, 64)
		}

		if err != nil {
			return geo.Coordinate{}, fmt.Errorf("%w: %q is not lat,lon[,alt]", geo.ErrInvalidInput, s)
		}
	}

	return geo.From(values)
}
