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

package distance

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/geo"
)

func TestRunDistance(t *testing.T) {
	london := geo.MustNew(51.5074, -0.1278, 35)
	paris := geo.MustNew(48.8566, 2.3522, 35)
	nearby := geo.MustNew(51.5074, -0.1268, 135)

	tests := []struct {
		name string
		from geo.Coordinate
		to   geo.Coordinate
		mode string
		want float64
	}{
		{"auto", london, paris, "auto", london.DistanceTo(paris)},
		{"quick", london, paris, "quick", london.QuickDistanceTo(paris)},
		{"precise", london, paris, "PRECISE", london.PreciseDistanceTo(paris)},
		{"3d", london, nearby, "3d", london.Distance3DTo(nearby)},
		{"same point", london, london, "auto", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runDistance(tt.from, tt.to, tt.mode)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, res.Meters)
		})
	}

	_, err := runDistance(london, paris, "manhattan")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	res, err := runDistance(geo.MustNew(0, 0), geo.MustNew(0, 1), "quick")
	assert.NoError(t, err)

	buf := bytes.NewBuffer(make([]byte, 1024))
	buf.Reset()

	saved := out

	defer func() { out = saved }()

	out = buf

	renderTxt(res)
	assert.Equal(t, "Mode: quick\nDistance: 111,290.919 m\n", buf.String())

	buf.Reset()
	renderJSON(res)

	var got result
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []float64{0, 1}, got.To)
	assert.InDelta(t, geo.MetersPerDegree, got.Meters, 1e-9)
}
