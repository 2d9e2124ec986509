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

package dataset

import (
	"hash/fnv"
	"math/rand/v2"
)

const (
	maxAltitude = 500

	// share of records of either shape that carry an altitude
	altitudeShare = 0.1
)

// Generate returns random records, half of them arrays and half of them
// objects, with positions uniform in [-180, 180) on both axes. The same seed
// always produces the same records.
func Generate(opts ...Option) []any {
	cfg := configure(opts)
	g := newGenerator(cfg.seed)

	records := make([]any, cfg.count)
	for i := range records {
		records[i] = g.record()
	}

	return records
}

type generator struct {
	rnd *rand.Rand
}

func newGenerator(seed string) *generator {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	s := h.Sum64()

	return &generator{rnd: rand.New(rand.NewPCG(s, s>>1|1))}
}

func (g *generator) record() any {
	if g.rnd.Float64() > 0.5 {
		return g.array()
	}

	return g.object()
}

func (g *generator) array() []float64 {
	if g.rnd.Float64() > 1-altitudeShare {
		return []float64{g.position(), g.position(), g.altitude()}
	}

	return []float64{g.position(), g.position()}
}

func (g *generator) object() map[string]any {
	if g.rnd.Float64() > 1-altitudeShare {
		return map[string]any{
			"longitude": g.position(),
			"latitude":  g.position(),
			"altitude":  g.altitude(),
		}
	}

	return map[string]any{
		"longitude": g.position(),
		"latitude":  g.position(),
	}
}

func (g *generator) position() float64 {
	return g.rnd.Float64()*360 - 180
}

func (g *generator) altitude() float64 {
	return float64(int(g.rnd.Float64() * maxAltitude))
}
