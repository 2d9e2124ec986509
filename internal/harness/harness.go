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

// Package harness measures the throughput of the coordinate primitives over
// a set of records. Records are split into fixed size chunks and every chunk
// is folded from the origin: each step coerces a record, measures the
// distance both ways and reads every accessor.
package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/destel/rill"

	"m4o.io/geo"
)

// Result summarizes a run.
type Result struct {
	Items      int           // number of records folded
	Chunks     int           // number of chunks
	Operations int           // number of primitive operations
	Checksum   float64       // sum of all distances, to keep the work observable
	Elapsed    time.Duration // wall time of the run
}

// PerItem returns the average time spent per record.
func (r Result) PerItem() time.Duration {
	if r.Items == 0 {
		return 0
	}

	return r.Elapsed / time.Duration(r.Items)
}

// ItemsPerSecond returns the number of records folded per second.
func (r Result) ItemsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Items) / r.Elapsed.Seconds()
}

type chunkResult struct {
	items      int
	operations int
	checksum   float64
}

// Run folds records chunk by chunk. Chunks are processed concurrently, but
// each chunk is folded sequentially.
func Run(ctx context.Context, records []any, opts ...Option) (Result, error) {
	cfg := defaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()

	chunks := rill.Batch(rill.FromSlice(records, nil), cfg.chunkSize, -1)

	results := rill.OrderedMap(chunks, int(cfg.nCPU), func(chunk []any) (chunkResult, error) {
		if err := ctx.Err(); err != nil {
			return chunkResult{}, err
		}

		return fold(chunk, cfg.distanceOptions)
	})

	res := Result{}

	err := rill.ForEach(results, 1, func(cr chunkResult) error {
		res.Chunks++
		res.Items += cr.items
		res.Operations += cr.operations
		res.Checksum += cr.checksum

		slog.Debug("chunk folded", "chunk", res.Chunks, "items", cr.items)

		return nil
	})
	if err != nil {
		return res, err
	}

	res.Elapsed = time.Since(start)

	return res, nil
}

func fold(chunk []any, opts []geo.DistanceOption) (chunkResult, error) {
	var cr chunkResult

	a := geo.MustNew(0, 0)

	for _, rec := range chunk {
		b, err := geo.From(rec)
		if err != nil {
			return cr, fmt.Errorf("could not fold record: %w", err)
		}

		cr.checksum += a.DistanceTo(b, opts...)
		cr.checksum += b.DistanceTo(a, opts...)

		_ = b.Latitude()
		_ = b.Longitude()
		_ = b.Altitude()

		cr.items++
		cr.operations += 5

		a = b
	}

	return cr, nil
}
