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

package harness_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/geo"
	"m4o.io/geo/internal/dataset"
	"m4o.io/geo/internal/harness"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		chunkSize int
		chunks    int
	}{
		{"empty", 0, 10, 0},
		{"single partial chunk", 7, 10, 1},
		{"exact chunks", 30, 10, 3},
		{"trailing partial chunk", 25000, harness.DefaultChunkSize, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := dataset.Generate(dataset.WithCount(tt.count))

			res, err := harness.Run(context.Background(), records,
				harness.WithChunkSize(tt.chunkSize), harness.WithNCpus(2))
			assert.NoError(t, err)
			assert.Equal(t, tt.count, res.Items)
			assert.Equal(t, tt.chunks, res.Chunks)
			assert.Equal(t, 5*tt.count, res.Operations)
		})
	}
}

func TestRunChecksum(t *testing.T) {
	records := []any{
		[]any{0.0, 1.0},
		map[string]any{"latitude": 0.0, "longitude": 2.0},
		[]any{0.0, 3.0},
	}

	res, err := harness.Run(context.Background(), records, harness.WithChunkSize(2))
	assert.NoError(t, err)

	// chunk one: origin -> (0,1) -> (0,2); chunk two: origin -> (0,3)
	want := 2 * (geo.MetersPerDegree*1 + geo.MetersPerDegree*1 + geo.MetersPerDegree*3)
	assert.InEpsilon(t, want, res.Checksum, 1e-9)
	assert.Equal(t, 2, res.Chunks)
}

func TestRunConcurrencyIndependent(t *testing.T) {
	records := dataset.Generate(dataset.WithCount(5000))

	one, err := harness.Run(context.Background(), records, harness.WithChunkSize(100), harness.WithNCpus(1))
	assert.NoError(t, err)

	many, err := harness.Run(context.Background(), records, harness.WithChunkSize(100), harness.WithNCpus(8))
	assert.NoError(t, err)

	assert.Equal(t, one.Checksum, many.Checksum)
}

func TestRunInvalidRecord(t *testing.T) {
	records := []any{[]any{1.0, 2.0}, "nope"}

	var logs bytes.Buffer

	saved := slog.Default()

	defer slog.SetDefault(saved)

	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelError})))

	_, err := harness.Run(context.Background(), records)
	assert.ErrorIs(t, err, geo.ErrInvalidInput)

	// the caller reports the failure
	assert.Empty(t, logs.String())
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := harness.Run(ctx, dataset.Generate(dataset.WithCount(10)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult(t *testing.T) {
	r := harness.Result{Items: 1000, Elapsed: 2000000}
	assert.EqualValues(t, 2000, r.PerItem())
	assert.InDelta(t, 500000.0, r.ItemsPerSecond(), 1e-6)

	assert.Zero(t, harness.Result{}.PerItem())
	assert.Zero(t, harness.Result{}.ItemsPerSecond())
}
