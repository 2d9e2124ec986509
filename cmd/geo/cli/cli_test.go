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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/geo"
	"m4o.io/geo/internal/dataset"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in    string
		want  geo.Coordinate
		error bool
	}{
		{"51.5,-0.12", geo.MustNew(51.5, -0.12), false},
		{" 51.5 , -0.12 , 35 ", geo.MustNew(51.5, -0.12, 35), false},
		{"51.5", geo.Coordinate{}, true},
		{"1,2,3,4", geo.Coordinate{}, true},
		{"north,west", geo.Coordinate{}, true},
		{"NaN,1", geo.Coordinate{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoordinate(tt.in)
			if tt.error {
				assert.ErrorIs(t, err, geo.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoordinateValue(t *testing.T) {
	var c geo.Coordinate

	v := NewCoordinateValue(&c)
	assert.Equal(t, "coordinate", v.Type())
	assert.NoError(t, v.Set("10,20"))
	assert.Equal(t, "10,20", v.String())
	assert.Equal(t, geo.MustNew(10, 20), c)
	assert.Error(t, v.Set("10"))
}

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		level  string
		format string
		error  bool
	}{
		{"debug", "text", false},
		{"INFO", "json", false},
		{"warn", "JSON", false},
		{"loud", "text", true},
		{"info", "xml", true},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			err := setupLogging(tt.level, tt.format, &bytes.Buffer{})
			if tt.error {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadDataset(t *testing.T) {
	records := dataset.Generate(dataset.WithCount(100))
	path := filepath.Join(t.TempDir(), "data.json.zst")

	f, err := os.Create(path)
	assert.NoError(t, err)
	assert.NoError(t, dataset.Write(f, records, dataset.WithCompression(dataset.ZSTD)))
	assert.NoError(t, f.Close())

	read, err := ReadDataset(path, "", true)
	assert.NoError(t, err)
	assert.Len(t, read, 100)

	_, err = ReadDataset(path, "raw", false)
	assert.Error(t, err)

	_, err = ReadDataset(path, "brotli", false)
	assert.ErrorIs(t, err, dataset.ErrUnknownCompression)

	_, err = ReadDataset(filepath.Join(t.TempDir(), "missing.json"), "", false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenInputProgress(t *testing.T) {
	payload := bytes.Repeat([]byte("[51.5, -0.12],"), 100)
	path := filepath.Join(t.TempDir(), "data.json")
	assert.NoError(t, os.WriteFile(path, payload, 0o600))

	in, err := OpenInput(path, true)
	assert.NoError(t, err)

	bar, ok := in.(progressBar)
	assert.True(t, ok)

	got, err := io.ReadAll(in)
	assert.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, int64(len(payload)), bar.bar.Get())
	assert.NoError(t, in.Close())

	in, err = OpenInput(path, false)
	assert.NoError(t, err)
	_, ok = in.(progressBar)
	assert.False(t, ok)
	assert.NoError(t, in.Close())
}
