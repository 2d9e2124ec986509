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

// Package dataset reads, writes and generates data files: JSON arrays of
// coordinate-like records, each either [lat, lon(, alt)] or
// {"latitude": .., "longitude": .., "altitude": ..}.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/destel/rill"

	"m4o.io/geo"
)

// Read decodes the records of a data file.
func Read(r io.Reader, opts ...Option) ([]any, error) {
	cfg := configure(opts)

	rdr, err := NewReader(r, cfg.compression)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()

	var records []any
	if err := json.NewDecoder(rdr).Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode %v data file: %w", cfg.compression, err)
	}

	return records, nil
}

// Write encodes records as a data file.
func Write(w io.Writer, records []any, opts ...Option) error {
	cfg := configure(opts)

	wrtr, err := NewWriter(w, cfg.compression)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(wrtr)
	enc.SetIndent("", " ")

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("could not encode data file: %w", err)
	}

	if err := wrtr.Close(); err != nil {
		return fmt.Errorf("could not close %v writer: %w", cfg.compression, err)
	}

	return nil
}

// Coerce turns records into coordinates using several goroutines. The
// order of the records is kept. The first record that cannot be coerced
// fails the whole batch.
func Coerce(records []any, opts ...Option) ([]geo.Coordinate, error) {
	cfg := configure(opts)

	type indexed struct {
		i int
		v any
	}

	in := make([]indexed, len(records))
	for i, v := range records {
		in[i] = indexed{i, v}
	}

	coords := rill.OrderedMap(rill.FromSlice(in, nil), int(cfg.nCPU), func(rec indexed) (geo.Coordinate, error) {
		c, err := geo.From(rec.v)
		if err != nil {
			return c, fmt.Errorf("record %d: %w", rec.i, err)
		}

		return c, nil
	})

	out, err := rill.ToSlice(coords)
	if err != nil {
		return nil, err
	}

	return out, nil
}
