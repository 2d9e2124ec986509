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

package harness

import (
	"runtime"

	"m4o.io/geo"
)

// DefaultChunkSize is the number of records folded per chunk.
const DefaultChunkSize = 10000

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	return uint16(max(runtime.GOMAXPROCS(-1), 1))
}

type options struct {
	chunkSize       int
	nCPU            uint16
	distanceOptions []geo.DistanceOption
}

// Option configures a run.
type Option func(*options)

// WithChunkSize sets the number of records per chunk.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithNCpus sets the number of chunks folded concurrently.
func WithNCpus(n uint16) Option {
	return func(o *options) {
		if n > 0 {
			o.nCPU = n
		}
	}
}

// WithDistanceOptions passes opts to every distance computation.
func WithDistanceOptions(opts ...geo.DistanceOption) Option {
	return func(o *options) {
		o.distanceOptions = opts
	}
}

var defaultConfig = options{
	chunkSize: DefaultChunkSize,
	nCPU:      DefaultNCpu(),
}
