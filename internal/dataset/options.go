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
	"runtime"
)

const (
	// DefaultCount is the number of records Generate produces by default.
	DefaultCount = 200 * 1000

	// DefaultSeed seeds the generator by default.
	DefaultSeed = "m4o.io/geo"
)

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// options provides optional configuration parameters for the dataset
// functions.
type options struct {
	nCPU        uint16 // the number of CPUs to use for coercion
	compression Compression
	count       int
	seed        string
}

// Option configures reading, writing and generating data files.
type Option func(*options)

// WithNCpus lets you set the number of CPUs to use for background processing.
func WithNCpus(n uint16) Option {
	return func(o *options) {
		o.nCPU = n
	}
}

// WithCompression sets the codec of the data file.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCount sets the number of records to generate.
func WithCount(n int) Option {
	return func(o *options) {
		o.count = n
	}
}

// WithSeed sets the seed of the generator.
func WithSeed(seed string) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// defaultConfig provides a default configuration.
var defaultConfig = options{
	nCPU:        DefaultNCpu(),
	compression: RAW,
	count:       DefaultCount,
	seed:        DefaultSeed,
}

func configure(opts []Option) options {
	cfg := defaultConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.nCPU < 1 {
		cfg.nCPU = 1
	}

	return cfg
}
