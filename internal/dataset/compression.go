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
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

var ErrUnknownCompression = errors.New("unknown compression type")

// Compression is an enumeration of the codecs a data file may be stored with.
type Compression int

const (
	// RAW denotes plain JSON.
	RAW Compression = iota

	// ZLIB denotes zlib compressed JSON.
	ZLIB

	// LZ4 denotes LZ4 compressed JSON.
	LZ4

	// XZ denotes xz compressed JSON.
	XZ

	// LZMA denotes raw LZMA compressed JSON, without the xz container.
	LZMA

	// ZSTD denotes Zstandard compressed JSON.
	ZSTD
)

var compressionNames = map[Compression]string{
	RAW:  "raw",
	ZLIB: "zlib",
	LZ4:  "lz4",
	XZ:   "xz",
	LZMA: "lzma",
	ZSTD: "zstd",
}

var extensions = map[string]Compression{
	".zz":   ZLIB,
	".zlib": ZLIB,
	".lz4":  LZ4,
	".xz":   XZ,
	".lzma": LZMA,
	".zst":  ZSTD,
	".zstd": ZSTD,
}

func (c Compression) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Compression(%d)", int(c))
}

// ParseCompression returns the Compression with the given name.
func ParseCompression(name string) (Compression, error) {
	for c, n := range compressionNames {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}

	return RAW, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

// CompressionFromPath guesses the Compression from the file extension,
// falling back to RAW.
func CompressionFromPath(path string) Compression {
	if c, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}

	return RAW
}

// NewReader wraps r so that reads return uncompressed data.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case RAW:
		return io.NopCloser(r), nil
	case ZLIB:
		return zlib.NewReader(r)
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case XZ:
		rdr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}

		return io.NopCloser(rdr), nil
	case LZMA:
		rdr, err := lzma.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("lzma reader: %w", err)
		}

		return io.NopCloser(rdr), nil
	case ZSTD:
		rdr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}

		return rdr.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}

type nopCloserWriter struct {
	io.Writer
}

func (w nopCloserWriter) Close() error {
	return nil
}

// NewWriter wraps w so that writes are compressed. The returned writer must
// be closed to flush the compressed stream; closing it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case RAW:
		return nopCloserWriter{w}, nil
	case ZLIB:
		return zlib.NewWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	case XZ:
		wrtr, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("xz writer: %w", err)
		}

		return wrtr, nil
	case LZMA:
		wrtr, err := lzma.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("lzma writer: %w", err)
		}

		return wrtr, nil
	case ZSTD:
		wrtr, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}

		return wrtr, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}
