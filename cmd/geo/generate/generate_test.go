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

package generate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/geo/internal/dataset"
)

func TestRunGenerate(t *testing.T) {
	for _, c := range []dataset.Compression{dataset.RAW, dataset.LZ4, dataset.XZ} {
		t.Run(c.String(), func(t *testing.T) {
			var a, b bytes.Buffer

			assert.NoError(t, runGenerate(&a, 250, "seed", c))
			assert.NoError(t, runGenerate(&b, 250, "seed", c))
			assert.Equal(t, a.Bytes(), b.Bytes())

			records, err := dataset.Read(&a, dataset.WithCompression(c))
			assert.NoError(t, err)
			assert.Len(t, records, 250)

			_, err = dataset.Coerce(records)
			assert.NoError(t, err)
		})
	}
}

func TestRunGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer

	assert.NoError(t, runGenerate(&buf, 0, "seed", dataset.RAW))
	assert.JSONEq(t, "[]", buf.String())
}
