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
	"io"
	"log"
	"log/slog"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/geo/cmd/geo/cli"
	"m4o.io/geo/internal/dataset"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.IntP("count", "n", dataset.DefaultCount, "number of records to generate")
	flags.StringP("seed", "s", dataset.DefaultSeed, "seed of the generator")
	flags.String("compression", "", "compression of the data file (default from the file extension)")
}

var generateCmd = &cobra.Command{
	Use:   "generate [<data file>]",
	Short: "Generate a data file of random coordinates",
	Long: `Generate a data file of random coordinates, half as [lat, lon] arrays
and half as objects, a tenth of them with an altitude. The same seed always
generates the same file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cli.Config()

		w := out
		c := dataset.RAW

		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()

			w = f
			c = dataset.CompressionFromPath(args[0])
		}

		if name := cfg.GetString("compression"); name != "" {
			var err error
			if c, err = dataset.ParseCompression(name); err != nil {
				log.Fatal(err)
			}
		}

		count := cfg.GetInt("count")
		if err := runGenerate(w, count, cfg.GetString("seed"), c); err != nil {
			log.Fatal(err)
		}

		slog.Info("generated data file", "records", humanize.Comma(int64(count)), "compression", c)
	},
}

func runGenerate(w io.Writer, count int, seed string, c dataset.Compression) error {
	records := dataset.Generate(dataset.WithCount(count), dataset.WithSeed(seed))

	return dataset.Write(w, records, dataset.WithCompression(c))
}
