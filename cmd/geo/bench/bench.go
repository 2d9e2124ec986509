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

package bench

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/geo"
	"m4o.io/geo/cmd/geo/cli"
	"m4o.io/geo/internal/dataset"
	"m4o.io/geo/internal/harness"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(benchCmd)

	flags := benchCmd.Flags()
	flags.Uint16P("cpu", "c", harness.DefaultNCpu(), "number of chunks to fold concurrently")
	flags.Int("chunk-size", harness.DefaultChunkSize, "number of records per chunk")
	flags.Bool("precise", false, "always use haversine distances")
	flags.IntP("count", "n", dataset.DefaultCount, "number of records to generate when no data file is given")
	flags.StringP("seed", "s", dataset.DefaultSeed, "seed of the generator when no data file is given")
	flags.String("compression", "", "compression of the data file (default from the file extension)")
	flags.BoolP("progress", "p", false, "show a progress bar while reading")
}

var benchCmd = &cobra.Command{
	Use:   "bench [<data file>]",
	Short: "Measure coordinate throughput over a data file",
	Long: `Measure coordinate throughput over a data file, or over generated
records when no file is given. Each record is coerced, measured against its
predecessor both ways and read back.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cli.Config()

		var records []any
		if len(args) == 1 {
			var err error
			records, err = cli.ReadDataset(args[0], cfg.GetString("compression"), cfg.GetBool("progress"))
			if err != nil {
				log.Fatal(err)
			}
		} else {
			records = dataset.Generate(
				dataset.WithCount(cfg.GetInt("count")),
				dataset.WithSeed(cfg.GetString("seed")))
		}

		res, err := runBench(cmd.Context(), records,
			cfg.GetInt("chunk-size"), cfg.GetUint16("cpu"), cfg.GetBool("precise"))
		if err != nil {
			log.Fatal(err)
		}

		renderTxt(res)
	},
}

func runBench(ctx context.Context, records []any, chunkSize int, ncpu uint16, precise bool) (harness.Result, error) {
	return harness.Run(ctx, records,
		harness.WithChunkSize(chunkSize),
		harness.WithNCpus(ncpu),
		harness.WithDistanceOptions(geo.WithPrecise(precise)))
}

func renderTxt(res harness.Result) {
	fmt.Fprintf(out, "Items: %s\n", humanize.Comma(int64(res.Items)))
	fmt.Fprintf(out, "Chunks: %s\n", humanize.Comma(int64(res.Chunks)))
	fmt.Fprintf(out, "Time per item: %s\n", res.PerItem())
	fmt.Fprintf(out, "Operations per second: %s operations/second\n", humanize.SIWithDigits(res.ItemsPerSecond(), 1, ""))
}
