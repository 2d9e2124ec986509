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

package bbox

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/geo"
	"m4o.io/geo/cmd/geo/cli"
	"m4o.io/geo/internal/dataset"
)

var out io.Writer = os.Stdout

const pointsKey = "points"

type report struct {
	Region *geo.Region   `json:"region"`
	Cells  []*geo.Region `json:"cells,omitempty"`
}

func init() {
	cli.RootCmd.AddCommand(bboxCmd)

	flags := bboxCmd.Flags()
	flags.BoolP("json", "j", false, "format the region in JSON")
	flags.Uint16P("cpu", "c", dataset.DefaultNCpu(), "number of CPUs to use for reading records")
	flags.Float64P("radius", "r", 0, "grow the region to hold a circle of this many meters around every point")
	flags.IntP("matrix", "m", 0, "split the region into a quad matrix of this depth")
	flags.String("compression", "", "compression of the data file (default from the file extension)")
	flags.BoolP("progress", "p", false, "show a progress bar while reading")
}

var bboxCmd = &cobra.Command{
	Use:   "bbox [<data file>]",
	Short: "Print the bounding region of a data file",
	Long:  "Print the bounding region, its center and optionally its quad matrix, of a data file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cli.Config()

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		records, err := cli.ReadDataset(path, cfg.GetString("compression"), cfg.GetBool("progress"))
		if err != nil {
			log.Fatal(err)
		}

		region, err := runBBox(records, cfg.GetFloat64("radius"), cfg.GetUint16("cpu"))
		if err != nil {
			log.Fatal(err)
		}

		rep := report{Region: region, Cells: region.Matrix(cfg.GetInt("matrix")).Leaves()}

		if cfg.GetBool("json") {
			renderJSON(rep)
		} else {
			renderTxt(rep)
		}
	},
}

func runBBox(records []any, radius float64, ncpu uint16) (*geo.Region, error) {
	coords, err := dataset.Coerce(records, dataset.WithNCpus(ncpu))
	if err != nil {
		return nil, err
	}

	region := geo.NewRegion()

	for _, c := range coords {
		if radius > 0 {
			err = region.ContainCircle(c, radius)
		} else {
			err = region.Push(c)
		}

		if err != nil {
			return nil, err
		}
	}

	region.SetData(pointsKey, len(coords))

	return region, nil
}

func renderJSON(rep report) {
	b, err := json.Marshal(rep)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(out, string(b))
}

func renderTxt(rep report) {
	points, _ := rep.Region.Data(pointsKey)
	box := rep.Region.Box()

	fmt.Fprintf(out, "Points: %s\n", humanize.Comma(int64(points.(int))))
	fmt.Fprintf(out, "Box: %s\n", box)
	fmt.Fprintf(out, "Center: %s\n", rep.Region.Center())
	fmt.Fprintf(out, "CrossesAntimeridian: %t\n", box.CrossesAntimeridian())

	for i, cell := range rep.Cells {
		fmt.Fprintf(out, "Cell %d: %s\n", i+1, cell)
	}
}
