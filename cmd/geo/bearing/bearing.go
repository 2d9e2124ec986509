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

package bearing

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"m4o.io/geo"
	"m4o.io/geo/cmd/geo/cli"
	"m4o.io/geo/model"
)

var out io.Writer = os.Stdout

var from, to geo.Coordinate

type result struct {
	Degrees float64 `json:"degrees"`
	Radians float64 `json:"radians"`
}

func init() {
	cli.RootCmd.AddCommand(bearingCmd)

	flags := bearingCmd.Flags()
	flags.VarP(cli.NewCoordinateValue(&from), "from", "f", "origin as lat,lon[,alt]")
	flags.VarP(cli.NewCoordinateValue(&to), "to", "t", "destination as lat,lon[,alt]")
	flags.BoolP("json", "j", false, "format the bearing in JSON")

	_ = bearingCmd.MarkFlagRequired("from")
	_ = bearingCmd.MarkFlagRequired("to")
}

var bearingCmd = &cobra.Command{
	Use:   "bearing --from <lat,lon> --to <lat,lon>",
	Short: "Print the initial bearing from one coordinate to another",
	Long:  "Print the initial bearing, clockwise from north, from one coordinate to another",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		res := runBearing(from, to)

		if cli.Config().GetBool("json") {
			renderJSON(res)
		} else {
			renderTxt(res)
		}
	},
}

func runBearing(from, to geo.Coordinate) result {
	return result{
		Degrees: from.BearingTo(to),
		Radians: from.BearingRadTo(to),
	}
}

func renderJSON(res result) {
	b, err := json.Marshal(res)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(out, string(b))
}

func renderTxt(res result) {
	fmt.Fprintf(out, "Bearing: %s\n", model.Angle(res.Radians).Degrees())
	fmt.Fprintf(out, "Degrees: %.6f\n", res.Degrees)
	fmt.Fprintf(out, "Radians: %.6f\n", res.Radians)
}
