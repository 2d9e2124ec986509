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

package distance

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/geo"
	"m4o.io/geo/cmd/geo/cli"
)

var out io.Writer = os.Stdout

const (
	modeAuto    = "auto"
	modeQuick   = "quick"
	modePrecise = "precise"
	mode3D      = "3d"
)

var from, to geo.Coordinate

type result struct {
	From   []float64 `json:"from"`
	To     []float64 `json:"to"`
	Mode   string    `json:"mode"`
	Meters float64   `json:"meters"`
}

func init() {
	cli.RootCmd.AddCommand(distanceCmd)

	flags := distanceCmd.Flags()
	flags.VarP(cli.NewCoordinateValue(&from), "from", "f", "origin as lat,lon[,alt]")
	flags.VarP(cli.NewCoordinateValue(&to), "to", "t", "destination as lat,lon[,alt]")
	flags.StringP("mode", "m", modeAuto, "auto, quick, precise or 3d")
	flags.BoolP("json", "j", false, "format the distance in JSON")

	_ = distanceCmd.MarkFlagRequired("from")
	_ = distanceCmd.MarkFlagRequired("to")
}

var distanceCmd = &cobra.Command{
	Use:   "distance --from <lat,lon[,alt]> --to <lat,lon[,alt]>",
	Short: "Print the distance in meters between two coordinates",
	Long: `Print the distance in meters between two coordinates. The auto mode
uses the planar approximation for short hops and haversine otherwise; 3d
takes the altitudes into account.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cli.Config()

		res, err := runDistance(from, to, cfg.GetString("mode"))
		if err != nil {
			log.Fatal(err)
		}

		if cfg.GetBool("json") {
			renderJSON(res)
		} else {
			renderTxt(res)
		}
	},
}

func runDistance(from, to geo.Coordinate, mode string) (result, error) {
	res := result{From: from.AsArray(), To: to.AsArray(), Mode: strings.ToLower(mode)}

	switch res.Mode {
	case modeAuto:
		res.Meters = from.DistanceTo(to)
	case modeQuick:
		res.Meters = from.QuickDistanceTo(to)
	case modePrecise:
		res.Meters = from.DistanceTo(to, geo.Precise())
	case mode3D:
		res.Meters = from.Distance3DTo(to)
	default:
		return res, fmt.Errorf("unknown distance mode %q", mode)
	}

	return res, nil
}

func renderJSON(res result) {
	b, err := json.Marshal(res)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(out, string(b))
}

func renderTxt(res result) {
	fmt.Fprintf(out, "Mode: %s\n", res.Mode)
	fmt.Fprintf(out, "Distance: %s m\n", humanize.CommafWithDigits(res.Meters, 3))
}
