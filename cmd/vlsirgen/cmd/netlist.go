// Copyright © 2022 The VLSIR Authors.
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

package cmd

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/netlister"
	"github.com/vlsir/vlsir-go/pkg/vlsir"
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
	osi "github.com/vlsir/vlsir-go/utils/os"
	"github.com/vlsir/vlsir-go/utils/progressbar"
)

var longNewNetlistCmdDescription = `netlist command writes circuit packages as SPICE, Spectre or Verilog
netlists. With --sim the inputs are simulation inputs, and the netlists
also carry their analyses, options and control elements.

Each netlist is written next to its input with the extension of the
netlist format, into the dir given by --output, or, for a single input,
to the file given by --output.`

var exampleNewNetlistCmd = `netlist a package for ngspice:
	vlsirgen netlist --fmt ngspice inverter.pb

netlist a simulation input for spectre:
	vlsirgen netlist --fmt spectre --sim -o tb.scs tb.json
`

// NewNetlistCmd netlistCmd represents the netlist command
func NewNetlistCmd() *cobra.Command {
	netlistFlags := options.NetlistOptions{}

	netlistCmd := &cobra.Command{
		Use:     "netlist [flags] FILE...",
		Short:   "netlist VLSIR circuit packages",
		Long:    longNewNetlistCmdDescription,
		Args:    cobra.MinimumNArgs(1),
		Example: exampleNewNetlistCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			return netlistFiles(cmd.Context(), netlistFlags, args)
		},
	}
	netlistCmd.Flags().StringVar(&netlistFlags.Format, "fmt", "spice", "netlist format, one of "+strings.Join(netlister.FormatNames(), ", "))
	netlistCmd.Flags().StringVarP(&netlistFlags.Output, "output", "o", "", "output file for a single input, otherwise output dir")
	netlistCmd.Flags().BoolVar(&netlistFlags.Sim, "sim", false, "read simulation inputs instead of circuit packages")
	netlistCmd.Flags().IntVarP(&netlistFlags.Concurrency, "concurrency", "j", runtime.NumCPU(), "number of netlists written at once")
	netlistCmd.Flags().BoolVar(&netlistFlags.Progress, "progress", false, "show a progress bar")
	return netlistCmd
}

func netlistFiles(ctx context.Context, o options.NetlistOptions, inputs []string) error {
	format, err := netlister.ParseFormat(o.Format)
	if err != nil {
		return err
	}

	jobs := make([]netlister.Job, 0, len(inputs))
	for _, in := range inputs {
		job := netlister.Job{
			Format: format,
			Output: netlistOutput(in, o.Output, len(inputs) == 1, netlister.Extension(format)),
		}
		if o.Sim {
			job.Sim, err = vlsir.Open[spice.SimInput](in)
		} else {
			job.Pkg, err = vlsir.Open[circuit.Package](in)
		}
		if err != nil {
			return err
		}
		if filepath.Clean(job.Output) == filepath.Clean(in) {
			return errors.Errorf("netlist of %s would overwrite it", in)
		}
		jobs = append(jobs, job)
	}

	var bar *progressbar.EasyProgressUtil
	if o.Progress {
		bar = progressbar.NewEasyProgressUtil(len(jobs), "netlisting")
	}
	err = netlister.Batch(ctx, jobs, o.Concurrency, func(job netlister.Job, err error) {
		if err == nil {
			logrus.Debugf("wrote %s", job.Output)
		}
		if bar != nil {
			bar.Fail(err)
			bar.Increment()
		}
	})
	if err != nil {
		return err
	}
	logrus.Infof("wrote %d %s netlists", len(jobs), strings.ToLower(format.String()))
	return nil
}

// netlistOutput is output itself for a single input when it does not name a
// dir, otherwise the input's base name with ext inside output, or next to the
// input when output is empty.
func netlistOutput(in, output string, single bool, ext string) string {
	base := filepath.Base(in)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ext
	if output == "" {
		return filepath.Join(filepath.Dir(in), base)
	}
	if single && !osi.IsDir(output) && filepath.Ext(output) != "" {
		return output
	}
	return filepath.Join(output, base)
}
