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
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/vlsir"
	"github.com/vlsir/vlsir-go/utils/progressbar"
)

var longNewConvertCmdDescription = `convert command converts VLSIR data files between the binary, JSON,
text and YAML encodings, or exports them as TOML. The input encoding
follows the file extension. Each output is written next to its input, or
into --output-dir, with the extension of the target format.`

var exampleNewConvertCmd = `convert a circuit package to YAML:
	vlsirgen convert --type vlsir.circuit.Package --to yaml inverter.pb

convert many layout libraries at once:
	vlsirgen convert --type vlsir.raw.Library --to json -o out/ --progress *.pb
`

// NewConvertCmd convertCmd represents the convert command
func NewConvertCmd() *cobra.Command {
	convertFlags := options.ConvertOptions{}

	convertCmd := &cobra.Command{
		Use:     "convert [flags] FILE...",
		Short:   "convert VLSIR data files between formats",
		Long:    longNewConvertCmdDescription,
		Args:    cobra.MinimumNArgs(1),
		Example: exampleNewConvertCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertFiles(cmd.Context(), convertFlags, args)
		},
	}
	convertCmd.Flags().StringVarP(&convertFlags.Type, "type", "t", "", "full name of the message in the input files, e.g. vlsir.circuit.Package")
	convertCmd.Flags().StringVar(&convertFlags.To, "to", "", "target format, a format name or a file extension")
	convertCmd.Flags().StringVarP(&convertFlags.OutputDir, "output-dir", "o", "", "dir to write the outputs to (default is the dir of each input)")
	convertCmd.Flags().IntVarP(&convertFlags.Concurrency, "concurrency", "j", runtime.NumCPU(), "number of files converted at once")
	convertCmd.Flags().BoolVar(&convertFlags.Progress, "progress", false, "show a progress bar")
	for _, flag := range []string{"type", "to"} {
		if err := convertCmd.MarkFlagRequired(flag); err != nil {
			logrus.Fatal(err)
		}
	}
	return convertCmd
}

func convertFiles(ctx context.Context, o options.ConvertOptions, inputs []string) error {
	to, err := vlsir.ParseFormat(o.To)
	if err != nil {
		return err
	}
	name := protoreflect.FullName(strings.TrimPrefix(o.Type, "."))
	if _, err := vlsir.FindMessage(name); err != nil {
		return err
	}

	outputs := make([]string, len(inputs))
	seen := map[string]string{}
	for i, in := range inputs {
		out := convertOutput(in, o.OutputDir, to)
		if filepath.Clean(out) == filepath.Clean(in) {
			return errors.Errorf("%s is already in %s format", in, to)
		}
		if prev, ok := seen[out]; ok {
			return errors.Errorf("%s and %s would both be converted to %s", prev, in, out)
		}
		seen[out] = in
		outputs[i] = out
	}

	var bar *progressbar.EasyProgressUtil
	if o.Progress {
		bar = progressbar.NewEasyProgressUtil(len(inputs), "converting")
	}

	var (
		mu   sync.Mutex
		errs *multierror.Error
		eg   errgroup.Group
	)
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	eg.SetLimit(o.Concurrency)
	for i := range inputs {
		in, out := inputs[i], outputs[i]
		eg.Go(func() error {
			err := ctx.Err()
			if err == nil {
				err = vlsir.ConvertFile(name, in, out)
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierror.Append(errs, err)
				if bar != nil {
					bar.Fail(err)
					bar.Increment()
				}
				return nil
			}
			logrus.Debugf("converted %s to %s", in, out)
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	_ = eg.Wait()
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	logrus.Infof("converted %d files to %s", len(inputs), to)
	return nil
}

func convertOutput(in, dir string, to vlsir.Format) string {
	base := filepath.Base(in)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + to.Extension()
	if dir == "" {
		dir = filepath.Dir(in)
	}
	return filepath.Join(dir, base)
}
