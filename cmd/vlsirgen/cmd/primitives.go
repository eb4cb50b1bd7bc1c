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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/primitives"
	"github.com/vlsir/vlsir-go/pkg/vlsir"
)

var exampleNewPrimitivesCmd = `print the primitive modules as JSON:
	vlsirgen primitives

save them for a netlisting flow:
	vlsirgen primitives -o primitives.pb
`

// NewPrimitivesCmd primitivesCmd represents the primitives command
func NewPrimitivesCmd() *cobra.Command {
	primitivesFlags := options.PrimitivesOptions{}

	primitivesCmd := &cobra.Command{
		Use:     "primitives",
		Short:   "write the package of VLSIR primitive modules",
		Args:    cobra.NoArgs,
		Example: exampleNewPrimitivesCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := primitives.Package()
			if primitivesFlags.Output != "" {
				if err := vlsir.Save(pkg, primitivesFlags.Output); err != nil {
					return err
				}
				logrus.Infof("wrote %d primitives to %s", len(pkg.ExtModules), primitivesFlags.Output)
				return nil
			}

			f, err := vlsir.ParseFormat(primitivesFlags.Format)
			if err != nil {
				return err
			}
			data, err := vlsir.Marshal(pkg, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	primitivesCmd.Flags().StringVarP(&primitivesFlags.Output, "output", "o", "", "file to write, its extension picks the format")
	primitivesCmd.Flags().StringVar(&primitivesFlags.Format, "format", "json", "format printed to stdout when --output is not set")
	return primitivesCmd
}
