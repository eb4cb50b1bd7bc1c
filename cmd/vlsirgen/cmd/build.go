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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/docker/go-units"
	"github.com/olekukonko/tablewriter"
	"github.com/opencontainers/go-digest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vlsir/vlsir-go/build"
	"github.com/vlsir/vlsir-go/common"
)

var longNewBuildCmdDescription = `build command compiles the VLSIR schemas and generates one Go package
per schema file. The build is all-or-nothing: when any schema fails to
resolve or compile, nothing is written to the output dir.

The standard variant compiles the core schemas and annotates them in memory.
The extended variant also compiles the technology and netlisting schemas,
writes the compiled descriptor set to the work dir, and post-processes it
from there before generating.`

var exampleNewBuildCmd = `regenerate the bundled packages:
	vlsirgen build --output pkg/vlsir

build the standard variant from schemas on disk:
	vlsirgen build --variant standard -I ./protos -o ./gen

build with a config file:
	vlsirgen build --config vlsirgen.yaml
`

// NewBuildCmd buildCmd represents the build command
func NewBuildCmd(v *viper.Viper) *cobra.Command {
	var dryRun bool

	buildCmd := &cobra.Command{
		Use:     "build",
		Short:   "generate Go packages from the VLSIR schemas",
		Long:    longNewBuildCmdDescription,
		Args:    cobra.NoArgs,
		Example: exampleNewBuildCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := buildOptions(v)
			if err != nil {
				return err
			}
			if v.IsSet("output") {
				o.OutputDir = v.GetString("output")
			}
			o.DryRun = dryRun

			b, err := build.NewBuilder(o)
			if err != nil {
				return err
			}
			res, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}

			printBuildReport(cmd.OutOrStdout(), res)
			if res.Committed {
				logrus.Infof("build %s succeeded: %d files written to %s", res.BuildID, len(res.Files), res.OutputDir)
			} else {
				logrus.Infof("build %s succeeded: dry run, nothing written", res.BuildID)
			}
			return nil
		},
	}
	addSchemaFlags(buildCmd)
	buildCmd.Flags().StringP("output", "o", "", fmt.Sprintf("output dir of the generated packages (default %s)", common.DefaultOutputDir))
	buildCmd.Flags().Bool(flagKeepDescriptorSet, false, "keep the post-processed descriptor set in the work dir")
	buildCmd.Flags().String(flagWorkDir, "", "dir holding the descriptor set of the extended variant")
	buildCmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate everything but write nothing")
	return buildCmd
}

func printBuildReport(w io.Writer, res *build.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"file", "schema", "size", "digest"})
	for _, f := range res.Files {
		table.Append([]string{
			filepath.ToSlash(f.Path),
			f.Source,
			units.HumanSize(float64(f.Size)),
			shortDigest(f.Digest),
		})
	}
	table.Render()

	if res.Committed {
		fmt.Fprintf(w, "total: %s\n", units.HumanSize(float64(res.Size)))
	}
	if res.DescriptorSet != "" {
		fmt.Fprintf(w, "descriptor set: %s (%s)\n", res.DescriptorSet, shortDigest(res.DescriptorDigest))
	}
}

// shortDigest keeps the algorithm and the first 12 hex characters.
func shortDigest(d digest.Digest) string {
	if d == "" {
		return ""
	}
	if err := d.Validate(); err != nil {
		return string(d)
	}
	enc := d.Encoded()
	if len(enc) > 12 {
		enc = enc[:12]
	}
	return strings.Join([]string{d.Algorithm().String(), enc}, ":")
}
