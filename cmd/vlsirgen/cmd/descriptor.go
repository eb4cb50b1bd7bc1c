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
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/vlsir/vlsir-go/build"
	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
	osi "github.com/vlsir/vlsir-go/utils/os"
)

var longNewDescriptorCmdDescription = `descriptor command compiles the VLSIR schemas and writes the compiled
descriptor set, without generating any Go code. The set is written in the
protobuf binary format, or as JSON when the output ends in .json.`

var exampleNewDescriptorCmd = `write the post-processed descriptor set:
	vlsirgen descriptor -o vlsir.fds

write the set as compiled, before the second annotation pass:
	vlsirgen descriptor -o vlsir.json --annotate=false
`

// NewDescriptorCmd descriptorCmd represents the descriptor command
func NewDescriptorCmd(v *viper.Viper) *cobra.Command {
	descriptorFlags := options.DescriptorOptions{}

	descriptorCmd := &cobra.Command{
		Use:     "descriptor",
		Short:   "write the compiled descriptor set of the VLSIR schemas",
		Long:    longNewDescriptorCmdDescription,
		Args:    cobra.NoArgs,
		Example: exampleNewDescriptorCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := buildOptions(v)
			if err != nil {
				return err
			}
			o.DryRun = true

			b, err := build.NewBuilder(o)
			if err != nil {
				return err
			}
			set, _, err := b.Descriptor(cmd.Context(), descriptorFlags.Annotate)
			if err != nil {
				return err
			}

			if strings.EqualFold(filepath.Ext(descriptorFlags.Output), ".json") {
				data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(set)
				if err != nil {
					return errors.Wrap(err, "failed to encode descriptor set")
				}
				if err := osi.NewAtomicWriter(descriptorFlags.Output).WriteFile(data); err != nil {
					return errors.Wrapf(err, "failed to write descriptor set to %s", descriptorFlags.Output)
				}
			} else if err := descriptor.Write(descriptorFlags.Output, set); err != nil {
				return err
			}

			d, err := descriptor.Digest(set)
			if err != nil {
				return err
			}
			logrus.Infof("wrote descriptor set of %d files to %s (%s)", len(set.GetFile()), descriptorFlags.Output, d)
			return nil
		},
	}
	addSchemaFlags(descriptorCmd)
	descriptorCmd.Flags().StringVarP(&descriptorFlags.Output, "output", "o", "", "descriptor set file to write")
	descriptorCmd.Flags().BoolVar(&descriptorFlags.Annotate, "annotate", true, "run the second annotation pass before writing")
	if err := descriptorCmd.MarkFlagRequired("output"); err != nil {
		logrus.Fatal(err)
	}
	return descriptorCmd
}
