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
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/vlsir/vlsir-go/pkg/version"
	"github.com/vlsir/vlsir-go/protos"
)

const protobufModule = "google.golang.org/protobuf"

func NewVersionCmd() *cobra.Command {
	var (
		shortPrint bool
		output     string
	)
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print version info",
		Args:    cobra.NoArgs,
		Example: `vlsirgen version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate validates the provided options.
			if output != "yaml" && output != "json" {
				return fmt.Errorf("output format must be yaml or json")
			}
			if shortPrint {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
				return nil
			}
			return PrintInfo(cmd.OutOrStdout(), output)
		},
	}
	versionCmd.Flags().BoolVar(&shortPrint, "short", false, "If true, print just the version number.")
	versionCmd.Flags().StringVarP(&output, "output", "o", "yaml", "choose `yaml` or `json` format to print version info")
	return versionCmd
}

func PrintInfo(w io.Writer, output string) error {
	info := &version.Output{
		VlsirgenVersion: version.Get(),
		SchemaVersion:   protos.Version,
		ProtobufVersion: protobufVersion(),
	}

	var (
		marshalled []byte
		err        error
	)
	switch output {
	case "yaml":
		marshalled, err = yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("fail to marshal yaml: %w", err)
		}
	case "json":
		marshalled, err = json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("fail to marshal json: %w", err)
		}
		marshalled = append(marshalled, '\n')
	default:
		return fmt.Errorf("versionOptions were not validated: --output=%q should have been rejected", output)
	}
	_, err = w.Write(marshalled)
	return err
}

// protobufVersion is the protobuf runtime module version linked in, if known.
func protobufVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range bi.Deps {
		if dep.Path == protobufModule {
			return dep.Version
		}
	}
	return ""
}
