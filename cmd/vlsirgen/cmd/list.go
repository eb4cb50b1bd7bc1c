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
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vlsir/vlsir-go/build"
	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
)

var exampleNewListCmd = `list the schema files of the extended variant:
	vlsirgen list

list every type of the standard variant with its capabilities:
	vlsirgen list --variant standard --types
`

// NewListCmd listCmd represents the list command
func NewListCmd(v *viper.Viper) *cobra.Command {
	listFlags := options.ListOptions{}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "list the VLSIR schema files and their types",
		Args:    cobra.NoArgs,
		Example: exampleNewListCmd,
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
			infos, err := b.Inspect(cmd.Context())
			if err != nil {
				return err
			}
			if listFlags.Types {
				printTypes(cmd.OutOrStdout(), infos)
			} else {
				printSchemas(cmd.OutOrStdout(), infos)
			}
			return nil
		},
	}
	addSchemaFlags(listCmd)
	listCmd.Flags().BoolVar(&listFlags.Types, "types", false, "list every message and enum instead of the schema files")
	return listCmd
}

func printSchemas(w io.Writer, infos []build.SchemaInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"schema", "package", "go package", "types"})
	for _, info := range infos {
		table.Append([]string{info.Source, info.Package, info.GoPackage, strconv.Itoa(len(info.Types))})
	}
	table.Render()
}

func printTypes(w io.Writer, infos []build.SchemaInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"type", "kind", "capabilities", "schema"})
	for _, info := range infos {
		for _, t := range info.Types {
			table.Append([]string{strings.TrimPrefix(t.Name, "."), t.Kind, joinCapabilities(t.Capabilities), info.Source})
		}
	}
	table.Render()
}

func joinCapabilities(caps []descriptor.Capability) string {
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		names = append(names, string(c))
	}
	return strings.Join(names, ",")
}
