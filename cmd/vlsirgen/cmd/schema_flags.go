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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vlsir/vlsir-go/pkg/define/options"
)

// Flags shared by the commands that compile the schemas.
const (
	flagVariant           = "variant"
	flagInclude           = "include"
	flagSource            = "source"
	flagGoPackagePrefix   = "go-package-prefix"
	flagKeepDescriptorSet = "keep-descriptor-set"
	flagWorkDir           = "work-dir"
)

func addSchemaFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagVariant, "", fmt.Sprintf("build variant, one of %v (default %s)", options.SupportedVariants, options.VariantExtended))
	cmd.Flags().StringSliceP(flagInclude, "I", nil, "schema include dirs, the embedded schemas are used when empty")
	cmd.Flags().StringSlice(flagSource, nil, "schema files to compile, relative to an include dir (default is the variant's schema list)")
	cmd.Flags().String(flagGoPackagePrefix, "", "Go import path prefix of the generated packages")
}

// buildOptions reads the build config file, when there is one, and applies the
// flag and environment overrides on top before completing it with defaults.
func buildOptions(v *viper.Viper) (*options.BuildOptions, error) {
	o := &options.BuildOptions{}
	if f := v.ConfigFileUsed(); f != "" {
		loaded, err := options.LoadBuildOptions(f)
		if err != nil {
			return nil, err
		}
		o = loaded
	}

	if v.IsSet(flagVariant) {
		o.Variant = v.GetString(flagVariant)
	}
	if v.IsSet(flagInclude) {
		o.Includes = v.GetStringSlice(flagInclude)
	}
	if v.IsSet(flagSource) {
		o.Sources = v.GetStringSlice(flagSource)
	}
	if v.IsSet(flagGoPackagePrefix) {
		o.GoPackagePrefix = v.GetString(flagGoPackagePrefix)
	}
	if v.IsSet(flagKeepDescriptorSet) {
		o.KeepDescriptorSet = v.GetBool(flagKeepDescriptorSet)
	}
	if v.IsSet(flagWorkDir) {
		o.WorkDir = v.GetString(flagWorkDir)
	}

	if err := o.Complete(); err != nil {
		return nil, err
	}
	return o, nil
}
