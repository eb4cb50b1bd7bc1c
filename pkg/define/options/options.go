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

package options

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vlsir/vlsir-go/common"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
	"github.com/vlsir/vlsir-go/protos"
)

const (
	// VariantStandard compiles the core schemas and annotates them in memory.
	VariantStandard = "standard"
	// VariantExtended also compiles the technology and netlisting schemas and
	// post-processes a descriptor set written to disk.
	VariantExtended = "extended"
)

var SupportedVariants = []string{
	VariantStandard,
	VariantExtended,
}

// BuildOptions is the build configuration, usually read from vlsirgen.yaml.
type BuildOptions struct {
	Variant string `yaml:"variant,omitempty"`
	// Sources are schema paths relative to an include dir.
	Sources []string `yaml:"sources,omitempty"`
	// Includes are the include dirs. Empty means the embedded schemas.
	Includes        []string `yaml:"includes,omitempty"`
	OutputDir       string   `yaml:"outputDir,omitempty"`
	GoPackagePrefix string   `yaml:"goPackagePrefix,omitempty"`
	// TypeAttributes maps a type selector such as "." or ".vlsir.circuit" to
	// capability names.
	TypeAttributes map[string][]string `yaml:"typeAttributes,omitempty"`
	// Extern maps a proto prefix to the Go package implementing it.
	Extern map[string]string `yaml:"extern,omitempty"`
	// WorkDir holds the descriptor set between compile and post-processing.
	WorkDir           string `yaml:"workDir,omitempty"`
	KeepDescriptorSet bool   `yaml:"keepDescriptorSet,omitempty"`
	// DryRun builds everything but commits nothing.
	DryRun bool `yaml:"-"`
}

// DefaultBuildOptions returns the defaults of variant.
func DefaultBuildOptions(variant string) *BuildOptions {
	o := &BuildOptions{
		Variant:         variant,
		OutputDir:       common.DefaultOutputDir,
		GoPackagePrefix: common.DefaultGoPackagePrefix,
		TypeAttributes:  map[string][]string{descriptor.MatchAll: capabilityNames(descriptor.SerDe)},
		WorkDir:         filepath.Join(os.TempDir(), common.ExecBinaryFileName),
	}
	switch variant {
	case VariantStandard:
		o.Sources = append([]string{}, protos.StandardSources...)
	default:
		o.Variant = VariantExtended
		o.Sources = append([]string{}, protos.ExtendedSources...)
		o.Extern = map[string]string{common.WellKnownPrefix: common.StructPBImport}
	}
	return o
}

// LoadBuildOptions decodes a build config file. Unknown keys are errors.
func LoadBuildOptions(path string) (*BuildOptions, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read build config %s", path)
	}
	o := &BuildOptions{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "failed to decode build config %s", path)
	}
	return o, nil
}

// Complete fills every unset field from the defaults of the variant.
func (o *BuildOptions) Complete() error {
	if o.Variant == "" {
		o.Variant = VariantExtended
	}
	defaults := DefaultBuildOptions(o.Variant)
	// A configured map replaces the default one instead of extending it.
	if o.TypeAttributes != nil {
		defaults.TypeAttributes = nil
	}
	if o.Extern != nil {
		defaults.Extern = nil
	}
	if err := mergo.Merge(o, defaults); err != nil {
		return errors.Wrap(err, "failed to merge default build options")
	}
	return nil
}

// Validate reports every problem of o together.
func (o *BuildOptions) Validate() error {
	var result *multierror.Error
	if !contains(SupportedVariants, o.Variant) {
		result = multierror.Append(result, errors.Errorf("variant %q is not one of %s", o.Variant, strings.Join(SupportedVariants, ", ")))
	}
	if len(o.Sources) == 0 {
		result = multierror.Append(result, errors.New("no schema sources given"))
	}
	for _, src := range o.Sources {
		if !strings.HasSuffix(src, common.ProtoSuffix) {
			result = multierror.Append(result, errors.Errorf("schema source %s must have suffix %s", src, common.ProtoSuffix))
		}
	}
	if o.OutputDir == "" && !o.DryRun {
		result = multierror.Append(result, errors.New("output dir is not set"))
	}
	if o.GoPackagePrefix == "" {
		result = multierror.Append(result, errors.New("go package prefix is not set"))
	}
	if _, err := o.Capabilities(); err != nil {
		result = multierror.Append(result, err)
	}
	for prefix := range o.Extern {
		if !strings.HasPrefix(prefix, ".") {
			result = multierror.Append(result, errors.Errorf("extern prefix %s must start with '.'", prefix))
		}
	}
	if o.Variant == VariantExtended && o.WorkDir == "" {
		result = multierror.Append(result, errors.New("work dir is not set"))
	}
	return result.ErrorOrNil()
}

// Capabilities parses TypeAttributes.
func (o *BuildOptions) Capabilities() (map[string][]descriptor.Capability, error) {
	if o.TypeAttributes == nil {
		return nil, nil
	}
	res := map[string][]descriptor.Capability{}
	selectors := make([]string, 0, len(o.TypeAttributes))
	for sel := range o.TypeAttributes {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)
	for _, sel := range selectors {
		if !strings.HasPrefix(sel, ".") {
			return nil, errors.Errorf("type selector %s must start with '.'", sel)
		}
		caps, err := descriptor.ParseCapabilities(o.TypeAttributes[sel])
		if err != nil {
			return nil, errors.Wrapf(err, "type selector %s", sel)
		}
		res[sel] = caps
	}
	return res, nil
}

func capabilityNames(caps []descriptor.Capability) []string {
	res := make([]string, 0, len(caps))
	for _, c := range caps {
		res = append(res, string(c))
	}
	return res
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DescriptorOptions configure `vlsirgen descriptor`.
type DescriptorOptions struct {
	Output string
	// Annotate runs the second annotation pass before writing.
	Annotate bool
}

// ConvertOptions configure `vlsirgen convert`.
type ConvertOptions struct {
	// Type is the full name of the message in the input files.
	Type string
	// To is the output format. Outputs are written next to their inputs.
	To          string
	OutputDir   string
	Concurrency int
	Progress    bool
}

// NetlistOptions configure `vlsirgen netlist`.
type NetlistOptions struct {
	Format string
	// Output is the netlist path for a single input, otherwise a directory.
	Output      string
	Sim         bool
	Concurrency int
	Progress    bool
}

// ListOptions configure `vlsirgen list`.
type ListOptions struct {
	// Types lists every message and enum instead of the schema files.
	Types bool
}

// PrimitivesOptions configure `vlsirgen primitives`.
type PrimitivesOptions struct {
	// Output is the file to write. Empty prints to stdout in Format.
	Output string
	Format string
}
