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

package build

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
	"github.com/vlsir/vlsir-go/pkg/gogen"
)

// TypeInfo is one message or enum of a schema.
type TypeInfo struct {
	Name         string                  `json:"name"`
	Kind         string                  `json:"kind"`
	Capabilities []descriptor.Capability `json:"capabilities"`
}

// SchemaInfo summarizes one compiled schema file.
type SchemaInfo struct {
	Source    string     `json:"source"`
	Package   string     `json:"package"`
	GoPackage string     `json:"goPackage"`
	Types     []TypeInfo `json:"types,omitempty"`
}

// Descriptor compiles the sources and returns the descriptor set. With
// annotate set the second annotation pass runs over it in memory.
func (b *Builder) Descriptor(ctx context.Context, annotate bool) (*descriptorpb.FileDescriptorSet, *descriptor.Annotations, error) {
	if err := b.compile(ctx); err != nil {
		return nil, nil, err
	}
	if annotate {
		if err := descriptor.Annotate(b.set, b.ann, b.annotateOptions()); err != nil {
			return nil, nil, errors.Wrap(err, "failed to annotate descriptor set")
		}
	}
	return b.set, b.ann, nil
}

// Inspect compiles and annotates the sources like a build would and
// describes every source file.
func (b *Builder) Inspect(ctx context.Context) ([]SchemaInfo, error) {
	set, ann, err := b.Descriptor(ctx, b.opts.Variant == options.VariantExtended)
	if err != nil {
		return nil, err
	}

	byName := map[string]*descriptorpb.FileDescriptorProto{}
	for _, fd := range set.GetFile() {
		byName[fd.GetName()] = fd
	}

	res := make([]SchemaInfo, 0, len(ann.Files))
	for _, src := range ann.Files {
		fd, ok := byName[src]
		if !ok {
			return nil, errors.Errorf("schema %s is not in the descriptor set", src)
		}
		goPackage := fd.GetOptions().GetGoPackage()
		if goPackage == "" {
			goPackage = descriptor.GoPackageFor(b.opts.GoPackagePrefix, src)
		}
		info := SchemaInfo{Source: src, Package: fd.GetPackage(), GoPackage: goPackage}
		descriptor.Walk(fd, func(fullName string, kind descriptor.Kind) {
			k := "message"
			if kind == descriptor.KindEnum {
				k = "enum"
			}
			info.Types = append(info.Types, TypeInfo{
				Name:         fullName,
				Kind:         k,
				Capabilities: ann.Types[fullName],
			})
		})
		res = append(res, info)
	}
	return res, nil
}

// Generate runs the build without committing and returns the generated files.
func (b *Builder) Generate(ctx context.Context) ([]*gogen.File, *Result, error) {
	b.opts.DryRun = true
	res, err := b.Build(ctx)
	if err != nil {
		return nil, nil, err
	}
	return b.files, res, nil
}
