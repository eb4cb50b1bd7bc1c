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

package schema

import (
	"context"
	"io"
	"path"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/linker"
	"github.com/bufbuild/protocompile/reporter"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/vlsir/vlsir-go/pkg/descriptor"
)

// Result is the output of a successful compile.
type Result struct {
	// Files are the compiled sources, in source order.
	Files []protoreflect.FileDescriptor
	// Set holds the sources and all their imports, each file after its imports.
	Set *descriptorpb.FileDescriptorSet
	// Annotations carry the first-pass type capabilities.
	Annotations *descriptor.Annotations
}

// Compile compiles the configured sources. Compiler diagnostics are returned
// verbatim, aggregated when there are several.
func Compile(ctx context.Context, c *Config) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := CheckSources(c); err != nil {
		return nil, errors.Wrap(err, "failed to resolve schema sources")
	}

	var diagnostics *multierror.Error
	compiler := protocompile.Compiler{
		Resolver:       protocompile.WithStandardImports(newResolver(c)),
		SourceInfoMode: protocompile.SourceInfoStandard,
		Reporter: reporter.NewReporter(
			func(err reporter.ErrorWithPos) error {
				diagnostics = multierror.Append(diagnostics, err)
				return nil
			},
			func(warn reporter.ErrorWithPos) {
				logrus.Warnf("schema: %v", warn)
			},
		),
	}

	logrus.Debugf("compiling schemas %v", c.Sources)
	files, err := compiler.Compile(ctx, c.Sources...)
	if diagnostics.ErrorOrNil() != nil {
		return nil, errors.Wrap(diagnostics, "failed to compile schemas")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile schemas")
	}

	set := descriptorSet(files)
	ann := descriptor.NewAnnotations(c.Sources...)
	descriptor.AnnotateTypes(set, ann, c.typeAttributes())

	result := &Result{Set: set, Annotations: ann}
	for _, f := range files {
		result.Files = append(result.Files, f)
	}
	logrus.Debugf("compiled %d schemas, %d files with imports", len(result.Files), len(set.File))
	return result, nil
}

func newResolver(c *Config) protocompile.Resolver {
	if len(c.Includes) > 0 {
		return &protocompile.SourceResolver{ImportPaths: c.Includes}
	}
	fsys := c.FS
	return &protocompile.SourceResolver{
		Accessor: func(p string) (io.ReadCloser, error) {
			return fsys.Open(path.Clean(p))
		},
	}
}

// descriptorSet flattens files and their transitive imports so that every file
// follows the files it imports.
func descriptorSet(files linker.Files) *descriptorpb.FileDescriptorSet {
	set := &descriptorpb.FileDescriptorSet{}
	seen := map[string]bool{}
	var add func(fd protoreflect.FileDescriptor)
	add = func(fd protoreflect.FileDescriptor) {
		if seen[fd.Path()] {
			return
		}
		seen[fd.Path()] = true
		imports := fd.Imports()
		for i := 0; i < imports.Len(); i++ {
			add(imports.Get(i).FileDescriptor)
		}
		set.File = append(set.File, protodesc.ToFileDescriptorProto(fd))
	}
	for _, f := range files {
		add(f)
	}
	return set
}
