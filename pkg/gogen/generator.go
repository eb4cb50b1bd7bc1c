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

// Package gogen generates Go types from annotated schema descriptor sets.
//
// Each schema file becomes one Go package. Messages become plain structs whose
// JSON encoding matches the protobuf JSON mapping, so values convert to and from
// the protobuf wire format through the schema registry at run time.
package gogen

import (
	"fmt"
	"go/format"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/vlsir/vlsir-go/common"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
)

const (
	pbjsonImport       = "github.com/vlsir/vlsir-go/pkg/vlsir/pbjson"
	protoreflectImport = "google.golang.org/protobuf/reflect/protoreflect"
)

// Options configure a Generator.
type Options struct {
	// GoPackagePrefix roots the Go package of files without a go_package option.
	GoPackagePrefix string
	// Required are the capabilities every generated or referenced type must carry.
	// Nil means descriptor.SerDe.
	Required []descriptor.Capability
}

// File is one generated Go source file.
type File struct {
	// Source is the schema file it was generated from.
	Source string
	// Name is the output path relative to the output root.
	Name         string
	GoImportPath string
	GoPackage    string
	// Symbols are the exported type names declared in the file, sorted.
	Symbols []string
	Content []byte
}

// Digest is the content digest of the generated source.
func (f *File) Digest() digest.Digest {
	return digest.FromBytes(f.Content)
}

type Generator struct {
	files *protoregistry.Files
	set   *descriptorpb.FileDescriptorSet
	ann   *descriptor.Annotations
	opts  Options
}

func New(set *descriptorpb.FileDescriptorSet, ann *descriptor.Annotations, opts Options) (*Generator, error) {
	files, err := protodesc.NewFiles(set)
	if err != nil {
		return nil, errors.Wrap(err, "invalid descriptor set")
	}
	if opts.Required == nil {
		opts.Required = descriptor.SerDe
	}
	return &Generator{files: files, set: set, ann: ann, opts: opts}, nil
}

// Generate renders every file listed in the annotations, in order. Either all
// files are returned or an error describing every problem found.
func (g *Generator) Generate() ([]*File, error) {
	var (
		out    []*File
		result *multierror.Error
	)
	for _, name := range g.ann.Files {
		fd, err := g.files.FindFileByPath(name)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "schema %s is not in the descriptor set", name))
			continue
		}
		f, err := g.generateFile(fd)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		logrus.Debugf("generated %s from %s (%d types)", f.Name, name, len(f.Symbols))
		out = append(out, f)
	}
	if err := checkSymbols(out); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkSymbols rejects two files of one Go package declaring the same name.
func checkSymbols(files []*File) error {
	var result *multierror.Error
	owners := map[string]map[string]string{}
	for _, f := range files {
		if owners[f.GoImportPath] == nil {
			owners[f.GoImportPath] = map[string]string{}
		}
		for _, sym := range f.Symbols {
			if prev, ok := owners[f.GoImportPath][sym]; ok {
				result = multierror.Append(result, errors.Errorf("symbol %s of package %s declared by both %s and %s", sym, f.GoImportPath, prev, f.Source))
				continue
			}
			owners[f.GoImportPath][sym] = f.Source
		}
	}
	return result.ErrorOrNil()
}

// goPackageOf resolves the Go import path and package name of a schema file.
func (g *Generator) goPackageOf(fd protoreflect.FileDescriptor) (string, string) {
	if opts, ok := fd.Options().(*descriptorpb.FileOptions); ok && opts.GetGoPackage() != "" {
		return goPackage(opts.GetGoPackage())
	}
	return goPackage(descriptor.GoPackageFor(g.opts.GoPackagePrefix, fd.Path()))
}

func (g *Generator) outputName(fd protoreflect.FileDescriptor, importPath string) string {
	rel := strings.TrimSuffix(fd.Path(), common.ProtoSuffix)
	dir := rel
	if g.opts.GoPackagePrefix != "" && strings.HasPrefix(importPath, g.opts.GoPackagePrefix+"/") {
		dir = strings.TrimPrefix(importPath, g.opts.GoPackagePrefix+"/")
	}
	return path.Join(dir, path.Base(rel)+common.GoSuffix)
}

func (g *Generator) generateFile(fd protoreflect.FileDescriptor) (*File, error) {
	importPath, pkgName := g.goPackageOf(fd)
	fg := &fileGen{
		Generator:  g,
		fd:         fd,
		importPath: importPath,
		pkgName:    pkgName,
		imports:    map[string]string{},
		symbols:    sets.NewString(),
	}
	fg.genBody()
	if err := fg.errs.ErrorOrNil(); err != nil {
		return nil, errors.Wrapf(err, "failed to generate %s", fd.Path())
	}

	raw := fg.assemble()
	content, err := format.Source(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to format generated code for %s", fd.Path())
	}
	return &File{
		Source:       fd.Path(),
		Name:         g.outputName(fd, importPath),
		GoImportPath: importPath,
		GoPackage:    pkgName,
		Symbols:      fg.symbols.List(),
		Content:      content,
	}, nil
}

// fileGen renders one file. Imports are collected while the body is written
// and emitted ahead of it.
type fileGen struct {
	*Generator
	fd         protoreflect.FileDescriptor
	importPath string
	pkgName    string
	imports    map[string]string
	symbols    sets.String
	body       strings.Builder
	errs       *multierror.Error
}

// P prints one line of the body.
func (fg *fileGen) P(v ...interface{}) {
	for _, x := range v {
		fmt.Fprint(&fg.body, x)
	}
	fg.body.WriteByte('\n')
}

func (fg *fileGen) fail(format string, args ...interface{}) {
	fg.errs = multierror.Append(fg.errs, errors.Errorf(format, args...))
}

// use registers an import and returns its alias.
func (fg *fileGen) use(importPath, name string) string {
	if alias, ok := fg.imports[importPath]; ok {
		return alias
	}
	taken := map[string]bool{fg.pkgName: true}
	for _, a := range fg.imports {
		taken[a] = true
	}
	alias := name
	for i := 1; taken[alias]; i++ {
		alias = fmt.Sprintf("%s%d", name, i)
	}
	fg.imports[importPath] = alias
	return alias
}

func (fg *fileGen) assemble() []byte {
	var b strings.Builder
	b.WriteString("// Code generated by vlsirgen. DO NOT EDIT.\n")
	b.WriteString("// source: " + fg.fd.Path() + "\n\n")
	b.WriteString("package " + fg.pkgName + "\n\n")
	if len(fg.imports) > 0 {
		paths := make([]string, 0, len(fg.imports))
		for p := range fg.imports {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		b.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&b, "\t%s %q\n", fg.imports[p], p)
		}
		b.WriteString(")\n\n")
	}
	b.WriteString(fg.body.String())
	return []byte(b.String())
}

func (fg *fileGen) genBody() {
	enums := fg.fd.Enums()
	for i := 0; i < enums.Len(); i++ {
		fg.genEnum(enums.Get(i))
	}
	messages := fg.fd.Messages()
	for i := 0; i < messages.Len(); i++ {
		fg.genNestedEnums(messages.Get(i))
	}
	for i := 0; i < messages.Len(); i++ {
		fg.genMessage(messages.Get(i))
	}
}

func (fg *fileGen) genNestedEnums(m protoreflect.MessageDescriptor) {
	if m.IsMapEntry() {
		return
	}
	enums := m.Enums()
	for i := 0; i < enums.Len(); i++ {
		fg.genEnum(enums.Get(i))
	}
	nested := m.Messages()
	for i := 0; i < nested.Len(); i++ {
		fg.genNestedEnums(nested.Get(i))
	}
}

// requireCapabilities records an error when d lacks a required capability.
func (fg *fileGen) requireCapabilities(d protoreflect.Descriptor) {
	name := "." + string(d.FullName())
	if missing := fg.ann.Missing(name, fg.opts.Required...); len(missing) > 0 {
		fg.fail("type %s lacks capabilities %v", name, missing)
	}
}

func (fg *fileGen) leadingComments(d protoreflect.Descriptor) {
	c := fg.fd.SourceLocations().ByDescriptor(d).LeadingComments
	c = strings.TrimSuffix(c, "\n")
	if strings.TrimSpace(c) == "" {
		return
	}
	for _, line := range strings.Split(c, "\n") {
		fg.P("//", strings.TrimRight(line, " \t"))
	}
}
