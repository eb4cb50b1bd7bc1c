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

package descriptor

import (
	"path"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/vlsir/vlsir-go/common"
)

// StructuredValueTypes are the well-known generic structured-value types.
var StructuredValueTypes = []string{
	".google.protobuf.Struct",
	".google.protobuf.Value",
	".google.protobuf.ListValue",
	".google.protobuf.NullValue",
}

// Kind tells messages and enums apart while walking a file.
type Kind int

const (
	KindMessage Kind = iota
	KindEnum
)

// Walk calls fn for every message and enum declared in fd, outer types before
// nested ones. Map entry messages are skipped.
func Walk(fd *descriptorpb.FileDescriptorProto, fn func(fullName string, kind Kind)) {
	scope := ""
	if fd.GetPackage() != "" {
		scope = "." + fd.GetPackage()
	}
	for _, e := range fd.GetEnumType() {
		fn(scope+"."+e.GetName(), KindEnum)
	}
	for _, m := range fd.GetMessageType() {
		walkMessage(scope, m, fn)
	}
}

func walkMessage(scope string, m *descriptorpb.DescriptorProto, fn func(string, Kind)) {
	if m.GetOptions().GetMapEntry() {
		return
	}
	name := scope + "." + m.GetName()
	fn(name, KindMessage)
	for _, e := range m.GetEnumType() {
		fn(name+"."+e.GetName(), KindEnum)
	}
	for _, n := range m.GetNestedType() {
		walkMessage(name, n, fn)
	}
}

// IsWellKnown reports whether the file is one of the protobuf standard imports.
func IsWellKnown(fd *descriptorpb.FileDescriptorProto) bool {
	return IsWellKnownPath(fd.GetName())
}

func IsWellKnownPath(name string) bool {
	return strings.HasPrefix(name, "google/protobuf/")
}

// AnnotateTypes is the first annotation pass. For every selector in attrs it
// attaches the capabilities to each matching message and enum of the non
// well-known files in set.
func AnnotateTypes(set *descriptorpb.FileDescriptorSet, ann *Annotations, attrs map[string][]Capability) {
	for _, fd := range set.GetFile() {
		if IsWellKnown(fd) {
			continue
		}
		Walk(fd, func(fullName string, _ Kind) {
			for selector, caps := range attrs {
				if Selects(selector, fullName) {
					ann.Add(fullName, caps...)
				}
			}
		})
	}
}

// Options drive the second annotation pass.
type Options struct {
	// GoPackagePrefix roots the go_package option stamped on local files.
	GoPackagePrefix string
	// WellKnown are the external types that gain serialize/deserialize capability.
	WellKnown []string
	// Extern redirects proto prefixes to existing Go packages.
	Extern map[string]string
	// Expect, when set, is the digest the artifact read back must have.
	Expect digest.Digest
}

// DefaultOptions annotates the structured-value types and maps them to structpb.
func DefaultOptions(goPackagePrefix string) Options {
	return Options{
		GoPackagePrefix: goPackagePrefix,
		WellKnown:       StructuredValueTypes,
		Extern:          map[string]string{common.WellKnownPrefix: common.StructPBImport},
	}
}

// Annotate is the second annotation pass. It validates set, adds serialize and
// deserialize capability to the well-known types present in it, records the
// extern mapping and stamps a go_package option on local files lacking one.
// Running it again on its own output changes nothing.
func Annotate(set *descriptorpb.FileDescriptorSet, ann *Annotations, opts Options) error {
	files, err := protodesc.NewFiles(set)
	if err != nil {
		return errors.Wrap(err, "invalid descriptor set")
	}

	for _, name := range opts.WellKnown {
		if _, err := files.FindDescriptorByName(protoreflect.FullName(strings.TrimPrefix(name, "."))); err != nil {
			logrus.Debugf("well-known type %s not referenced, skip it", name)
			continue
		}
		ann.Add(dotted(name), SerDe...)
	}

	for prefix, importPath := range opts.Extern {
		ann.MapExtern(prefix, importPath)
	}

	if opts.GoPackagePrefix == "" {
		return nil
	}
	for _, fd := range set.GetFile() {
		if IsWellKnown(fd) || fd.GetOptions().GetGoPackage() != "" {
			continue
		}
		if fd.Options == nil {
			fd.Options = &descriptorpb.FileOptions{}
		}
		fd.Options.GoPackage = proto.String(GoPackageFor(opts.GoPackagePrefix, fd.GetName()))
	}
	return nil
}

// LoadAndAnnotate reads the descriptor artifact at path back and runs the second
// annotation pass over it. ann is updated in place. Every file of ann.Files
// must be in the artifact.
func LoadAndAnnotate(path string, ann *Annotations, opts Options) (*descriptorpb.FileDescriptorSet, error) {
	set, d, err := read(path)
	if err != nil {
		return nil, err
	}
	if opts.Expect != "" && d != opts.Expect {
		return nil, errors.Errorf("descriptor set %s is corrupt: digest %s, want %s", path, d, opts.Expect)
	}
	have := sets.NewString()
	for _, fd := range set.GetFile() {
		have.Insert(fd.GetName())
	}
	if missing := sets.NewString(ann.Files...).Difference(have); missing.Len() > 0 {
		return nil, errors.Errorf("descriptor set %s is truncated: missing %s", path, strings.Join(missing.List(), ", "))
	}
	if err := Annotate(set, ann, opts); err != nil {
		return nil, errors.Wrapf(err, "failed to annotate descriptor set %s", path)
	}
	return set, nil
}

// GoPackageFor derives "prefix/layout/raw;raw" from "layout/raw.proto".
func GoPackageFor(prefix, file string) string {
	rel := strings.TrimSuffix(file, common.ProtoSuffix)
	return path.Join(prefix, rel) + ";" + path.Base(rel)
}
