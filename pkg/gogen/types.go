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

package gogen

import (
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/vlsir/vlsir-go/pkg/descriptor"
)

func (fg *fileGen) genEnum(e protoreflect.EnumDescriptor) {
	fg.requireCapabilities(e)
	name := goTypeName(e)
	prefix := enumValuePrefix(e)
	fg.symbols.Insert(name)
	pbjson := fg.use(pbjsonImport, "pbjson")

	fg.leadingComments(e)
	fg.P("type ", name, " int32")
	fg.P()

	values := e.Values()
	fg.P("const (")
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		fg.P(prefix, "_", v.Name(), " ", name, " = ", v.Number())
	}
	fg.P(")")
	fg.P()

	seen := map[protoreflect.EnumNumber]bool{}
	fg.P("// Enum value maps for ", name, ".")
	fg.P("var (")
	fg.P(name, "_name = map[int32]string{")
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		if seen[v.Number()] {
			continue
		}
		seen[v.Number()] = true
		fg.P(v.Number(), ": ", strconv.Quote(string(v.Name())), ",")
	}
	fg.P("}")
	fg.P(name, "_value = map[string]int32{")
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		fg.P(strconv.Quote(string(v.Name())), ": ", v.Number(), ",")
	}
	fg.P("}")
	fg.P(")")
	fg.P()

	fg.P("func (x ", name, ") String() string {")
	fg.P("return ", pbjson, ".EnumString(", name, "_name, int32(x))")
	fg.P("}")
	fg.P()
	fg.P("func (x ", name, ") MarshalJSON() ([]byte, error) {")
	fg.P("return ", pbjson, ".MarshalEnum(", name, "_name, int32(x))")
	fg.P("}")
	fg.P()
	fg.P("func (x *", name, ") UnmarshalJSON(b []byte) error {")
	fg.P("v, err := ", pbjson, ".UnmarshalEnum(", name, "_value, b)")
	fg.P("if err != nil {")
	fg.P("return err")
	fg.P("}")
	fg.P("*x = ", name, "(v)")
	fg.P("return nil")
	fg.P("}")
	fg.P()
}

// field is the rendering of one message field.
type field struct {
	desc    protoreflect.FieldDescriptor
	goName  string
	goType  string
	tag     string
	pointer bool
	zero    string
}

func (fg *fileGen) genMessage(m protoreflect.MessageDescriptor) {
	if m.IsMapEntry() {
		return
	}
	fg.requireCapabilities(m)
	name := goTypeName(m)
	fg.symbols.Insert(name)

	var fields []field
	fds := m.Fields()
	for i := 0; i < fds.Len(); i++ {
		if f, ok := fg.field(fds.Get(i)); ok {
			fields = append(fields, f)
		}
	}

	fg.leadingComments(m)
	if len(fields) == 0 {
		fg.P("type ", name, " struct{}")
	} else {
		fg.P("type ", name, " struct {")
		for _, f := range fields {
			fg.leadingComments(f.desc)
			fg.P(f.goName, " ", f.goType, " `json:\"", f.tag, "\"`")
		}
		fg.P("}")
	}
	fg.P()

	reflect := fg.use(protoreflectImport, "protoreflect")
	fg.P("func (*", name, ") ProtoFullName() ", reflect, ".FullName {")
	fg.P("return ", strconv.Quote(string(m.FullName())))
	fg.P("}")
	fg.P()

	for _, f := range fields {
		fg.P("func (x *", name, ") Get", f.goName, "() ", f.getterType(), " {")
		if f.pointer && f.desc.Message() == nil {
			fg.P("if x != nil && x.", f.goName, " != nil {")
			fg.P("return *x.", f.goName)
		} else {
			fg.P("if x != nil {")
			fg.P("return x.", f.goName)
		}
		fg.P("}")
		fg.P("return ", f.zero)
		fg.P("}")
		fg.P()
	}

	oneofs := m.Oneofs()
	for i := 0; i < oneofs.Len(); i++ {
		o := oneofs.Get(i)
		if o.IsSynthetic() {
			continue
		}
		goName := GoCamelCase(string(o.Name()))
		fg.P("// Which", goName, " returns the name of the ", o.Name(), " member that is set, or \"\" if none is.")
		fg.P("func (x *", name, ") Which", goName, "() string {")
		fg.P("switch {")
		fg.P("case x == nil:")
		fg.P("return \"\"")
		members := o.Fields()
		for j := 0; j < members.Len(); j++ {
			mf := members.Get(j)
			fg.P("case x.", GoCamelCase(string(mf.Name())), " != nil:")
			fg.P("return ", strconv.Quote(string(mf.Name())))
		}
		fg.P("}")
		fg.P("return \"\"")
		fg.P("}")
		fg.P()
	}

	nested := m.Messages()
	for i := 0; i < nested.Len(); i++ {
		fg.genMessage(nested.Get(i))
	}
}

func (f field) getterType() string {
	if f.pointer && f.desc.Message() == nil {
		return f.goType[1:]
	}
	return f.goType
}

// field renders fd, reporting unsupported shapes as errors.
func (fg *fileGen) field(fd protoreflect.FieldDescriptor) (field, bool) {
	f := field{
		desc:   fd,
		goName: GoCamelCase(string(fd.Name())),
		tag:    fd.JSONName(),
	}

	switch {
	case fd.IsMap():
		if fd.MapKey().Kind() != protoreflect.StringKind {
			fg.fail("map field %s: only string keys are supported", fd.FullName())
			return f, false
		}
		if is64(fd.MapValue().Kind()) {
			fg.fail("map field %s: 64-bit integer values are not supported", fd.FullName())
			return f, false
		}
		f.goType = "map[string]" + fg.elemType(fd.MapValue())
		f.zero = "nil"
	case fd.IsList():
		switch {
		case isSigned64(fd.Kind()):
			f.goType = fg.use(pbjsonImport, "pbjson") + ".Int64List"
		case isUnsigned64(fd.Kind()):
			f.goType = fg.use(pbjsonImport, "pbjson") + ".Uint64List"
		default:
			f.goType = "[]" + fg.elemType(fd)
		}
		f.zero = "nil"
	default:
		f.goType = fg.elemType(fd)
		f.zero = fg.zeroValue(fd)
		if fd.Message() == nil && fd.HasPresence() && fd.Kind() != protoreflect.BytesKind {
			f.goType = "*" + f.goType
			f.pointer = true
		}
		if fd.Message() != nil {
			f.pointer = true
		}
		if is64(fd.Kind()) {
			f.tag += ",string"
		}
	}
	f.tag += ",omitempty"
	return f, true
}

// elemType is the Go type of one value of fd, ignoring cardinality.
func (fg *fileGen) elemType(fd protoreflect.FieldDescriptor) string {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return "bool"
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return "int32"
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return "uint32"
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return "int64"
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return "uint64"
	case protoreflect.FloatKind:
		return "float32"
	case protoreflect.DoubleKind:
		return "float64"
	case protoreflect.StringKind:
		return "string"
	case protoreflect.BytesKind:
		return "[]byte"
	case protoreflect.EnumKind:
		return fg.typeRef(fd.Enum())
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return "*" + fg.typeRef(fd.Message())
	}
	fg.fail("field %s has unsupported kind %v", fd.FullName(), fd.Kind())
	return "interface{}"
}

func (fg *fileGen) zeroValue(fd protoreflect.FieldDescriptor) string {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return "false"
	case protoreflect.StringKind:
		return `""`
	case protoreflect.BytesKind, protoreflect.MessageKind, protoreflect.GroupKind:
		return "nil"
	case protoreflect.EnumKind:
		e := fd.Enum()
		if v := e.Values().ByNumber(0); v != nil && e.ParentFile().Path() == fg.fd.Path() {
			return enumValuePrefix(e) + "_" + string(v.Name())
		}
		return "0"
	}
	return "0"
}

// typeRef names a message or enum from this file, importing its package when
// it lives elsewhere. Referenced types must carry the required capabilities.
func (fg *fileGen) typeRef(d protoreflect.Descriptor) string {
	fg.requireCapabilities(d)
	file := d.ParentFile()
	if file.Path() == fg.fd.Path() {
		return goTypeName(d)
	}

	name := "." + string(d.FullName())
	if importPath, ok := fg.ann.ExternFor(name); ok {
		_, pkg := goPackage(importPath)
		return fg.use(importPath, pkg) + "." + goTypeName(d)
	}
	if descriptor.IsWellKnownPath(file.Path()) {
		fg.fail("type %s is not generated and has no extern mapping", name)
		return goTypeName(d)
	}

	importPath, pkg := fg.goPackageOf(file)
	if importPath == fg.importPath {
		return goTypeName(d)
	}
	return fg.use(importPath, pkg) + "." + goTypeName(d)
}

func is64(k protoreflect.Kind) bool {
	return isSigned64(k) || isUnsigned64(k)
}

func isSigned64(k protoreflect.Kind) bool {
	return k == protoreflect.Int64Kind || k == protoreflect.Sint64Kind || k == protoreflect.Sfixed64Kind
}

func isUnsigned64(k protoreflect.Kind) bool {
	return k == protoreflect.Uint64Kind || k == protoreflect.Fixed64Kind
}
