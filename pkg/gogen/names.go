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
	"path"
	"strings"
	"unicode"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// GoCamelCase converts a proto identifier such as "int64_value" into the Go
// identifier "Int64Value".
func GoCamelCase(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.' && i+1 < len(s) && isASCIILower(s[i+1]):
		case c == '.':
			b = append(b, '_')
		case c == '_' && (i == 0 || s[i-1] == '.'):
			b = append(b, 'X')
		case c == '_' && i+1 < len(s) && isASCIILower(s[i+1]):
		case isASCIIDigit(c):
			b = append(b, c)
		default:
			if isASCIILower(c) {
				c -= 'a' - 'A'
			}
			b = append(b, c)
			for ; i+1 < len(s) && isASCIILower(s[i+1]); i++ {
				b = append(b, s[i+1])
			}
		}
	}
	return string(b)
}

func isASCIILower(c byte) bool { return 'a' <= c && c <= 'z' }
func isASCIIDigit(c byte) bool { return '0' <= c && c <= '9' }

// goTypeName is the Go name of a message or enum declared in a file: nested
// names are joined with underscores.
func goTypeName(d protoreflect.Descriptor) string {
	name := GoCamelCase(string(d.Name()))
	for p := d.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(protoreflect.FileDescriptor); ok {
			break
		}
		name = GoCamelCase(string(p.Name())) + "_" + name
	}
	return name
}

// enumValuePrefix is the enum's Go name for top-level enums and the parent
// message's Go name for nested ones.
func enumValuePrefix(e protoreflect.EnumDescriptor) string {
	if m, ok := e.Parent().(protoreflect.MessageDescriptor); ok {
		return goTypeName(m)
	}
	return goTypeName(e)
}

// goPackage splits a go_package option of the form "import/path;name". Without
// an explicit name the last path element is used, cleaned to a Go identifier.
func goPackage(opt string) (importPath, name string) {
	if i := strings.LastIndexByte(opt, ';'); i >= 0 {
		return opt[:i], opt[i+1:]
	}
	return opt, cleanPackageName(path.Base(opt))
}

func cleanPackageName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 || unicode.IsDigit([]rune(b.String())[0]) {
		return "_" + b.String()
	}
	return b.String()
}
