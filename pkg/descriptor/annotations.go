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
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Capability is a behavior attached to a generated type.
type Capability string

const (
	Binary Capability = "binary"
	JSON   Capability = "json"
	Text   Capability = "text"
	YAML   Capability = "yaml"
)

// SerDe is the serialize/deserialize pair every generated type must carry.
var SerDe = []Capability{Binary, JSON}

// MatchAll selects every type.
const MatchAll = "."

// Annotations records which capabilities each type carries and which types
// resolve to an existing Go implementation instead of being generated.
type Annotations struct {
	// Files are the schema files to generate, in source order.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`
	// Types maps a dot-prefixed full name to its sorted capabilities.
	Types map[string][]Capability `json:"types,omitempty" yaml:"types,omitempty"`
	// Extern maps a dot-prefixed proto prefix to a Go import path.
	Extern map[string]string `json:"extern,omitempty" yaml:"extern,omitempty"`
}

func NewAnnotations(files ...string) *Annotations {
	return &Annotations{
		Files:  append([]string{}, files...),
		Types:  map[string][]Capability{},
		Extern: map[string]string{},
	}
}

// Add attaches caps to the type. Adding a capability twice has no effect.
func (a *Annotations) Add(fullName string, caps ...Capability) {
	if a.Types == nil {
		a.Types = map[string][]Capability{}
	}
	s := sets.NewString()
	for _, c := range a.Types[fullName] {
		s.Insert(string(c))
	}
	for _, c := range caps {
		s.Insert(string(c))
	}
	list := s.List()
	out := make([]Capability, 0, len(list))
	for _, c := range list {
		out = append(out, Capability(c))
	}
	a.Types[fullName] = out
}

func (a *Annotations) Has(fullName string, c Capability) bool {
	for _, got := range a.Types[fullName] {
		if got == c {
			return true
		}
	}
	return false
}

// Missing returns the capabilities of want the type does not carry.
func (a *Annotations) Missing(fullName string, want ...Capability) []Capability {
	var missing []Capability
	for _, c := range want {
		if !a.Has(fullName, c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// MapExtern redirects every type under prefix to the Go package at importPath.
func (a *Annotations) MapExtern(prefix, importPath string) {
	if a.Extern == nil {
		a.Extern = map[string]string{}
	}
	a.Extern[dotted(prefix)] = importPath
}

// ExternFor returns the import path of the longest extern prefix matching fullName.
func (a *Annotations) ExternFor(fullName string) (string, bool) {
	best := ""
	for prefix := range a.Extern {
		if Selects(prefix, fullName) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return "", false
	}
	return a.Extern[best], true
}

// TypeNames returns the annotated type names, sorted.
func (a *Annotations) TypeNames() []string {
	names := make([]string, 0, len(a.Types))
	for n := range a.Types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a *Annotations) DeepCopy() *Annotations {
	out := NewAnnotations(a.Files...)
	for n, caps := range a.Types {
		out.Types[n] = append([]Capability{}, caps...)
	}
	for p, imp := range a.Extern {
		out.Extern[p] = imp
	}
	return out
}

// Selects reports whether selector matches the dot-prefixed fullName. The selector
// "." matches everything; otherwise it matches the name itself and anything nested
// below it.
func Selects(selector, fullName string) bool {
	if selector == MatchAll {
		return true
	}
	selector = dotted(selector)
	return fullName == selector || strings.HasPrefix(fullName, selector+".")
}

func dotted(name string) string {
	if strings.HasPrefix(name, ".") {
		return name
	}
	return "." + name
}

// ParseCapabilities converts names such as "json" into capabilities.
func ParseCapabilities(names []string) ([]Capability, error) {
	caps := make([]Capability, 0, len(names))
	for _, n := range names {
		switch c := Capability(strings.ToLower(strings.TrimSpace(n))); c {
		case Binary, JSON, Text, YAML:
			caps = append(caps, c)
		default:
			return nil, &UnknownCapabilityError{Name: n}
		}
	}
	return caps, nil
}

type UnknownCapabilityError struct {
	Name string
}

func (e *UnknownCapabilityError) Error() string {
	return "unknown capability " + e.Name + ", supported are binary, json, text, yaml"
}
