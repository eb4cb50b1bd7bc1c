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

package netlister

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/vlsir/vlsir-go/pkg/primitives"
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
)

const (
	generator = "vlsirgen"

	hdl21PrimitivesDomain = "hdl21.primitives"
)

// writer accumulates one netlist in memory.
type writer struct {
	buf    bytes.Buffer
	indent string
}

// writeln writes parts as one indented line. Empty lines carry no indent.
func (w *writer) writeln(parts ...string) {
	if len(parts) == 0 {
		w.buf.WriteByte('\n')
		return
	}
	w.buf.WriteString(w.indent)
	for _, p := range parts {
		w.buf.WriteString(p)
	}
	w.buf.WriteByte('\n')
}

func (w *writer) writef(format string, args ...interface{}) {
	w.buf.WriteString(w.indent)
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

func (w *writer) flushTo(out io.Writer) error {
	if _, err := w.buf.WriteTo(out); err != nil {
		return errors.Wrap(err, "failed to write netlist")
	}
	return nil
}

// headerLines is the commentary opening every netlist.
func headerLines(pkg *circuit.Package) []string {
	first := "Anonymous circuit.Package"
	if pkg.GetDomain() != "" {
		first = "circuit.Package " + pkg.GetDomain()
	}
	return []string{first, "Written by " + generator, ""}
}

// moduleName is the netlist name of a package module: the last segment of
// its dotted name, with every character outside [A-Za-z0-9_] replaced by '_'.
func moduleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, name)
}

type refKind int

const (
	// subcktRef instantiates a package module or an external subcircuit.
	subcktRef refKind = iota
	// modelRef instantiates a device model by model name.
	modelRef
	// primitiveRef instantiates a simulator element.
	primitiveRef
)

// resolvedModule is the target of an instance's module reference.
type resolvedModule struct {
	kind      refKind
	name      string
	spicetype circuit.SpiceType
	ports     []*circuit.Port
	signals   []*circuit.Signal
	params    []*utils.Param
}

type qualifiedKey struct {
	domain string
	name   string
}

func (k qualifiedKey) String() string {
	return k.domain + "." + k.name
}

// packageState tracks the definitions visited while netlisting one package.
type packageState struct {
	modules     map[string]*circuit.Module
	names       sets.String
	extModules  map[qualifiedKey]*circuit.ExternalModule
	extByName   map[string]qualifiedKey
	prefix      prefixFunc
	requireDefs bool
}

// newPackageState indexes the external modules of pkg. Package modules are
// added as they are defined, so instances may only refer to earlier ones.
func newPackageState(pkg *circuit.Package, prefix prefixFunc) (*packageState, error) {
	st := &packageState{
		modules:    map[string]*circuit.Module{},
		names:      sets.NewString(),
		extModules: map[qualifiedKey]*circuit.ExternalModule{},
		extByName:  map[string]qualifiedKey{},
		prefix:     prefix,
	}
	for _, emod := range pkg.GetExtModules() {
		if emod.GetName() == nil {
			return nil, errors.New("external module has no name")
		}
		key := qualifiedKey{domain: emod.Name.Domain, name: emod.Name.Name}
		if _, ok := st.extModules[key]; ok {
			return nil, errors.Errorf("external module %s is defined twice", key)
		}
		st.extModules[key] = emod
	}
	return st, nil
}

// define registers m and returns its netlist name.
func (st *packageState) define(m *circuit.Module) (string, error) {
	name := moduleName(m.Name)
	if name == "" {
		return "", errors.New("module has no name")
	}
	if _, ok := st.modules[m.Name]; ok || st.names.Has(name) {
		return "", errors.Errorf("module %s is defined twice", name)
	}
	st.modules[m.Name] = m
	st.names.Insert(name)
	return name, nil
}

func (st *packageState) resolve(ref *utils.Reference) (*resolvedModule, error) {
	switch ref.WhichTo() {
	case "local":
		m, ok := st.modules[*ref.Local]
		if !ok {
			return nil, errors.Errorf("undefined module %s", *ref.Local)
		}
		return &resolvedModule{
			kind:      subcktRef,
			name:      moduleName(m.Name),
			spicetype: circuit.SpiceType_SUBCKT,
			ports:     m.Ports,
			signals:   m.Signals,
			params:    m.Parameters,
		}, nil
	case "external":
		return st.resolveExternal(qualifiedKey{domain: ref.External.Domain, name: ref.External.Name})
	}
	return nil, errors.New("instance has no module reference")
}

func (st *packageState) resolveExternal(key qualifiedKey) (*resolvedModule, error) {
	switch key.domain {
	case primitives.Domain:
		prim, ok := primitives.Get(key.name)
		if !ok {
			return nil, errors.Errorf("undefined primitive %s", key)
		}
		return externalModule(primitiveRef, prim), nil
	case hdl21PrimitivesDomain:
		return nil, errors.Errorf("%s must be compiled to a technology or replaced by an external module before netlisting", key)
	}

	emod, ok := st.extModules[key]
	if !ok {
		return nil, errors.Errorf("undefined external module %s", key)
	}
	if prev, ok := st.extByName[key.name]; ok && prev != key {
		return nil, errors.Errorf("external modules %s and %s have conflicting names", prev, key)
	}
	st.extByName[key.name] = key

	switch emod.Spicetype {
	case circuit.SpiceType_SUBCKT:
		return externalModule(subcktRef, emod), nil
	case circuit.SpiceType_MOS, circuit.SpiceType_BIPOLAR, circuit.SpiceType_DIODE, circuit.SpiceType_TLINE:
		return externalModule(modelRef, emod), nil
	}
	return externalModule(primitiveRef, emod), nil
}

func externalModule(kind refKind, emod *circuit.ExternalModule) *resolvedModule {
	return &resolvedModule{
		kind:      kind,
		name:      emod.Name.Name,
		spicetype: emod.Spicetype,
		ports:     emod.Ports,
		signals:   emod.Signals,
		params:    emod.Parameters,
	}
}

// moduleParams formats the parameter declarations of a module definition.
// Formats which cannot declare a parameter without a value set requireDefs.
func (st *packageState) moduleParams(m *circuit.Module) (*paramList, error) {
	res := newParamList()
	for _, p := range m.Parameters {
		if res.has(p.Name) {
			return nil, errors.Errorf("parameter %s is declared twice", p.Name)
		}
		if p.GetValue().WhichValue() == "" {
			if st.requireDefs {
				return nil, errors.Errorf("parameter %s has no default value", p.Name)
			}
			res.set(p.Name, "")
			continue
		}
		v, err := formatValue(p.Value, st.prefix)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", p.Name)
		}
		res.set(p.Name, v)
	}
	return res, nil
}

// instanceParams resolves the parameters of inst: those the module declares
// come first, in declaration order and falling back to their defaults, then
// the instance's other parameters pass through in instance order.
func (st *packageState) instanceParams(inst *circuit.Instance, mod *resolvedModule) (*paramList, error) {
	given := map[string]*utils.ParamValue{}
	for _, p := range inst.Parameters {
		given[p.Name] = p.Value
	}

	res := newParamList()
	declared := sets.NewString()
	for _, mp := range mod.params {
		declared.Insert(mp.Name)
		v, ok := given[mp.Name]
		if !ok {
			if mp.GetValue().WhichValue() == "" {
				return nil, errors.Errorf("required parameter %s is not set", mp.Name)
			}
			v = mp.Value
		}
		s, err := formatValue(v, st.prefix)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", mp.Name)
		}
		res.set(mp.Name, s)
	}
	for _, p := range inst.Parameters {
		if declared.Has(p.Name) {
			continue
		}
		s, err := formatValue(p.Value, st.prefix)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", p.Name)
		}
		res.set(p.Name, s)
	}
	return res, nil
}
