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
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
)

var portDirections = map[circuit.Port_Direction]string{
	circuit.Port_INPUT:  "input",
	circuit.Port_OUTPUT: "output",
	circuit.Port_INOUT:  "inout",
}

// verilogNetlister writes structural Verilog. Buses stay buses, and only
// subcircuit instances can be expressed.
type verilogNetlister struct {
	out io.Writer
}

func (n *verilogNetlister) WritePackage(pkg *circuit.Package) error {
	w := &writer{}
	st, err := newPackageState(pkg, verilogPrefix)
	if err != nil {
		return err
	}
	for _, line := range headerLines(pkg) {
		if line == "" {
			w.writeln("//")
			continue
		}
		w.writeln("// ", line)
	}
	w.writeln()
	for _, m := range pkg.GetModules() {
		if err := n.writeModule(w, st, m); err != nil {
			return errors.Wrapf(err, "failed to netlist module %s", m.Name)
		}
	}
	return w.flushTo(n.out)
}

func (n *verilogNetlister) WriteSimInput(*spice.SimInput) error {
	return unsupported("simulation input in Verilog")
}

func widthDecl(s *circuit.Signal) string {
	if s.Width == 1 {
		return ""
	}
	return "[" + strconv.FormatInt(s.Width-1, 10) + ":0] "
}

func (n *verilogNetlister) writeModule(w *writer, st *packageState, m *circuit.Module) error {
	name, err := st.define(m)
	if err != nil {
		return err
	}
	sigs, err := newSignalTable(m)
	if err != nil {
		return err
	}
	params, err := st.moduleParams(m)
	if err != nil {
		return err
	}

	open := "module " + name
	if params.len() > 0 {
		w.writeln(open, " #(")
		decls := make([]string, 0, params.len())
		for _, k := range params.names {
			d := "  parameter " + k
			if v := params.values[k]; v != "" {
				d += " = " + v
			}
			decls = append(decls, d)
		}
		w.writeln(strings.Join(decls, ",\n"))
		open = ")"
	}
	if len(m.Ports) == 0 {
		w.writeln(open, ";")
	} else {
		w.writeln(open, " (")
		decls := make([]string, 0, len(m.Ports))
		for _, p := range m.Ports {
			dir, ok := portDirections[p.Direction]
			if !ok {
				return errors.Errorf("port %s has no direction", p.Signal)
			}
			decls = append(decls, "  "+dir+" wire "+widthDecl(sigs.byName[p.Signal])+p.Signal)
		}
		w.writeln(strings.Join(decls, ",\n"))
		w.writeln(");")
	}
	w.writeln()

	w.indent = "  "
	if internal := sigs.internal(); len(internal) > 0 {
		w.writeln("// Signal Declarations")
		for _, s := range internal {
			w.writeln("wire ", widthDecl(s), s.Name, ";")
		}
		w.writeln()
	}
	if len(m.Instances) > 0 {
		w.writeln("// Instance Declarations")
		for _, inst := range m.Instances {
			if err := n.writeInstance(w, st, sigs, inst); err != nil {
				return errors.Wrapf(err, "instance %s", inst.Name)
			}
		}
		w.writeln()
	}
	for _, lit := range m.Literals {
		w.writeln(lit)
	}
	w.indent = ""
	w.writeln("endmodule // ", name)
	w.writeln()
	return nil
}

func (n *verilogNetlister) writeInstance(w *writer, st *packageState, sigs *signalTable, inst *circuit.Instance) error {
	mod, err := st.resolve(inst.Module)
	if err != nil {
		return err
	}
	if mod.kind != subcktRef {
		return unsupported("%s instances in Verilog", mod.spicetype)
	}
	conns, err := sigs.connect(inst, mod)
	if err != nil {
		return err
	}
	params, err := st.instanceParams(inst, mod)
	if err != nil {
		return err
	}

	head := mod.name + " "
	if params.len() > 0 {
		head += "#(" + params.join(func(k, v string) string { return "." + k + "(" + v + ")," })
		head = strings.TrimSuffix(head, ",") + ") "
	}
	head += inst.Name
	if len(conns) == 0 {
		w.writeln(head, " ();")
		return nil
	}

	w.writeln(head, " (")
	lines := make([]string, 0, len(conns))
	for _, c := range conns {
		target, err := sigs.verilogTarget(c.target)
		if err != nil {
			return errors.Wrapf(err, "port %s", c.port)
		}
		lines = append(lines, w.indent+"  ."+c.port+"("+target+")")
	}
	w.writeln(strings.TrimPrefix(strings.Join(lines, ",\n"), w.indent))
	w.writeln(");")
	return nil
}

func (t *signalTable) verilogTarget(target *circuit.ConnectionTarget) (string, error) {
	switch target.WhichStype() {
	case "sig":
		if _, err := t.signal(*target.Sig); err != nil {
			return "", err
		}
		return *target.Sig, nil
	case "slice":
		sl := target.Slice
		if _, err := t.slice(sl); err != nil {
			return "", err
		}
		if sl.Top == sl.Bot {
			return sl.Signal + "[" + strconv.FormatInt(sl.Top, 10) + "]", nil
		}
		return sl.Signal + "[" + strconv.FormatInt(sl.Top, 10) + ":" + strconv.FormatInt(sl.Bot, 10) + "]", nil
	case "concat":
		parts := make([]string, 0, len(target.Concat.Parts))
		for _, p := range target.Concat.Parts {
			s, err := t.verilogTarget(p)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	}
	return "", errors.New("connection target is not set")
}
