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

type spiceDialect int

const (
	dialectSpice spiceDialect = iota
	dialectHspice
	dialectNgspice
	dialectXyce
)

// instancePrefixes are the SPICE element letters by spice type.
var instancePrefixes = map[circuit.SpiceType]string{
	circuit.SpiceType_SUBCKT:    "x",
	circuit.SpiceType_RESISTOR:  "r",
	circuit.SpiceType_CAPACITOR: "c",
	circuit.SpiceType_INDUCTOR:  "l",
	circuit.SpiceType_MOS:       "m",
	circuit.SpiceType_DIODE:     "d",
	circuit.SpiceType_BIPOLAR:   "q",
	circuit.SpiceType_VSOURCE:   "v",
	circuit.SpiceType_ISOURCE:   "i",
	circuit.SpiceType_VCVS:      "e",
	circuit.SpiceType_VCCS:      "g",
	circuit.SpiceType_CCCS:      "f",
	circuit.SpiceType_CCVS:      "h",
	circuit.SpiceType_TLINE:     "o",
}

// valueParams name the parameter written as the bare value of single-valued elements.
var valueParams = map[circuit.SpiceType]string{
	circuit.SpiceType_RESISTOR:  "r",
	circuit.SpiceType_CAPACITOR: "c",
	circuit.SpiceType_INDUCTOR:  "l",
	circuit.SpiceType_ISOURCE:   "dc",
	circuit.SpiceType_VCVS:      "gain",
	circuit.SpiceType_VCCS:      "gain",
	circuit.SpiceType_CCCS:      "gain",
	circuit.SpiceType_CCVS:      "gain",
}

var (
	pulseParams = []string{"v1", "v2", "td", "tr", "tf", "tpw", "tper"}
	sineParams  = []string{"voff", "vamp", "freq", "td", "phase"}
)

// spiceNetlister writes SPICE decks. Xyce differs from the other dialects in
// its comments, expressions and PARAMS: keyword.
type spiceNetlister struct {
	dialect spiceDialect
	out     io.Writer
}

func (n *spiceNetlister) comment(w *writer, s string) {
	mark := "*"
	if n.dialect == dialectXyce {
		mark = ";"
	}
	if s == "" {
		w.writeln(mark)
		return
	}
	w.writeln(mark, " ", s)
}

func (n *spiceNetlister) expr(s string) string {
	if n.dialect == dialectXyce {
		return "{" + s + "}"
	}
	return "'" + s + "'"
}

func (n *spiceNetlister) quote(path string) string {
	if n.dialect == dialectNgspice {
		return strconv.Quote(path)
	}
	return "'" + path + "'"
}

func (n *spiceNetlister) WritePackage(pkg *circuit.Package) error {
	w := &writer{}
	if _, err := n.writePackage(w, pkg); err != nil {
		return err
	}
	return w.flushTo(n.out)
}

func (n *spiceNetlister) writePackage(w *writer, pkg *circuit.Package) (*packageState, error) {
	st, err := newPackageState(pkg, spicePrefix)
	if err != nil {
		return nil, err
	}
	st.requireDefs = true

	for _, line := range headerLines(pkg) {
		n.comment(w, line)
	}
	w.writeln()
	for _, m := range pkg.GetModules() {
		if err := n.writeModule(w, st, m); err != nil {
			return nil, errors.Wrapf(err, "failed to netlist module %s", m.Name)
		}
	}
	return st, nil
}

func (n *spiceNetlister) writeModule(w *writer, st *packageState, m *circuit.Module) error {
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

	w.writeln(".SUBCKT ", name)
	if len(m.Ports) == 0 {
		n.comment(w, "No ports")
	} else {
		var bits []string
		for _, p := range m.Ports {
			bits = append(bits, signalBits(sigs.byName[p.Signal])...)
		}
		w.writeln("+ ", strings.Join(bits, " "))
	}
	if params.len() == 0 {
		n.comment(w, "No parameters")
	} else {
		lead := "+ "
		if n.dialect == dialectXyce {
			lead = "+ PARAMS: "
		}
		w.writeln(lead, params.join(func(k, v string) string { return k + "=" + v }))
	}
	w.writeln()

	for _, inst := range m.Instances {
		if err := n.writeInstance(w, st, sigs, inst); err != nil {
			return errors.Wrapf(err, "instance %s", inst.Name)
		}
	}
	for _, lit := range m.Literals {
		w.writeln(lit)
	}
	w.writeln(".ENDS")
	w.writeln()
	return nil
}

func (n *spiceNetlister) writeInstance(w *writer, st *packageState, sigs *signalTable, inst *circuit.Instance) error {
	mod, err := st.resolve(inst.Module)
	if err != nil {
		return err
	}
	conns, err := sigs.connect(inst, mod)
	if err != nil {
		return err
	}
	params, err := st.instanceParams(inst, mod)
	if err != nil {
		return err
	}
	prefix, ok := instancePrefixes[mod.spicetype]
	if !ok {
		return errors.Errorf("invalid spice type %d", int32(mod.spicetype))
	}

	w.writeln(prefix, inst.Name)
	if len(conns) == 0 {
		n.comment(w, "No ports")
	} else {
		var bits []string
		for _, c := range conns {
			b, err := sigs.bits(c.target)
			if err != nil {
				return err
			}
			bits = append(bits, b...)
		}
		w.writeln("+ ", strings.Join(bits, " "))
	}

	switch mod.kind {
	case subcktRef:
		w.writeln("+ ", mod.name)
		n.writeInstanceParams(w, params, n.dialect == dialectXyce)
	case modelRef:
		w.writeln("+ ", mod.name)
		n.writeInstanceParams(w, params, false)
	case primitiveRef:
		if err := n.writePrimitive(w, mod, params); err != nil {
			return err
		}
	}
	w.writeln()
	return nil
}

func (n *spiceNetlister) writeInstanceParams(w *writer, params *paramList, keyword bool) {
	if params.len() == 0 {
		n.comment(w, "No parameters")
		return
	}
	lead := "+ "
	if keyword {
		lead = "+ PARAMS: "
	}
	w.writeln(lead, params.join(func(k, v string) string { return k + "=" + n.expr(v) }))
}

// writePrimitive writes the positional values of an element, then any other
// parameters by name.
func (n *spiceNetlister) writePrimitive(w *writer, mod *resolvedModule, params *paramList) error {
	if key, ok := valueParams[mod.spicetype]; ok {
		v, err := params.pop(key)
		if err != nil {
			return err
		}
		w.writeln("+ ", v)
	} else if mod.spicetype == circuit.SpiceType_VSOURCE {
		switch mod.name {
		case "vdc":
			vals, err := params.popMany("dc", "ac")
			if err != nil {
				return err
			}
			w.writeln("+ dc ", n.expr(vals[0]))
			w.writeln("+ ac ", n.expr(vals[1]))
		case "vpulse":
			vals, err := params.popMany(pulseParams...)
			if err != nil {
				return err
			}
			w.writeln("+ pulse (", n.exprs(vals), ")")
		case "vsin":
			vals, err := params.popMany(sineParams...)
			if err != nil {
				return err
			}
			w.writeln("+ sin (", n.exprs(vals), ")")
		default:
			return unsupported("voltage source %s", mod.name)
		}
	} else {
		return unsupported("%s primitive %s", mod.spicetype, mod.name)
	}

	if params.len() > 0 {
		n.writeInstanceParams(w, params, false)
	}
	return nil
}

func (n *spiceNetlister) exprs(vals []string) string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		res = append(res, n.expr(v))
	}
	return strings.Join(res, " ")
}

func (n *spiceNetlister) WriteSimInput(inp *spice.SimInput) error {
	w := &writer{}
	if err := n.writeSimInput(w, inp); err != nil {
		return err
	}
	return w.flushTo(n.out)
}

func (n *spiceNetlister) writeSimInput(w *writer, inp *spice.SimInput) error {
	if inp.GetPkg() == nil {
		return errors.New("simulation input has no package")
	}
	st, err := n.writePackage(w, inp.Pkg)
	if err != nil {
		return err
	}
	top, nets, err := topModule(st, inp.Top)
	if err != nil {
		return err
	}
	w.writeln(strings.Join(append(append([]string{topName}, nets...), top), " "))
	w.writeln()

	for _, opt := range inp.Opts {
		if n.dialect == dialectXyce {
			return unsupported("Xyce simulation options")
		}
		v, err := formatValue(opt.Value, spicePrefix)
		if err != nil {
			return errors.Wrapf(err, "option %s", opt.Name)
		}
		w.writef(".option %s=%s", opt.Name, v)
	}
	for _, ctrl := range inp.Ctrls {
		if err := n.writeControl(w, ctrl); err != nil {
			return err
		}
	}
	for _, an := range inp.An {
		if err := n.writeAnalysis(w, an); err != nil {
			return err
		}
	}
	w.writeln(".end")
	return nil
}

func (n *spiceNetlister) writeControl(w *writer, ctrl *spice.Control) error {
	switch ctrl.WhichCtrl() {
	case "include":
		w.writeln(".include ", n.quote(ctrl.Include.Path))
	case "lib":
		w.writef(".lib %s %s", n.quote(ctrl.Lib.Path), ctrl.Lib.Section)
	case "save":
		if n.dialect == dialectXyce {
			return unsupported("Xyce save controls")
		}
		switch ctrl.Save.WhichSave() {
		case "mode":
			if *ctrl.Save.Mode == spice.Save_ALL {
				w.writeln(".save all")
			}
		case "signal":
			w.writeln(".save ", *ctrl.Save.Signal)
		default:
			return errors.New("save control is not set")
		}
	case "meas":
		w.writef(".meas %s %s %s", ctrl.Meas.AnalysisType, ctrl.Meas.Name, ctrl.Meas.Expr)
	case "param":
		v, err := formatValue(ctrl.Param.Value, spicePrefix)
		if err != nil {
			return errors.Wrapf(err, "simulation parameter %s", ctrl.Param.Name)
		}
		w.writef(".param %s=%s", ctrl.Param.Name, v)
	case "literal":
		w.writeln(*ctrl.Literal)
	default:
		return errors.New("control is not set")
	}
	return nil
}

func (n *spiceNetlister) writeAnalysis(w *writer, an *spice.Analysis) error {
	switch an.WhichAn() {
	case "op":
		if _, err := analysisName("op", an.Op.AnalysisName, an.Op.Ctrls); err != nil {
			return err
		}
		w.writeln(".op")
	case "dc":
		dc := an.Dc
		name, err := analysisName("dc", dc.AnalysisName, dc.Ctrls)
		if err != nil {
			return err
		}
		switch dc.Sweep.WhichTp() {
		case "linear":
			l := dc.Sweep.Linear
			w.writef(".dc %s %s %s %s", dc.IndepName, formatFloat(l.Start), formatFloat(l.Stop), formatFloat(l.Step))
		case "log", "points":
			return unsupported("%s sweep in dc analysis %s", dc.Sweep.WhichTp(), name)
		default:
			return errors.Errorf("dc analysis %s has no sweep", name)
		}
	case "tran":
		tran := an.Tran
		if _, err := analysisName("tran", tran.AnalysisName, tran.Ctrls); err != nil {
			return err
		}
		if len(tran.Ic) > 0 {
			var ics []string
			for _, k := range sortedKeys(tran.Ic) {
				ics = append(ics, "v("+k+")="+formatFloat(tran.Ic[k]))
			}
			w.writeln(".ic ", strings.Join(ics, " "))
		}
		w.writef(".tran %s %s", formatFloat(tran.Tstep), formatFloat(tran.Tstop))
	case "ac":
		ac := an.Ac
		name, err := analysisName("ac", ac.AnalysisName, ac.Ctrls)
		if err != nil {
			return err
		}
		if err := checkFrequencies(name, ac.Fstart, ac.Fstop, ac.Npts); err != nil {
			return err
		}
		w.writef(".ac dec %d %s %s", ac.Npts, formatFloat(ac.Fstart), formatFloat(ac.Fstop))
	case "noise":
		return n.writeNoise(w, an.Noise)
	case "custom":
		if _, err := analysisName("custom", an.Custom.AnalysisName, an.Custom.Ctrls); err != nil {
			return err
		}
		w.writeln(an.Custom.Cmd)
	case "sweep":
		return unsupported("sweep analysis %s", an.Sweep.AnalysisName)
	case "monte":
		return unsupported("monte carlo analysis %s", an.Monte.AnalysisName)
	default:
		return errors.New("analysis is not set")
	}
	return nil
}

// writeNoise uses the Ngspice hierarchical reference syntax: v.<path> for
// nets and sources inside the device under test.
func (n *spiceNetlister) writeNoise(w *writer, noise *spice.NoiseInput) error {
	name, err := analysisName("noise", noise.AnalysisName, noise.Ctrls)
	if err != nil {
		return err
	}
	if n.dialect != dialectNgspice {
		return unsupported("noise analysis %s outside Ngspice", name)
	}
	if err := checkFrequencies(name, noise.Fstart, noise.Fstop, noise.Npts); err != nil {
		return err
	}
	if noise.OutputP == "" || noise.InputSource == "" {
		return errors.Errorf("noise analysis %s needs an output and an input source", name)
	}

	output := "v(v." + topName + "." + noise.OutputP
	if noise.OutputN != "" {
		output += ", v." + topName + "." + noise.OutputN
	}
	output += ")"
	source := "v." + topName + ".v" + noise.InputSource

	w.writeln(".save all")
	w.writef(".noise %s %s dec %d %s %s", output, source, noise.Npts, formatFloat(noise.Fstart), formatFloat(noise.Fstop))
	return nil
}
