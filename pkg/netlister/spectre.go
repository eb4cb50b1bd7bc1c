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
	"strings"

	"github.com/pkg/errors"

	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
)

// spectrePrimitive maps an element to a Spectre master, renaming parameters
// to its Spectre names. A non-empty kind is written as the type parameter.
type spectrePrimitive struct {
	master  string
	kind    string
	renames [][2]string
}

var spectreElements = map[circuit.SpiceType]spectrePrimitive{
	circuit.SpiceType_RESISTOR:  {master: "resistor"},
	circuit.SpiceType_CAPACITOR: {master: "capacitor"},
	circuit.SpiceType_INDUCTOR:  {master: "inductor"},
	circuit.SpiceType_ISOURCE:   {master: "isource", kind: "dc"},
	circuit.SpiceType_VCVS:      {master: "vcvs"},
	circuit.SpiceType_VCCS:      {master: "vccs", renames: [][2]string{{"gain", "gm"}}},
	circuit.SpiceType_CCCS:      {master: "cccs"},
	circuit.SpiceType_CCVS:      {master: "ccvs", renames: [][2]string{{"gain", "rm"}}},
}

var spectreSources = map[string]spectrePrimitive{
	"vdc": {master: "vsource", kind: "dc", renames: [][2]string{{"ac", "mag"}}},
	"vpulse": {master: "vsource", kind: "pulse", renames: [][2]string{
		{"v1", "val0"}, {"v2", "val1"}, {"td", "delay"}, {"tr", "rise"},
		{"tf", "fall"}, {"tpw", "width"}, {"tper", "period"},
	}},
	"vsin": {master: "vsource", kind: "sine", renames: [][2]string{
		{"voff", "sinedc"}, {"vamp", "ampl"}, {"td", "delay"}, {"phase", "sinephase"},
	}},
}

type spectreNetlister struct {
	out io.Writer
}

func (n *spectreNetlister) comment(w *writer, s string) {
	if s == "" {
		w.writeln("//")
		return
	}
	w.writeln("// ", s)
}

func (n *spectreNetlister) WritePackage(pkg *circuit.Package) error {
	w := &writer{}
	if _, err := n.writePackage(w, pkg, false); err != nil {
		return err
	}
	return w.flushTo(n.out)
}

func (n *spectreNetlister) writePackage(w *writer, pkg *circuit.Package, sim bool) (*packageState, error) {
	st, err := newPackageState(pkg, spectrePrefix)
	if err != nil {
		return nil, err
	}
	st.requireDefs = true

	for _, line := range headerLines(pkg) {
		n.comment(w, line)
	}
	w.writeln()
	if sim {
		w.writeln("global 0")
		w.writeln()
	}
	for _, m := range pkg.GetModules() {
		if err := n.writeModule(w, st, m); err != nil {
			return nil, errors.Wrapf(err, "failed to netlist module %s", m.Name)
		}
	}
	return st, nil
}

func (n *spectreNetlister) writeModule(w *writer, st *packageState, m *circuit.Module) error {
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

	header := []string{"subckt", name}
	for _, p := range m.Ports {
		header = append(header, signalBits(sigs.byName[p.Signal])...)
	}
	w.writeln(strings.Join(header, " "))
	w.indent = "  "
	if params.len() > 0 {
		w.writeln("parameters ", params.join(func(k, v string) string { return k + "=" + v }))
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
	w.indent = ""
	w.writeln("ends ", name)
	w.writeln()
	return nil
}

func (n *spectreNetlister) writeInstance(w *writer, st *packageState, sigs *signalTable, inst *circuit.Instance) error {
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

	var bits []string
	for _, c := range conns {
		b, err := sigs.bits(c.target)
		if err != nil {
			return err
		}
		bits = append(bits, b...)
	}

	master := mod.name
	if mod.kind == primitiveRef {
		if master, params, err = spectreElement(mod, params); err != nil {
			return err
		}
	}

	line := inst.Name + " (" + strings.Join(bits, " ") + ") " + master
	if params.len() > 0 {
		line += " " + params.join(func(k, v string) string { return k + "=" + v })
	}
	w.writeln(line)
	return nil
}

func spectreElement(mod *resolvedModule, params *paramList) (string, *paramList, error) {
	prim, ok := spectreElements[mod.spicetype]
	if mod.spicetype == circuit.SpiceType_VSOURCE {
		prim, ok = spectreSources[mod.name]
	}
	if !ok {
		return "", nil, unsupported("%s primitive %s", mod.spicetype, mod.name)
	}
	for _, r := range prim.renames {
		params.rename(r[0], r[1])
	}
	if prim.kind == "" {
		return prim.master, params, nil
	}
	typed := newParamList()
	typed.set("type", prim.kind)
	for _, k := range params.names {
		typed.set(k, params.values[k])
	}
	return prim.master, typed, nil
}

func (n *spectreNetlister) WriteSimInput(inp *spice.SimInput) error {
	w := &writer{}
	if err := n.writeSimInput(w, inp); err != nil {
		return err
	}
	return w.flushTo(n.out)
}

func (n *spectreNetlister) writeSimInput(w *writer, inp *spice.SimInput) error {
	if inp.GetPkg() == nil {
		return errors.New("simulation input has no package")
	}
	w.writeln("simulator lang=spectre")
	w.writeln()
	st, err := n.writePackage(w, inp.Pkg, true)
	if err != nil {
		return err
	}
	top, nets, err := topModule(st, inp.Top)
	if err != nil {
		return err
	}
	w.writef("%s (%s) %s", topName, strings.Join(nets, " "), top)
	w.writeln()

	if len(inp.Opts) > 0 {
		opts := newParamList()
		for _, opt := range inp.Opts {
			v, err := formatValue(opt.Value, spectrePrefix)
			if err != nil {
				return errors.Wrapf(err, "option %s", opt.Name)
			}
			opts.set(opt.Name, v)
		}
		w.writeln("simulatorOptions options ", opts.join(func(k, v string) string { return k + "=" + v }))
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
	return nil
}

func (n *spectreNetlister) writeControl(w *writer, ctrl *spice.Control) error {
	switch ctrl.WhichCtrl() {
	case "include":
		w.writef("include %q", ctrl.Include.Path)
	case "lib":
		w.writef("include %q section=%s", ctrl.Lib.Path, ctrl.Lib.Section)
	case "save":
		switch ctrl.Save.WhichSave() {
		case "mode":
			mode := "none"
			if *ctrl.Save.Mode == spice.Save_ALL {
				mode = "all"
			}
			w.writeln("saveOptions options save=", mode)
		case "signal":
			w.writeln("save ", *ctrl.Save.Signal)
		default:
			return errors.New("save control is not set")
		}
	case "meas":
		// Measurements are SPICE syntax.
		w.writeln("simulator lang=spice")
		w.writef(".meas %s %s %s", ctrl.Meas.AnalysisType, ctrl.Meas.Name, ctrl.Meas.Expr)
		w.writeln("simulator lang=spectre")
	case "param":
		v, err := formatValue(ctrl.Param.Value, spectrePrefix)
		if err != nil {
			return errors.Wrapf(err, "simulation parameter %s", ctrl.Param.Name)
		}
		w.writef("parameters %s=%s", ctrl.Param.Name, v)
	case "literal":
		w.writeln(*ctrl.Literal)
	default:
		return errors.New("control is not set")
	}
	return nil
}

func (n *spectreNetlister) writeAnalysis(w *writer, an *spice.Analysis) error {
	switch an.WhichAn() {
	case "op":
		name, err := analysisName("op", an.Op.AnalysisName, an.Op.Ctrls)
		if err != nil {
			return err
		}
		w.writeln(name, " dc oppoint=rawfile")
	case "dc":
		dc := an.Dc
		name, err := analysisName("dc", dc.AnalysisName, dc.Ctrls)
		if err != nil {
			return err
		}
		switch dc.Sweep.WhichTp() {
		case "linear":
			l := dc.Sweep.Linear
			w.writef("%s dc param=%s start=%s stop=%s step=%s", name, dc.IndepName,
				formatFloat(l.Start), formatFloat(l.Stop), formatFloat(l.Step))
		case "log":
			l := dc.Sweep.Log
			w.writef("%s dc param=%s start=%s stop=%s log=%s", name, dc.IndepName,
				formatFloat(l.Start), formatFloat(l.Stop), formatFloat(l.Npts))
		case "points":
			var pts []string
			for _, p := range dc.Sweep.Points.Points {
				pts = append(pts, formatFloat(p))
			}
			w.writef("%s dc param=%s values=[%s]", name, dc.IndepName, strings.Join(pts, " "))
		default:
			return errors.Errorf("dc analysis %s has no sweep", name)
		}
	case "tran":
		tran := an.Tran
		name, err := analysisName("tran", tran.AnalysisName, tran.Ctrls)
		if err != nil {
			return err
		}
		if len(tran.Ic) > 0 {
			var ics []string
			for _, k := range sortedKeys(tran.Ic) {
				ics = append(ics, k+"="+formatFloat(tran.Ic[k]))
			}
			w.writeln("ic ", strings.Join(ics, " "))
		}
		line := name + " tran stop=" + formatFloat(tran.Tstop)
		if tran.Tstep > 0 {
			line += " step=" + formatFloat(tran.Tstep)
		}
		w.writeln(line)
	case "ac":
		ac := an.Ac
		name, err := analysisName("ac", ac.AnalysisName, ac.Ctrls)
		if err != nil {
			return err
		}
		if err := checkFrequencies(name, ac.Fstart, ac.Fstop, ac.Npts); err != nil {
			return err
		}
		w.writef("%s ac start=%s stop=%s dec=%d", name, formatFloat(ac.Fstart), formatFloat(ac.Fstop), ac.Npts)
	case "noise":
		noise := an.Noise
		name, err := analysisName("noise", noise.AnalysisName, noise.Ctrls)
		if err != nil {
			return err
		}
		if err := checkFrequencies(name, noise.Fstart, noise.Fstop, noise.Npts); err != nil {
			return err
		}
		if noise.OutputP == "" || noise.InputSource == "" {
			return errors.Errorf("noise analysis %s needs an output and an input source", name)
		}
		outn := "0"
		if noise.OutputN != "" {
			outn = topName + "." + noise.OutputN
		}
		w.writef("%s (%s.%s %s) noise start=%s stop=%s dec=%d iprobe=%s.%s", name, topName, noise.OutputP, outn,
			formatFloat(noise.Fstart), formatFloat(noise.Fstop), noise.Npts, topName, noise.InputSource)
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
