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
	"github.com/vlsir/vlsir-go/pkg/primitives"
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
)

func ptr[T any](v T) *T { return &v }

func signal(name string, width int64) *circuit.Signal {
	return &circuit.Signal{Name: name, Width: width}
}

func port(name string, dir circuit.Port_Direction) *circuit.Port {
	return &circuit.Port{Signal: name, Direction: dir}
}

func local(name string) *utils.Reference {
	return &utils.Reference{Local: ptr(name)}
}

func external(domain, name string) *utils.Reference {
	return &utils.Reference{External: &utils.QualifiedName{Domain: domain, Name: name}}
}

func sig(name string) *circuit.ConnectionTarget {
	return &circuit.ConnectionTarget{Sig: ptr(name)}
}

func slice(name string, top, bot int64) *circuit.ConnectionTarget {
	return &circuit.ConnectionTarget{Slice: &circuit.Slice{Signal: name, Top: top, Bot: bot}}
}

func concat(parts ...*circuit.ConnectionTarget) *circuit.ConnectionTarget {
	return &circuit.ConnectionTarget{Concat: &circuit.Concat{Parts: parts}}
}

func conn(port string, target *circuit.ConnectionTarget) *circuit.Connection {
	return &circuit.Connection{Portname: port, Target: target}
}

func intParam(name string, v int64) *utils.Param {
	return &utils.Param{Name: name, Value: &utils.ParamValue{Int64Value: ptr(v)}}
}

func doubleParam(name string, v float64) *utils.Param {
	return &utils.Param{Name: name, Value: &utils.ParamValue{DoubleValue: ptr(v)}}
}

func literalParam(name, v string) *utils.Param {
	return &utils.Param{Name: name, Value: &utils.ParamValue{Literal: ptr(v)}}
}

func prefixedParam(name string, v int64, prefix utils.SIPrefix) *utils.Param {
	return &utils.Param{Name: name, Value: &utils.ParamValue{
		Prefixed: &utils.Prefixed{Prefix: prefix, Int64Value: ptr(v)},
	}}
}

// inverterPackage is a CMOS inverter built from MOS device models.
func inverterPackage() *circuit.Package {
	return &circuit.Package{
		Domain:     "example.inverters",
		ExtModules: []*circuit.ExternalModule{primitives.Mos("nch"), primitives.Mos("pch")},
		Modules: []*circuit.Module{{
			Name: "example.inverters.inv",
			Ports: []*circuit.Port{
				port("i", circuit.Port_INPUT),
				port("o", circuit.Port_OUTPUT),
				port("vdd", circuit.Port_INOUT),
				port("vss", circuit.Port_INOUT),
			},
			Signals:    []*circuit.Signal{signal("i", 1), signal("o", 1), signal("vdd", 1), signal("vss", 1)},
			Parameters: []*utils.Param{prefixedParam("wn", 1, utils.SIPrefix_MICRO)},
			Instances: []*circuit.Instance{
				{
					Name:       "n",
					Module:     external(primitives.MosDomain, "nch"),
					Parameters: []*utils.Param{literalParam("w", "wn"), prefixedParam("l", 150, utils.SIPrefix_NANO)},
					Connections: []*circuit.Connection{
						conn("d", sig("o")), conn("g", sig("i")), conn("s", sig("vss")), conn("b", sig("vss")),
					},
				},
				{
					Name:       "p",
					Module:     external(primitives.MosDomain, "pch"),
					Parameters: []*utils.Param{literalParam("w", "2*wn")},
					Connections: []*circuit.Connection{
						conn("d", sig("o")), conn("g", sig("i")), conn("s", sig("vdd")), conn("b", sig("vdd")),
					},
				},
			},
		}},
	}
}

// busPackage exercises buses, slices and concatenations.
func busPackage() *circuit.Package {
	return &circuit.Package{
		Domain: "example.top",
		Modules: []*circuit.Module{
			{
				Name:       "leaf",
				Ports:      []*circuit.Port{port("a", circuit.Port_INPUT), port("y", circuit.Port_OUTPUT)},
				Signals:    []*circuit.Signal{signal("a", 2), signal("y", 1)},
				Parameters: []*utils.Param{intParam("gain", 1)},
			},
			{
				Name:    "top",
				Ports:   []*circuit.Port{port("din", circuit.Port_INPUT), port("dout", circuit.Port_OUTPUT)},
				Signals: []*circuit.Signal{signal("din", 3), signal("dout", 1), signal("x", 1)},
				Instances: []*circuit.Instance{
					{
						Name:        "u0",
						Module:      local("leaf"),
						Parameters:  []*utils.Param{prefixedParam("gain", 5, utils.SIPrefix_KILO)},
						Connections: []*circuit.Connection{conn("a", slice("din", 2, 1)), conn("y", sig("x"))},
					},
					{
						Name:        "u1",
						Module:      local("leaf"),
						Connections: []*circuit.Connection{conn("a", concat(sig("x"), slice("din", 0, 0))), conn("y", sig("dout"))},
					},
				},
			},
		},
	}
}

// testbench drives a resistor from a DC source.
func testbench() *circuit.Package {
	return &circuit.Package{
		Domain: "example.tb",
		Modules: []*circuit.Module{{
			Name:    "tb",
			Ports:   []*circuit.Port{port("VSS", circuit.Port_NONE)},
			Signals: []*circuit.Signal{signal("VSS", 1), signal("out", 1)},
			Instances: []*circuit.Instance{
				{
					Name:        "src",
					Module:      external(primitives.Domain, "vdc"),
					Parameters:  []*utils.Param{doubleParam("dc", 1.8)},
					Connections: []*circuit.Connection{conn("p", sig("out")), conn("n", sig("VSS"))},
				},
				{
					Name:        "load",
					Module:      external(primitives.Domain, "resistor"),
					Parameters:  []*utils.Param{prefixedParam("r", 1, utils.SIPrefix_KILO)},
					Connections: []*circuit.Connection{conn("p", sig("out")), conn("n", sig("VSS"))},
				},
			},
		}},
	}
}

func simInput(include, lib string) *spice.SimInput {
	return &spice.SimInput{
		Pkg:  testbench(),
		Top:  "tb",
		Opts: []*spice.SimOptions{{Name: "reltol", Value: &utils.ParamValue{DoubleValue: ptr(0.001)}}},
		Ctrls: []*spice.Control{
			{Include: &spice.Include{Path: include}},
			{Lib: &spice.LibInclude{Path: lib, Section: "tt"}},
			{Param: doubleParam("vdd", 1.8)},
			{Meas: &spice.Meas{AnalysisType: "tran", Name: "tdelay", Expr: "trig v(out) val=0.9 rise=1"}},
		},
		An: []*spice.Analysis{
			{Op: &spice.OpInput{AnalysisName: "op1"}},
			{Dc: &spice.DcInput{AnalysisName: "dc1", IndepName: "vdd", Sweep: &spice.Sweep{
				Linear: &spice.LinearSweep{Start: 0, Stop: 1.8, Step: 0.1},
			}}},
			{Ac: &spice.AcInput{AnalysisName: "ac1", Fstart: 1, Fstop: 1e9, Npts: 10}},
			{Tran: &spice.TranInput{AnalysisName: "tran1", Tstop: 1e-9, Tstep: 1e-12}},
			{Noise: &spice.NoiseInput{AnalysisName: "noise1", OutputP: "out", InputSource: "src", Fstart: 1, Fstop: 1e6, Npts: 10}},
		},
	}
}

// devicesPackage instantiates every two-terminal element and one model of each
// device type.
func devicesPackage() *circuit.Package {
	mos := primitives.Mos("mos1", primitives.WithDomain("mymodels"))
	diode := primitives.Diode("d1", primitives.WithDomain("mymodels"))
	bjt := primitives.Bipolar("bjt1", primitives.WithDomain("mymodels"))
	tline := primitives.Tline("t1", primitives.WithDomain("mymodels"))
	model := func(emod *circuit.ExternalModule) *utils.Reference {
		return external(emod.Name.Domain, emod.Name.Name)
	}
	element := func(name, prim string, params ...*utils.Param) *circuit.Instance {
		return &circuit.Instance{
			Name:        name,
			Module:      external(primitives.Domain, prim),
			Parameters:  params,
			Connections: []*circuit.Connection{conn("p", sig("vvv")), conn("n", sig("VSS"))},
		}
	}
	vss := func(ports ...string) []*circuit.Connection {
		res := make([]*circuit.Connection, 0, len(ports))
		for _, p := range ports {
			res = append(res, conn(p, sig("VSS")))
		}
		return res
	}

	return &circuit.Package{
		Domain:     "vlsir.tests.devices",
		ExtModules: []*circuit.ExternalModule{mos, diode, bjt, tline},
		Modules: []*circuit.Module{
			{
				Name:       "mid",
				Parameters: []*utils.Param{doubleParam("r", 1e3), doubleParam("l", 1e-9), doubleParam("c", 1e-15)},
				Ports:      []*circuit.Port{port("vvv", circuit.Port_NONE), port("VSS", circuit.Port_NONE)},
				Signals:    []*circuit.Signal{signal("vvv", 1), signal("VSS", 1)},
				Instances: []*circuit.Instance{
					element("r", "resistor", doubleParam("r", 1e3)),
					element("l", "inductor", doubleParam("l", 1e-9)),
					element("c", "capacitor", doubleParam("c", 1e-15)),
					element("v", "vdc", doubleParam("dc", 1.1), doubleParam("ac", 0)),
					element("i", "isource", doubleParam("dc", 1e-6)),
					{Name: "m", Module: model(mos), Connections: vss("d", "g", "s", "b")},
					{Name: "q", Module: model(bjt), Connections: vss("c", "b", "e")},
					{
						Name:        "d",
						Module:      model(diode),
						Connections: []*circuit.Connection{conn("p", sig("vvv")), conn("n", sig("VSS"))},
					},
					{Name: "t", Module: model(tline), Connections: vss("p1p", "p1n", "p2p", "p2n")},
				},
			},
			{
				Name:    "top",
				Ports:   []*circuit.Port{port("VSS", circuit.Port_NONE)},
				Signals: []*circuit.Signal{signal("vvv", 1), signal("VSS", 1)},
				Instances: []*circuit.Instance{{
					Name:        "imid",
					Module:      local("mid"),
					Connections: []*circuit.Connection{conn("vvv", sig("vvv")), conn("VSS", sig("VSS"))},
				}},
			},
		},
	}
}
