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

package primitives

import (
	"sort"

	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
)

// Domain is the package domain of the primitive elements.
const Domain = "vlsir.primitives"

const packageDesc = `# Vlsir Primitive Modules

Defines ExternalModules for irreducible primitive elements in the namespace vlsir.primitives.
They largely parallel the elementary devices of SPICE-class simulators.

Absolute-value parameters, such as the resistance of resistor, are in SI units.
Every primitive also accepts pass-through parameters, which netlisters write unmodified.
`

type param struct {
	name string
	desc string
	def  *utils.ParamValue
}

type definition struct {
	name      string
	desc      string
	ports     []string
	params    []param
	spicetype circuit.SpiceType
}

var (
	twoTerminal  = []string{"p", "n"}
	fourTerminal = []string{"p", "n", "cp", "cn"}
)

// definitions are in package order.
var definitions = []definition{
	{
		name:      "resistor",
		desc:      "# Ideal Resistor\n\nPorts: (p, n)\nParams: r, resistance (in Ohms)\n\nCorresponds to the R-prefix element of SPICE-class simulators.\n",
		ports:     twoTerminal,
		params:    []param{{name: "r", desc: "Resistance (Ohms)"}},
		spicetype: circuit.SpiceType_RESISTOR,
	},
	{
		name:      "capacitor",
		desc:      "# Ideal Capacitor\n\nPorts: (p, n)\nParams: c, capacitance (in Farads)\n\nCorresponds to the C-prefix element of SPICE-class simulators.\n",
		ports:     twoTerminal,
		params:    []param{{name: "c", desc: "Capacitance (Farads)"}},
		spicetype: circuit.SpiceType_CAPACITOR,
	},
	{
		name:      "inductor",
		desc:      "# Ideal Inductor\n\nPorts: (p, n)\nParams: l, inductance (in Henries)\n\nCorresponds to the L-prefix element of SPICE-class simulators.\n",
		ports:     twoTerminal,
		params:    []param{{name: "l", desc: "Inductance (Henries)"}},
		spicetype: circuit.SpiceType_INDUCTOR,
	},
	{
		name:      "vcvs",
		desc:      "# Voltage-Controlled Voltage Source\n\nPorts: (p, n, cp, cn)\nParams: gain, voltage gain (in Volts/Volt)\n\nCorresponds to the E-prefix element of SPICE-class simulators.\n",
		ports:     fourTerminal,
		params:    []param{{name: "gain", desc: "Voltage Gain (Volts/Volt)"}},
		spicetype: circuit.SpiceType_VCVS,
	},
	{
		name:      "vccs",
		desc:      "# Voltage-Controlled Current Source\n\nPorts: (p, n, cp, cn)\nParams: gain, transconductance gain (in Amps/Volt)\n\nCorresponds to the G-prefix element of SPICE-class simulators.\n",
		ports:     fourTerminal,
		params:    []param{{name: "gain", desc: "Transconductance Gain (Amps/Volt)"}},
		spicetype: circuit.SpiceType_VCCS,
	},
	{
		name:      "cccs",
		desc:      "# Current-Controlled Current Source\n\nPorts: (p, n, cp, cn)\nParams: gain, current gain (in Amps/Amp)\n\nCorresponds to the F-prefix element of SPICE-class simulators.\n",
		ports:     fourTerminal,
		params:    []param{{name: "gain", desc: "Current Gain (Amps/Amp)"}},
		spicetype: circuit.SpiceType_CCCS,
	},
	{
		name:      "ccvs",
		desc:      "# Current-Controlled Voltage Source\n\nPorts: (p, n, cp, cn)\nParams: gain, transresistance gain (in Volts/Amp)\n\nCorresponds to the H-prefix element of SPICE-class simulators.\n",
		ports:     fourTerminal,
		params:    []param{{name: "gain", desc: "Transresistance Gain (Volts/Amp)"}},
		spicetype: circuit.SpiceType_CCVS,
	},
	{
		name:      "isource",
		desc:      "# Independent Current Source\n\nPorts: (p, n)\nParams: dc, dc current (in Amps)\n\nCorresponds to the I-prefix element of SPICE-class simulators.\n",
		ports:     twoTerminal,
		params:    []param{{name: "dc", desc: "DC Current (Amps)"}},
		spicetype: circuit.SpiceType_ISOURCE,
	},
	{
		name:  "vdc",
		desc:  "# Independent Voltage Source\n\nPorts: (p, n)\nParams: dc, dc voltage (in Volts); ac, small-signal magnitude (in Volts)\n",
		ports: twoTerminal,
		params: []param{
			{name: "dc", desc: "DC Voltage (Volts)"},
			{name: "ac", desc: "AC/ Small-Signal Magnitude (Volts)", def: &utils.ParamValue{Int64Value: int64Ptr(0)}},
		},
		spicetype: circuit.SpiceType_VSOURCE,
	},
	{
		name:  "vpulse",
		desc:  "# Pulse Voltage Source\n\nTwo-value time-alternating voltage with parametrizable rise and fall times and delays.\n\nPorts: (p, n)\n",
		ports: twoTerminal,
		params: []param{
			{name: "v1", desc: "Initial Value (V)"},
			{name: "v2", desc: "Pulse Value (V)"},
			{name: "td", desc: "Delay Time (s)"},
			{name: "tr", desc: "Rise Time (s)"},
			{name: "tf", desc: "Fall Time (s)"},
			{name: "tpw", desc: "Pulse Width (s)"},
			{name: "tper", desc: "Period (s)"},
		},
		spicetype: circuit.SpiceType_VSOURCE,
	},
	{
		name:  "vsin",
		desc:  "# Sinusoidal Voltage Source\n\nPorts: (p, n)\n",
		ports: twoTerminal,
		params: []param{
			{name: "voff", desc: "Offset voltage (V)"},
			{name: "vamp", desc: "Amplitude (V)"},
			{name: "freq", desc: "Frequency (Hz)"},
			{name: "td", desc: "Delay Time (s)"},
			{name: "phase", desc: "Phase when t=td (degrees)"},
		},
		spicetype: circuit.SpiceType_VSOURCE,
	},
}

func int64Ptr(v int64) *int64 { return &v }

func (d definition) build() *circuit.ExternalModule {
	params := make([]*utils.Param, 0, len(d.params))
	for _, p := range d.params {
		up := &utils.Param{Name: p.name, Desc: p.desc}
		if p.def != nil {
			v := *p.def
			if v.Int64Value != nil {
				v.Int64Value = int64Ptr(*v.Int64Value)
			}
			up.Value = &v
		}
		params = append(params, up)
	}
	return &circuit.ExternalModule{
		Name:       &utils.QualifiedName{Domain: Domain, Name: d.name},
		Desc:       d.desc,
		Ports:      ports(d.ports),
		Signals:    signals(d.ports),
		Parameters: params,
		Spicetype:  d.spicetype,
	}
}

func ports(names []string) []*circuit.Port {
	res := make([]*circuit.Port, 0, len(names))
	for _, n := range names {
		res = append(res, &circuit.Port{Signal: n, Direction: circuit.Port_NONE})
	}
	return res
}

func signals(names []string) []*circuit.Signal {
	res := make([]*circuit.Signal, 0, len(names))
	for _, n := range names {
		res = append(res, &circuit.Signal{Name: n, Width: 1})
	}
	return res
}

// Package returns the vlsir.primitives package. Each call returns a new
// value which the caller may modify.
func Package() *circuit.Package {
	pkg := &circuit.Package{Domain: Domain, Desc: packageDesc}
	for _, d := range definitions {
		pkg.ExtModules = append(pkg.ExtModules, d.build())
	}
	return pkg
}

// Get returns the primitive named name.
func Get(name string) (*circuit.ExternalModule, bool) {
	for _, d := range definitions {
		if d.name == name {
			return d.build(), true
		}
	}
	return nil, false
}

// Names returns the primitive names, sorted.
func Names() []string {
	res := make([]string, 0, len(definitions))
	for _, d := range definitions {
		res = append(res, d.name)
	}
	sort.Strings(res)
	return res
}
