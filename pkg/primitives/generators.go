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
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
)

// Default domains of the device model generators.
const (
	MosDomain     = "vlsir.primitives.mos"
	BipolarDomain = "vlsir.primitives.bipolar"
	DiodeDomain   = "vlsir.primitives.diode"
	TlineDomain   = "vlsir.primitives.tline"
)

type modelOptions struct {
	domain string
	desc   string
}

// Option customizes a generated device model.
type Option func(*modelOptions)

// WithDomain places the model in domain instead of the generator's default.
func WithDomain(domain string) Option {
	return func(o *modelOptions) {
		o.domain = domain
	}
}

// WithDesc replaces the model's default description.
func WithDesc(desc string) Option {
	return func(o *modelOptions) {
		o.desc = desc
	}
}

type model struct {
	domain    string
	desc      string
	ports     []string
	spicetype circuit.SpiceType
}

var (
	mosModel = model{
		domain:    MosDomain,
		desc:      "# Mosfet Transistor\n\nPorts: (d, g, s, b), in SPICE order.\nInstances map to a SPICE model instance (m1), not a subcircuit instance (x1).\n",
		ports:     []string{"d", "g", "s", "b"},
		spicetype: circuit.SpiceType_MOS,
	}
	bipolarModel = model{
		domain:    BipolarDomain,
		desc:      "# Bipolar Junction Transistor\n\nPorts: (c, b, e), in SPICE order. There is no substrate terminal.\nInstances map to a SPICE model instance (q1), not a subcircuit instance (x1).\n",
		ports:     []string{"c", "b", "e"},
		spicetype: circuit.SpiceType_BIPOLAR,
	}
	diodeModel = model{
		domain:    DiodeDomain,
		desc:      "# Diode\n\nPorts: (p, n), anode then cathode.\nInstances map to a SPICE model instance (d1), not a subcircuit instance (x1).\n",
		ports:     []string{"p", "n"},
		spicetype: circuit.SpiceType_DIODE,
	}
	tlineModel = model{
		domain:    TlineDomain,
		desc:      "# Transmission Line\n\nPorts: (p1p, p1n, p2p, p2n), port 1 then port 2.\n",
		ports:     []string{"p1p", "p1n", "p2p", "p2n"},
		spicetype: circuit.SpiceType_TLINE,
	}
)

func (m model) generate(name string, opts []Option) *circuit.ExternalModule {
	o := modelOptions{domain: m.domain, desc: m.desc}
	for _, opt := range opts {
		opt(&o)
	}
	return &circuit.ExternalModule{
		Name:      &utils.QualifiedName{Domain: o.domain, Name: name},
		Desc:      o.desc,
		Ports:     ports(m.ports),
		Signals:   signals(m.ports),
		Spicetype: m.spicetype,
	}
}

// Mos returns a MOS device model named name. Its parameters are unconstrained
// and pass through netlisting unmodified.
func Mos(name string, opts ...Option) *circuit.ExternalModule {
	return mosModel.generate(name, opts)
}

// Bipolar returns a bipolar transistor model named name.
func Bipolar(name string, opts ...Option) *circuit.ExternalModule {
	return bipolarModel.generate(name, opts)
}

// Diode returns a diode model named name.
func Diode(name string, opts ...Option) *circuit.ExternalModule {
	return diodeModel.generate(name, opts)
}

// Tline returns a transmission line model named name.
func Tline(name string, opts ...Option) *circuit.ExternalModule {
	return tlineModel.generate(name, opts)
}
