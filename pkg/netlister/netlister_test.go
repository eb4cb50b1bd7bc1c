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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/netlist"
	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
)

func writePackage(t *testing.T, f netlist.NetlistFormat, pkg *circuit.Package) string {
	var buf bytes.Buffer
	nl, err := New(f, &buf)
	require.NoError(t, err)
	require.NoError(t, nl.WritePackage(pkg))
	return buf.String()
}

func writeSimInput(t *testing.T, f netlist.NetlistFormat, inp *spice.SimInput) string {
	var buf bytes.Buffer
	nl, err := New(f, &buf)
	require.NoError(t, err)
	require.NoError(t, nl.WriteSimInput(inp))
	return buf.String()
}

const spiceInverter = `* circuit.Package example.inverters
* Written by vlsirgen
*

.SUBCKT inv
+ i o vdd vss
+ wn=1u

mn
+ o i vss vss
+ nch
+ w='wn' l='150n'

mp
+ o i vdd vdd
+ pch
+ w='2*wn'

.ENDS

`

func TestSpice_Package(t *testing.T) {
	for _, f := range []netlist.NetlistFormat{
		netlist.NetlistFormat_SPICE,
		netlist.NetlistFormat_HSPICE,
		netlist.NetlistFormat_NGSPICE,
	} {
		t.Run(f.String(), func(t *testing.T) {
			assert.Equal(t, spiceInverter, writePackage(t, f, inverterPackage()))
		})
	}
}

func TestXyce_Package(t *testing.T) {
	want := `; circuit.Package example.inverters
; Written by vlsirgen
;

.SUBCKT inv
+ i o vdd vss
+ PARAMS: wn=1u

mn
+ o i vss vss
+ nch
+ w={wn} l={150n}

mp
+ o i vdd vdd
+ pch
+ w={2*wn}

.ENDS

`
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_XYCE, inverterPackage()))
}

func TestSpice_Devices(t *testing.T) {
	want := `* circuit.Package vlsir.tests.devices
* Written by vlsirgen
*

.SUBCKT mid
+ vvv VSS
+ r=1000 l=1e-09 c=1e-15

rr
+ vvv VSS
+ 1000

ll
+ vvv VSS
+ 1e-09

cc
+ vvv VSS
+ 1e-15

vv
+ vvv VSS
+ dc '1.1'
+ ac '0'

ii
+ vvv VSS
+ 1e-06

mm
+ VSS VSS VSS VSS
+ mos1
* No parameters

qq
+ VSS VSS VSS
+ bjt1
* No parameters

dd
+ vvv VSS
+ d1
* No parameters

ot
+ VSS VSS VSS VSS
+ t1
* No parameters

.ENDS

.SUBCKT top
+ VSS
* No parameters

ximid
+ vvv VSS
+ mid
+ r='1000' l='1e-09' c='1e-15'

.ENDS

`
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_SPICE, devicesPackage()))
}

func TestXyce_Devices(t *testing.T) {
	want := `; circuit.Package vlsir.tests.devices
; Written by vlsirgen
;

.SUBCKT mid
+ vvv VSS
+ PARAMS: r=1000 l=1e-09 c=1e-15

rr
+ vvv VSS
+ 1000

ll
+ vvv VSS
+ 1e-09

cc
+ vvv VSS
+ 1e-15

vv
+ vvv VSS
+ dc {1.1}
+ ac {0}

ii
+ vvv VSS
+ 1e-06

mm
+ VSS VSS VSS VSS
+ mos1
; No parameters

qq
+ VSS VSS VSS
+ bjt1
; No parameters

dd
+ vvv VSS
+ d1
; No parameters

ot
+ VSS VSS VSS VSS
+ t1
; No parameters

.ENDS

.SUBCKT top
+ VSS
; No parameters

ximid
+ vvv VSS
+ mid
+ PARAMS: r={1000} l={1e-09} c={1e-15}

.ENDS

`
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_XYCE, devicesPackage()))
}

func TestSpectre_Devices(t *testing.T) {
	want := `// circuit.Package vlsir.tests.devices
// Written by vlsirgen
//

subckt mid vvv VSS
  parameters r=1000 l=1e-09 c=1e-15

  r (vvv VSS) resistor r=1000
  l (vvv VSS) inductor l=1e-09
  c (vvv VSS) capacitor c=1e-15
  v (vvv VSS) vsource type=dc dc=1.1 mag=0
  i (vvv VSS) isource type=dc dc=1e-06
  m (VSS VSS VSS VSS) mos1
  q (VSS VSS VSS) bjt1
  d (vvv VSS) d1
  t (VSS VSS VSS VSS) t1
ends mid

subckt top VSS

  imid (vvv VSS) mid r=1000 l=1e-09 c=1e-15
ends top

`
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_SPECTRE, devicesPackage()))
}

func TestSpice_Buses(t *testing.T) {
	want := `* circuit.Package example.top
* Written by vlsirgen
*

.SUBCKT leaf
+ a_1 a_0 y
+ gain=1

.ENDS

.SUBCKT top
+ din_2 din_1 din_0 dout
* No parameters

xu0
+ din_2 din_1 x
+ leaf
+ gain='5k'

xu1
+ x din_0 dout
+ leaf
+ gain='1'

.ENDS

`
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_SPICE, busPackage()))
}

func TestSpice_Anonymous(t *testing.T) {
	pkg := &circuit.Package{Modules: []*circuit.Module{{Name: "lib.cells.empty-cell", Literals: []string{"* raw"}}}}
	want := `* Anonymous circuit.Package
* Written by vlsirgen
*

.SUBCKT empty_cell
* No ports
* No parameters

* raw
.ENDS

`
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_SPICE, pkg))
}

func TestNgspice_SimInput(t *testing.T) {
	want := `* circuit.Package example.tb
* Written by vlsirgen
*

.SUBCKT tb
+ VSS
* No parameters

vsrc
+ out VSS
+ dc '1.8'
+ ac '0'

rload
+ out VSS
+ 1k

.ENDS

xtop 0 tb

.option reltol=0.001
.include "models.sp"
.lib "pdk.lib" tt
.param vdd=1.8
.meas tran tdelay trig v(out) val=0.9 rise=1
.op
.dc vdd 0 1.8 0.1
.ac dec 10 1 1e+09
.tran 1e-12 1e-09
.save all
.noise v(v.xtop.out) v.xtop.vsrc dec 10 1 1e+06
.end
`
	assert.Equal(t, want, writeSimInput(t, netlist.NetlistFormat_NGSPICE, simInput("models.sp", "pdk.lib")))
}

func TestSpice_SimInputExtras(t *testing.T) {
	inp := &spice.SimInput{
		Pkg: testbench(),
		Top: "tb",
		Ctrls: []*spice.Control{
			{Save: &spice.Save{Signal: ptr("v(out)")}},
			{Save: &spice.Save{Mode: ptr(spice.Save_NONE)}},
			{Literal: ptr(".temp 27")},
		},
		An: []*spice.Analysis{
			{Tran: &spice.TranInput{AnalysisName: "tran1", Tstop: 1e-6, Tstep: 1e-9, Ic: map[string]float64{"xtop.out": 0, "a": 1}}},
			{Custom: &spice.CustomAnalysisInput{AnalysisName: "pz1", Cmd: ".pz out 0 in 0 vol pz"}},
		},
	}
	out := writeSimInput(t, netlist.NetlistFormat_HSPICE, inp)
	assert.Contains(t, out, "xtop 0 tb\n\n.save v(out)\n.temp 27\n.ic v(a)=1 v(xtop.out)=0\n.tran 1e-09 1e-06\n.pz out 0 in 0 vol pz\n.end\n")
	assert.NotContains(t, out, ".save none")
}

func TestSpectre_Package(t *testing.T) {
	want := `// circuit.Package example.inverters
// Written by vlsirgen
//

subckt inv i o vdd vss
  parameters wn=1u

  n (o i vss vss) nch w=wn l=150n
  p (o i vdd vdd) pch w=2*wn
ends inv

`
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_SPECTRE, inverterPackage()))
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_UNSPECIFIED, inverterPackage()))
}

func TestSpectre_SimInput(t *testing.T) {
	want := `simulator lang=spectre

// circuit.Package example.tb
// Written by vlsirgen
//

global 0

subckt tb VSS

  src (out VSS) vsource type=dc dc=1.8 mag=0
  load (out VSS) resistor r=1k
ends tb

xtop (0) tb

simulatorOptions options reltol=0.001
include "models.scs"
include "pdk.scs" section=tt
parameters vdd=1.8
simulator lang=spice
.meas tran tdelay trig v(out) val=0.9 rise=1
simulator lang=spectre
op1 dc oppoint=rawfile
dc1 dc param=vdd start=0 stop=1.8 step=0.1
ac1 ac start=1 stop=1e+09 dec=10
tran1 tran stop=1e-09 step=1e-12
noise1 (xtop.out 0) noise start=1 stop=1e+06 dec=10 iprobe=xtop.src
`
	assert.Equal(t, want, writeSimInput(t, netlist.NetlistFormat_SPECTRE, simInput("models.scs", "pdk.scs")))
}

func TestSpectre_Sources(t *testing.T) {
	pkg := testbench()
	pkg.Modules[0].Instances = []*circuit.Instance{
		{
			Name:   "clk",
			Module: external("vlsir.primitives", "vpulse"),
			Parameters: []*utils.Param{
				intParam("v1", 0), doubleParam("v2", 1.8), intParam("td", 0),
				prefixedParam("tr", 10, utils.SIPrefix_PICO), prefixedParam("tf", 10, utils.SIPrefix_PICO),
				prefixedParam("tpw", 1, utils.SIPrefix_NANO), prefixedParam("tper", 2, utils.SIPrefix_NANO),
			},
			Connections: []*circuit.Connection{conn("p", sig("out")), conn("n", sig("VSS"))},
		},
		{
			Name:   "sin",
			Module: external("vlsir.primitives", "vsin"),
			Parameters: []*utils.Param{
				intParam("voff", 0), intParam("vamp", 1), prefixedParam("freq", 1, utils.SIPrefix_GIGA),
				intParam("td", 0), intParam("phase", 90),
			},
			Connections: []*circuit.Connection{conn("p", sig("out")), conn("n", sig("VSS"))},
		},
		{
			Name:        "gm",
			Module:      external("vlsir.primitives", "vccs"),
			Parameters:  []*utils.Param{prefixedParam("gain", 1, utils.SIPrefix_MILLI)},
			Connections: []*circuit.Connection{conn("p", sig("out")), conn("n", sig("VSS")), conn("cp", sig("out")), conn("cn", sig("VSS"))},
		},
	}

	spectre := writePackage(t, netlist.NetlistFormat_SPECTRE, pkg)
	assert.Contains(t, spectre, "  clk (out VSS) vsource type=pulse val0=0 val1=1.8 delay=0 rise=10p fall=10p width=1n period=2n\n")
	assert.Contains(t, spectre, "  sin (out VSS) vsource type=sine sinedc=0 ampl=1 freq=1G delay=0 sinephase=90\n")
	assert.Contains(t, spectre, "  gm (out VSS out VSS) vccs gm=1m\n")

	sp := writePackage(t, netlist.NetlistFormat_SPICE, pkg)
	assert.Contains(t, sp, "vclk\n+ out VSS\n+ pulse ('0' '1.8' '0' '10p' '10p' '1n' '2n')\n\n")
	assert.Contains(t, sp, "vsin\n+ out VSS\n+ sin ('0' '1' '1g' '0' '90')\n\n")
	assert.Contains(t, sp, "ggm\n+ out VSS out VSS\n+ 1m\n\n")
}

func TestVerilog_Package(t *testing.T) {
	want := `// circuit.Package example.top
// Written by vlsirgen
//

module leaf #(
  parameter gain = 1
) (
  input wire [1:0] a,
  output wire y
);

endmodule // leaf

module top (
  input wire [2:0] din,
  output wire dout
);

  // Signal Declarations
  wire x;

  // Instance Declarations
  leaf #(.gain(5e3)) u0 (
    .a(din[2:1]),
    .y(x)
  );
  leaf #(.gain(1)) u1 (
    .a({x, din[0]}),
    .y(dout)
  );

endmodule // top

`
	assert.Equal(t, want, writePackage(t, netlist.NetlistFormat_VERILOG, busPackage()))
}

func TestVerilog_NoPorts(t *testing.T) {
	pkg := &circuit.Package{Modules: []*circuit.Module{{Name: "tie"}}}
	out := writePackage(t, netlist.NetlistFormat_VERILOG, pkg)
	assert.Contains(t, out, "module tie;\n\nendmodule // tie\n")
}
