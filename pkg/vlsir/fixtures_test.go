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

package vlsir

import (
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/layout/raw"
	"github.com/vlsir/vlsir-go/pkg/vlsir/layout/tetris"
	"github.com/vlsir/vlsir-go/pkg/vlsir/netlist"
	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
	"github.com/vlsir/vlsir-go/pkg/vlsir/tech"
	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
)

func ptr[T any](v T) *T { return &v }

// allMessages has one zero value of every generated message type.
var allMessages = []Message{
	&circuit.Package{}, &circuit.Port{}, &circuit.Signal{}, &circuit.Slice{}, &circuit.Concat{},
	&circuit.ConnectionTarget{}, &circuit.Connection{}, &circuit.Instance{}, &circuit.Module{},
	&circuit.ExternalModule{}, &circuit.Interface{},
	&raw.Point{}, &raw.Layer{}, &raw.Rectangle{}, &raw.Polygon{}, &raw.Path{}, &raw.LayerShapes{},
	&raw.TextElement{}, &raw.Instance{}, &raw.Layout{}, &raw.Abstract{}, &raw.AbstractPort{},
	&raw.Cell{}, &raw.Library{},
	&tetris.Library{}, &tetris.Cell{}, &tetris.Layout{}, &tetris.Assign{}, &tetris.TrackCross{},
	&tetris.TrackRef{}, &tetris.Outline{}, &tetris.Abstract{}, &tetris.AbstractPort{},
	&tetris.AbstractPort_EdgePort{}, &tetris.AbstractPort_ZTopEdgePort{}, &tetris.AbstractPort_ZTopInner{},
	&tetris.Instance{}, &tetris.Place{}, &tetris.RelPlace{}, &tetris.Stack{}, &tetris.LayerEnum{},
	&tetris.MetalLayer{}, &tetris.ViaLayer{}, &tetris.PrimitiveLayer{}, &tetris.TrackSpec{},
	&tetris.TrackSpec_TrackEntry{}, &tetris.TrackSpec_Repeat{}, &tetris.Xy{},
	&netlist.NetlistInput{}, &netlist.NetlistResult{},
	&spice.SimInput{}, &spice.SimResult{}, &spice.SimOptions{}, &spice.Analysis{}, &spice.AnalysisResult{},
	&spice.OpInput{}, &spice.OpResult{}, &spice.DcInput{}, &spice.DcResult{}, &spice.TranInput{},
	&spice.TranResult{}, &spice.ComplexNum{}, &spice.AcInput{}, &spice.AcResult{}, &spice.NoiseInput{},
	&spice.NoiseResult{}, &spice.SweepInput{}, &spice.SweepResult{}, &spice.MonteInput{}, &spice.MonteResult{},
	&spice.CustomAnalysisInput{}, &spice.CustomAnalysisResult{}, &spice.Sweep{}, &spice.LinearSweep{},
	&spice.LogSweep{}, &spice.PointSweep{}, &spice.Control{}, &spice.Save{}, &spice.Include{},
	&spice.LibInclude{}, &spice.Meas{}, &spice.Signal{},
	&tech.Technology{}, &tech.Package{}, &tech.LayerPurpose{}, &tech.LayerInfo{},
	&utils.Prefixed{}, &utils.ParamValue{}, &utils.Param{}, &utils.QualifiedName{}, &utils.Reference{},
	&utils.LibraryMetadata{}, &utils.AuthorMetadata{},
}

func inverter() *circuit.Package {
	return &circuit.Package{
		Domain: "example.inverters",
		Desc:   "a single inverter",
		Modules: []*circuit.Module{{
			Name: "inv",
			Ports: []*circuit.Port{
				{Signal: "i", Direction: circuit.Port_INPUT},
				{Signal: "o", Direction: circuit.Port_OUTPUT},
				{Signal: "vdd", Direction: circuit.Port_INOUT},
				{Signal: "vss", Direction: circuit.Port_INOUT},
			},
			Signals: []*circuit.Signal{
				{Name: "i", Width: 1}, {Name: "o", Width: 1}, {Name: "vdd", Width: 1},
				{Name: "vss", Width: 1}, {Name: "bus", Width: 9007199254740993},
			},
			Parameters: []*utils.Param{
				{Name: "w", Value: &utils.ParamValue{Prefixed: &utils.Prefixed{Prefix: utils.SIPrefix_MICRO, Int64Value: ptr(int64(1))}}},
				{Name: "nf", Value: &utils.ParamValue{Int64Value: ptr(int64(0))}},
				{Name: "flavor", Value: &utils.ParamValue{StringValue: ptr("lvt")}, Desc: "device flavor"},
			},
			Instances: []*circuit.Instance{{
				Name:   "n",
				Module: &utils.Reference{External: &utils.QualifiedName{Domain: "pdk", Name: "nmos"}},
				Parameters: []*utils.Param{
					{Name: "l", Value: &utils.ParamValue{DoubleValue: ptr(1.5e-7)}},
					{Name: "m", Value: &utils.ParamValue{Literal: ptr("nf*2")}},
					{Name: "on", Value: &utils.ParamValue{BoolValue: ptr(false)}},
				},
				Connections: []*circuit.Connection{
					{Portname: "d", Target: &circuit.ConnectionTarget{Sig: ptr("o")}},
					{Portname: "g", Target: &circuit.ConnectionTarget{Slice: &circuit.Slice{Signal: "bus", Top: 3, Bot: 0}}},
					{Portname: "s", Target: &circuit.ConnectionTarget{Concat: &circuit.Concat{Parts: []*circuit.ConnectionTarget{
						{Sig: ptr("vss")}, {Sig: ptr("i")},
					}}}},
				},
			}},
			Literals: []string{"* trailing literal"},
		}},
		ExtModules: []*circuit.ExternalModule{{
			Name:      &utils.QualifiedName{Domain: "pdk", Name: "nmos"},
			Ports:     []*circuit.Port{{Signal: "d", Direction: circuit.Port_NONE}},
			Spicetype: circuit.SpiceType_MOS,
		}},
	}
}

func rawLibrary() *raw.Library {
	return &raw.Library{
		Domain: "example.layout",
		Units:  raw.Units_NANO,
		Author: &utils.AuthorMetadata{Author: "someone", License: "Apache-2.0"},
		Cells: []*raw.Cell{{
			Name:      "inv",
			Interface: &circuit.Interface{Name: "inv", Ports: []*circuit.Port{{Signal: "i"}}},
			Layout: &raw.Layout{
				Name: "inv",
				Shapes: []*raw.LayerShapes{{
					Layer:      &raw.Layer{Number: 68, Purpose: 20},
					Rectangles: []*raw.Rectangle{{Net: "i", LowerLeft: &raw.Point{X: -10, Y: 0}, Width: 100, Height: 40}},
					Polygons:   []*raw.Polygon{{Vertices: []*raw.Point{{}, {X: 5}, {X: 5, Y: 5}}}},
					Paths:      []*raw.Path{{Points: []*raw.Point{{}, {Y: 100}}, Width: 14}},
				}},
				Instances: []*raw.Instance{{
					Name:                     "i0",
					Cell:                     &utils.Reference{Local: ptr("inner")},
					OriginLocation:           &raw.Point{X: 1, Y: 2},
					ReflectVert:              true,
					RotationClockwiseDegrees: 90,
				}},
				Annotations: []*raw.TextElement{{String: "vdd", Loc: &raw.Point{X: 3}}},
			},
		}},
	}
}

func tetrisLibrary() *tetris.Library {
	return &tetris.Library{
		Domain: "example.tetris",
		Cells: []*tetris.Cell{{
			Name: "unit",
			Abstract: &tetris.Abstract{
				Name:    "unit",
				Outline: &tetris.Outline{X: []int64{0, 10, 20}, Y: []int64{5, 5, -9007199254740993}, Metals: 2},
				Ports: []*tetris.AbstractPort{
					{Net: "a", Edge: &tetris.AbstractPort_EdgePort{Track: &tetris.TrackRef{Layer: 1, Track: 3}, Side: tetris.AbstractPort_TOP_OR_RIGHT}},
					{Net: "b", ZtopInner: &tetris.AbstractPort_ZTopInner{Locs: []*tetris.TrackCross{{Track: &tetris.TrackRef{}, Cross: &tetris.TrackRef{Layer: 2}}}}},
				},
			},
			Layout: &tetris.Layout{
				Name:      "unit",
				Instances: []*tetris.Instance{{Name: "x", Cell: &utils.Reference{Local: ptr("leaf")}, Loc: &tetris.Place{Rel: &tetris.RelPlace{}}}},
			},
		}},
	}
}

func stack() *tetris.Stack {
	return &tetris.Stack{
		Units: raw.Units_ANGSTROM,
		Prim:  &tetris.PrimitiveLayer{Pitches: &tetris.Xy{X: 460, Y: 2720}},
		Metals: []*tetris.MetalLayer{{
			Name: "met1",
			Dir:  tetris.MetalLayer_HORIZ,
			Entries: []*tetris.TrackSpec{
				{Entry: &tetris.TrackSpec_TrackEntry{Ttype: tetris.TrackSpec_TrackEntry_RAIL, Width: 480}},
				{Repeat: &tetris.TrackSpec_Repeat{Nrep: 6, Entries: []*tetris.TrackSpec_TrackEntry{
					{Ttype: tetris.TrackSpec_TrackEntry_GAP, Width: 200},
					{Ttype: tetris.TrackSpec_TrackEntry_SIGNAL, Width: 140},
				}}},
			},
			Prim: tetris.MetalLayer_SPLIT,
			Raw:  &raw.Layer{Number: 68, Purpose: 20},
		}},
		Vias: []*tetris.ViaLayer{{
			Name: "mcon",
			Top:  &tetris.LayerEnum{Type: tetris.LayerEnum_METAL, Index: 0},
			Bot:  &tetris.LayerEnum{Type: tetris.LayerEnum_PRIMITIVE},
			Size: &tetris.Xy{X: 170, Y: 170},
		}},
	}
}

func simInput() *spice.SimInput {
	return &spice.SimInput{
		Pkg: inverter(),
		Top: "inv",
		Opts: []*spice.SimOptions{
			{Name: "reltol", Value: &utils.ParamValue{DoubleValue: ptr(1e-3)}},
		},
		An: []*spice.Analysis{
			{Op: &spice.OpInput{AnalysisName: "op"}},
			{Dc: &spice.DcInput{AnalysisName: "dc", IndepName: "vin", Sweep: &spice.Sweep{Linear: &spice.LinearSweep{Start: 0, Stop: 1.8, Step: 0.1}}}},
			{Tran: &spice.TranInput{AnalysisName: "tran", Tstop: 1e-9, Tstep: 1e-12, Ic: map[string]float64{"o": 0, "i": 1.8}}},
			{Ac: &spice.AcInput{AnalysisName: "ac", Fstart: 1, Fstop: 1e9, Npts: 10}},
			{Noise: &spice.NoiseInput{AnalysisName: "noise", OutputP: "o", OutputN: "vss", InputSource: "vin", Fstart: 1, Fstop: 1e6, Npts: 5}},
			{Monte: &spice.MonteInput{AnalysisName: "mc", Npts: 100, Seed: -1}},
			{Custom: &spice.CustomAnalysisInput{AnalysisName: "pz", Cmd: ".pz o 0 i 0 vol pz"}},
		},
		Ctrls: []*spice.Control{
			{Include: &spice.Include{Path: "models.sp"}},
			{Lib: &spice.LibInclude{Path: "pdk.lib", Section: "tt"}},
			{Save: &spice.Save{Mode: ptr(spice.Save_NONE)}},
			{Meas: &spice.Meas{AnalysisType: "tran", Name: "delay", Expr: "TRIG v(i) VAL=0.9 RISE=1 TARG v(o) VAL=0.9 FALL=1"}},
			{Param: &utils.Param{Name: "vdd", Value: &utils.ParamValue{DoubleValue: ptr(1.8)}}},
			{Literal: ptr(".temp 27")},
		},
	}
}

func simResult() *spice.SimResult {
	return &spice.SimResult{An: []*spice.AnalysisResult{
		{Op: &spice.OpResult{AnalysisName: "op", Signals: []string{"o"}, Data: []float64{0.9}}},
		{Ac: &spice.AcResult{AnalysisName: "ac", Freq: []float64{1, 10}, Signals: []string{"o"}, Data: []*spice.ComplexNum{{Re: 1, Im: -0.5}, {}}}},
		{Noise: &spice.NoiseResult{IntegratedNoise: map[string]float64{"o": 1e-6}}},
		{Custom: &spice.CustomAnalysisResult{}},
	}}
}

func technology() *tech.Technology {
	return &tech.Technology{
		Name:     "example",
		Packages: []*tech.Package{{Name: "core"}},
		Layers: []*tech.LayerInfo{{
			Name:     "met1",
			Purpose:  &tech.LayerPurpose{Description: "drawing", Type: tech.LayerPurposeType_DRAWING},
			Index:    68,
			SubIndex: 18446744073709551615,
		}},
	}
}

func netlistInput() *netlist.NetlistInput {
	return &netlist.NetlistInput{
		Pkg:         inverter(),
		NetlistPath: "inv.sp",
		Fmt:         netlist.NetlistFormat_XYCE,
		ResultPath:  "result.json",
	}
}
