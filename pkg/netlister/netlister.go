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
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/netlist"
	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
)

// ErrUnsupported is wrapped by every error about content a format cannot express.
var ErrUnsupported = errors.New("unsupported")

// Netlister writes circuit packages and simulation inputs in one netlist format.
// Output is buffered: nothing reaches the destination unless the whole
// netlist succeeds.
type Netlister interface {
	// WritePackage writes a definition of every module in pkg.
	WritePackage(pkg *circuit.Package) error
	// WriteSimInput writes a simulator input deck: the package, an instance
	// of its top module, and the controls and analyses of inp.
	WriteSimInput(inp *spice.SimInput) error
}

// New returns a Netlister writing format f to w. UNSPECIFIED selects Spectre.
func New(f netlist.NetlistFormat, w io.Writer) (Netlister, error) {
	switch f {
	case netlist.NetlistFormat_UNSPECIFIED, netlist.NetlistFormat_SPECTRE:
		return &spectreNetlister{out: w}, nil
	case netlist.NetlistFormat_SPICE:
		return &spiceNetlister{dialect: dialectSpice, out: w}, nil
	case netlist.NetlistFormat_HSPICE:
		return &spiceNetlister{dialect: dialectHspice, out: w}, nil
	case netlist.NetlistFormat_NGSPICE:
		return &spiceNetlister{dialect: dialectNgspice, out: w}, nil
	case netlist.NetlistFormat_XYCE:
		return &spiceNetlister{dialect: dialectXyce, out: w}, nil
	case netlist.NetlistFormat_VERILOG:
		return &verilogNetlister{out: w}, nil
	case netlist.NetlistFormat_CDL:
		return nil, unsupported("CDL netlisting")
	}
	return nil, errors.Errorf("unknown netlist format %d", f)
}

// ParseFormat parses a format name such as "ngspice", ignoring case.
func ParseFormat(s string) (netlist.NetlistFormat, error) {
	v, ok := netlist.NetlistFormat_value[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.Errorf("unknown netlist format %q, expected one of %s", s, strings.Join(FormatNames(), ", "))
	}
	return netlist.NetlistFormat(v), nil
}

// FormatNames returns the lower-case names of the formats New accepts.
func FormatNames() []string {
	var res []string
	for v, name := range netlist.NetlistFormat_name {
		f := netlist.NetlistFormat(v)
		if f == netlist.NetlistFormat_UNSPECIFIED || f == netlist.NetlistFormat_CDL {
			continue
		}
		res = append(res, strings.ToLower(name))
	}
	sort.Strings(res)
	return res
}

// Extension is the conventional file extension of netlists in format f.
func Extension(f netlist.NetlistFormat) string {
	switch f {
	case netlist.NetlistFormat_UNSPECIFIED, netlist.NetlistFormat_SPECTRE:
		return ".scs"
	case netlist.NetlistFormat_VERILOG:
		return ".v"
	case netlist.NetlistFormat_XYCE:
		return ".cir"
	}
	return ".sp"
}

func unsupported(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnsupported, format, args...)
}
