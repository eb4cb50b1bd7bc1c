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
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
)

// signalTable indexes the ports and signals of the module being written.
type signalTable struct {
	byName map[string]*circuit.Signal
	order  []*circuit.Signal
	ports  sets.String
}

func newSignalTable(m *circuit.Module) (*signalTable, error) {
	t := &signalTable{
		byName: map[string]*circuit.Signal{},
		ports:  sets.NewString(),
	}
	for _, s := range m.Signals {
		if _, ok := t.byName[s.Name]; ok {
			return nil, errors.Errorf("signal %s is declared twice", s.Name)
		}
		if s.Width < 1 {
			return nil, errors.Errorf("signal %s has invalid width %d", s.Name, s.Width)
		}
		t.byName[s.Name] = s
		t.order = append(t.order, s)
	}
	for _, p := range m.Ports {
		if t.ports.Has(p.Signal) {
			return nil, errors.Errorf("port %s is declared twice", p.Signal)
		}
		if _, ok := t.byName[p.Signal]; !ok {
			return nil, errors.Errorf("port %s has no signal", p.Signal)
		}
		t.ports.Insert(p.Signal)
	}
	return t, nil
}

func (t *signalTable) signal(name string) (*circuit.Signal, error) {
	s, ok := t.byName[name]
	if !ok {
		return nil, errors.Errorf("undefined signal %s", name)
	}
	return s, nil
}

// internal returns the signals which are not ports, in declaration order.
func (t *signalTable) internal() []*circuit.Signal {
	var res []*circuit.Signal
	for _, s := range t.order {
		if !t.ports.Has(s.Name) {
			res = append(res, s)
		}
	}
	return res
}

// bitName names bit k of s in formats which split buses into scalar nets.
func bitName(s *circuit.Signal, k int64) string {
	if s.Width == 1 {
		return s.Name
	}
	return s.Name + "_" + strconv.FormatInt(k, 10)
}

// signalBits lists the scalar nets of s, most significant first.
func signalBits(s *circuit.Signal) []string {
	res := make([]string, 0, s.Width)
	for k := s.Width - 1; k >= 0; k-- {
		res = append(res, bitName(s, k))
	}
	return res
}

func (t *signalTable) slice(sl *circuit.Slice) (*circuit.Signal, error) {
	s, err := t.signal(sl.Signal)
	if err != nil {
		return nil, err
	}
	if sl.Top < sl.Bot {
		return nil, errors.Errorf("slice %s[%d:%d] is empty", sl.Signal, sl.Top, sl.Bot)
	}
	if sl.Bot < 0 || sl.Top >= s.Width {
		return nil, errors.Errorf("slice %s[%d:%d] is out of range for width %d", sl.Signal, sl.Top, sl.Bot, s.Width)
	}
	return s, nil
}

// bits lists the scalar nets of a connection target, most significant first.
func (t *signalTable) bits(target *circuit.ConnectionTarget) ([]string, error) {
	switch target.WhichStype() {
	case "sig":
		s, err := t.signal(*target.Sig)
		if err != nil {
			return nil, err
		}
		return signalBits(s), nil
	case "slice":
		s, err := t.slice(target.Slice)
		if err != nil {
			return nil, err
		}
		var res []string
		for k := target.Slice.Top; k >= target.Slice.Bot; k-- {
			res = append(res, bitName(s, k))
		}
		return res, nil
	case "concat":
		var res []string
		for _, part := range target.Concat.Parts {
			bits, err := t.bits(part)
			if err != nil {
				return nil, err
			}
			res = append(res, bits...)
		}
		return res, nil
	}
	return nil, errors.New("connection target is not set")
}

func (t *signalTable) width(target *circuit.ConnectionTarget) (int64, error) {
	switch target.WhichStype() {
	case "sig":
		s, err := t.signal(*target.Sig)
		if err != nil {
			return 0, err
		}
		return s.Width, nil
	case "slice":
		if _, err := t.slice(target.Slice); err != nil {
			return 0, err
		}
		return target.Slice.Top - target.Slice.Bot + 1, nil
	case "concat":
		var w int64
		for _, part := range target.Concat.Parts {
			pw, err := t.width(part)
			if err != nil {
				return 0, err
			}
			w += pw
		}
		return w, nil
	}
	return 0, errors.New("connection target is not set")
}

// portConn is one port of an instance and what it connects to.
type portConn struct {
	port   string
	target *circuit.ConnectionTarget
}

// connect matches the connections of inst to the ports of mod, in port
// order. Every port must be connected exactly once, to a target of its width.
func (t *signalTable) connect(inst *circuit.Instance, mod *resolvedModule) ([]portConn, error) {
	byPort := map[string]*circuit.ConnectionTarget{}
	for _, c := range inst.Connections {
		if _, ok := byPort[c.Portname]; ok {
			return nil, errors.Errorf("port %s is connected twice", c.Portname)
		}
		byPort[c.Portname] = c.Target
	}

	widths := map[string]int64{}
	for _, s := range mod.signals {
		widths[s.Name] = s.Width
	}

	res := make([]portConn, 0, len(mod.ports))
	for _, p := range mod.ports {
		target, ok := byPort[p.Signal]
		if !ok {
			return nil, errors.Errorf("port %s is not connected", p.Signal)
		}
		delete(byPort, p.Signal)
		got, err := t.width(target)
		if err != nil {
			return nil, errors.Wrapf(err, "port %s", p.Signal)
		}
		want, ok := widths[p.Signal]
		if !ok {
			want = 1
		}
		if got != want {
			return nil, errors.Errorf("port %s has width %d but is connected to width %d", p.Signal, want, got)
		}
		res = append(res, portConn{port: p.Signal, target: target})
	}
	if len(byPort) > 0 {
		return nil, errors.Errorf("connections to unknown ports %s", strings.Join(sets.StringKeySet(byPort).List(), ", "))
	}
	return res, nil
}
