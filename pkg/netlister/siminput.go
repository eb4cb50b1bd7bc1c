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
	"sort"

	"github.com/pkg/errors"

	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
)

// topName is the instance name of the device under test in simulation decks.
const topName = "xtop"

// topModule returns the netlist name of the simulated module and the nets of
// its instance. The top module has at most one port, its ground, tied to 0.
func topModule(st *packageState, top string) (string, []string, error) {
	m, ok := st.modules[top]
	if !ok {
		return "", nil, errors.Errorf("top module %s is not defined", top)
	}
	switch len(m.Ports) {
	case 0:
		return moduleName(m.Name), nil, nil
	case 1:
		for _, s := range m.Signals {
			if s.Name == m.Ports[0].Signal && s.Width != 1 {
				return "", nil, errors.Errorf("top module %s: ground port %s must be scalar", top, s.Name)
			}
		}
		return moduleName(m.Name), []string{"0"}, nil
	}
	return "", nil, errors.Errorf("top module %s has %d ports, expected at most one ground port", top, len(m.Ports))
}

// analysisName returns the name of one analysis, checking the parts every
// format shares: a name is required, nested controls are unsupported.
func analysisName(kind, name string, ctrls []*spice.Control) (string, error) {
	if name == "" {
		return "", errors.Errorf("%s analysis has no name", kind)
	}
	if len(ctrls) > 0 {
		return "", unsupported("controls nested in %s analysis %s", kind, name)
	}
	return name, nil
}

func checkFrequencies(name string, fstart, fstop float64, npts uint64) error {
	if fstart <= 0 {
		return errors.Errorf("analysis %s: invalid fstart %s", name, formatFloat(fstart))
	}
	if fstop <= 0 {
		return errors.Errorf("analysis %s: invalid fstop %s", name, formatFloat(fstop))
	}
	if npts == 0 {
		return errors.Errorf("analysis %s: invalid npts 0", name)
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
