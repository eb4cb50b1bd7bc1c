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

	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
)

// paramList is an ordered set of formatted parameter values.
type paramList struct {
	names  []string
	values map[string]string
}

func newParamList() *paramList {
	return &paramList{values: map[string]string{}}
}

func (p *paramList) set(name, value string) {
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

func (p *paramList) has(name string) bool {
	_, ok := p.values[name]
	return ok
}

func (p *paramList) len() int {
	return len(p.names)
}

// pop removes name and returns its value.
func (p *paramList) pop(name string) (string, error) {
	v, ok := p.values[name]
	if !ok {
		return "", errors.Errorf("missing parameter %s", name)
	}
	delete(p.values, name)
	for i, n := range p.names {
		if n == name {
			p.names = append(p.names[:i], p.names[i+1:]...)
			break
		}
	}
	return v, nil
}

func (p *paramList) popMany(names ...string) ([]string, error) {
	res := make([]string, 0, len(names))
	for _, n := range names {
		v, err := p.pop(n)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// rename keeps the position of old.
func (p *paramList) rename(old, to string) {
	v, ok := p.values[old]
	if !ok {
		return
	}
	delete(p.values, old)
	p.values[to] = v
	for i, n := range p.names {
		if n == old {
			p.names[i] = to
		}
	}
}

// join formats every entry with f and joins them with single spaces.
func (p *paramList) join(f func(name, value string) string) string {
	parts := make([]string, 0, len(p.names))
	for _, n := range p.names {
		parts = append(parts, f(n, p.values[n]))
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatValue renders v as netlist text. String values are quoted, literals
// are written verbatim.
func formatValue(v *utils.ParamValue, prefix prefixFunc) (string, error) {
	switch v.WhichValue() {
	case "bool_value":
		return strconv.FormatBool(*v.BoolValue), nil
	case "int64_value":
		return strconv.FormatInt(*v.Int64Value, 10), nil
	case "double_value":
		return formatFloat(*v.DoubleValue), nil
	case "string_value":
		return strconv.Quote(*v.StringValue), nil
	case "literal":
		return *v.Literal, nil
	case "prefixed":
		return formatPrefixed(v.Prefixed, prefix)
	}
	return "", errors.New("value is not set")
}

// formatPrefixed writes the number followed by its SI suffix, e.g. 5u or 11e-24.
func formatPrefixed(p *utils.Prefixed, prefix prefixFunc) (string, error) {
	var num string
	switch p.WhichNumber() {
	case "int64_value":
		num = strconv.FormatInt(*p.Int64Value, 10)
	case "string_value":
		num = *p.StringValue
	case "double_value":
		return "", errors.New("double-valued prefixed numbers are not supported, use an integer or string")
	default:
		return "", errors.New("prefixed number is not set")
	}
	suffix, err := prefix(p.Prefix)
	if err != nil {
		return "", err
	}
	return num + suffix, nil
}
