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

// Package pbjson holds JSON helpers shared by generated VLSIR types. Their
// encodings follow the protobuf JSON mapping: 64-bit integers are quoted and
// enums are written by name.
package pbjson

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Int64List is a repeated int64 field.
type Int64List []int64

func (l Int64List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = strconv.FormatInt(v, 10)
	}
	return json.Marshal(out)
}

func (l *Int64List) UnmarshalJSON(b []byte) error {
	raw, err := splitArray(b)
	if err != nil || raw == nil {
		*l = nil
		return err
	}
	out := make(Int64List, len(raw))
	for i, r := range raw {
		v, err := strconv.ParseInt(unquote(r), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid int64 element %s", r)
		}
		out[i] = v
	}
	*l = out
	return nil
}

// Uint64List is a repeated uint64 field.
type Uint64List []uint64

func (l Uint64List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = strconv.FormatUint(v, 10)
	}
	return json.Marshal(out)
}

func (l *Uint64List) UnmarshalJSON(b []byte) error {
	raw, err := splitArray(b)
	if err != nil || raw == nil {
		*l = nil
		return err
	}
	out := make(Uint64List, len(raw))
	for i, r := range raw {
		v, err := strconv.ParseUint(unquote(r), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid uint64 element %s", r)
		}
		out[i] = v
	}
	*l = out
	return nil
}

// splitArray returns the raw elements of a JSON array, or nil for null.
func splitArray(b []byte) ([]json.RawMessage, error) {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// unquote accepts both "12" and 12.
func unquote(r json.RawMessage) string {
	var s string
	if err := json.Unmarshal(r, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(r))
}

// EnumString names v, or formats its number when v has no name.
func EnumString(names map[int32]string, v int32) string {
	if s, ok := names[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}

// MarshalEnum writes the name of v, or its number when v has no name.
func MarshalEnum(names map[int32]string, v int32) ([]byte, error) {
	if s, ok := names[v]; ok {
		return json.Marshal(s)
	}
	return []byte(strconv.Itoa(int(v))), nil
}

// UnmarshalEnum accepts an enum name, a number or null.
func UnmarshalEnum(values map[string]int32, b []byte) (int32, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return 0, nil
	}
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return 0, err
		}
		if v, ok := values[name]; ok {
			return v, nil
		}
		if n, err := strconv.ParseInt(name, 10, 32); err == nil {
			return int32(n), nil
		}
		return 0, errors.Errorf("unknown enum value %q", name)
	}
	n, err := strconv.ParseInt(string(b), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid enum value %s", b)
	}
	return int32(n), nil
}
