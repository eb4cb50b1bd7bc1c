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
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"sigs.k8s.io/yaml"

	osi "github.com/vlsir/vlsir-go/utils/os"
)

// DecodeDynamic decodes data in format f as a message of the named type.
// Unlike Unmarshal it needs no generated Go type.
func DecodeDynamic(name protoreflect.FullName, data []byte, f Format) (*dynamicpb.Message, error) {
	dm, err := NewDynamic(name)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatBinary:
		err = proto.Unmarshal(data, dm)
	case FormatJSON:
		err = protojson.Unmarshal(data, dm)
	case FormatText:
		err = prototext.Unmarshal(data, dm)
	case FormatYAML:
		var js []byte
		if js, err = yaml.YAMLToJSON(data); err == nil {
			err = protojson.Unmarshal(js, dm)
		}
	case FormatTOML:
		return nil, errors.New("toml is an export-only format")
	default:
		return nil, errors.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", name)
	}
	return dm, nil
}

// EncodeDynamic encodes any message of the VLSIR schemas in format f.
func EncodeDynamic(m proto.Message, f Format) ([]byte, error) {
	name := m.ProtoReflect().Descriptor().FullName()
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatBinary:
		data, err = proto.MarshalOptions{Deterministic: true}.Marshal(m)
	case FormatJSON:
		if data, err = protojson.Marshal(m); err == nil {
			data, err = indentJSON(data)
		}
	case FormatText:
		data, err = prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
	case FormatYAML:
		if data, err = protojson.Marshal(m); err == nil {
			data, err = yaml.JSONToYAML(data)
		}
	case FormatTOML:
		data, err = dynamicTOML(m)
	default:
		return nil, errors.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s as %s", name, f)
	}
	return data, nil
}

// indentJSON rewrites protojson output with fixed two-space indentation.
// protojson alone varies its whitespace between builds.
func indentJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func dynamicTOML(m proto.Message) ([]byte, error) {
	js, err := protojson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(js, &doc); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertFile reads src as a message of the named type and writes it to dst.
// Both encodings follow the file extensions.
func ConvertFile(name protoreflect.FullName, src, dst string) error {
	from, err := FormatFromPath(src)
	if err != nil {
		return err
	}
	to, err := FormatFromPath(dst)
	if err != nil {
		return err
	}
	data, err := osi.NewFileReader(src).ReadAll()
	if err != nil {
		return err
	}
	dm, err := DecodeDynamic(name, data, from)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", src)
	}
	out, err := EncodeDynamic(dm, to)
	if err != nil {
		return err
	}
	if err := osi.NewAtomicWriter(dst).WriteFile(out); err != nil {
		return errors.Wrapf(err, "failed to save %s", dst)
	}
	return nil
}
