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
	"reflect"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	osi "github.com/vlsir/vlsir-go/utils/os"
)

// Message is implemented by every generated message type.
type Message interface {
	ProtoFullName() protoreflect.FullName
}

// ToDynamic converts m to a dynamic message of the same schema type.
func ToDynamic(m Message) (*dynamicpb.Message, error) {
	dm, err := NewDynamic(m.ProtoFullName())
	if err != nil {
		return nil, err
	}
	if err := copyIn(reflect.ValueOf(m), dm); err != nil {
		return nil, errors.Wrapf(err, "failed to convert %s", m.ProtoFullName())
	}
	return dm, nil
}

// FromDynamic fills m from a message of the same schema type.
func FromDynamic(src proto.Message, m Message) error {
	if got := src.ProtoReflect().Descriptor().FullName(); got != m.ProtoFullName() {
		return errors.Errorf("cannot convert %s into %s", got, m.ProtoFullName())
	}
	if err := copyOut(src.ProtoReflect(), reflect.ValueOf(m)); err != nil {
		return errors.Wrapf(err, "failed to decode %s", m.ProtoFullName())
	}
	return nil
}

// ToBytes encodes m in the protobuf binary format. Map entries are sorted, so
// equal values encode to equal bytes.
func ToBytes(m Message) ([]byte, error) {
	dm, err := ToDynamic(m)
	if err != nil {
		return nil, err
	}
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(dm)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s", m.ProtoFullName())
	}
	return data, nil
}

// FromBytes decodes protobuf binary data into a new T.
func FromBytes[T any, PT interface {
	*T
	Message
}](data []byte) (*T, error) {
	v := PT(new(T))
	if err := unmarshalBinary(data, v); err != nil {
		return nil, err
	}
	return (*T)(v), nil
}

func unmarshalBinary(data []byte, m Message) error {
	dm, err := NewDynamic(m.ProtoFullName())
	if err != nil {
		return err
	}
	if err := proto.Unmarshal(data, dm); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", m.ProtoFullName())
	}
	return FromDynamic(dm, m)
}

// Open reads the file at path into a new T. The encoding follows the file
// extension, see FormatFromPath.
func Open[T any, PT interface {
	*T
	Message
}](path string) (*T, error) {
	v := PT(new(T))
	if err := OpenInto(path, v); err != nil {
		return nil, err
	}
	return (*T)(v), nil
}

// OpenInto reads the file at path into m.
func OpenInto(path string, m Message) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := osi.NewFileReader(path).ReadAll()
	if err != nil {
		return err
	}
	if err := Unmarshal(data, f, m); err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	return nil
}

// Save writes m to path, replacing any existing file atomically. The encoding
// follows the file extension, see FormatFromPath.
func Save(m Message, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(m, f)
	if err != nil {
		return err
	}
	if err := osi.NewAtomicWriter(path).WriteFile(data); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}
