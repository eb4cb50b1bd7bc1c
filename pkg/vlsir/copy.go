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
	"strings"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// fieldIndexes caches, per generated struct type, the field index of every
// JSON field name.
var fieldIndexes sync.Map

func goFields(t reflect.Type) map[string]int {
	if idx, ok := fieldIndexes.Load(t); ok {
		return idx.(map[string]int)
	}
	idx := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		idx[name] = i
	}
	actual, _ := fieldIndexes.LoadOrStore(t, idx)
	return actual.(map[string]int)
}

// copyIn fills dst from the generated struct pointed to by src.
func copyIn(src reflect.Value, dst protoreflect.Message) error {
	if src.IsNil() {
		return nil
	}
	if pm, ok := src.Interface().(proto.Message); ok {
		return copyProto(pm, dst.Interface())
	}
	sv := src.Elem()
	idx := goFields(sv.Type())
	fds := dst.Descriptor().Fields()
	for i := 0; i < fds.Len(); i++ {
		fd := fds.Get(i)
		j, ok := idx[fd.JSONName()]
		if !ok {
			continue
		}
		if err := copyFieldIn(fd, sv.Field(j), dst); err != nil {
			return errors.Wrapf(err, "field %s", fd.FullName())
		}
	}
	return nil
}

func copyFieldIn(fd protoreflect.FieldDescriptor, fv reflect.Value, dst protoreflect.Message) error {
	switch {
	case fd.IsMap():
		if fv.Len() == 0 {
			return nil
		}
		mp := dst.Mutable(fd).Map()
		iter := fv.MapRange()
		for iter.Next() {
			v, err := valueIn(fd.MapValue(), iter.Value(), func() protoreflect.Message { return mp.NewValue().Message() })
			if err != nil {
				return err
			}
			mp.Set(protoreflect.ValueOfString(iter.Key().String()).MapKey(), v)
		}
	case fd.IsList():
		if fv.Len() == 0 {
			return nil
		}
		l := dst.Mutable(fd).List()
		for k := 0; k < fv.Len(); k++ {
			v, err := valueIn(fd, fv.Index(k), func() protoreflect.Message { return l.NewElement().Message() })
			if err != nil {
				return err
			}
			l.Append(v)
		}
	default:
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				return nil
			}
		} else if fv.IsZero() {
			return nil
		}
		v, err := valueIn(fd, fv, func() protoreflect.Message { return dst.NewField(fd).Message() })
		if err != nil {
			return err
		}
		dst.Set(fd, v)
	}
	return nil
}

// valueIn converts one Go value of fd. Scalars with presence are pointers.
func valueIn(fd protoreflect.FieldDescriptor, v reflect.Value, newMessage func() protoreflect.Message) (protoreflect.Value, error) {
	if fd.Message() == nil && v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return protoreflect.ValueOfBool(v.Bool()), nil
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return protoreflect.ValueOfInt32(int32(v.Int())), nil
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return protoreflect.ValueOfInt64(v.Int()), nil
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return protoreflect.ValueOfUint32(uint32(v.Uint())), nil
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return protoreflect.ValueOfUint64(v.Uint()), nil
	case protoreflect.FloatKind:
		return protoreflect.ValueOfFloat32(float32(v.Float())), nil
	case protoreflect.DoubleKind:
		return protoreflect.ValueOfFloat64(v.Float()), nil
	case protoreflect.StringKind:
		return protoreflect.ValueOfString(v.String()), nil
	case protoreflect.BytesKind:
		return protoreflect.ValueOfBytes(v.Bytes()), nil
	case protoreflect.EnumKind:
		return protoreflect.ValueOfEnum(protoreflect.EnumNumber(v.Int())), nil
	case protoreflect.MessageKind, protoreflect.GroupKind:
		m := newMessage()
		if err := copyIn(v, m); err != nil {
			return protoreflect.Value{}, err
		}
		return protoreflect.ValueOfMessage(m), nil
	}
	return protoreflect.Value{}, errors.Errorf("unsupported kind %v", fd.Kind())
}

// copyOut fills the generated struct pointed to by dst from src.
func copyOut(src protoreflect.Message, dst reflect.Value) error {
	if pm, ok := dst.Interface().(proto.Message); ok {
		return copyProto(src.Interface(), pm)
	}
	dv := dst.Elem()
	idx := goFields(dv.Type())
	var err error
	src.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		j, ok := idx[fd.JSONName()]
		if !ok {
			return true
		}
		if err = copyFieldOut(fd, v, dv.Field(j)); err != nil {
			err = errors.Wrapf(err, "field %s", fd.FullName())
			return false
		}
		return true
	})
	return err
}

func copyFieldOut(fd protoreflect.FieldDescriptor, v protoreflect.Value, fv reflect.Value) error {
	switch {
	case fd.IsMap():
		mp := v.Map()
		out := reflect.MakeMapWithSize(fv.Type(), mp.Len())
		var err error
		mp.Range(func(k protoreflect.MapKey, mv protoreflect.Value) bool {
			ev := reflect.New(fv.Type().Elem()).Elem()
			if err = valueOut(fd.MapValue(), mv, ev); err != nil {
				return false
			}
			out.SetMapIndex(reflect.ValueOf(k.String()).Convert(fv.Type().Key()), ev)
			return true
		})
		if err != nil {
			return err
		}
		fv.Set(out)
	case fd.IsList():
		l := v.List()
		out := reflect.MakeSlice(fv.Type(), l.Len(), l.Len())
		for k := 0; k < l.Len(); k++ {
			if err := valueOut(fd, l.Get(k), out.Index(k)); err != nil {
				return err
			}
		}
		fv.Set(out)
	default:
		return valueOut(fd, v, fv)
	}
	return nil
}

// valueOut stores one value of fd into the settable dst.
func valueOut(fd protoreflect.FieldDescriptor, v protoreflect.Value, dst reflect.Value) error {
	if fd.Message() == nil && dst.Kind() == reflect.Ptr {
		p := reflect.New(dst.Type().Elem())
		dst.Set(p)
		dst = p.Elem()
	}
	switch fd.Kind() {
	case protoreflect.BoolKind:
		dst.SetBool(v.Bool())
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		dst.SetInt(v.Int())
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind, protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		dst.SetUint(v.Uint())
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		dst.SetFloat(v.Float())
	case protoreflect.StringKind:
		dst.SetString(v.String())
	case protoreflect.BytesKind:
		dst.SetBytes(append([]byte(nil), v.Bytes()...))
	case protoreflect.EnumKind:
		dst.SetInt(int64(v.Enum()))
	case protoreflect.MessageKind, protoreflect.GroupKind:
		p := reflect.New(dst.Type().Elem())
		if err := copyOut(v.Message(), p); err != nil {
			return err
		}
		dst.Set(p)
	default:
		return errors.Errorf("unsupported kind %v", fd.Kind())
	}
	return nil
}

// copyProto moves a message between two implementations of the same type,
// such as a well-known type and its dynamic twin.
func copyProto(src, dst proto.Message) error {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(src)
	if err != nil {
		return err
	}
	return proto.UnmarshalOptions{Merge: true}.Unmarshal(data, dst)
}
