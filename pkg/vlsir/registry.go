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
	"context"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/vlsir/vlsir-go/pkg/schema"
	"github.com/vlsir/vlsir-go/protos"
)

var (
	registryOnce sync.Once
	registry     *protoregistry.Files
	registryErr  error
)

// Registry returns the descriptors of the embedded extended schema set. The
// schemas are compiled on first use.
func Registry() (*protoregistry.Files, error) {
	registryOnce.Do(func() {
		res, err := schema.Compile(context.Background(), &schema.Config{
			Sources: protos.ExtendedSources,
			FS:      protos.FS,
		})
		if err != nil {
			registryErr = errors.Wrap(err, "failed to compile embedded schemas")
			return
		}
		registry, registryErr = protodesc.NewFiles(res.Set)
		if registryErr != nil {
			registryErr = errors.Wrap(registryErr, "failed to register embedded schemas")
		}
	})
	return registry, registryErr
}

// FindMessage looks up a message type by full name, e.g. "vlsir.circuit.Package".
func FindMessage(name protoreflect.FullName) (protoreflect.MessageDescriptor, error) {
	files, err := Registry()
	if err != nil {
		return nil, err
	}
	d, err := files.FindDescriptorByName(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown message type %s", name)
	}
	md, ok := d.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, errors.Errorf("%s is not a message type", name)
	}
	return md, nil
}

// NewDynamic returns an empty dynamic message of the named type.
func NewDynamic(name protoreflect.FullName) (*dynamicpb.Message, error) {
	md, err := FindMessage(name)
	if err != nil {
		return nil, err
	}
	return dynamicpb.NewMessage(md), nil
}

// MessageNames lists every message type of the embedded schemas, in file order.
func MessageNames() ([]protoreflect.FullName, error) {
	files, err := Registry()
	if err != nil {
		return nil, err
	}
	var names []protoreflect.FullName
	var walk func(ms protoreflect.MessageDescriptors)
	walk = func(ms protoreflect.MessageDescriptors) {
		for i := 0; i < ms.Len(); i++ {
			m := ms.Get(i)
			if m.IsMapEntry() {
				continue
			}
			names = append(names, m.FullName())
			walk(m.Messages())
		}
	}
	for _, src := range protos.ExtendedSources {
		fd, err := files.FindFileByPath(src)
		if err != nil {
			return nil, errors.Wrapf(err, "schema %s is not registered", src)
		}
		walk(fd.Messages())
	}
	return names, nil
}
