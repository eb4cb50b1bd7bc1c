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

package descriptor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/vlsir/vlsir-go/common"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
	"github.com/vlsir/vlsir-go/pkg/schema"
	"github.com/vlsir/vlsir-go/protos"
)

const prefix = "github.com/vlsir/vlsir-go/pkg/vlsir"

var withStruct = fstest.MapFS{
	"props.proto": {Data: []byte(`syntax = "proto3";
package vlsir.props;

import "google/protobuf/struct.proto";

message Props {
  string name = 1;
  google.protobuf.Struct attrs = 2;
  google.protobuf.Value value = 3;
}
`)},
}

func compile(t *testing.T, c *schema.Config) *schema.Result {
	t.Helper()
	res, err := schema.Compile(context.Background(), c)
	require.NoError(t, err)
	return res
}

func TestWriteRead(t *testing.T) {
	res := compile(t, &schema.Config{Sources: protos.ExtendedSources, FS: protos.FS})
	path := filepath.Join(t.TempDir(), "out", common.DescriptorSetFileName)

	require.NoError(t, descriptor.Write(path, res.Set))
	got, err := descriptor.Read(path)
	require.NoError(t, err)
	assert.True(t, proto.Equal(res.Set, got))

	want, err := descriptor.Digest(res.Set)
	require.NoError(t, err)
	gotDigest, err := descriptor.Digest(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotDigest)

	require.NoError(t, descriptor.Discard(path))
	assert.NoFileExists(t, path)
	assert.NoError(t, descriptor.Discard(path), "discarding twice is fine")
}

func TestRead_Corrupt(t *testing.T) {
	res := compile(t, &schema.Config{Sources: protos.StandardSources, FS: protos.FS})
	full, err := descriptor.Marshal(res.Set)
	require.NoError(t, err)

	dir := t.TempDir()
	tests := []struct {
		name    string
		content []byte
		missing bool
	}{
		{name: "missing", missing: true},
		{name: "empty", content: []byte{}},
		{name: "truncated", content: full[:len(full)/2]},
		{name: "garbage", content: []byte{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".fds")
			if !tt.missing {
				require.NoError(t, os.WriteFile(path, tt.content, 0644))
			}
			set, err := descriptor.Read(path)
			assert.Error(t, err)
			assert.Nil(t, set)
		})
	}
}

func TestAnnotate_StructuredValues(t *testing.T) {
	res := compile(t, &schema.Config{Sources: []string{"props.proto"}, FS: withStruct})
	ann := res.Annotations

	assert.True(t, ann.Has(".vlsir.props.Props", descriptor.JSON))
	assert.False(t, ann.Has(".google.protobuf.Struct", descriptor.JSON), "first pass leaves well-known types alone")

	require.NoError(t, descriptor.Annotate(res.Set, ann, descriptor.DefaultOptions(prefix)))

	for _, name := range descriptor.StructuredValueTypes {
		assert.Empty(t, ann.Missing(name, descriptor.SerDe...), name)
	}
	imp, ok := ann.ExternFor(".google.protobuf.Value")
	assert.True(t, ok)
	assert.Equal(t, common.StructPBImport, imp)

	for _, fd := range res.Set.File {
		if descriptor.IsWellKnown(fd) {
			assert.NotEqual(t, prefix, fd.GetOptions().GetGoPackage())
			continue
		}
		assert.Equal(t, prefix+"/props;props", fd.GetOptions().GetGoPackage())
	}
}

func TestAnnotate_SkipsAbsentWellKnown(t *testing.T) {
	res := compile(t, &schema.Config{Sources: protos.StandardSources, FS: protos.FS})
	require.NoError(t, descriptor.Annotate(res.Set, res.Annotations, descriptor.DefaultOptions(prefix)))
	assert.False(t, res.Annotations.Has(".google.protobuf.Struct", descriptor.JSON))
}

func TestAnnotate_Idempotent(t *testing.T) {
	res := compile(t, &schema.Config{Sources: []string{"props.proto"}, FS: withStruct})
	opts := descriptor.DefaultOptions(prefix)

	require.NoError(t, descriptor.Annotate(res.Set, res.Annotations, opts))
	onceSet := proto.Clone(res.Set)
	onceAnn := res.Annotations.DeepCopy()

	require.NoError(t, descriptor.Annotate(res.Set, res.Annotations, opts))
	assert.True(t, proto.Equal(onceSet, res.Set))
	assert.Equal(t, onceAnn, res.Annotations)
}

func TestLoadAndAnnotate(t *testing.T) {
	res := compile(t, &schema.Config{Sources: []string{"props.proto"}, FS: withStruct})
	path := filepath.Join(t.TempDir(), common.DescriptorSetFileName)
	require.NoError(t, descriptor.Write(path, res.Set))

	set, err := descriptor.LoadAndAnnotate(path, res.Annotations, descriptor.DefaultOptions(prefix))
	require.NoError(t, err)
	assert.Len(t, set.File, 2)
	assert.True(t, res.Annotations.Has(".google.protobuf.Struct", descriptor.Binary))

	_, err = descriptor.LoadAndAnnotate(filepath.Join(t.TempDir(), "missing.fds"), res.Annotations, descriptor.DefaultOptions(prefix))
	assert.Error(t, err)
}

func TestLoadAndAnnotate_Truncated(t *testing.T) {
	res := compile(t, &schema.Config{Sources: protos.ExtendedSources, FS: protos.FS})
	full, err := descriptor.Marshal(res.Set)
	require.NoError(t, err)
	head := proto.Clone(res.Set).(*descriptorpb.FileDescriptorSet)
	head.File = head.File[:len(head.File)-1]
	part, err := descriptor.Marshal(head)
	require.NoError(t, err)
	require.Equal(t, full[:len(part)], part, "cut at a file record boundary")

	path := filepath.Join(t.TempDir(), common.DescriptorSetFileName)
	require.NoError(t, os.WriteFile(path, part, 0644))
	_, err = descriptor.Read(path)
	require.NoError(t, err)

	opts := descriptor.DefaultOptions(prefix)
	_, err = descriptor.LoadAndAnnotate(path, res.Annotations.DeepCopy(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated")
	assert.Contains(t, err.Error(), res.Set.File[len(res.Set.File)-1].GetName())

	d, err := descriptor.Digest(res.Set)
	require.NoError(t, err)
	opts.Expect = d
	ann := res.Annotations.DeepCopy()
	ann.Files = nil
	_, err = descriptor.LoadAndAnnotate(path, ann, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")

	require.NoError(t, descriptor.Write(path, res.Set))
	_, err = descriptor.LoadAndAnnotate(path, res.Annotations.DeepCopy(), opts)
	assert.NoError(t, err)
}

func TestGoPackageFor(t *testing.T) {
	assert.Equal(t, prefix+"/layout/raw;raw", descriptor.GoPackageFor(prefix, "layout/raw.proto"))
	assert.Equal(t, prefix+"/utils;utils", descriptor.GoPackageFor(prefix, "utils.proto"))
}
