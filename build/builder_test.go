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

package build

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsir/vlsir-go/common"
	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
	"github.com/vlsir/vlsir-go/protos"
)

func testOptions(t *testing.T, variant string) *options.BuildOptions {
	dir := t.TempDir()
	o := options.DefaultBuildOptions(variant)
	o.OutputDir = filepath.Join(dir, "out")
	o.WorkDir = filepath.Join(dir, "work")
	return o
}

func runBuild(t *testing.T, o *options.BuildOptions) (*Result, error) {
	t.Helper()
	b, err := NewBuilder(o)
	require.NoError(t, err)
	return b.Build(context.Background())
}

func TestBuild_Extended(t *testing.T) {
	o := testOptions(t, options.VariantExtended)
	res, err := runBuild(t, o)
	require.NoError(t, err)

	assert.True(t, res.Committed)
	assert.Equal(t, options.VariantExtended, res.Variant)
	assert.NotEmpty(t, res.BuildID)
	assert.NotEmpty(t, res.DescriptorDigest)
	assert.Empty(t, res.DescriptorSet)
	require.Len(t, res.Files, len(protos.ExtendedSources))

	var size int64
	for _, f := range res.Files {
		data, err := os.ReadFile(filepath.Join(o.OutputDir, f.Path))
		require.NoError(t, err, f.Path)
		assert.Equal(t, digest.FromBytes(data), f.Digest, f.Path)
		assert.Equal(t, int64(len(data)), f.Size, f.Path)
		size += f.Size
	}
	assert.Equal(t, size, res.Size)
	assert.FileExists(t, filepath.Join(o.OutputDir, "tech", "tech.pb.go"))
	assert.Subset(t, res.Symbols["circuit.proto"], []string{"Module", "ExternalModule", "Package"})

	entries, err := os.ReadDir(o.WorkDir)
	if err == nil {
		assert.Empty(t, entries, "the descriptor artifact is discarded")
	}
	siblings, err := os.ReadDir(filepath.Dir(o.OutputDir))
	require.NoError(t, err)
	for _, e := range siblings {
		assert.NotContains(t, e.Name(), ".vlsirgen-", "the staging dir is removed")
	}
}

func TestBuild_KeepDescriptorSet(t *testing.T) {
	o := testOptions(t, options.VariantExtended)
	o.KeepDescriptorSet = true
	res, err := runBuild(t, o)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(o.WorkDir, common.DescriptorSetFileName), res.DescriptorSet)
	set, err := descriptor.Read(res.DescriptorSet)
	require.NoError(t, err)
	d, err := descriptor.Digest(set)
	require.NoError(t, err)
	assert.Equal(t, res.DescriptorDigest, d)
	for _, fd := range set.GetFile() {
		if !descriptor.IsWellKnown(fd) {
			assert.NotEmpty(t, fd.GetOptions().GetGoPackage(), fd.GetName())
		}
	}
}

func TestBuild_Standard(t *testing.T) {
	o := testOptions(t, options.VariantStandard)
	res, err := runBuild(t, o)
	require.NoError(t, err)

	require.Len(t, res.Files, len(protos.StandardSources))
	assert.NoFileExists(t, filepath.Join(o.OutputDir, "tech", "tech.pb.go"))
	assert.FileExists(t, filepath.Join(o.OutputDir, "layout", "tetris", "tetris.pb.go"))
	assert.NoDirExists(t, o.WorkDir, "the standard variant writes no descriptor artifact")
}

func TestBuild_Deterministic(t *testing.T) {
	first, err := runBuild(t, testOptions(t, options.VariantExtended))
	require.NoError(t, err)
	second, err := runBuild(t, testOptions(t, options.VariantExtended))
	require.NoError(t, err)

	assert.NotEqual(t, first.BuildID, second.BuildID)
	assert.Equal(t, first.DescriptorDigest, second.DescriptorDigest)
	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, first.Symbols, second.Symbols)
}

func TestBuild_IncludeDirs(t *testing.T) {
	include := t.TempDir()
	require.NoError(t, fs.WalkDir(protos.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != common.ProtoSuffix {
			return err
		}
		data, err := fs.ReadFile(protos.FS, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(include, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0600)
	}))

	embedded, err := runBuild(t, testOptions(t, options.VariantExtended))
	require.NoError(t, err)

	o := testOptions(t, options.VariantExtended)
	o.Includes = []string{include}
	fromDisk, err := runBuild(t, o)
	require.NoError(t, err)
	assert.Equal(t, embedded.Files, fromDisk.Files)
}

func TestBuild_FailuresWriteNothing(t *testing.T) {
	broken := fstest.MapFS{
		"utils.proto":  {Data: []byte("syntax = \"proto3\";\npackage vlsir.utils;\nmessage Param {\n  string name = 1;\n}\n")},
		"broken.proto": {Data: []byte("syntax = \"proto3\";\npackage vlsir.broken;\nmessage {\n")},
	}
	tests := []struct {
		name    string
		mutate  func(o *options.BuildOptions)
		fsys    fs.FS
		wantErr string
	}{
		{
			name: "missing source",
			mutate: func(o *options.BuildOptions) {
				o.Sources = append(o.Sources, "missing.proto")
			},
			wantErr: "schema missing.proto not found",
		},
		{
			name: "syntax error",
			mutate: func(o *options.BuildOptions) {
				o.Sources = []string{"utils.proto", "broken.proto"}
			},
			fsys:    broken,
			wantErr: "broken.proto",
		},
		{
			name: "missing capability",
			mutate: func(o *options.BuildOptions) {
				o.TypeAttributes = map[string][]string{".vlsir.utils": {"json"}}
			},
			wantErr: "binary",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOptions(t, options.VariantExtended)
			tt.mutate(o)
			b, err := NewBuilder(o)
			require.NoError(t, err)
			if tt.fsys != nil {
				b.WithFS(tt.fsys)
			}
			_, err = b.Build(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.NoDirExists(t, o.OutputDir)
		})
	}
}

func TestBuild_CommitRollsBack(t *testing.T) {
	stale := []byte("package utils\n")
	tests := []struct {
		name    string
		prepare func(t *testing.T, out string)
		want    []string
		wantErr string
	}{
		{
			name: "dir in place of a file",
			prepare: func(t *testing.T, out string) {
				require.NoError(t, os.MkdirAll(filepath.Join(out, "circuit", "circuit.pb.go"), 0755))
			},
			wantErr: "it is a dir",
		},
		{
			name: "file in place of a package dir",
			prepare: func(t *testing.T, out string) {
				require.NoError(t, os.WriteFile(filepath.Join(out, "spice"), []byte("x"), 0644))
			},
			want:    []string{"spice"},
			wantErr: "spice.pb.go",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOptions(t, options.VariantExtended)
			require.NoError(t, os.MkdirAll(filepath.Join(o.OutputDir, "utils"), 0755))
			require.NoError(t, os.WriteFile(filepath.Join(o.OutputDir, "utils", "utils.pb.go"), stale, 0644))
			tt.prepare(t, o.OutputDir)

			res, err := runBuild(t, o)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Contains(t, err.Error(), tt.wantErr)

			var files []string
			require.NoError(t, filepath.WalkDir(o.OutputDir, func(path string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return err
				}
				rel, err := filepath.Rel(o.OutputDir, path)
				files = append(files, filepath.ToSlash(rel))
				return err
			}))
			assert.ElementsMatch(t, append([]string{"utils/utils.pb.go"}, tt.want...), files)

			data, err := os.ReadFile(filepath.Join(o.OutputDir, "utils", "utils.pb.go"))
			require.NoError(t, err)
			assert.Equal(t, stale, data)
			assert.NoDirExists(t, filepath.Join(o.OutputDir, "layout"))
		})
	}
}

func TestBuild_Canceled(t *testing.T) {
	o := testOptions(t, options.VariantExtended)
	b, err := NewBuilder(o)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Build(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, o.OutputDir)
}

func TestNewBuilder_Invalid(t *testing.T) {
	o := options.DefaultBuildOptions(options.VariantExtended)
	o.Variant = "full"
	_, err := NewBuilder(o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid build options")
}

func TestGenerate_DryRun(t *testing.T) {
	o := testOptions(t, options.VariantStandard)
	b, err := NewBuilder(o)
	require.NoError(t, err)
	files, res, err := b.Generate(context.Background())
	require.NoError(t, err)

	assert.Len(t, files, len(protos.StandardSources))
	assert.False(t, res.Committed)
	assert.NoDirExists(t, o.OutputDir)
}

func TestInspect(t *testing.T) {
	b, err := NewBuilder(testOptions(t, options.VariantExtended))
	require.NoError(t, err)
	infos, err := b.Inspect(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, len(protos.ExtendedSources))

	var circuit *SchemaInfo
	for i := range infos {
		if infos[i].Source == "circuit.proto" {
			circuit = &infos[i]
		}
	}
	require.NotNil(t, circuit)
	assert.Equal(t, "vlsir.circuit", circuit.Package)
	assert.Equal(t, common.DefaultGoPackagePrefix+"/circuit;circuit", circuit.GoPackage)

	found := false
	for _, ti := range circuit.Types {
		if ti.Name == ".vlsir.circuit.Module" {
			found = true
			assert.Equal(t, "message", ti.Kind)
			assert.Equal(t, []descriptor.Capability{descriptor.Binary, descriptor.JSON}, ti.Capabilities)
		}
	}
	assert.True(t, found)
}
