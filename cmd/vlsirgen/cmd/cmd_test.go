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

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsir/vlsir-go/pkg/descriptor"
	"github.com/vlsir/vlsir-go/pkg/primitives"
	"github.com/vlsir/vlsir-go/pkg/vlsir"
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/protos"
)

// execute runs vlsirgen with args and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--color", "never", "--config", emptyConfig(t)}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// emptyConfig keeps the user's config file out of the tests.
func emptyConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "vlsirgen.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	return path
}

func TestBuild(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen")
	stdout, err := execute(t, "build", "--variant", "standard", "-o", out)
	require.NoError(t, err)

	for _, f := range []string{"utils/utils.pb.go", "circuit/circuit.pb.go", "spice/spice.pb.go", "layout/raw/raw.pb.go"} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(f)))
		assert.Contains(t, stdout, f)
	}
	assert.NoDirExists(t, filepath.Join(out, "tech"))
	assert.Contains(t, stdout, "sha256:")
}

func TestBuild_DryRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen")
	stdout, err := execute(t, "build", "--variant", "standard", "-o", out, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "circuit/circuit.pb.go")
	assert.NoDirExists(t, out)
}

func TestBuild_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen")
	cfg := filepath.Join(dir, "vlsirgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("variant: standard\noutputDir: "+out+"\n"), 0600))

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--color", "never", "--config", cfg, "build"})
	require.NoError(t, root.Execute())

	assert.FileExists(t, filepath.Join(out, "circuit", "circuit.pb.go"))
	assert.NoDirExists(t, filepath.Join(out, "tech"))
}

func TestBuild_EnvOverride(t *testing.T) {
	t.Setenv("VLSIRGEN_VARIANT", "standard")
	out := filepath.Join(t.TempDir(), "gen")
	_, err := execute(t, "build", "-o", out)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "spice", "spice.pb.go"))
	assert.NoDirExists(t, filepath.Join(out, "netlist"))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr string
	}{
		{
			name:    "missing schema",
			args:    []string{"--variant", "standard", "--source", "utils.proto,missing.proto"},
			wantErr: "missing.proto",
		},
		{
			name:    "unknown variant",
			args:    []string{"--variant", "huge"},
			wantErr: `variant "huge"`,
		},
		{
			name:    "unknown config key",
			config:  "variant: standard\nbogus: 1\n",
			wantErr: "failed to decode build config",
		},
		{
			name:    "unknown capability",
			config:  "typeAttributes:\n  .: [binary, xml]\n",
			wantErr: "unknown capability xml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out := filepath.Join(dir, "gen")
			cfg := filepath.Join(dir, "vlsirgen.yaml")
			require.NoError(t, os.WriteFile(cfg, []byte(tt.config), 0600))

			root := NewRootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs(append([]string{"--color", "never", "--config", cfg, "build", "-o", out}, tt.args...))
			err := root.Execute()
			assert.ErrorContains(t, err, tt.wantErr)
			assert.NoDirExists(t, out)
		})
	}
}

func TestDescriptor(t *testing.T) {
	dir := t.TempDir()

	fds := filepath.Join(dir, "vlsir.fds")
	_, err := execute(t, "descriptor", "-o", fds)
	require.NoError(t, err)
	set, err := descriptor.Read(fds)
	require.NoError(t, err)
	var names []string
	for _, fd := range set.GetFile() {
		names = append(names, fd.GetName())
	}
	assert.Subset(t, names, protos.ExtendedSources)

	js := filepath.Join(dir, "vlsir.json")
	_, err = execute(t, "descriptor", "--variant", "standard", "--annotate=false", "-o", js)
	require.NoError(t, err)
	data, err := os.ReadFile(js)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
	assert.Contains(t, string(data), `"circuit.proto"`)
	assert.NotContains(t, string(data), `"tech.proto"`)

	_, err = execute(t, "descriptor")
	assert.ErrorContains(t, err, `required flag(s) "output" not set`)
}

func TestList(t *testing.T) {
	stdout, err := execute(t, "list", "--variant", "standard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "circuit.proto")
	assert.Contains(t, stdout, "vlsir.circuit")
	assert.Contains(t, stdout, "github.com/vlsir/vlsir-go/pkg/vlsir/circuit")
	assert.NotContains(t, stdout, "tech.proto")

	stdout, err = execute(t, "list", "--types")
	require.NoError(t, err)
	assert.Contains(t, stdout, "vlsir.circuit.Package")
	assert.Contains(t, stdout, "vlsir.tech.Technology")
	assert.Contains(t, stdout, "binary,json")
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prims.json")
	require.NoError(t, vlsir.Save(primitives.Package(), src))

	_, err := execute(t, "convert", "--type", "vlsir.circuit.Package", "--to", "yaml", src)
	require.NoError(t, err)
	got, err := vlsir.Open[circuit.Package](filepath.Join(dir, "prims.yaml"))
	require.NoError(t, err)
	assert.Equal(t, primitives.Domain, got.Domain)
	assert.Len(t, got.ExtModules, len(primitives.Names()))

	out := filepath.Join(dir, "out")
	_, err = execute(t, "convert", "-t", ".vlsir.circuit.Package", "--to", ".pb", "-o", out, "-j", "2", src, filepath.Join(dir, "prims.yaml"))
	assert.ErrorContains(t, err, "would both be converted to")

	_, err = execute(t, "convert", "-t", "vlsir.circuit.Package", "--to", "pb", "-o", out, src)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "prims.pb"))
}

func TestConvert_Errors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prims.json")
	require.NoError(t, vlsir.Save(primitives.Package(), src))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"same format", []string{"--type", "vlsir.circuit.Package", "--to", "json", src}, "already in json format"},
		{"unknown type", []string{"--type", "vlsir.circuit.Nothing", "--to", "yaml", src}, "unknown message type"},
		{"unknown format", []string{"--type", "vlsir.circuit.Package", "--to", "gds", src}, "unknown format"},
		{"no type", []string{"--to", "yaml", src}, `required flag(s) "type" not set`},
		{"no inputs", []string{"--type", "vlsir.circuit.Package", "--to", "yaml"}, "requires at least 1 arg(s)"},
		{"wrong type", []string{"--type", "vlsir.spice.SimInput", "--to", "yaml", src}, "failed to open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"convert"}, tt.args...)...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func wirePackage() *circuit.Package {
	return &circuit.Package{
		Domain: "example.wires",
		Modules: []*circuit.Module{{
			Name:    "link",
			Ports:   []*circuit.Port{{Signal: "a", Direction: circuit.Port_INOUT}},
			Signals: []*circuit.Signal{{Name: "a", Width: 1}},
		}},
	}
}

func TestNetlist(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pb")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, vlsir.Save(wirePackage(), a))
	require.NoError(t, vlsir.Save(wirePackage(), b))

	_, err := execute(t, "netlist", "--fmt", "ngspice", a, b)
	require.NoError(t, err)
	for _, f := range []string{"a.sp", "b.sp"} {
		data, err := os.ReadFile(filepath.Join(dir, f))
		require.NoError(t, err)
		assert.Contains(t, string(data), ".SUBCKT link")
	}

	scs := filepath.Join(dir, "wire.scs")
	_, err = execute(t, "netlist", "--fmt", "spectre", "-o", scs, a)
	require.NoError(t, err)
	assert.FileExists(t, scs)

	out := filepath.Join(dir, "verilog")
	require.NoError(t, os.Mkdir(out, 0755))
	_, err = execute(t, "netlist", "--fmt", "verilog", "-o", out, a)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(out, "a.v"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "module link")
}

func TestNetlist_Errors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "wire.json")
	require.NoError(t, vlsir.Save(wirePackage(), src))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown format", []string{"--fmt", "eldo", src}, "unknown netlist format"},
		{"cdl", []string{"--fmt", "cdl", src}, "unsupported"},
		{"missing input", []string{filepath.Join(dir, "none.pb")}, "none.pb"},
		{"not a sim input", []string{"--sim", src}, "failed to open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"netlist"}, tt.args...)...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
	assert.NoFileExists(t, filepath.Join(dir, "wire.sp"))
}

func TestPrimitives(t *testing.T) {
	stdout, err := execute(t, "primitives")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"domain": "vlsir.primitives"`)

	stdout, err = execute(t, "primitives", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "domain: vlsir.primitives")

	path := filepath.Join(t.TempDir(), "prims.pb")
	_, err = execute(t, "primitives", "-o", path)
	require.NoError(t, err)
	got, err := vlsir.Open[circuit.Package](path)
	require.NoError(t, err)
	assert.Equal(t, primitives.Domain, got.Domain)

	_, err = execute(t, "primitives", "--format", "gds")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "schemaVersion: "+protos.Version)
	assert.Contains(t, stdout, "gitVersion:")

	stdout, err = execute(t, "version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"schemaVersion": "`+protos.Version+`"`)

	stdout, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "schemaVersion")

	_, err = execute(t, "version", "-o", "xml")
	assert.ErrorContains(t, err, "output format must be yaml or json")
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, stdout, "vlsirgen")
		})
	}
	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRoot_InvalidColor(t *testing.T) {
	_, err := execute(t, "--color", "rainbow", "version")
	assert.ErrorContains(t, err, "invalid color mode")
}

func TestRoot_MissingConfig(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "version"})
	assert.ErrorContains(t, root.Execute(), "failed to read config file")
}

func TestShortDigest(t *testing.T) {
	d := digest.FromString("vlsir")
	tests := []struct {
		name string
		in   digest.Digest
		want string
	}{
		{"empty", "", ""},
		{"sha256", d, "sha256:" + d.Encoded()[:12]},
		{"invalid", "sha256:xyz", "sha256:xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shortDigest(tt.in))
		})
	}
}

func TestOutputPaths(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"convert next to input", convertOutput("a/lib.pb", "", vlsir.FormatText), filepath.Join("a", "lib.pbtxt")},
		{"convert into dir", convertOutput("a/lib.pb", "out", vlsir.FormatYAML), filepath.Join("out", "lib.yaml")},
		{"netlist next to input", netlistOutput("a/inv.pb", "", true, ".sp"), filepath.Join("a", "inv.sp")},
		{"netlist single file", netlistOutput("a/inv.pb", "x/top.cir", true, ".sp"), "x/top.cir"},
		{"netlist existing dir", netlistOutput("a/inv.pb", dir, true, ".v"), filepath.Join(dir, "inv.v")},
		{"netlist many inputs", netlistOutput("a/inv.pb", "x/top.cir", false, ".sp"), filepath.Join("x/top.cir", "inv.sp")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
