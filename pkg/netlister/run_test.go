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
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsir/vlsir-go/pkg/vlsir"
	"github.com/vlsir/vlsir-go/pkg/vlsir/netlist"
)

func TestNetlist(t *testing.T) {
	dir := t.TempDir()
	input := &netlist.NetlistInput{
		Pkg:         inverterPackage(),
		NetlistPath: filepath.Join(dir, "inv.sp"),
		Fmt:         netlist.NetlistFormat_SPICE,
		ResultPath:  filepath.Join(dir, "result.json"),
	}

	res := Netlist(context.Background(), input)
	assert.True(t, res.GetSuccess())
	assert.Empty(t, res.GetFail())

	data, err := os.ReadFile(input.NetlistPath)
	require.NoError(t, err)
	assert.Equal(t, spiceInverter, string(data))

	saved, err := vlsir.Open[netlist.NetlistResult](input.ResultPath)
	require.NoError(t, err)
	assert.True(t, saved.GetSuccess())
}

func TestNetlist_Fail(t *testing.T) {
	dir := t.TempDir()
	pkg := inverterPackage()
	pkg.Modules[0].Instances[0].Module = local("missing")
	input := &netlist.NetlistInput{
		Pkg:         pkg,
		NetlistPath: filepath.Join(dir, "inv.sp"),
		Fmt:         netlist.NetlistFormat_SPICE,
		ResultPath:  filepath.Join(dir, "result.pb"),
	}

	res := Netlist(context.Background(), input)
	assert.False(t, res.GetSuccess())
	assert.Contains(t, res.GetFail(), "undefined module missing")
	assert.NoFileExists(t, input.NetlistPath)

	saved, err := vlsir.Open[netlist.NetlistResult](input.ResultPath)
	require.NoError(t, err)
	assert.Equal(t, res.GetFail(), saved.GetFail())
}

func TestJob_Run(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "tb.scs")

	err := Job{Format: netlist.NetlistFormat_SPECTRE, Output: out, Sim: simInput("models.scs", "pdk.scs")}.Run(context.Background())
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, writeSimInput(t, netlist.NetlistFormat_SPECTRE, simInput("models.scs", "pdk.scs")), string(data))

	assert.EqualError(t, Job{Pkg: inverterPackage()}.Run(context.Background()), "netlist job has no output path")
	assert.EqualError(t, Job{Output: out}.Run(context.Background()), "failed to netlist "+out+": netlist job has no package")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Job{Output: out, Pkg: inverterPackage()}.Run(ctx), context.Canceled)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	bad := inverterPackage()
	bad.Modules[0].Instances[0].Module = nil
	jobs := []Job{
		{Format: netlist.NetlistFormat_SPICE, Output: filepath.Join(dir, "a.sp"), Pkg: inverterPackage()},
		{Format: netlist.NetlistFormat_SPICE, Output: filepath.Join(dir, "b.sp"), Pkg: bad},
		{Format: netlist.NetlistFormat_VERILOG, Output: filepath.Join(dir, "c.v"), Pkg: busPackage()},
	}

	var (
		mu     sync.Mutex
		failed []string
		calls  int
	)
	err := Batch(context.Background(), jobs, 2, func(j Job, err error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if err != nil {
			failed = append(failed, filepath.Base(j.Output))
		}
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instance has no module reference")
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"b.sp"}, failed)
	assert.FileExists(t, filepath.Join(dir, "a.sp"))
	assert.NoFileExists(t, filepath.Join(dir, "b.sp"))
	assert.FileExists(t, filepath.Join(dir, "c.v"))

	assert.NoError(t, Batch(context.Background(), nil, 0, nil))
}
