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
	"bytes"
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vlsir/vlsir-go/pkg/vlsir"
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/netlist"
	"github.com/vlsir/vlsir-go/pkg/vlsir/spice"
	osi "github.com/vlsir/vlsir-go/utils/os"
)

// Netlist writes input.Pkg to input.NetlistPath in input.Fmt. Failures are
// reported in the result, which is also saved to input.ResultPath when set.
func Netlist(ctx context.Context, input *netlist.NetlistInput) *netlist.NetlistResult {
	job := Job{
		Format: input.GetFmt(),
		Output: input.GetNetlistPath(),
		Pkg:    input.GetPkg(),
	}
	res := &netlist.NetlistResult{}
	if err := job.Run(ctx); err != nil {
		msg := err.Error()
		res.Fail = &msg
	} else {
		ok := true
		res.Success = &ok
	}

	if input.GetResultPath() != "" {
		if err := vlsir.Save(res, input.ResultPath); err != nil {
			logrus.Errorf("failed to save netlist result: %v", err)
		}
	}
	return res
}

// Job netlists one package, or one simulation input when Sim is set.
type Job struct {
	Format netlist.NetlistFormat
	Output string
	Pkg    *circuit.Package
	Sim    *spice.SimInput
}

// Run writes the job's netlist to its output file. The file is replaced
// atomically and left untouched on failure.
func (j Job) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if j.Output == "" {
		return errors.New("netlist job has no output path")
	}

	var buf bytes.Buffer
	nl, err := New(j.Format, &buf)
	if err != nil {
		return err
	}
	switch {
	case j.Sim != nil:
		err = nl.WriteSimInput(j.Sim)
	case j.Pkg != nil:
		err = nl.WritePackage(j.Pkg)
	default:
		err = errors.New("netlist job has no package")
	}
	if err != nil {
		return errors.Wrapf(err, "failed to netlist %s", j.Output)
	}

	if err := osi.NewAtomicWriter(j.Output).WriteFile(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "failed to write %s", j.Output)
	}
	logrus.Debugf("wrote %s netlist %s", j.Format, j.Output)
	return nil
}

// Batch runs jobs with at most concurrency of them at once. Every job runs
// regardless of the others failing; the failures are returned together.
// done, when not nil, is called after each job.
func Batch(ctx context.Context, jobs []Job, concurrency int, done func(Job, error)) error {
	if concurrency < 1 {
		concurrency = 1
	}
	var (
		mu   sync.Mutex
		errs *multierror.Error
		eg   errgroup.Group
	)
	eg.SetLimit(concurrency)
	for _, job := range jobs {
		job := job
		eg.Go(func() error {
			err := job.Run(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierror.Append(errs, err)
			}
			if done != nil {
				done(job, err)
			}
			return nil
		})
	}
	_ = eg.Wait()
	return errs.ErrorOrNil()
}
