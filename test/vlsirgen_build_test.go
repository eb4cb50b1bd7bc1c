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

package test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/vlsir/vlsir-go/pkg/descriptor"
	"github.com/vlsir/vlsir-go/protos"
	"github.com/vlsir/vlsir-go/test/testhelper"
	"github.com/vlsir/vlsir-go/test/testhelper/settings"
)

var _ = Describe("vlsirgen build", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "vlsirgen-build")
		testhelper.CheckErr(err)
	})
	AfterEach(func() {
		testhelper.CheckErr(os.RemoveAll(dir))
	})

	Context("with the embedded schemas", func() {
		It("generates one package per schema of the extended variant", func() {
			out := filepath.Join(dir, "gen")
			sess := testhelper.RunCmdAndCheckResult(0, settings.SubCmdBuildOfVlsirgen, "-o", out)
			Expect(sess.Out).To(gbytes.Say("circuit/circuit.pb.go"))
			for _, pkg := range []string{"utils", "circuit", "spice", "tech", "netlist", "layout/raw", "layout/tetris"} {
				_, err := os.Stat(filepath.Join(out, filepath.FromSlash(pkg), filepath.Base(pkg)+".pb.go"))
				testhelper.CheckErr(err)
			}
		})

		It("writes the same files on every build", func() {
			first := testhelper.RunCmdAndCheckResult(0, settings.SubCmdBuildOfVlsirgen, "--dry-run")
			second := testhelper.RunCmdAndCheckResult(0, settings.SubCmdBuildOfVlsirgen, "--dry-run")
			Expect(string(second.Out.Contents())).To(Equal(string(first.Out.Contents())))
		})
	})

	Context("with a schema missing from the include dir", func() {
		It("fails and writes nothing", func() {
			out := filepath.Join(dir, "gen")
			sess := testhelper.RunCmdAndCheckResult(1, settings.SubCmdBuildOfVlsirgen,
				"--variant", "standard", "--source", "utils.proto,nowhere.proto", "-o", out)
			Expect(sess.Err).To(gbytes.Say("nowhere.proto"))
			_, err := os.Stat(out)
			testhelper.CheckBeTrue(os.IsNotExist(err))
		})
	})

	Context("descriptor", func() {
		It("writes the post-processed descriptor set", func() {
			fds := filepath.Join(dir, "vlsir.fds")
			testhelper.RunCmdAndCheckResult(0, settings.SubCmdDescriptorOfVlsirgen, "-o", fds)
			set, err := descriptor.Read(fds)
			testhelper.CheckErr(err)
			Expect(len(set.GetFile())).To(BeNumerically(">=", len(protos.ExtendedSources)))
		})
	})

	Context("list", func() {
		It("lists every schema", func() {
			sess := testhelper.RunCmdAndCheckResult(0, settings.SubCmdListOfVlsirgen)
			for _, src := range protos.ExtendedSources {
				Expect(string(sess.Out.Contents())).To(ContainSubstring(src))
			}
		})
	})
})
