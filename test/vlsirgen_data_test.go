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

	"github.com/vlsir/vlsir-go/pkg/primitives"
	"github.com/vlsir/vlsir-go/pkg/vlsir"
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/protos"
	"github.com/vlsir/vlsir-go/test/testhelper"
	"github.com/vlsir/vlsir-go/test/testhelper/settings"
)

var _ = Describe("vlsirgen data commands", func() {
	var dir, prims string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "vlsirgen-data")
		testhelper.CheckErr(err)
		prims = filepath.Join(dir, "prims.pb")
		testhelper.RunCmdAndCheckResult(0, settings.SubCmdPrimitivesOfVlsirgen, "-o", prims)
	})
	AfterEach(func() {
		testhelper.CheckErr(os.RemoveAll(dir))
	})

	It("converts a package to every readable format and back", func() {
		for _, to := range []string{"json", "text", "yaml"} {
			testhelper.RunCmdAndCheckResult(0, settings.SubCmdConvertOfVlsirgen, "-t", "vlsir.circuit.Package", "--to", to, prims)
		}
		for _, ext := range []string{".json", ".pbtxt", ".yaml"} {
			got, err := vlsir.Open[circuit.Package](filepath.Join(dir, "prims"+ext))
			testhelper.CheckErr(err)
			Expect(got.Domain).To(Equal(primitives.Domain))
			Expect(got.ExtModules).To(HaveLen(len(primitives.Names())))
		}
	})

	It("rejects a type that does not match the data", func() {
		sess := testhelper.RunCmdAndCheckResult(1, settings.SubCmdConvertOfVlsirgen, "-t", "vlsir.raw.Library", "--to", "json", prims)
		Expect(sess.Err).To(gbytes.Say("failed to open"))
	})

	It("netlists a package", func() {
		pkg := &circuit.Package{
			Domain: "example.e2e",
			Modules: []*circuit.Module{{
				Name:    "link",
				Ports:   []*circuit.Port{{Signal: "a", Direction: circuit.Port_INOUT}},
				Signals: []*circuit.Signal{{Name: "a", Width: 1}},
			}},
		}
		src := filepath.Join(dir, "link.json")
		testhelper.CheckErr(vlsir.Save(pkg, src))

		testhelper.RunCmdAndCheckResult(0, settings.SubCmdNetlistOfVlsirgen, "--fmt", "spice", src)
		data, err := os.ReadFile(filepath.Join(dir, "link.sp"))
		testhelper.CheckErr(err)
		Expect(string(data)).To(ContainSubstring(".SUBCKT link"))
	})

	It("prints its version", func() {
		sess := testhelper.RunCmdAndCheckResult(0, settings.SubCmdVersionOfVlsirgen)
		Expect(sess.Out).To(gbytes.Say("schemaVersion: " + protos.Version))
	})
})
