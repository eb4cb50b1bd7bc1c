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
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
	"github.com/vlsir/vlsir-go/protos"
)

var _ = Describe("schema build", func() {
	var (
		dir  string
		opts *options.BuildOptions
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "vlsirgen-suite-")
		Expect(err).NotTo(HaveOccurred())
		opts = options.DefaultBuildOptions(options.VariantExtended)
		opts.OutputDir = filepath.Join(dir, "out")
		opts.WorkDir = filepath.Join(dir, "work")
	})
	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	build := func() (*Result, error) {
		b, err := NewBuilder(opts)
		Expect(err).NotTo(HaveOccurred())
		return b.Build(context.Background())
	}

	Context("with the extended schema set", func() {
		It("generates one package per schema", func() {
			res, err := build()
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Files).To(HaveLen(len(protos.ExtendedSources)))
			for _, f := range res.Files {
				Expect(filepath.Join(opts.OutputDir, f.Path)).To(BeARegularFile())
			}
		})

		It("post-processes the descriptor set idempotently", func() {
			opts.KeepDescriptorSet = true
			res, err := build()
			Expect(err).NotTo(HaveOccurred())

			set, err := descriptor.Read(res.DescriptorSet)
			Expect(err).NotTo(HaveOccurred())
			before, err := descriptor.Digest(set)
			Expect(err).NotTo(HaveOccurred())

			ann := descriptor.NewAnnotations(opts.Sources...)
			again, err := descriptor.LoadAndAnnotate(res.DescriptorSet, ann, descriptor.DefaultOptions(opts.GoPackagePrefix))
			Expect(err).NotTo(HaveOccurred())
			after, err := descriptor.Digest(again)
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(Equal(before))
		})

		It("fails on a truncated descriptor artifact", func() {
			path := filepath.Join(dir, "truncated.fds")
			Expect(os.WriteFile(path, []byte{0x0a, 0x20, 0x01}, 0600)).To(Succeed())
			_, err := descriptor.LoadAndAnnotate(path, descriptor.NewAnnotations(), descriptor.DefaultOptions(opts.GoPackagePrefix))
			Expect(err).To(MatchError(ContainSubstring("failed to decode descriptor set")))
		})
	})

	Context("when one schema is removed", func() {
		It("drops exactly its package", func() {
			all, err := build()
			Expect(err).NotTo(HaveOccurred())

			opts.OutputDir = filepath.Join(dir, "fewer")
			opts.Sources = nil
			for _, s := range protos.ExtendedSources {
				if s != "netlist.proto" {
					opts.Sources = append(opts.Sources, s)
				}
			}
			fewer, err := build()
			Expect(err).NotTo(HaveOccurred())

			Expect(fewer.Symbols).NotTo(HaveKey("netlist.proto"))
			for src, symbols := range fewer.Symbols {
				Expect(symbols).To(Equal(all.Symbols[src]), src)
			}
			Expect(filepath.Join(opts.OutputDir, "netlist")).NotTo(BeADirectory())
		})
	})

	Context("when a schema is missing", func() {
		It("writes nothing", func() {
			opts.Sources = []string{"utils.proto", "circuit.proto", "nope.proto"}
			_, err := build()
			Expect(err).To(MatchError(ContainSubstring("nope.proto")))
			Expect(opts.OutputDir).NotTo(BeADirectory())
		})
	})
})
