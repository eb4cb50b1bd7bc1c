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
	"testing"

	"github.com/onsi/gomega/gexec"

	"github.com/vlsir/vlsir-go/test/testhelper"
	"github.com/vlsir/vlsir-go/test/testhelper/settings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestVlsirgenTests(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "run vlsirgen suite")
}

var _ = SynchronizedBeforeSuite(func() []byte {
	binary, err := gexec.Build("github.com/vlsir/vlsir-go/cmd/vlsirgen")
	Expect(err).NotTo(HaveOccurred())
	SetDefaultEventuallyTimeout(settings.DefaultWaiteTime)
	return []byte(binary)
}, func(data []byte) {
	testhelper.Binary = string(data)
	dir, err := os.MkdirTemp("", "vlsirgen-e2e")
	Expect(err).NotTo(HaveOccurred())
	testhelper.EmptyConfig = filepath.Join(dir, "vlsirgen.yaml")
	Expect(os.WriteFile(testhelper.EmptyConfig, nil, 0600)).To(Succeed())
	SetDefaultEventuallyTimeout(settings.DefaultWaiteTime)
})

var _ = SynchronizedAfterSuite(func() {
	if testhelper.EmptyConfig != "" {
		_ = os.RemoveAll(filepath.Dir(testhelper.EmptyConfig))
	}
}, func() {
	gexec.CleanupBuildArtifacts()
})
