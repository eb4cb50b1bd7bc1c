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

package testhelper

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"

	"github.com/vlsir/vlsir-go/test/testhelper/settings"
)

var (
	// Binary is the vlsirgen binary under test, built once per suite.
	Binary string
	// EmptyConfig is an empty build config file, set up by the suite.
	EmptyConfig string
)

// Start runs vlsirgen with args and returns its *gexec.Session. Every run
// ignores the user's config file and logs without colors.
func Start(args ...string) (*gexec.Session, error) {
	if Binary == "" {
		return nil, errors.New("failed to start cmd, vlsirgen is not built")
	}
	args = append([]string{"--color", "never", "--config", EmptyConfig}, args...)
	execCmd := exec.Command(Binary, args...)
	_, err := io.WriteString(ginkgo.GinkgoWriter, fmt.Sprintf("vlsirgen %s\n", strings.Join(args, " ")))
	if err != nil {
		return nil, err
	}
	return gexec.Start(execCmd, ginkgo.GinkgoWriter, ginkgo.GinkgoWriter)
}

// RunCmdAndCheckResult start cmd and check expectedCode
func RunCmdAndCheckResult(expectedCode int, args ...string) *gexec.Session {
	sess, err := Start(args...)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Eventually(sess, settings.MaxWaiteTime).Should(gexec.Exit(expectedCode))
	return sess
}

func CheckErr(err error) {
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
}

func CheckExit0(sess *gexec.Session, waitTime interface{}) {
	gomega.Eventually(sess, waitTime).Should(gexec.Exit(0))
}

func CheckBeTrue(b bool) {
	gomega.Expect(b).To(gomega.BeTrue())
}
