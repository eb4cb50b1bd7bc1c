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

package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Set at build time with
// -ldflags "-X github.com/vlsir/vlsir-go/pkg/version.gitVersion=v1.0.0 ...".
var (
	gitVersion   = "v0.0.0-master+$Format:%h$"
	gitCommit    = ""
	gitTreeState = ""
	buildDate    = "1970-01-01T00:00:00Z"
	gitMajor     = ""
	gitMinor     = ""
)

// Get returns the overall codebase version.
func Get() Info {
	return Info{
		Major:        gitMajor,
		Minor:        gitMinor,
		GitVersion:   gitVersion,
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Text renders the short form: the git version, followed by the abbreviated
// commit when one is known.
func (info Info) Text() ([]byte, error) {
	if info.GitVersion == "" {
		return nil, errors.New("version is not set")
	}
	s := info.GitVersion
	if c := info.GitCommit; c != "" && !strings.Contains(s, c) {
		if len(c) > 8 {
			c = c[:8]
		}
		s += "-" + c
	}
	return []byte(s), nil
}
