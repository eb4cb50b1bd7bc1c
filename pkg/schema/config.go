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

// Package schema compiles protobuf schema sources in process.
//
// Compilation is all-or-nothing: every source must resolve, along with every
// import, within the configured include paths, or Compile fails and returns
// nothing.
package schema

import (
	"io/fs"
	"path"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/vlsir/vlsir-go/common"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
	osi "github.com/vlsir/vlsir-go/utils/os"
)

// Config describes one compile.
type Config struct {
	// Sources are schema paths relative to an include path. Imports among them
	// are resolved by the compiler, so order only affects output order.
	Sources []string
	// Includes are the include dirs. When empty, sources and imports are read
	// from FS instead.
	Includes []string
	FS       fs.FS
	// TypeAttributes maps a type selector to the capabilities every matching type
	// carries. Nil means every type gets descriptor.SerDe.
	TypeAttributes map[string][]descriptor.Capability
}

func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return errors.New("no schema sources given")
	}
	if len(c.Includes) == 0 && c.FS == nil {
		return errors.New("either include paths or a schema filesystem must be set")
	}
	seen := map[string]bool{}
	for _, src := range c.Sources {
		if !strings.HasSuffix(src, common.ProtoSuffix) {
			return errors.Errorf("schema source %s must have suffix %s", src, common.ProtoSuffix)
		}
		if osi.IsAbs(src) {
			return errors.Errorf("schema source %s must be relative to an include path", src)
		}
		if seen[src] {
			return errors.Errorf("schema source %s listed twice", src)
		}
		seen[src] = true
	}
	return nil
}

func (c *Config) typeAttributes() map[string][]descriptor.Capability {
	if c.TypeAttributes != nil {
		return c.TypeAttributes
	}
	return map[string][]descriptor.Capability{descriptor.MatchAll: descriptor.SerDe}
}

// CheckSources reports every source that does not resolve. All misses are
// returned together.
func CheckSources(c *Config) error {
	var result *multierror.Error
	for _, src := range c.Sources {
		if len(c.Includes) > 0 {
			if _, ok := osi.FindInDirs(src, c.Includes); !ok {
				result = multierror.Append(result, errors.Errorf("schema %s not found in include paths %v", src, c.Includes))
			}
			continue
		}
		if _, err := fs.Stat(c.FS, path.Clean(src)); err != nil {
			result = multierror.Append(result, errors.Errorf("schema %s not found in schema filesystem", src))
		}
	}
	return result.ErrorOrNil()
}
