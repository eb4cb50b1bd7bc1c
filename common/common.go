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

package common

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	ExecBinaryFileName = "vlsirgen"
	DefaultConfigDir   = ".vlsir"
	DefaultConfigName  = "vlsirgen.yaml"
	DefaultLogDirName  = "log"
	DefaultLogDir      = "/var/log/vlsirgen"
	EnvPrefix          = "VLSIRGEN"
)

const (
	DefaultSchemaRoot      = "protos"
	DefaultOutputDir       = "pkg/vlsir"
	DefaultGoPackagePrefix = "github.com/vlsir/vlsir-go/pkg/vlsir"
	DescriptorSetFileName  = "vlsir.fds"
	ProtoSuffix            = ".proto"
	GoSuffix               = ".pb.go"
)

const (
	// WellKnownPrefix is the proto package of the protobuf well-known types.
	WellKnownPrefix = ".google.protobuf"
	// StructPBImport implements google.protobuf.Struct, Value, ListValue and NullValue.
	StructPBImport = "google.golang.org/protobuf/types/known/structpb"
)

const (
	FileMode0755 = 0755
	FileMode0644 = 0644
)

// GetHomeDir returns the user home dir, or the current dir when it cannot be found.
func GetHomeDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return "."
	}
	return home
}

// GetConfigDir is ~/.vlsir.
func GetConfigDir() string {
	return filepath.Join(GetHomeDir(), DefaultConfigDir)
}

func GetDefaultConfigFile() string {
	return filepath.Join(GetConfigDir(), DefaultConfigName)
}

func GetDefaultLogDir() string {
	dir, err := homedir.Dir()
	if err != nil {
		return DefaultLogDir
	}
	return filepath.Join(dir, DefaultConfigDir, DefaultLogDirName)
}
