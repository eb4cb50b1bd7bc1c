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

// Package protos holds the VLSIR schema sources.
package protos

import (
	"embed"
)

// Version is the release of the VLSIR schemas held here.
const Version = "7.0.0"

// FS is rooted at the schema include root, so import paths resolve as-is.
//
//go:embed *.proto layout/*.proto
var FS embed.FS

// StandardSources is the schema list of the standard build, in dependency order.
var StandardSources = []string{
	"utils.proto",
	"layout/raw.proto",
	"circuit.proto",
	"layout/tetris.proto",
	"spice.proto",
}

// ExtendedSources adds the technology and netlisting schemas.
var ExtendedSources = append(append([]string{}, StandardSources...),
	"tech.proto",
	"netlist.proto",
)
