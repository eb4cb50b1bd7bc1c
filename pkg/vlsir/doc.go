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

// Package vlsir is the flat surface over the generated VLSIR packages: the
// commonly used schema types plus conversion between values and their binary,
// JSON, text, YAML and TOML encodings.
//
// Generated packages live next to this one, one per schema file, and are
// regenerated from the embedded schemas with go generate.
package vlsir

//go:generate go run ../../cmd/vlsirgen build --variant extended --output . --keep-descriptor-set=false
