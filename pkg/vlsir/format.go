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

package vlsir

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Format names an encoding of VLSIR values.
type Format string

const (
	FormatBinary Format = "binary"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
)

var extensions = map[string]Format{
	".pb":        FormatBinary,
	".bin":       FormatBinary,
	".json":      FormatJSON,
	".txt":       FormatText,
	".pbtxt":     FormatText,
	".textproto": FormatText,
	".yaml":      FormatYAML,
	".yml":       FormatYAML,
	".toml":      FormatTOML,
}

// FormatFromPath picks the format of a file from its extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.Errorf("cannot infer format of %s: unknown extension %q", path, ext)
}

// Extension is the preferred file extension of f.
func (f Format) Extension() string {
	switch f {
	case FormatBinary:
		return ".pb"
	case FormatText:
		return ".pbtxt"
	}
	return "." + string(f)
}

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	if f, ok := extensions[strings.ToLower(s)]; ok {
		return f, nil
	}
	f := Format(strings.ToLower(s))
	if _, ok := lookupCodec(f); !ok {
		return "", errors.Errorf("unknown format %q, supported formats are %v", s, Formats())
	}
	return f, nil
}

// Codec encodes and decodes VLSIR values in one format.
type Codec interface {
	Name() string
	Marshal(Message) ([]byte, error)
	Unmarshal([]byte, Message) error
}

var (
	codecsMu sync.RWMutex
	codecs   = map[Format]Codec{}
)

func init() {
	RegisterCodec(binaryCodec{})
	for _, f := range []Format{FormatJSON, FormatText, FormatYAML, FormatTOML} {
		RegisterCodec(dynamicCodec{format: f})
	}
}

// RegisterCodec makes c available under c.Name(), replacing any codec
// registered under that name.
func RegisterCodec(c Codec) {
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs[Format(c.Name())] = c
}

func lookupCodec(f Format) (Codec, bool) {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	c, ok := codecs[f]
	return c, ok
}

// Formats lists the registered format names, sorted.
func Formats() []Format {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	out := make([]Format, 0, len(codecs))
	for f := range codecs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Marshal encodes m in format f.
func Marshal(m Message, f Format) ([]byte, error) {
	c, ok := lookupCodec(f)
	if !ok {
		return nil, errors.Errorf("unknown format %q", f)
	}
	return c.Marshal(m)
}

// Unmarshal decodes data in format f into m.
func Unmarshal(data []byte, f Format, m Message) error {
	c, ok := lookupCodec(f)
	if !ok {
		return errors.Errorf("unknown format %q", f)
	}
	return c.Unmarshal(data, m)
}

type binaryCodec struct{}

func (binaryCodec) Name() string { return string(FormatBinary) }

func (binaryCodec) Marshal(m Message) ([]byte, error) { return ToBytes(m) }

func (binaryCodec) Unmarshal(data []byte, m Message) error { return unmarshalBinary(data, m) }

// dynamicCodec encodes generated values through a dynamic message of the same
// schema type, so every format follows the protobuf mappings exactly.
type dynamicCodec struct {
	format Format
}

func (c dynamicCodec) Name() string { return string(c.format) }

func (c dynamicCodec) Marshal(m Message) ([]byte, error) {
	dm, err := ToDynamic(m)
	if err != nil {
		return nil, err
	}
	return EncodeDynamic(dm, c.format)
}

func (c dynamicCodec) Unmarshal(data []byte, m Message) error {
	dm, err := DecodeDynamic(m.ProtoFullName(), data, c.format)
	if err != nil {
		return err
	}
	return FromDynamic(dm, m)
}
