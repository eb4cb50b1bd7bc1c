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

// Package descriptor reads, writes and annotates compiled schema descriptor sets.
package descriptor

import (
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	osi "github.com/vlsir/vlsir-go/utils/os"
)

// Marshal encodes set deterministically, so equal sets always give equal bytes.
func Marshal(set *descriptorpb.FileDescriptorSet) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(set)
}

// Digest is the content digest of the deterministic encoding of set.
func Digest(set *descriptorpb.FileDescriptorSet) (digest.Digest, error) {
	b, err := Marshal(set)
	if err != nil {
		return "", err
	}
	return digest.FromBytes(b), nil
}

// Write flushes set to path atomically. Once Write returns, the file is complete
// on disk.
func Write(path string, set *descriptorpb.FileDescriptorSet) error {
	b, err := Marshal(set)
	if err != nil {
		return errors.Wrap(err, "failed to encode descriptor set")
	}
	if err := osi.NewAtomicWriter(path).WriteFile(b); err != nil {
		return errors.Wrapf(err, "failed to write descriptor set to %s", path)
	}
	logrus.Debugf("wrote descriptor set %s (%d files, %d bytes)", path, len(set.GetFile()), len(b))
	return nil
}

// Read decodes the descriptor set at path. A missing, empty, truncated or
// undecodable file is an error.
func Read(path string) (*descriptorpb.FileDescriptorSet, error) {
	set, _, err := read(path)
	return set, err
}

func read(path string) (*descriptorpb.FileDescriptorSet, digest.Digest, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to read descriptor set %s", path)
	}
	if len(b) == 0 {
		return nil, "", errors.Errorf("descriptor set %s is empty", path)
	}
	set := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(b, set); err != nil {
		return nil, "", errors.Wrapf(err, "failed to decode descriptor set %s", path)
	}
	if len(set.GetFile()) == 0 {
		return nil, "", errors.Errorf("descriptor set %s holds no files", path)
	}
	return set, digest.FromBytes(b), nil
}

// Discard removes a consumed descriptor artifact. A missing file is not an error.
func Discard(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove descriptor set %s", path)
	}
	return nil
}
