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

package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vlsir/vlsir-go/common"
)

var FS = NewFilesystem()

// Interface is the file system a build stages and commits its output through.
type Interface interface {
	Stat(name string) (os.FileInfo, error)
	// Rename moves oldPath over newPath, creating the parent dir of newPath.
	Rename(oldPath, newPath string) error
	MkdirAll(path string) error
	// MkTmpdir creates a new dir in dir whose name starts with prefix.
	MkTmpdir(dir, prefix string) (string, error)
	RemoveAll(path ...string) error
	// GetFilesSize sums the sizes of the regular files under paths.
	GetFilesSize(paths []string) (int64, error)
}

type filesystem struct{}

func (f filesystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (f filesystem) Rename(oldPath, newPath string) error {
	// a dir in the way of a file is not replaced
	if fi, err := f.Stat(newPath); err == nil && fi.IsDir() {
		if src, err := f.Stat(oldPath); err == nil && !src.IsDir() {
			return fmt.Errorf("failed to rename %s: %s is a dir", oldPath, newPath)
		}
		if err := f.RemoveAll(newPath); err != nil {
			return err
		}
	}

	// create dir if filepath.Dir(newPath) not exist
	if _, err := f.Stat(filepath.Dir(newPath)); err != nil {
		if err := f.MkdirAll(filepath.Dir(newPath)); err != nil {
			return err
		}
	}

	return os.Rename(oldPath, newPath)
}

func (f filesystem) RemoveAll(path ...string) error {
	for _, fi := range path {
		err := os.RemoveAll(fi)
		if err != nil {
			return fmt.Errorf("failed to clean file %s: %v", fi, err)
		}
	}
	return nil
}

func (f filesystem) MkdirAll(path string) error {
	return os.MkdirAll(path, common.FileMode0755)
}

func (f filesystem) MkTmpdir(dir, prefix string) (string, error) {
	if err := f.MkdirAll(dir); err != nil {
		return "", err
	}
	return os.MkdirTemp(dir, prefix)
}

func (f filesystem) GetFilesSize(paths []string) (int64, error) {
	var size int64
	for i := range paths {
		s, err := f.getFileSize(paths[i])
		if err != nil {
			return 0, err
		}
		size += s
	}
	return size, nil
}

func (f filesystem) getFileSize(path string) (size int64, err error) {
	_, err = os.Stat(path)
	if err != nil {
		return
	}
	err = filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

func NewFilesystem() Interface {
	return filesystem{}
}
