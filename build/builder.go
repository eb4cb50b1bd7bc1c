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

// Package build runs the schema build: compile, post-process the descriptor
// set, generate Go packages and commit them under the output dir.
//
// A build is all-or-nothing. Generated files are staged first and moved into
// place only after every stage succeeded.
package build

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/vlsir/vlsir-go/common"
	"github.com/vlsir/vlsir-go/pkg/define/options"
	"github.com/vlsir/vlsir-go/pkg/descriptor"
	"github.com/vlsir/vlsir-go/pkg/gogen"
	"github.com/vlsir/vlsir-go/pkg/schema"
	"github.com/vlsir/vlsir-go/protos"
	osi "github.com/vlsir/vlsir-go/utils/os"
	osfs "github.com/vlsir/vlsir-go/utils/os/fs"
)

// FileInfo describes one committed file.
type FileInfo struct {
	// Path is relative to the output dir.
	Path   string        `json:"path"`
	Source string        `json:"source"`
	Digest digest.Digest `json:"digest"`
	Size   int64         `json:"size"`
}

// Result reports a successful build.
type Result struct {
	BuildID   string     `json:"buildID"`
	Variant   string     `json:"variant"`
	OutputDir string     `json:"outputDir"`
	Files     []FileInfo `json:"files"`
	// DescriptorSet is the path of the kept descriptor artifact, if any.
	DescriptorSet    string        `json:"descriptorSet,omitempty"`
	DescriptorDigest digest.Digest `json:"descriptorDigest"`
	// Symbols maps each schema file to the exported names generated from it.
	Symbols   map[string][]string `json:"symbols"`
	Committed bool                `json:"committed"`
	// Size is the total size of the committed files on disk.
	Size int64 `json:"size,omitempty"`
}

// Builder runs one build. It is not safe for concurrent use.
type Builder struct {
	opts *options.BuildOptions
	fsys fs.FS
	caps map[string][]descriptor.Capability
	id   string

	set    *descriptorpb.FileDescriptorSet
	ann    *descriptor.Annotations
	files  []*gogen.File
	result *Result
}

// NewBuilder validates o. Without include dirs the embedded schemas are used.
func NewBuilder(o *options.BuildOptions) (*Builder, error) {
	if err := o.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid build options")
	}
	caps, err := o.Capabilities()
	if err != nil {
		return nil, err
	}
	b := &Builder{
		opts: o,
		caps: caps,
		id:   uuid.New().String(),
	}
	if len(o.Includes) == 0 {
		b.fsys = protos.FS
	}
	return b, nil
}

// WithFS reads the schemas from fsys when no include dirs are configured.
func (b *Builder) WithFS(fsys fs.FS) *Builder {
	b.fsys = fsys
	return b
}

// ID is the build ID, also used to name the staging area.
func (b *Builder) ID() string {
	return b.id
}

type stage struct {
	name string
	run  func(ctx context.Context) error
}

// pipeline returns the stages of the configured variant in order.
func (b *Builder) pipeline() []stage {
	pipeline := []stage{{"compile", b.compile}}
	if b.opts.Variant == options.VariantExtended {
		pipeline = append(pipeline, stage{"post-process", b.postProcess})
	} else {
		pipeline = append(pipeline, stage{"annotate", b.annotateInMemory})
	}
	pipeline = append(pipeline, stage{"generate", b.generate})
	if !b.opts.DryRun {
		pipeline = append(pipeline, stage{"commit", b.commit})
	}
	return pipeline
}

// Build runs every stage. Cancellation is checked between stages.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	b.result = &Result{
		BuildID:   b.id,
		Variant:   b.opts.Variant,
		OutputDir: b.opts.OutputDir,
		Symbols:   map[string][]string{},
	}
	for _, s := range b.pipeline() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "build %s canceled before %s", b.id, s.name)
		}
		logrus.Debugf("build %s: %s", b.id, s.name)
		if err := s.run(ctx); err != nil {
			return nil, errors.Wrapf(err, "build failed at %s", s.name)
		}
	}
	logrus.Infof("built %d packages from %d schemas", len(b.files), len(b.opts.Sources))
	return b.result, nil
}

func (b *Builder) schemaConfig() *schema.Config {
	c := &schema.Config{
		Sources:        b.opts.Sources,
		Includes:       b.opts.Includes,
		TypeAttributes: b.caps,
	}
	if len(c.Includes) == 0 {
		c.FS = b.fsys
	}
	return c
}

func (b *Builder) compile(ctx context.Context) error {
	res, err := schema.Compile(ctx, b.schemaConfig())
	if err != nil {
		return err
	}
	b.set = res.Set
	b.ann = res.Annotations
	return nil
}

func (b *Builder) annotateOptions() descriptor.Options {
	return descriptor.Options{
		GoPackagePrefix: b.opts.GoPackagePrefix,
		WellKnown:       descriptor.StructuredValueTypes,
		Extern:          b.opts.Extern,
	}
}

// postProcess writes the compiled set to the work dir, reads it back and runs
// the second annotation pass over what was read.
func (b *Builder) postProcess(ctx context.Context) error {
	path := filepath.Join(b.opts.WorkDir, b.id, common.DescriptorSetFileName)
	if b.opts.KeepDescriptorSet {
		path = filepath.Join(b.opts.WorkDir, common.DescriptorSetFileName)
	}
	written, err := descriptor.Digest(b.set)
	if err != nil {
		return errors.Wrap(err, "failed to digest descriptor set")
	}
	if err := descriptor.Write(path, b.set); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := b.annotateOptions()
	opts.Expect = written
	set, err := descriptor.LoadAndAnnotate(path, b.ann, opts)
	if err != nil {
		return err
	}
	b.set = set

	if b.opts.KeepDescriptorSet {
		if err := descriptor.Write(path, set); err != nil {
			return err
		}
		b.result.DescriptorSet = path
	} else {
		if err := descriptor.Discard(path); err != nil {
			return err
		}
		if err := os.Remove(filepath.Dir(path)); err != nil {
			logrus.Debugf("failed to remove %s: %v", filepath.Dir(path), err)
		}
	}
	return b.digest()
}

// annotateInMemory finishes the standard variant, which only records the
// configured extern mapping on top of the first pass.
func (b *Builder) annotateInMemory(context.Context) error {
	for prefix, importPath := range b.opts.Extern {
		b.ann.MapExtern(prefix, importPath)
	}
	return b.digest()
}

func (b *Builder) digest() error {
	d, err := descriptor.Digest(b.set)
	if err != nil {
		return errors.Wrap(err, "failed to digest descriptor set")
	}
	b.result.DescriptorDigest = d
	return nil
}

func (b *Builder) generate(context.Context) error {
	g, err := gogen.New(b.set, b.ann, gogen.Options{GoPackagePrefix: b.opts.GoPackagePrefix})
	if err != nil {
		return err
	}
	files, err := g.Generate()
	if err != nil {
		return err
	}
	b.files = files
	for _, f := range files {
		b.result.Files = append(b.result.Files, FileInfo{
			Path:   filepath.FromSlash(f.Name),
			Source: f.Source,
			Digest: f.Digest(),
			Size:   int64(len(f.Content)),
		})
		b.result.Symbols[f.Source] = f.Symbols
	}
	sort.Slice(b.result.Files, func(i, j int) bool { return b.result.Files[i].Path < b.result.Files[j].Path })
	return nil
}

// commit stages every file next to the output dir, then renames them into
// place. Files they replace are set aside in the staging dir and restored if
// any rename fails.
func (b *Builder) commit(context.Context) error {
	outputDir, err := filepath.Abs(b.opts.OutputDir)
	if err != nil {
		return errors.Wrapf(err, "invalid output dir %s", b.opts.OutputDir)
	}
	for _, f := range b.files {
		dst := filepath.Join(outputDir, filepath.FromSlash(f.Name))
		if fi, err := osfs.FS.Stat(dst); err == nil && fi.IsDir() {
			return errors.Errorf("cannot commit %s: it is a dir", dst)
		}
	}

	staging, err := osfs.FS.MkTmpdir(filepath.Dir(outputDir), ".vlsirgen-"+b.id+"-")
	if err != nil {
		return errors.Wrap(err, "failed to create staging dir")
	}
	defer func() {
		if err := osfs.FS.RemoveAll(staging); err != nil {
			logrus.Warnf("failed to remove staging dir %s: %v", staging, err)
		}
	}()

	for _, f := range b.files {
		if err := osi.NewAtomicWriter(filepath.Join(staging, "new", filepath.FromSlash(f.Name))).WriteFile(f.Content); err != nil {
			return errors.Wrapf(err, "failed to stage %s", f.Name)
		}
	}

	tx := &commitTx{backupDir: filepath.Join(staging, "old")}
	for _, f := range b.files {
		name := filepath.FromSlash(f.Name)
		if err := tx.move(filepath.Join(staging, "new", name), filepath.Join(outputDir, name), name); err != nil {
			tx.rollback()
			return err
		}
	}

	size, err := osfs.FS.GetFilesSize(tx.committed)
	if err != nil {
		return errors.Wrap(err, "failed to check committed files")
	}
	b.result.Size = size
	b.result.Committed = true
	return nil
}

// commitTx records the renames of one commit so they can be undone.
type commitTx struct {
	backupDir string
	committed []string
	// backups maps a committed path to the file it replaced.
	backups map[string]string
	// created lists the dirs the commit made, parents first.
	created []string
}

func (tx *commitTx) move(src, dst, name string) error {
	for _, dir := range missingDirs(filepath.Dir(dst)) {
		if err := osfs.FS.MkdirAll(dir); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
		tx.created = append(tx.created, dir)
	}
	if _, err := osfs.FS.Stat(dst); err == nil {
		backup := filepath.Join(tx.backupDir, name)
		if err := osfs.FS.Rename(dst, backup); err != nil {
			return errors.Wrapf(err, "failed to set aside %s", dst)
		}
		if tx.backups == nil {
			tx.backups = map[string]string{}
		}
		tx.backups[dst] = backup
	}
	if err := osfs.FS.Rename(src, dst); err != nil {
		if backup, ok := tx.backups[dst]; ok {
			if err := osfs.FS.Rename(backup, dst); err != nil {
				logrus.Warnf("failed to restore %s: %v", dst, err)
			}
		}
		return errors.Wrapf(err, "failed to commit %s", dst)
	}
	tx.committed = append(tx.committed, dst)
	logrus.Debugf("wrote %s", dst)
	return nil
}

// rollback removes the committed files, restores the ones they replaced and
// removes the dirs the commit created.
func (tx *commitTx) rollback() {
	for i := len(tx.committed) - 1; i >= 0; i-- {
		dst := tx.committed[i]
		if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("failed to roll back %s: %v", dst, err)
		}
		if backup, ok := tx.backups[dst]; ok {
			if err := osfs.FS.Rename(backup, dst); err != nil {
				logrus.Warnf("failed to restore %s: %v", dst, err)
			}
		}
	}
	for i := len(tx.created) - 1; i >= 0; i-- {
		if err := os.Remove(tx.created[i]); err != nil {
			logrus.Debugf("failed to remove %s: %v", tx.created[i], err)
		}
	}
}

// missingDirs lists dir and those of its parents that do not exist, parents
// first.
func missingDirs(dir string) []string {
	var out []string
	for {
		if _, err := osfs.FS.Stat(dir); err == nil {
			break
		}
		out = append([]string{dir}, out...)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return out
}
