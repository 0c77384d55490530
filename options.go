// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/z5labs/dotenv/pkg/noop"
)

type options struct {
	fs         fs.FS
	logger     *slog.Logger
	candidates []string
}

func newOptions(opts ...Option) *options {
	o := &options{
		fs:         osFS{},
		logger:     noop.Logger(),
		candidates: DefaultCandidates,
	}
	for _, opt := range opts {
		opt.applyOption(o)
	}
	return o
}

// Option helps configure how env files are located and read.
type Option interface {
	applyOption(*options)
}

type optionFunc func(*options)

func (f optionFunc) applyOption(o *options) {
	f(o)
}

// WithFS configures the file system env files are read from.
// By default, paths are resolved against the host file system
// using OS path semantics.
func WithFS(fsys fs.FS) Option {
	return optionFunc(func(o *options) {
		o.fs = fsys
	})
}

// WithLogger configures a logger for reporting which env files were
// read or skipped. Records are only emitted at the debug level.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = logger
	})
}

// WithCandidates overrides [DefaultCandidates] for [ReadDefault].
func WithCandidates(paths ...string) Option {
	return optionFunc(func(o *options) {
		o.candidates = paths
	})
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}
