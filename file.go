// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"errors"
	"io"
	"io/fs"
	"sync"

	"github.com/z5labs/dotenv/internal/try"
	"github.com/z5labs/dotenv/pkg/slogfield"
)

// FileReader is an io.ReadCloser that handles opening a file for reading automatically.
type FileReader struct {
	path string

	openOnce sync.Once
	openErr  error
	fs       fs.FS
	file     fs.File
}

// NewFileReader configures a FileReader.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fs:   fsys,
	}
}

// Read implements the io.Reader interface. The underlying file is
// opened on the first call. Failing to open or read the file results
// in a [FileNotFoundError] or [ReadError].
func (r *FileReader) Read(b []byte) (int, error) {
	r.openOnce.Do(func() {
		f, err := r.fs.Open(r.path)
		if err != nil {
			r.openErr = err
			return
		}
		r.file = f
	})
	if r.openErr != nil {
		return 0, r.wrap(r.openErr)
	}
	if r.file == nil {
		return 0, ReadError{Path: r.path, Cause: fs.ErrClosed}
	}

	n, err := r.file.Read(b)
	if err != nil && err != io.EOF {
		return n, r.wrap(err)
	}
	return n, err
}

func (r *FileReader) wrap(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return FileNotFoundError{Path: r.path}
	}
	return ReadError{Path: r.path, Cause: err}
}

// Close implements the io.Closer interface.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}

// ReadFile reads and parses the env file at path. The returned
// Environment reports path as its source.
func ReadFile(path string, opts ...Option) (*Environment, error) {
	o := newOptions(opts...)
	return readFile(o, path)
}

func readFile(o *options, path string) (_ *Environment, err error) {
	r := NewFileReader(o.fs, path)
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		entries: Parse(string(b)),
		source:  path,
	}
	o.logger.Debug("read env file", slogfield.Path(path), slogfield.EntryCount(env.Len()))
	return env, nil
}

// ReadFiles reads each of the given env files in order and merges them,
// later files overriding earlier ones. The first failure is returned.
func ReadFiles(paths []string, opts ...Option) (*Environment, error) {
	o := newOptions(opts...)

	envs := make([]*Environment, 0, len(paths))
	for _, path := range paths {
		env, err := readFile(o, path)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	if len(envs) == 1 {
		return envs[0], nil
	}
	return MergeAll(envs...), nil
}
