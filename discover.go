// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"errors"
	"strings"

	"github.com/z5labs/dotenv/pkg/slogfield"
)

// DefaultCandidates are the paths tried, in order, by [ReadDefault].
var DefaultCandidates = []string{".env.local", ".env", ".env.development"}

// ReadDefault reads the first env file which exists from the candidate
// paths, [DefaultCandidates] unless overridden with [WithCandidates].
// If none exist, a [FileNotFoundError] naming every candidate is returned.
func ReadDefault(opts ...Option) (*Environment, error) {
	o := newOptions(opts...)

	for _, path := range o.candidates {
		env, err := readFile(o, path)
		if err == nil {
			return env, nil
		}

		var nerr FileNotFoundError
		if !errors.As(err, &nerr) {
			return nil, err
		}
		o.logger.Debug("env file candidate does not exist", slogfield.Path(path), slogfield.Error(err))
	}

	return nil, FileNotFoundError{
		Path:       strings.Join(o.candidates, ", "),
		Candidates: o.candidates,
	}
}

// ReadWithOverride reads the env file at base and, if it exists, overlays
// the env file at local. If local is empty, base + ".local" is used.
// The base file must exist.
func ReadWithOverride(base, local string, opts ...Option) (*Environment, error) {
	o := newOptions(opts...)
	if local == "" {
		local = base + ".local"
	}

	env, err := readFile(o, base)
	if err != nil {
		return nil, err
	}

	override, err := readFile(o, local)
	var nerr FileNotFoundError
	if errors.As(err, &nerr) {
		o.logger.Debug("no local override env file", slogfield.Path(local), slogfield.Error(err))
		return env, nil
	}
	if err != nil {
		return nil, err
	}
	return env.Merge(override), nil
}
