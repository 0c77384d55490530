// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// processEnv abstracts the process wide environment table.
type processEnv struct {
	environ   func() []string
	lookupEnv func(string) (string, bool)
	setenv    func(string, string) error
}

var osProcessEnv = processEnv{
	environ:   os.Environ,
	lookupEnv: os.LookupEnv,
	setenv:    os.Setenv,
}

// FromProcess returns a snapshot of the current process environment.
func FromProcess() *Environment {
	return osProcessEnv.snapshot()
}

func (p processEnv) snapshot() *Environment {
	m := make(map[string]string)
	for _, pair := range p.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return &Environment{entries: m}
}

// Export copies every entry into the process environment. Existing
// process variables are only replaced if overwrite is true.
//
// Export does not synchronize with other writers of the process environment.
func (e *Environment) Export(overwrite bool) error {
	return osProcessEnv.export(e, overwrite)
}

func (p processEnv) export(e *Environment, overwrite bool) error {
	if e == nil {
		return nil
	}

	var errs []error
	for k, v := range e.entries {
		if !overwrite {
			if _, exists := p.lookupEnv(k); exists {
				continue
			}
		}
		err := p.setenv(k, v)
		if err != nil {
			errs = append(errs, fmt.Errorf("set %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// Load reads the given env files, ".env" if none are given, and exports
// them into the process environment without replacing existing variables.
func Load(paths ...string) error {
	return load(paths, false)
}

// Overload is like Load but replaces existing process variables.
func Overload(paths ...string) error {
	return load(paths, true)
}

func load(paths []string, overwrite bool) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	env, err := ReadFiles(paths)
	if err != nil {
		return err
	}
	return env.Export(overwrite)
}
