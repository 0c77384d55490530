// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"fmt"
	"strings"
)

// FileNotFoundError occurs when a .env file does not exist. When it is
// returned from default location discovery, Candidates lists every
// path which was tried.
type FileNotFoundError struct {
	Path       string
	Candidates []string
}

// Error implements the error interface.
func (e FileNotFoundError) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("no env file found, tried: %s", strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("env file not found: %s", e.Path)
}

// ReadError occurs when a .env file exists but could not be read.
type ReadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ReadError) Error() string {
	return fmt.Sprintf("failed to read env file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e ReadError) Unwrap() error {
	return e.Cause
}

// MissingKeyError occurs when a required key is not present.
type MissingKeyError struct {
	Key string
}

// Error implements the error interface.
func (e MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key: %s", e.Key)
}

// InvalidValueError occurs when a required key is present but
// its raw value could not be converted to the requested type.
type InvalidValueError struct {
	Key   string
	Value string
	Type  string
}

// Error implements the error interface.
func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for key %s: %q is not a valid %s", e.Key, e.Value, e.Type)
}

// TypeCoercionError occurs when decoding an Environment into a struct
// and a raw value can not be coerced into the struct field type.
type TypeCoercionError struct {
	From  string
	To    string
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.From, e.To, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}
