// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"io"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Environment is an immutable set of key value pairs parsed from
// .env formatted text. It is safe for concurrent use since nothing
// can modify it once constructed.
type Environment struct {
	entries map[string]string
	source  string
}

// New returns an Environment holding a copy of m.
func New(m map[string]string) *Environment {
	return &Environment{entries: maps.Clone(orEmpty(m))}
}

// ParseString parses the given .env formatted text into an Environment.
func ParseString(text string) *Environment {
	return &Environment{entries: Parse(text)}
}

// ParseReader reads all of r and parses it into an Environment.
func ParseReader(r io.Reader) (*Environment, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b)), nil
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return make(map[string]string)
	}
	return m
}

// Source returns the path this Environment was read from, if any.
func (e *Environment) Source() (string, bool) {
	if e == nil || e.source == "" {
		return "", false
	}
	return e.source, true
}

// Lookup returns the raw value for key without any conversion.
func (e *Environment) Lookup(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (e *Environment) Has(key string) bool {
	_, ok := e.Lookup(key)
	return ok
}

// Len returns the number of entries.
func (e *Environment) Len() int {
	if e == nil {
		return 0
	}
	return len(e.entries)
}

// Keys returns every key in sorted order.
func (e *Environment) Keys() []string {
	if e == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(e.entries))
}

// All iterates over every entry in key order.
func (e *Environment) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range e.Keys() {
			if !yield(k, e.entries[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the underlying key value pairs.
func (e *Environment) Map() map[string]string {
	if e == nil {
		return make(map[string]string)
	}
	return maps.Clone(e.entries)
}

// Merge returns a new Environment containing the entries of e overlaid
// with the entries of other. For keys present in both, other wins.
// The result has no source.
func (e *Environment) Merge(other *Environment) *Environment {
	m := e.Map()
	if other != nil {
		maps.Copy(m, other.entries)
	}
	return &Environment{entries: m}
}

// MergeAll merges the given environments in order, each one
// overriding the ones before it.
func MergeAll(envs ...*Environment) *Environment {
	merged := New(nil)
	for _, env := range envs {
		merged = merged.Merge(env)
	}
	return merged
}

const maskedValue = "****"

// String renders the Environment for debugging. Values whose key
// looks sensitive, see [IsSensitiveKey], are masked.
func (e *Environment) String() string {
	source, ok := e.Source()
	if !ok {
		source = "none"
	}

	var sb strings.Builder
	sb.WriteString("Environment(source: ")
	sb.WriteString(source)
	sb.WriteString(", ")
	sb.WriteString(pluralize(e.Len(), "entry", "entries"))
	sb.WriteString(")")
	for k, v := range e.All() {
		sb.WriteString("\n  ")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(maskIfSensitive(k, v))
	}
	return sb.String()
}

// LogValue implements the slog.LogValuer interface. Sensitive values are masked.
func (e *Environment) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, e.Len())
	for k, v := range e.All() {
		attrs = append(attrs, slog.String(k, maskIfSensitive(k, v)))
	}
	return slog.GroupValue(attrs...)
}

// Masked returns a copy of e, keeping its source, with every non-empty
// value whose key looks sensitive replaced by "****".
func (e *Environment) Masked() *Environment {
	m := make(map[string]string, e.Len())
	for k, v := range e.All() {
		m[k] = maskIfSensitive(k, v)
	}
	source, _ := e.Source()
	return &Environment{entries: m, source: source}
}

func maskIfSensitive(key, value string) string {
	if value != "" && IsSensitiveKey(key) {
		return maskedValue
	}
	return value
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
