// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides the slog.Attr constructors used
// when logging about env files and their keys.
package slogfield

import (
	"log/slog"
)

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// String returns an slog.Attr for a string.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Path returns an slog.Attr for the path of an env file.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Paths returns an slog.Attr for the paths of multiple env files.
func Paths(paths []string) slog.Attr {
	return slog.Any("paths", paths)
}

// Key returns an slog.Attr naming a single env key. The attr is
// named "var" so that it never matches sensitive key patterns.
func Key(key string) slog.Attr {
	return slog.String("var", key)
}

// EntryCount returns an slog.Attr for the number of entries in an env file.
func EntryCount(n int) slog.Attr {
	return slog.Int("entries", n)
}
