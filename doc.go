// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package dotenv parses .env formatted text and provides type-safe
// access to the parsed values.
//
// # Format
//
//	# comment line
//	KEY=value
//	KEY2 = value with spaces around = trimmed
//	QUOTED="value with \n \t \" \\ escapes"
//	LITERAL='value with no escape processing'
//	EMPTY=
//	CONTAINS_EQUALS=host=localhost;port=5432
//
// Parsing is permissive and never fails: lines which are not key value
// pairs are dropped. There is no variable expansion.
//
// # Typed Access
//
// An [Environment] is immutable. Values are converted on request with a
// [Converter]:
//
//	env := dotenv.ParseString("PORT=8080\nDEBUG=yes")
//
//	port, err := dotenv.Require(env, "PORT", dotenv.Int)
//	debug := dotenv.GetOr(env, "DEBUG", false, dotenv.Bool)
//
// [Get] and [GetOr] treat a missing key and an unconvertible value the
// same. [Require] distinguishes them with a [MissingKeyError] or an
// [InvalidValueError].
//
// # Files
//
// [ReadFile], [ReadFiles], [ReadDefault] and [ReadWithOverride] read env
// files from disk or any [io/fs.FS]. Later files override earlier ones.
// [Environment.Export], [Load] and [Overload] copy values into the
// process environment.
//
// # Configuration Types
//
// A configuration type can implement [Unmarshaler] and pull its fields
// out of an Environment itself, or rely on "env" struct tags:
//
//	type Config struct {
//		Port    int           `env:"PORT,required"`
//		Timeout time.Duration `env:"TIMEOUT"`
//	}
//
//	var cfg Config
//	err := dotenv.UnmarshalFile(".env", &cfg)
package dotenv
