// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"encoding"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Converter converts a raw string value into a T. A conversion
// miss is reported by returning false, never by panicking.
type Converter[T any] interface {
	Convert(raw string) (T, bool)
}

// ConverterFunc is a functional implementation of the Converter interface.
type ConverterFunc[T any] func(string) (T, bool)

// Convert implements the Converter interface.
func (f ConverterFunc[T]) Convert(raw string) (T, bool) {
	return f(raw)
}

// String returns the raw value unchanged.
var String = ConverterFunc[string](func(s string) (string, bool) {
	return s, true
})

// Bool accepts, regardless of case, "true", "yes", "1" and "on" as true
// and "false", "no", "0" and "off" as false. Anything else is a miss.
var Bool = ConverterFunc[bool](parseBool)

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "on":
		return true, true
	case "false", "no", "0", "off":
		return false, true
	default:
		return false, false
	}
}

// Numeric converters parse base 10 text at the bit size of their
// type. Surrounding garbage and overflow are misses.
var (
	Int   = ConverterFunc[int](signed[int](strconv.IntSize))
	Int8  = ConverterFunc[int8](signed[int8](8))
	Int16 = ConverterFunc[int16](signed[int16](16))
	Int32 = ConverterFunc[int32](signed[int32](32))
	Int64 = ConverterFunc[int64](signed[int64](64))

	Uint   = ConverterFunc[uint](unsigned[uint](strconv.IntSize))
	Uint8  = ConverterFunc[uint8](unsigned[uint8](8))
	Uint16 = ConverterFunc[uint16](unsigned[uint16](16))
	Uint32 = ConverterFunc[uint32](unsigned[uint32](32))
	Uint64 = ConverterFunc[uint64](unsigned[uint64](64))

	Float32 = ConverterFunc[float32](float[float32](32))
	Float64 = ConverterFunc[float64](float[float64](64))
)

func signed[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bitSize int) func(string) (T, bool) {
	return func(s string) (T, bool) {
		n, err := strconv.ParseInt(s, 10, bitSize)
		if err != nil {
			return 0, false
		}
		return T(n), true
	}
}

func unsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bitSize int) func(string) (T, bool) {
	return func(s string) (T, bool) {
		n, err := strconv.ParseUint(s, 10, bitSize)
		if err != nil {
			return 0, false
		}
		return T(n), true
	}
}

func float[T ~float32 | ~float64](bitSize int) func(string) (T, bool) {
	return func(s string) (T, bool) {
		f, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			return 0, false
		}
		return T(f), true
	}
}

// URL parses absolute URLs. A value without a scheme is a miss.
var URL = ConverterFunc[*url.URL](func(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	return u, true
})

// Duration parses values with [time.ParseDuration].
var Duration = ConverterFunc[time.Duration](func(s string) (time.Duration, bool) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return d, true
})

// Text returns a Converter for any type whose pointer implements
// [encoding.TextUnmarshaler].
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() Converter[T] {
	return ConverterFunc[T](func(s string) (T, bool) {
		var v T
		err := PT(&v).UnmarshalText([]byte(s))
		if err != nil {
			var zero T
			return zero, false
		}
		return v, true
	})
}

// StringEnum returns a Converter which only accepts values that are
// exactly, including case, one of the given values.
func StringEnum[T ~string](values ...T) Converter[T] {
	return ConverterFunc[T](func(s string) (T, bool) {
		for _, v := range values {
			if string(v) == s {
				return v, true
			}
		}
		var zero T
		return zero, false
	})
}

// IntEnum returns a Converter which parses the raw value as an integer
// and only accepts it if it equals one of the given values.
func IntEnum[T ~int | ~int8 | ~int16 | ~int32 | ~int64](values ...T) Converter[T] {
	return ConverterFunc[T](func(s string) (T, bool) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		for _, v := range values {
			if int64(v) == n {
				return v, true
			}
		}
		return 0, false
	})
}

// UintEnum is like [IntEnum] for unsigned integer backed types.
func UintEnum[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](values ...T) Converter[T] {
	return ConverterFunc[T](func(s string) (T, bool) {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, false
		}
		for _, v := range values {
			if uint64(v) == n {
				return v, true
			}
		}
		return 0, false
	})
}
