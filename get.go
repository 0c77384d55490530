// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import "reflect"

// Get converts the value of key. It returns false if key is
// not present or if its value can not be converted.
func Get[T any](env *Environment, key string, c Converter[T]) (T, bool) {
	raw, ok := env.Lookup(key)
	if !ok {
		var zero T
		return zero, false
	}
	return c.Convert(raw)
}

// GetOr is like Get but returns def instead of reporting
// a missing or invalid value.
func GetOr[T any](env *Environment, key string, def T, c Converter[T]) T {
	v, ok := Get(env, key, c)
	if !ok {
		return def
	}
	return v
}

// Require converts the value of key. If key is not present a
// [MissingKeyError] is returned. If its value can not be converted
// an [InvalidValueError] is returned.
func Require[T any](env *Environment, key string, c Converter[T]) (T, error) {
	var zero T
	raw, ok := env.Lookup(key)
	if !ok {
		return zero, MissingKeyError{Key: key}
	}

	v, ok := c.Convert(raw)
	if !ok {
		return zero, InvalidValueError{
			Key:   key,
			Value: raw,
			Type:  typeName[T](),
		}
	}
	return v, nil
}

// MustRequire is like Require but panics if an error is encountered.
func MustRequire[T any](env *Environment, key string, c Converter[T]) T {
	v, err := Require(env, key, c)
	if err != nil {
		panic(err)
	}
	return v
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
