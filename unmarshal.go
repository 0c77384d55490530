// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"encoding"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshaler is implemented by configuration types which know how to
// populate themselves from an Environment, typically by calling
// [Require] and [Get] for each of their fields.
type Unmarshaler interface {
	UnmarshalEnv(*Environment) error
}

// Unmarshal populates v from env. If v implements [Unmarshaler], its
// UnmarshalEnv method is called exactly once and its error returned as is.
//
// Otherwise v must be a pointer to a struct whose fields are decoded
// from the keys named by their "env" struct tag. A tag option of
// "required", e.g. `env:"PORT,required"`, results in a [MissingKeyError]
// if the key is not present.
func Unmarshal(env *Environment, v any) error {
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalEnv(env)
	}
	return decode(env, v)
}

// UnmarshalString parses text and unmarshals it into v.
func UnmarshalString(text string, v any) error {
	return Unmarshal(ParseString(text), v)
}

// UnmarshalFile reads the env file at path and unmarshals it into v.
func UnmarshalFile(path string, v any, opts ...Option) error {
	env, err := ReadFile(path, opts...)
	if err != nil {
		return err
	}
	return Unmarshal(env, v)
}

// UnmarshalFiles reads and merges the env files at paths, in order,
// and unmarshals the result into v.
func UnmarshalFiles(paths []string, v any, opts ...Option) error {
	env, err := ReadFiles(paths, opts...)
	if err != nil {
		return err
	}
	return Unmarshal(env, v)
}

const tagName = "env"

// NotAStructPointerError occurs when a value which does not implement
// [Unmarshaler] is not a pointer to a struct.
type NotAStructPointerError struct {
	Type string
}

// Error implements the error interface.
func (e NotAStructPointerError) Error() string {
	return fmt.Sprintf("can only unmarshal into a pointer to a struct: got %s", e.Type)
}

func decode(env *Environment, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return NotAStructPointerError{Type: fmt.Sprintf("%T", v)}
	}

	err := checkRequired(env, rv.Elem().Type())
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: tagName,
		Result:  v,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
			urlHookFunc(),
			boolHookFunc(),
			numericHookFunc(),
		),
	})
	if err != nil {
		return err
	}

	m := make(map[string]any, env.Len())
	for k, v := range env.All() {
		m[k] = v
	}
	return dec.Decode(m)
}

func checkRequired(env *Environment, t reflect.Type) error {
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(field.Tag.Get(tagName), ",")
		if name == "" {
			name = field.Name
		}
		if !hasTagOption(opts, "required") {
			continue
		}
		if !env.Has(name) {
			return MissingKeyError{Key: name}
		}
	}
	return nil
}

func hasTagOption(opts, option string) bool {
	for _, opt := range strings.Split(opts, ",") {
		if strings.TrimSpace(opt) == option {
			return true
		}
	}
	return false
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				From:  f.Type().String(),
				To:    t.Type().String(),
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t)
		u, ok := result.Interface().(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[time.Duration]() || f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		return time.ParseDuration(data.(string))
	}
}

func urlHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[*url.URL]() || f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		u, ok := URL(data.(string))
		if !ok {
			return nil, fmt.Errorf("not an absolute url: %q", data)
		}
		return u, nil
	}
}

func boolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.Bool || f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		b, ok := parseBool(data.(string))
		if !ok {
			return nil, fmt.Errorf("not a bool: %q", data)
		}
		return b, nil
	}
}

// numericHookFunc converts with the same rules as the numeric
// converters so decoding and [Require] agree on every value.
func numericHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}

		s := data.(string)
		var (
			n  any
			ok bool
		)
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, ok = signed[int64](t.Bits())(s)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, ok = unsigned[uint64](t.Bits())(s)
		case reflect.Float32, reflect.Float64:
			n, ok = float[float64](t.Bits())(s)
		default:
			return nil, errInvalidDecodeCondition
		}
		if !ok {
			return nil, fmt.Errorf("not a valid %s: %q", t, s)
		}
		return reflect.ValueOf(n).Convert(t).Interface(), nil
	}
}
