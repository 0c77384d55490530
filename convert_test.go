// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	testCases := []struct {
		input       string
		expectedVal bool
		expectedOk  bool
	}{
		{input: "true", expectedVal: true, expectedOk: true},
		{input: "TRUE", expectedVal: true, expectedOk: true},
		{input: "yes", expectedVal: true, expectedOk: true},
		{input: "Yes", expectedVal: true, expectedOk: true},
		{input: "1", expectedVal: true, expectedOk: true},
		{input: "on", expectedVal: true, expectedOk: true},
		{input: "ON", expectedVal: true, expectedOk: true},
		{input: "false", expectedVal: false, expectedOk: true},
		{input: "False", expectedVal: false, expectedOk: true},
		{input: "no", expectedVal: false, expectedOk: true},
		{input: "NO", expectedVal: false, expectedOk: true},
		{input: "0", expectedVal: false, expectedOk: true},
		{input: "off", expectedVal: false, expectedOk: true},
		{input: "Off", expectedVal: false, expectedOk: true},
		{input: "", expectedOk: false},
		{input: "maybe", expectedOk: false},
		{input: "t", expectedOk: false},
		{input: "2", expectedOk: false},
		{input: " true", expectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, ok := Bool.Convert(tc.input)
			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestInt(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedVal int
		expectedOk  bool
	}{
		{name: "parses positive int", input: "8080", expectedVal: 8080, expectedOk: true},
		{name: "parses negative int", input: "-42", expectedVal: -42, expectedOk: true},
		{name: "parses zero", input: "0", expectedVal: 0, expectedOk: true},
		{name: "rejects non numeric text", input: "not_a_number", expectedOk: false},
		{name: "rejects trailing garbage", input: "42abc", expectedOk: false},
		{name: "rejects leading whitespace", input: " 42", expectedOk: false},
		{name: "rejects floats", input: "4.2", expectedOk: false},
		{name: "rejects empty", input: "", expectedOk: false},
		{name: "rejects overflow", input: "99999999999999999999999", expectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := Int.Convert(tc.input)
			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestSizedIntegers(t *testing.T) {
	t.Run("will reject values overflowing the target type", func(t *testing.T) {
		_, ok := Int8.Convert("128")
		require.False(t, ok)

		_, ok = Int16.Convert("32768")
		require.False(t, ok)

		_, ok = Int32.Convert("2147483648")
		require.False(t, ok)

		_, ok = Uint8.Convert("256")
		require.False(t, ok)

		_, ok = Uint.Convert("-1")
		require.False(t, ok)
	})

	t.Run("will accept values at the bounds of the target type", func(t *testing.T) {
		i8, ok := Int8.Convert("-128")
		require.True(t, ok)
		require.Equal(t, int8(-128), i8)

		i64, ok := Int64.Convert("9223372036854775807")
		require.True(t, ok)
		require.Equal(t, int64(9223372036854775807), i64)

		u16, ok := Uint16.Convert("65535")
		require.True(t, ok)
		require.Equal(t, uint16(65535), u16)

		u32, ok := Uint32.Convert("4294967295")
		require.True(t, ok)
		require.Equal(t, uint32(4294967295), u32)

		u64, ok := Uint64.Convert("18446744073709551615")
		require.True(t, ok)
		require.Equal(t, uint64(18446744073709551615), u64)
	})
}

func TestFloat64(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedVal float64
		expectedOk  bool
	}{
		{name: "parses float", input: "3.14", expectedVal: 3.14, expectedOk: true},
		{name: "parses negative float", input: "-2.5", expectedVal: -2.5, expectedOk: true},
		{name: "parses scientific notation", input: "1e3", expectedVal: 1000, expectedOk: true},
		{name: "parses integers", input: "7", expectedVal: 7, expectedOk: true},
		{name: "rejects garbage", input: "3.14abc", expectedOk: false},
		{name: "rejects out of range", input: "1e400", expectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := Float64.Convert(tc.input)
			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}

	t.Run("float32 rejects values out of its range", func(t *testing.T) {
		_, ok := Float32.Convert("1e39")
		require.False(t, ok)
	})
}

func TestURL(t *testing.T) {
	t.Run("will parse absolute urls", func(t *testing.T) {
		u, ok := URL.Convert("postgres://user@localhost:5432/mydb?sslmode=disable")
		require.True(t, ok)
		require.Equal(t, "postgres", u.Scheme)
		require.Equal(t, "localhost:5432", u.Host)
		require.Equal(t, "/mydb", u.Path)
	})

	t.Run("will reject values without a scheme", func(t *testing.T) {
		_, ok := URL.Convert("localhost/mydb")
		require.False(t, ok)
	})

	t.Run("will reject unparsable values", func(t *testing.T) {
		_, ok := URL.Convert("http://[::1")
		require.False(t, ok)
	})
}

func TestDuration(t *testing.T) {
	testCases := []struct {
		input       string
		expectedVal time.Duration
		expectedOk  bool
	}{
		{input: "30s", expectedVal: 30 * time.Second, expectedOk: true},
		{input: "5m", expectedVal: 5 * time.Minute, expectedOk: true},
		{input: "1h30m", expectedVal: 90 * time.Minute, expectedOk: true},
		{input: "30", expectedOk: false},
		{input: "soon", expectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, ok := Duration.Convert(tc.input)
			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestText(t *testing.T) {
	c := Text[netip.Addr]()

	t.Run("will use UnmarshalText", func(t *testing.T) {
		addr, ok := c.Convert("127.0.0.1")
		require.True(t, ok)
		require.Equal(t, netip.MustParseAddr("127.0.0.1"), addr)
	})

	t.Run("will report a miss if UnmarshalText fails", func(t *testing.T) {
		addr, ok := c.Convert("not an ip")
		require.False(t, ok)
		require.Equal(t, netip.Addr{}, addr)
	})
}

type logLevel string

const (
	levelDebug logLevel = "debug"
	levelInfo  logLevel = "info"
)

type priority int

const (
	priorityLow  priority = 1
	priorityHigh priority = 10
)

func TestStringEnum(t *testing.T) {
	c := StringEnum(levelDebug, levelInfo)

	testCases := []struct {
		input       string
		expectedVal logLevel
		expectedOk  bool
	}{
		{input: "debug", expectedVal: levelDebug, expectedOk: true},
		{input: "info", expectedVal: levelInfo, expectedOk: true},
		{input: "DEBUG", expectedOk: false},
		{input: "warn", expectedOk: false},
		{input: "", expectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, ok := c.Convert(tc.input)
			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestIntEnum(t *testing.T) {
	c := IntEnum(priorityLow, priorityHigh)

	testCases := []struct {
		input       string
		expectedVal priority
		expectedOk  bool
	}{
		{input: "1", expectedVal: priorityLow, expectedOk: true},
		{input: "10", expectedVal: priorityHigh, expectedOk: true},
		{input: "5", expectedOk: false},
		{input: "low", expectedOk: false},
		{input: "1.0", expectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, ok := c.Convert(tc.input)
			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

type color uint8

const (
	colorRed  color = 1
	colorBlue color = 200
)

func TestUintEnum(t *testing.T) {
	c := UintEnum(colorRed, colorBlue)

	testCases := []struct {
		input       string
		expectedVal color
		expectedOk  bool
	}{
		{input: "1", expectedVal: colorRed, expectedOk: true},
		{input: "200", expectedVal: colorBlue, expectedOk: true},
		{input: "2", expectedOk: false},
		{input: "-1", expectedOk: false},
		{input: "456", expectedOk: false},
		{input: "red", expectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, ok := c.Convert(tc.input)
			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}
