// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import "strings"

// Parse turns .env formatted text into a key value mapping.
//
// Parse never fails. Blank lines, comment lines (starting with '#'), lines
// without an '=' and lines with an empty key are dropped. Everything after
// the first '=' belongs to the value. When a key is repeated, the last
// occurrence wins.
func Parse(text string) map[string]string {
	m := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		m[key] = value
	}
	return m
}

func parseLine(line string) (key string, value string, ok bool) {
	line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, unquote(strings.TrimSpace(value)), true
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	switch first, last := s[0], s[len(s)-1]; {
	case first == '"' && last == '"':
		return unescape(s[1 : len(s)-1])
	case first == '\'' && last == '\'':
		return s[1 : len(s)-1]
	default:
		return s
	}
}

// unescape makes a single pass over s so an escaped backslash is
// never reinterpreted as the start of another escape sequence.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			sb.WriteByte(c)
			continue
		}

		i++
		switch next := s[i]; next {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '"', '\\':
			sb.WriteByte(next)
		default:
			sb.WriteByte(c)
			sb.WriteByte(next)
		}
	}
	return sb.String()
}
