// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package dotenv

import "strings"

// SensitiveKeyPatterns are matched case-insensitively against keys
// to decide whether their values should be masked when rendered.
var SensitiveKeyPatterns = []string{
	"password",
	"secret",
	"key",
	"token",
	"credential",
	"auth",
}

// IsSensitiveKey reports whether key contains any of [SensitiveKeyPatterns].
//
// Masking is a convenience for debug output and logs, not a security control.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, pattern := range SensitiveKeyPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
