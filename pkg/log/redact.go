package log

import "strings"

// RedactedValue replaces values logged under sensitive keys.
const RedactedValue = "[REDACTED]"

var sensitiveKeyParts = []string{"private", "secret", "password", "plaintext"}

// IsSensitiveKey reports whether values logged under key are masked.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, part := range sensitiveKeyParts {
		if strings.Contains(k, part) {
			return true
		}
	}
	return false
}

// Redact returns keysAndValues with the values of sensitive keys replaced by
// RedactedValue. The input slice is not modified; it is returned as is when
// nothing needs masking.
func Redact(keysAndValues []any) []any {
	var out []any
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok || !IsSensitiveKey(key) {
			continue
		}
		if out == nil {
			out = append([]any(nil), keysAndValues...)
		}
		out[i+1] = RedactedValue
	}
	if out == nil {
		return keysAndValues
	}
	return out
}
