package util

import "strings"

// SanitizePostgresText strips invalid UTF-8 sequences and NUL bytes, which
// Postgres text columns reject.
func SanitizePostgresText(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	return strings.ReplaceAll(sanitized, "\x00", "")
}

// NormalizeNewlines rewrites CRLF and bare CR line endings to LF so that
// uploaded script text splits cleanly on "\n".
func NormalizeNewlines(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\r", "\n")
}
