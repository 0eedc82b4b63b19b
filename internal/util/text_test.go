package util

import "testing"

func TestSanitizePostgresText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain utf8",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "contains null byte",
			input: "hel\x00lo",
			want:  "hello",
		},
		{
			name:  "contains invalid utf8",
			input: string([]byte{'a', 0xff, 'b'}),
			want:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizePostgresText(tt.input)
			if got != tt.want {
				t.Fatalf("unexpected sanitized value: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already lf",
			input: "INT. LAB - DAY\n\nAction.",
			want:  "INT. LAB - DAY\n\nAction.",
		},
		{
			name:  "crlf",
			input: "INT. LAB - DAY\r\n\r\nAction.",
			want:  "INT. LAB - DAY\n\nAction.",
		},
		{
			name:  "bare cr",
			input: "line one\rline two",
			want:  "line one\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeNewlines(tt.input)
			if got != tt.want {
				t.Fatalf("unexpected normalized value: got %q, want %q", got, tt.want)
			}
		})
	}
}
