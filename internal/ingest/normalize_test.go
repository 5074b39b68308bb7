package ingest

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"trims", "  hello  \n", "hello"},
		{"bom stripped", "\uFEFFhello", "hello"},
		{"crlf to lf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs collapse", "a\t\t  b", "a b"},
		{"nbsp collapses", "a  b", "a b"},
		{"blank runs collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"double newline kept", "a\n\nb", "a\n\nb"},
		{"invalid utf8 replaced", "a\xffb", "a�b"},
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
