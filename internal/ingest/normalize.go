package ingest

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t\x{00A0}]+`)
	excessBlank  = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans extracted text before chunking: invalid UTF-8 bytes are
// replaced, byte order marks and carriage returns are dropped, runs of
// horizontal whitespace collapse to one space, and runs of three or more
// newlines collapse to two.
func Normalize(text string) string {
	text = strings.ToValidUTF8(text, "�")
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalWS.ReplaceAllString(text, " ")
	text = excessBlank.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
