// Package extract converts uploaded document payloads into plain text.
// Supported formats are PDF, DOCX, plain text, and Markdown; everything
// else is rejected before any pipeline work happens.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for file extensions outside
	// {pdf, docx, txt, md}.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtraction is returned when a supported file's content is
	// malformed and no text can be recovered from it.
	ErrExtraction = errors.New("document extraction failed")
)

// Extensions lists the ingestible file extensions, with leading dot.
var Extensions = []string{".pdf", ".docx", ".txt", ".md"}

// Supported reports whether ext names an ingestible format. The extension
// may be given with or without a leading dot, in any case.
func Supported(ext string) bool {
	ext = normalizeExt(ext)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Text extracts plain text from data according to the file extension.
// The result is raw: callers are expected to normalize it before chunking.
func Text(data []byte, ext string) (string, error) {
	switch normalizeExt(ext) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		return string(data), nil
	case ".md":
		return markdownText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// FromFilename extracts text choosing the format by the filename's
// extension.
func FromFilename(data []byte, filename string) (string, error) {
	return Text(data, filepath.Ext(filename))
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
