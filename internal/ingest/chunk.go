package ingest

import "fmt"

const (
	// DefaultChunkSize is the window size in runes.
	DefaultChunkSize = 500
	// DefaultChunkOverlap is how many runes consecutive windows share.
	DefaultChunkOverlap = 100
)

// Chunker splits text into fixed-size overlapping windows. Counting is
// rune-based so multi-byte characters are never split.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker returns a Chunker, validating that the window is positive and
// strictly larger than the overlap.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", size, overlap)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Split slices text into overlapping windows. Each window is trimmed of
// surrounding whitespace; windows that trim to nothing are dropped. The
// final window may be shorter than the configured size.
func (c *Chunker) Split(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := c.size - c.overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		if chunk := trimRunes(runes[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}

func trimRunes(r []rune) string {
	start, end := 0, len(r)
	for start < end && isSpace(r[start]) {
		start++
	}
	for end > start && isSpace(r[end-1]) {
		end--
	}
	return string(r[start:end])
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
