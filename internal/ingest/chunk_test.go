package ingest

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewChunkerValidation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr bool
	}{
		{"defaults", DefaultChunkSize, DefaultChunkOverlap, false},
		{"zero overlap", 10, 0, false},
		{"zero size", 0, 0, true},
		{"negative size", -5, 0, true},
		{"negative overlap", 10, -1, true},
		{"overlap equals size", 10, 10, true},
		{"overlap exceeds size", 10, 15, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChunker(tt.size, tt.overlap)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewChunker(%d, %d) error = %v, wantErr %v", tt.size, tt.overlap, err, tt.wantErr)
			}
		})
	}
}

func TestSplitWindows(t *testing.T) {
	c, err := NewChunker(10, 3)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Split("abcdefghijklmnopqrst")
	want := []string{"abcdefghij", "hijklmnopq", "opqrst"}
	if len(got) != len(want) {
		t.Fatalf("Split() produced %d chunks %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitShortText(t *testing.T) {
	c, err := NewChunker(DefaultChunkSize, DefaultChunkOverlap)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Split("a short note")
	if len(got) != 1 || got[0] != "a short note" {
		t.Errorf("Split() = %v, want single chunk with full text", got)
	}
}

func TestSplitEmpty(t *testing.T) {
	c, err := NewChunker(10, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Split(""); got != nil {
		t.Errorf("Split(\"\") = %v, want nil", got)
	}
}

func TestSplitChunkCount(t *testing.T) {
	c, err := NewChunker(DefaultChunkSize, DefaultChunkOverlap)
	if err != nil {
		t.Fatal(err)
	}

	// 1200 runes of non-space text: windows at 0, 400, 800 cover it.
	text := strings.Repeat("abcde", 240)
	got := c.Split(text)
	if len(got) != 3 {
		t.Fatalf("Split() produced %d chunks, want 3", len(got))
	}
	if utf8.RuneCountInString(got[0]) != DefaultChunkSize {
		t.Errorf("first chunk has %d runes, want %d", utf8.RuneCountInString(got[0]), DefaultChunkSize)
	}
	if utf8.RuneCountInString(got[2]) != 400 {
		t.Errorf("final chunk has %d runes, want 400", utf8.RuneCountInString(got[2]))
	}
}

func TestSplitMultibyteRunes(t *testing.T) {
	c, err := NewChunker(4, 1)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Split("日本語のテキスト")
	for i, chunk := range got {
		if !utf8.ValidString(chunk) {
			t.Errorf("chunk %d is not valid UTF-8: %q", i, chunk)
		}
	}
	if len(got) != 3 {
		t.Errorf("Split() produced %d chunks %v, want 3", len(got), got)
	}
}

func TestSplitTrimsWindows(t *testing.T) {
	c, err := NewChunker(10, 0)
	if err != nil {
		t.Fatal(err)
	}

	// Second window is entirely whitespace and is dropped.
	got := c.Split("abcdefghij          x")
	want := []string{"abcdefghij", "x"}
	if len(got) != len(want) {
		t.Fatalf("Split() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	c, err := NewChunker(50, 10)
	if err != nil {
		t.Fatal(err)
	}

	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 20)
	first := c.Split(text)
	second := c.Split(text)
	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}
