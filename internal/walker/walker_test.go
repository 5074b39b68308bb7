package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalkSupportedExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "plan.md", "# plan")
	writeFile(t, root, "notes.txt", "notes")
	writeFile(t, root, "report.PDF", "%PDF-fake")
	writeFile(t, root, "brief.docx", "fake")
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "image.png", "\x89PNG")

	files, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 4 {
		t.Fatalf("Walk() found %v, want 4 document files", relPaths(files))
	}
	for _, f := range files {
		if f.Ext == ".go" || f.Ext == ".png" {
			t.Errorf("Walk() included unsupported file %s", f.RelPath)
		}
		if f.Size <= 0 {
			t.Errorf("Walk() reported size %d for %s", f.Size, f.RelPath)
		}
	}
}

func TestWalkSkipsHiddenAndExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "doc.txt", "keep")
	writeFile(t, root, ".git/doc.txt", "skip")
	writeFile(t, root, ".cache/doc.txt", "skip")
	writeFile(t, root, "node_modules/pkg/readme.md", "skip")
	writeFile(t, root, "sub/doc.md", "keep")

	files, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	if len(got) != 2 {
		t.Fatalf("Walk() = %v, want [doc.txt sub/doc.md]", got)
	}
}

func TestWalkIncludeExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md", "a")
	writeFile(t, root, "b.txt", "b")
	writeFile(t, root, "sub/c.md", "c")
	writeFile(t, root, "sub/draft-d.md", "d")

	files, err := Walk(Config{
		RootDir: root,
		Include: []string{"**/*.md"},
		Exclude: []string{"draft-*"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	want := map[string]bool{"a.md": true, "sub/c.md": true}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want a.md and sub/c.md", got)
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("Walk() unexpectedly included %s", p)
		}
	}
}

func TestWalkMaxFileSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "small.txt", "ok")
	writeFile(t, root, "big.txt", string(make([]byte, 100)))

	files, err := Walk(Config{RootDir: root, MaxFileSize: 10})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 1 || files[0].RelPath != "small.txt" {
		t.Errorf("Walk() = %v, want [small.txt]", relPaths(files))
	}
}

func TestWalkMissingRoot(t *testing.T) {
	files, err := Walk(Config{RootDir: filepath.Join(t.TempDir(), "nope")})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Walk() on missing root = %v, want none", relPaths(files))
	}
}

func TestMatchesIncludeEmptyPatterns(t *testing.T) {
	if !MatchesInclude("any/path.txt", nil) {
		t.Error("MatchesInclude() with no patterns should include everything")
	}
	if MatchesExclude("any/path.txt", nil) {
		t.Error("MatchesExclude() with no patterns should exclude nothing")
	}
}
