package registry

import (
	"context"
	"testing"
	"time"
)

func mustOpen(t *testing.T) *Registry {
	t.Helper()
	r, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecordAndSources(t *testing.T) {
	r := mustOpen(t)
	ctx := context.Background()

	docs := []Document{
		{ID: "a", Source: "plan.md", Topic: "Strategy", Project: "Project X", Chunks: 3, SizeBytes: 1200, IngestedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Source: "notes.txt", Chunks: 1, IngestedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, d := range docs {
		if err := r.Record(ctx, d); err != nil {
			t.Fatalf("Record(%s) error: %v", d.ID, err)
		}
	}

	got, err := r.Sources(ctx)
	if err != nil {
		t.Fatalf("Sources() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Sources() returned %d documents, want 2", len(got))
	}
	// Most recent first.
	if got[0].Source != "notes.txt" || got[1].Source != "plan.md" {
		t.Errorf("Sources() order = [%s, %s], want [notes.txt, plan.md]", got[0].Source, got[1].Source)
	}
	if got[1].Topic != "Strategy" || got[1].Project != "Project X" || got[1].Chunks != 3 {
		t.Errorf("Sources()[1] = %+v, fields not preserved", got[1])
	}
}

func TestDistinctTopicsAndProjects(t *testing.T) {
	r := mustOpen(t)
	ctx := context.Background()

	entries := []Document{
		{ID: "1", Source: "a.txt", Topic: "Report", Project: "Internal", Chunks: 1},
		{ID: "2", Source: "b.txt", Topic: "Brief", Project: "Internal", Chunks: 1},
		{ID: "3", Source: "c.txt", Topic: "Report", Chunks: 1},
		{ID: "4", Source: "d.txt", Chunks: 1},
	}
	for _, d := range entries {
		if err := r.Record(ctx, d); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	topics, err := r.DistinctTopics(ctx)
	if err != nil {
		t.Fatalf("DistinctTopics() error: %v", err)
	}
	if len(topics) != 2 || topics[0] != "Brief" || topics[1] != "Report" {
		t.Errorf("DistinctTopics() = %v, want [Brief Report]", topics)
	}

	projects, err := r.DistinctProjects(ctx)
	if err != nil {
		t.Fatalf("DistinctProjects() error: %v", err)
	}
	if len(projects) != 1 || projects[0] != "Internal" {
		t.Errorf("DistinctProjects() = %v, want [Internal]", projects)
	}
}

func TestDistinctEmptyCatalog(t *testing.T) {
	r := mustOpen(t)

	topics, err := r.DistinctTopics(context.Background())
	if err != nil {
		t.Fatalf("DistinctTopics() error: %v", err)
	}
	if topics == nil || len(topics) != 0 {
		t.Errorf("DistinctTopics() = %v, want empty non-nil slice", topics)
	}
}

func TestStats(t *testing.T) {
	r := mustOpen(t)
	ctx := context.Background()

	entries := []Document{
		{ID: "1", Source: "a.txt", Topic: "Report", Project: "Project X", Chunks: 4},
		{ID: "2", Source: "b.txt", Topic: "Brief", Chunks: 2},
		{ID: "3", Source: "c.txt", Chunks: 1},
	}
	for _, d := range entries {
		if err := r.Record(ctx, d); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	s, err := r.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	want := Stats{Documents: 3, Chunks: 7, Topics: 2, Projects: 1}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestStatsCountsDistinctSources(t *testing.T) {
	r := mustOpen(t)
	ctx := context.Background()

	// Re-ingesting a file appends a second catalog row under the same
	// source; the document count must not grow.
	entries := []Document{
		{ID: "1", Source: "report.txt", Topic: "Report", Chunks: 3},
		{ID: "2", Source: "report.txt", Topic: "Report", Chunks: 3},
		{ID: "3", Source: "notes.txt", Chunks: 1},
	}
	for _, d := range entries {
		if err := r.Record(ctx, d); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	s, err := r.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if s.Documents != 2 {
		t.Errorf("Stats().Documents = %d, want 2 distinct sources", s.Documents)
	}
	if s.Chunks != 7 {
		t.Errorf("Stats().Chunks = %d, want 7 across all ingestions", s.Chunks)
	}
}

func TestStatsEmpty(t *testing.T) {
	r := mustOpen(t)

	s, err := r.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if s != (Stats{}) {
		t.Errorf("Stats() = %+v, want zero stats", s)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	r := mustOpen(t)

	if err := r.migrate(); err != nil {
		t.Errorf("second migrate() error: %v", err)
	}
}
