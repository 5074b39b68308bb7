// Package registry keeps a SQLite catalog of ingested documents. The vector
// store holds chunks for similarity search; the registry is the source of
// truth for document-level questions such as which topics exist or how many
// files have been indexed.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Document is one catalog entry, recorded per ingestion.
type Document struct {
	ID         string
	Source     string
	Topic      string
	Project    string
	Chunks     int
	SizeBytes  int64
	IngestedAt time.Time
}

// Stats summarizes the catalog. Documents counts distinct source files:
// re-ingesting a file appends a new catalog row but does not grow the
// document count.
type Stats struct {
	Documents int `json:"total_documents"`
	Chunks    int `json:"total_chunks"`
	Topics    int `json:"total_topics"`
	Projects  int `json:"total_projects"`
}

// Registry wraps a sql.DB with document-catalog helpers.
type Registry struct {
	*sql.DB
	path string
}

// Open creates or opens the registry database at the given path.
func Open(path string) (*Registry, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating registry directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening registry: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging registry: %w", err)
	}

	r := &Registry{DB: sqlDB, path: path}
	if err := r.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return r, nil
}

// OpenMemory creates an in-memory registry (useful for testing).
func OpenMemory() (*Registry, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory registry: %w", err)
	}

	r := &Registry{DB: sqlDB, path: ":memory:"}
	if err := r.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return r, nil
}

func (r *Registry) migrate() error {
	_, err := r.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    topic TEXT NOT NULL DEFAULT '',
    project TEXT NOT NULL DEFAULT '',
    chunks INTEGER NOT NULL,
    size_bytes INTEGER NOT NULL DEFAULT 0,
    ingested_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_source ON documents(source);
CREATE INDEX IF NOT EXISTS idx_documents_topic ON documents(topic);
CREATE INDEX IF NOT EXISTS idx_documents_project ON documents(project);
`

// Record inserts one catalog entry.
func (r *Registry) Record(ctx context.Context, doc Document) error {
	if doc.IngestedAt.IsZero() {
		doc.IngestedAt = time.Now().UTC()
	}
	_, err := r.ExecContext(ctx,
		`INSERT INTO documents (id, source, topic, project, chunks, size_bytes, ingested_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Source, doc.Topic, doc.Project, doc.Chunks, doc.SizeBytes,
		doc.IngestedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording document: %w", err)
	}
	return nil
}

// DistinctTopics returns the sorted list of non-empty topics.
func (r *Registry) DistinctTopics(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "topic")
}

// DistinctProjects returns the sorted list of non-empty projects.
func (r *Registry) DistinctProjects(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "project")
}

func (r *Registry) distinct(ctx context.Context, column string) ([]string, error) {
	rows, err := r.QueryContext(ctx,
		fmt.Sprintf(`SELECT DISTINCT %s FROM documents WHERE %s != '' ORDER BY %s`, column, column, column))
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Sources returns all catalog entries, most recent first.
func (r *Registry) Sources(ctx context.Context) ([]Document, error) {
	rows, err := r.QueryContext(ctx,
		`SELECT id, source, topic, project, chunks, size_bytes, ingested_at
		 FROM documents ORDER BY ingested_at DESC, source ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var d Document
		var ts string
		if err := rows.Scan(&d.ID, &d.Source, &d.Topic, &d.Project, &d.Chunks, &d.SizeBytes, &ts); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			d.IngestedAt = t
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Stats returns document, chunk, topic and project totals.
func (r *Registry) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT source),
		        COALESCE(SUM(chunks), 0),
		        COUNT(DISTINCT CASE WHEN topic != '' THEN topic END),
		        COUNT(DISTINCT CASE WHEN project != '' THEN project END)
		 FROM documents`,
	).Scan(&s.Documents, &s.Chunks, &s.Topics, &s.Projects)
	if err != nil {
		return Stats{}, fmt.Errorf("computing stats: %w", err)
	}
	return s, nil
}
