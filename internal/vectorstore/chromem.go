package vectorstore

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/synapse-hq/synapse/internal/embeddings"
)

const (
	collectionName = "documents"
	storeFileName  = "chromem.gob.gz"
)

// ChromemStore implements Store using chromem-go, an in-process vector
// database with exhaustive cosine search.
type ChromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	dimensions int
	embedFunc  chromem.EmbeddingFunc
}

// NewChromemStore creates a new in-memory ChromemStore. The embedder is
// only used as chromem's fallback embedding function; chunks are expected
// to arrive with precomputed vectors of the embedder's dimension.
func NewChromemStore(embedder embeddings.Embedder) (*ChromemStore, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &ChromemStore{
		db:         db,
		collection: col,
		dimensions: embedder.Dimensions(),
		embedFunc:  ef,
	}, nil
}

// InsertMany stores all chunks of one ingestion batch. The batch is
// validated up front, and on a partial failure every chunk sharing the
// batch id is deleted again, so callers never observe a half-indexed
// document.
func (s *ChromemStore) InsertMany(ctx context.Context, chunks []Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(chunks))
	for i, ch := range chunks {
		if ch.Content == "" {
			return fmt.Errorf("chunk %d of %s has empty content", i, ch.Source)
		}
		if len(ch.Embedding) != s.dimensions {
			return fmt.Errorf("chunk %d of %s has %d-dim embedding, store expects %d",
				i, ch.Source, len(ch.Embedding), s.dimensions)
		}
		docs[i] = chromem.Document{
			ID:        ch.ID,
			Content:   ch.Content,
			Embedding: ch.Embedding,
			Metadata:  metadataToMap(ch),
		}
	}

	if err := s.collection.AddDocuments(ctx, docs, 1); err != nil {
		// Roll back anything that made it in before the failure.
		_ = s.collection.Delete(ctx, map[string]string{"batch": chunks[0].Batch}, nil)
		return fmt.Errorf("%w: add documents: %v", ErrUnavailable, err)
	}
	return nil
}

// SimilaritySearch returns up to q.Limit chunks scoring strictly above
// q.Threshold, ordered by similarity descending. Tag filters are applied
// inside the store, so the limit is spent only on matching chunks.
func (s *ChromemStore) SimilaritySearch(ctx context.Context, q Query) ([]Hit, error) {
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	// chromem-go requires nResults <= collection size.
	if limit > count {
		limit = count
	}

	where := buildWhereClause(q)

	results, err := s.collection.QueryEmbedding(ctx, q.Vector, limit, where, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: chromem query: %v", ErrUnavailable, err)
	}

	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		if float64(r.Similarity) <= q.Threshold {
			continue
		}
		hits = append(hits, Hit{
			Chunk:      mapToChunk(r.ID, r.Content, r.Metadata),
			Similarity: r.Similarity,
		})
	}

	// chromem returns results ranked already; keep the order deterministic
	// for repeated identical queries.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Similarity > hits[j].Similarity })

	return hits, nil
}

func (s *ChromemStore) Count() int {
	return s.collection.Count()
}

// Persist saves the store's data into the given directory.
func (s *ChromemStore) Persist(ctx context.Context, dir string) error {
	if err := s.db.ExportToFile(filepath.Join(dir, storeFileName), true, ""); err != nil {
		return fmt.Errorf("%w: export: %v", ErrUnavailable, err)
	}
	return nil
}

// Load restores the store's data from the given directory.
func (s *ChromemStore) Load(ctx context.Context, dir string) error {
	if err := s.db.ImportFromFile(filepath.Join(dir, storeFileName), ""); err != nil {
		return fmt.Errorf("import from file: %w", err)
	}

	// Re-acquire collection reference after import.
	col := s.db.GetCollection(collectionName, s.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", collectionName)
	}
	s.collection = col
	return nil
}

// metadataToMap converts a Chunk's metadata to a flat map[string]string
// for chromem.
func metadataToMap(ch Chunk) map[string]string {
	return map[string]string{
		"source":      ch.Source,
		"topic":       ch.Topic,
		"project":     ch.Project,
		"chunk_index": strconv.Itoa(ch.Index),
		"batch":       ch.Batch,
		"created_at":  ch.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// mapToChunk rebuilds a Chunk from chromem's flat metadata map. The
// embedding is not round-tripped; hits only need content and tags.
func mapToChunk(id, content string, m map[string]string) Chunk {
	index, _ := strconv.Atoi(m["chunk_index"])
	createdAt, _ := time.Parse(time.RFC3339, m["created_at"])

	return Chunk{
		ID:        id,
		Content:   content,
		Source:    m["source"],
		Topic:     m["topic"],
		Project:   m["project"],
		Index:     index,
		Batch:     m["batch"],
		CreatedAt: createdAt,
	}
}

// buildWhereClause converts the query's tag filters to a chromem where
// clause. Both filters are equality matches and are AND'd together.
func buildWhereClause(q Query) map[string]string {
	where := make(map[string]string)
	if q.Topic != "" {
		where["topic"] = q.Topic
	}
	if q.Project != "" {
		where["project"] = q.Project
	}
	if len(where) == 0 {
		return nil
	}
	return where
}
