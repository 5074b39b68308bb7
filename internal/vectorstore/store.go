// Package vectorstore persists document chunks and answers ranked
// similarity queries over their embeddings.
package vectorstore

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable indicates the backing store failed to persist or query.
var ErrUnavailable = errors.New("vector store unavailable")

// Chunk is the persisted unit of retrieval: one bounded span of a
// document's text plus its embedding and categorical tags. A chunk is
// immutable after creation; re-ingesting a document appends new chunks
// under the same source rather than patching existing ones.
type Chunk struct {
	ID        string
	Content   string
	Source    string // originating filename
	Topic     string // optional categorical tag, empty means untagged
	Project   string
	Index     int    // position within the source document
	Batch     string // ingestion batch id; one batch per ingested document
	Embedding []float32
	CreatedAt time.Time
}

// Hit pairs a stored chunk with its similarity to a query, in [0,1].
type Hit struct {
	Chunk      Chunk
	Similarity float32
}

// Query describes one ranked similarity search.
type Query struct {
	Vector    []float32
	Threshold float64 // hits must score strictly above this
	Limit     int     // caps chunk hits, not files
	Topic     string  // equality filter when non-empty
	Project   string  // equality filter when non-empty
}

// Store is the vector persistence capability the pipeline builds on.
// InsertMany is atomic per call: either every chunk of the batch is
// visible afterwards or none is.
type Store interface {
	InsertMany(ctx context.Context, chunks []Chunk) error
	SimilaritySearch(ctx context.Context, q Query) ([]Hit, error)
	Count() int
	Persist(ctx context.Context, dir string) error
	Load(ctx context.Context, dir string) error
}
