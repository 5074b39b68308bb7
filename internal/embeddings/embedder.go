// Package embeddings provides adapters around external embedding models.
package embeddings

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the underlying embedding model could not be
// reached or returned an unusable response. The enclosing ingestion or
// search operation must treat it as fatal: a missing vector cannot be
// approximated, so no partial result is acceptable.
var ErrUnavailable = errors.New("embedding model unavailable")

// Embedder generates fixed-dimension embeddings for texts.
type Embedder interface {
	// EmbedBatch returns exactly one vector per input text, in input order.
	// Batching is a throughput concern only and never changes the mapping.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the vector dimension produced by the model.
	Dimensions() int

	// Name returns the model identifier.
	Name() string
}
