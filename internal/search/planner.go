package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/synapse-hq/synapse/internal/embeddings"
	"github.com/synapse-hq/synapse/internal/vectorstore"
)

// ErrInvalidQuery indicates the caller supplied parameters outside their
// valid ranges. It is reported before any embedding or store work happens.
var ErrInvalidQuery = errors.New("invalid search parameters")

// Params describes one search after defaults have been applied.
type Params struct {
	Query     string
	Threshold float64 // hits must score strictly above this, in [0, 1]
	Limit     int     // caps chunk hits
	Topic     string
	Project   string
}

// Planner validates parameters, embeds the query once, and runs the
// similarity search.
type Planner struct {
	embedder embeddings.Embedder
	store    vectorstore.Store
}

// NewPlanner creates a Planner.
func NewPlanner(embedder embeddings.Embedder, store vectorstore.Store) *Planner {
	return &Planner{embedder: embedder, store: store}
}

// Search runs one query. A blank query returns no hits without touching
// the embedder or the store. Validation failures surface as
// ErrInvalidQuery, also before any external call.
func (p *Planner) Search(ctx context.Context, params Params) ([]vectorstore.Hit, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Query) == "" {
		return nil, nil
	}

	vectors, err := p.embedder.EmbedBatch(ctx, []string{params.Query})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedding query: got %d vectors, want 1", len(vectors))
	}

	hits, err := p.store.SimilaritySearch(ctx, vectorstore.Query{
		Vector:    vectors[0],
		Threshold: params.Threshold,
		Limit:     params.Limit,
		Topic:     params.Topic,
		Project:   params.Project,
	})
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	return hits, nil
}

func validate(params Params) error {
	if params.Threshold < 0 || params.Threshold > 1 {
		return fmt.Errorf("%w: threshold %.2f outside [0, 1]", ErrInvalidQuery, params.Threshold)
	}
	if params.Limit <= 0 {
		return fmt.Errorf("%w: limit %d must be positive", ErrInvalidQuery, params.Limit)
	}
	return nil
}
