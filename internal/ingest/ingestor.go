// Package ingest turns raw document text into embedded chunks in the vector
// store: normalize, split into overlapping windows, embed the batch, then
// write all chunks under a shared batch id so a failed write can be undone.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/internal/embeddings"
	"github.com/synapse-hq/synapse/internal/registry"
	"github.com/synapse-hq/synapse/internal/tagger"
	"github.com/synapse-hq/synapse/internal/vectorstore"
)

// ErrEmptyDocument is returned when a document yields no chunks after
// normalization. Nothing is written in that case.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// Result reports what one ingestion produced.
type Result struct {
	DocumentID    string
	Source        string
	Topic         string
	Project       string
	ChunksCreated int
}

// Ingestor coordinates the normalize-chunk-embed-store pipeline.
type Ingestor struct {
	chunker  *Chunker
	embedder embeddings.Embedder
	store    vectorstore.Store
	registry *registry.Registry
	tagger   *tagger.Tagger
}

// New creates an Ingestor. Registry and tagger are optional; see
// SetRegistry and SetTagger.
func New(chunker *Chunker, embedder embeddings.Embedder, store vectorstore.Store) *Ingestor {
	return &Ingestor{chunker: chunker, embedder: embedder, store: store}
}

// SetRegistry enables catalog recording after each successful ingestion.
func (in *Ingestor) SetRegistry(r *registry.Registry) { in.registry = r }

// SetTagger enables keyword auto-tagging for documents that arrive without
// a topic or project. Caller-supplied tags are never overwritten.
func (in *Ingestor) SetTagger(t *tagger.Tagger) { in.tagger = t }

// Ingest processes one document. All chunks are embedded in a single batch
// call and written together; if the write fails partway the store rolls the
// batch back, so a document is either fully indexed or not at all.
func (in *Ingestor) Ingest(ctx context.Context, source, rawText, topic, project string) (*Result, error) {
	text := Normalize(rawText)
	pieces := in.chunker.Split(text)
	if len(pieces) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyDocument)
	}

	if in.tagger != nil && (topic == "" || project == "") {
		tags := in.tagger.Categorize(text, source)
		if topic == "" {
			topic = tags.Topic
		}
		if project == "" {
			project = tags.Project
		}
	}

	vectors, err := in.embedder.EmbedBatch(ctx, pieces)
	if err != nil {
		return nil, fmt.Errorf("embedding %s: %w", source, err)
	}
	if len(vectors) != len(pieces) {
		return nil, fmt.Errorf("embedding %s: got %d vectors for %d chunks", source, len(vectors), len(pieces))
	}

	batch := uuid.NewString()
	now := time.Now().UTC()
	chunks := make([]vectorstore.Chunk, len(pieces))
	for i, piece := range pieces {
		chunks[i] = vectorstore.Chunk{
			ID:        uuid.NewString(),
			Content:   piece,
			Source:    source,
			Topic:     topic,
			Project:   project,
			Index:     i,
			Batch:     batch,
			Embedding: vectors[i],
			CreatedAt: now,
		}
	}

	if err := in.store.InsertMany(ctx, chunks); err != nil {
		return nil, fmt.Errorf("storing %s: %w", source, err)
	}

	if in.registry != nil {
		doc := registry.Document{
			ID:         batch,
			Source:     source,
			Topic:      topic,
			Project:    project,
			Chunks:     len(chunks),
			SizeBytes:  int64(len(rawText)),
			IngestedAt: now,
		}
		if err := in.registry.Record(ctx, doc); err != nil {
			return nil, fmt.Errorf("cataloging %s: %w", source, err)
		}
	}

	return &Result{
		DocumentID:    batch,
		Source:        source,
		Topic:         topic,
		Project:       project,
		ChunksCreated: len(chunks),
	}, nil
}
