package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/synapse-hq/synapse/internal/config"
	"github.com/synapse-hq/synapse/internal/embeddings"
	"github.com/synapse-hq/synapse/internal/ingest"
	"github.com/synapse-hq/synapse/internal/registry"
	"github.com/synapse-hq/synapse/internal/tagger"
	"github.com/synapse-hq/synapse/internal/vectorstore"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `synapse init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createEmbedder creates an embeddings.Embedder based on config.
func createEmbedder(cfg *config.Config) (embeddings.Embedder, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, cfg.EmbeddingModel, cfg.Dimensions), nil
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(cfg.EmbeddingModel, cfg.Dimensions, cfg.OllamaBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}

// openStore creates the vector store and restores its snapshot if one
// exists. A missing snapshot is not an error; the store starts empty.
func openStore(ctx context.Context, cfg *config.Config, embedder embeddings.Embedder) (vectorstore.Store, error) {
	store, err := vectorstore.NewChromemStore(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}

	if err := store.Load(ctx, cfg.DataDir); err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Warning: could not load vector store from %s: %v\n", cfg.DataDir, err)
		}
	}
	return store, nil
}

// openRegistry opens the document catalog in the data directory.
func openRegistry(cfg *config.Config) (*registry.Registry, error) {
	return registry.Open(filepath.Join(cfg.DataDir, "synapse.db"))
}

// buildIngestor assembles the full ingestion pipeline from config.
func buildIngestor(cfg *config.Config, embedder embeddings.Embedder, store vectorstore.Store, reg *registry.Registry) (*ingest.Ingestor, error) {
	chunker, err := ingest.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return nil, fmt.Errorf("configuring chunker: %w", err)
	}

	ingestor := ingest.New(chunker, embedder, store)
	ingestor.SetRegistry(reg)
	if cfg.AutoTag {
		ingestor.SetTagger(tagger.New())
	}
	return ingestor, nil
}
