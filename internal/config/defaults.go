package config

// EmbeddingDimensions is the fixed vector dimension the pipeline is built
// around. Every stored chunk and every query embedding must have exactly
// this many components.
const EmbeddingDimensions = 384

// defaultModels maps each provider to an embedding model that can produce
// 384-dimension vectors.
var defaultModels = map[ProviderType]string{
	ProviderOpenAI: "text-embedding-3-small",
	ProviderOllama: "all-minilm",
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderOpenAI,
		EmbeddingModel:  defaultModels[ProviderOpenAI],
		Dimensions:      EmbeddingDimensions,
		OllamaBaseURL:   "http://localhost:11434",
		ChunkSize:       500,
		ChunkOverlap:    100,
		MatchThreshold:  0.5,
		MatchCount:      10,
		DataDir:         ".synapse",
		Port:            8000,
		AllowAllOrigins: false,
		AutoTag:         true,
		MaxUploadBytes:  32 << 20,
	}
}

// DefaultModel returns the default embedding model for a provider.
func DefaultModel(provider ProviderType) string {
	return defaultModels[provider]
}
