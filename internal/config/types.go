package config

// ProviderType identifies an embedding provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level synapse configuration, corresponding to .synapse.yml.
type Config struct {
	Provider        ProviderType `yaml:"provider" koanf:"provider"`
	EmbeddingModel  string       `yaml:"embedding_model" koanf:"embedding_model"`
	Dimensions      int          `yaml:"dimensions" koanf:"dimensions"`
	OllamaBaseURL   string       `yaml:"ollama_base_url" koanf:"ollama_base_url"`
	ChunkSize       int          `yaml:"chunk_size" koanf:"chunk_size"`
	ChunkOverlap    int          `yaml:"chunk_overlap" koanf:"chunk_overlap"`
	MatchThreshold  float64      `yaml:"match_threshold" koanf:"match_threshold"`
	MatchCount      int          `yaml:"match_count" koanf:"match_count"`
	DataDir         string       `yaml:"data_dir" koanf:"data_dir"`
	Port            int          `yaml:"port" koanf:"port"`
	AllowAllOrigins bool         `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AutoTag         bool         `yaml:"auto_tag" koanf:"auto_tag"`
	MaxUploadBytes  int64        `yaml:"max_upload_bytes" koanf:"max_upload_bytes"`
}
