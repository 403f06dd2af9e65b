package embeddings

import (
	"fmt"
	"strings"
)

// NewProvider creates an embedding provider based on the given configuration.
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "ollama", "":
		return newOllamaProvider(cfg)
	case "openai":
		return newOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
}
