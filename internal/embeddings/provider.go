// Package embeddings provides clients for text-embedding backends.
//
// A Provider maps text strings to dense float32 vectors. All vectors returned
// by one Provider instance share the same dimensionality; callers must not mix
// vectors from different providers in one similarity computation.
//
// Implementations must be safe for concurrent use. Any model-specific prompt
// formatting (e.g. the "query: "/"passage: " prefixes of E5-style retrieval
// models) is the caller's responsibility; providers pass text through verbatim.
package embeddings

import "context"

// Provider is the abstraction over any text-embedding backend.
type Provider interface {
	// Embed computes the embedding vector for a single text string.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch computes vectors for a slice of texts in one backend call.
	// The returned slice has the same length and order as texts. On error the
	// entire result is nil; partial results are not returned.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelID returns the backend-specific model identifier, for logging.
	ModelID() string
}

// Config selects and configures an embedding backend.
type Config struct {
	// Provider is the backend name: "ollama" or "openai".
	Provider string
	// Model is the embedding model name, e.g. "bge-m3" or
	// "text-embedding-3-small".
	Model string
	// BaseURL overrides the backend endpoint. Empty means the provider default.
	BaseURL string
	// APIKey authenticates against hosted backends. Ignored by ollama.
	APIKey string
}
