// Package classifier implements the expense categorization engine: a
// deterministic rule layer evaluated first, with a semantic-similarity
// fallback over precomputed anchor embeddings.
package classifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evseev/kopilka/internal/embeddings"
	"github.com/evseev/kopilka/internal/model"
)

// DefaultThreshold is the cosine-similarity cutoff below which the semantic
// path yields model.CategoryUnknown. Tuned empirically for multilingual E5.
const DefaultThreshold = 0.82

// E5-style asymmetric retrieval prefixes. Anchors are encoded as passages,
// incoming descriptions as queries. Any substituted embedding backend must
// preserve an equivalent convention.
const (
	passagePrefix = "passage: "
	queryPrefix   = "query: "
)

// Config carries the classifier construction parameters. Zero values fall
// back to the built-in rule table, anchor set and threshold.
type Config struct {
	Rules     []Rule
	Anchors   []AnchorSet
	Threshold float64
}

// Classifier maps free-text expense descriptions to budget categories. The
// anchor matrix and rule table are built once and never mutated, so a single
// instance may serve concurrent calls without locking, provided the embedding
// provider is safe for concurrent use.
type Classifier struct {
	provider embeddings.Provider
	rules    []Rule
	// anchorMatrix holds one L2-normalized vector per anchor phrase; rows are
	// parallel to anchorCats.
	anchorMatrix [][]float32
	anchorCats   []model.Category
	threshold    float64
}

// New builds the classifier state: it encodes every anchor phrase through the
// provider in a single batch, L2-normalizes the vectors and issues one
// warm-up classification so the first real request pays no cold-start cost.
//
// This is a one-time blocking initialization; a provider failure is returned
// to the caller and must be treated as fatal.
func New(ctx context.Context, provider embeddings.Provider, cfg Config) (*Classifier, error) {
	if provider == nil {
		return nil, fmt.Errorf("classifier: embedding provider is required")
	}
	if cfg.Rules == nil {
		cfg.Rules = DefaultRules()
	}
	if cfg.Anchors == nil {
		cfg.Anchors = DefaultAnchors()
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}

	var phrases []string
	var cats []model.Category
	for _, set := range cfg.Anchors {
		for _, phrase := range set.Phrases {
			phrases = append(phrases, passagePrefix+phrase)
			cats = append(cats, set.Category)
		}
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("classifier: anchor set is empty")
	}

	vectors, err := provider.EmbedBatch(ctx, phrases)
	if err != nil {
		return nil, fmt.Errorf("classifier: failed to embed anchor phrases: %w", err)
	}
	for i := range vectors {
		vectors[i] = l2Normalize(vectors[i])
	}

	c := &Classifier{
		provider:     provider,
		rules:        cfg.Rules,
		anchorMatrix: vectors,
		anchorCats:   cats,
		threshold:    cfg.Threshold,
	}

	// Force any lazy initialization inside the backend now, not on the first
	// user request.
	if _, _, err := c.classifySemantic(ctx, "warmup init text"); err != nil {
		return nil, fmt.Errorf("classifier: warm-up failed: %w", err)
	}

	slog.Info("classifier initialized",
		"model", provider.ModelID(),
		"anchors", len(phrases),
		"rules", len(cfg.Rules),
		"threshold", cfg.Threshold)

	return c, nil
}

// Classify maps text to a category. The rule table is checked first against
// the raw text; on a hit the embedding path is skipped entirely. Otherwise
// the normalized text is encoded and compared against the anchor matrix.
func (c *Classifier) Classify(ctx context.Context, text string) (model.Classification, error) {
	if category, ok := MatchRules(c.rules, text); ok {
		return model.Classification{
			Category:   category,
			Status:     model.StatusClassifiedByRule,
			Confidence: 1.0,
		}, nil
	}

	category, confidence, err := c.classifySemantic(ctx, text)
	if err != nil {
		return model.Classification{}, err
	}

	status := model.StatusClassifiedByEmbedding
	if category.IsUnknown() {
		status = model.StatusUnclassified
	}
	return model.Classification{
		Category:   category,
		Status:     status,
		Confidence: confidence,
	}, nil
}

// Code is a convenience wrapper for transport callers that only need the
// plain category code string.
func (c *Classifier) Code(ctx context.Context, text string) (string, error) {
	result, err := c.Classify(ctx, text)
	if err != nil {
		return "", err
	}
	return result.Category.Code(), nil
}

// Threshold returns the configured similarity cutoff.
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// classifySemantic encodes the normalized text as a query and returns the
// category of the most similar anchor, or model.CategoryUnknown when the best
// score is below the threshold. Scores lie in [-1, 1]; the comparison is
// strict less-than, so a score exactly at the threshold still classifies.
func (c *Classifier) classifySemantic(ctx context.Context, text string) (model.Category, float64, error) {
	query := queryPrefix + Normalize(text)

	vector, err := c.provider.Embed(ctx, query)
	if err != nil {
		return "", 0, fmt.Errorf("classifier: failed to embed query: %w", err)
	}
	vector = l2Normalize(vector)

	bestIdx := 0
	bestScore := dot(vector, c.anchorMatrix[0])
	for i := 1; i < len(c.anchorMatrix); i++ {
		if score := dot(vector, c.anchorMatrix[i]); score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestScore < c.threshold {
		slog.Debug("semantic match below threshold",
			"text", text,
			"best_category", c.anchorCats[bestIdx].Code(),
			"confidence", bestScore)
		return model.CategoryUnknown, bestScore, nil
	}

	return c.anchorCats[bestIdx], bestScore, nil
}
