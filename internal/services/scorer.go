package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// SimilarityResult is the outcome of comparing a candidate document against
// the reference profile.
type SimilarityResult struct {
	Similar bool
	Message string
	Cosine  float64
}

// SimilarityScorer computes normalized cosine similarity between a
// candidate's embedding and the reference embedding.
type SimilarityScorer interface {
	Score(ctx context.Context, text string) (SimilarityResult, error)
}

type similarityScorer struct {
	embedder  EmbeddingService
	reference []float32
	threshold float64
	logger    *zap.Logger
}

func NewSimilarityScorer(embedder EmbeddingService, reference []float32, threshold float64, logger *zap.Logger) SimilarityScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &similarityScorer{
		embedder:  embedder,
		reference: reference,
		threshold: threshold,
		logger:    logger,
	}
}

// Score implements SimilarityScorer. A missing reference embedding yields a
// degraded non-similar answer rather than an error; only embedding backend
// failures are reported as errors.
func (s *similarityScorer) Score(ctx context.Context, text string) (SimilarityResult, error) {
	if len(s.reference) == 0 {
		s.logger.Warn("no reference embedding available, skipping similarity check")
		return SimilarityResult{
			Similar: false,
			Message: "no reference embedding to compare against",
			Cosine:  0,
		}, nil
	}

	embedding, err := s.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return SimilarityResult{}, fmt.Errorf("failed to embed candidate text: %w", err)
	}

	cosine := cosineSimilarity(embedding, s.reference)
	s.logger.Debug("similarity computed", zap.Float64("cosine", cosine))

	if cosine > s.threshold {
		return SimilarityResult{
			Similar: true,
			Message: fmt.Sprintf("document is sufficiently similar (cosine=%.3f)", cosine),
			Cosine:  cosine,
		}, nil
	}

	return SimilarityResult{
		Similar: false,
		Message: fmt.Sprintf("similarity below threshold (cosine=%.3f, threshold=%.2f)", cosine, s.threshold),
		Cosine:  cosine,
	}, nil
}

// cosineSimilarity L2-normalizes both vectors independently and takes their
// dot product, accumulating in float64.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		fa := float64(a[i])
		fb := float64(b[i])
		dot += fa * fb
		normA += fa * fa
		normB += fb * fb
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
