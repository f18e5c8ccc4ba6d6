package services

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
)

// FallbackReferenceText stands in for the ground-truth resume when it is
// missing or unreadable, so similarity checks always have a baseline.
const FallbackReferenceText = "Experienced medical professional with board certifications and years of practice in patient care."

// ReferenceProfile is the shared read-only state of the pipeline: the
// trusted baseline embedding and the flat index over the reference store.
// Both are built once at startup and never mutated, so concurrent readers
// need no locking. Embedding may be nil (degraded mode) when the embedding
// backend was unreachable at startup; Index may be nil when the store could
// not be built.
type ReferenceProfile struct {
	Embedding []float32
	Index     *FlatIndex
}

// BuildReferenceProfile assembles the reference state. Every failure here
// degrades rather than aborts: a missing or empty reference resume falls
// back to a canned description, and an unbuildable store leaves the index
// nil.
func BuildReferenceProfile(
	ctx context.Context,
	resumePath string,
	extractor TextExtractor,
	embedder EmbeddingService,
	store *ReferenceStore,
	logger *zap.Logger,
) *ReferenceProfile {
	if logger == nil {
		logger = zap.NewNop()
	}

	profile := &ReferenceProfile{}

	text := referenceText(resumePath, extractor, logger)
	embedding, err := embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		logger.Error("failed to embed reference text, similarity checks degraded", zap.Error(err))
	} else {
		profile.Embedding = embedding
		logger.Info("reference embedding loaded", zap.Int("dim", len(embedding)))
	}

	vectors, err := store.Ensure()
	if err != nil {
		logger.Error("failed to build reference index", zap.Error(err))
		return profile
	}

	index := NewFlatIndex(embedder.Dimension())
	index.Add(vectors...)
	profile.Index = index
	logger.Info("reference index loaded",
		zap.Int("entries", index.Size()),
		zap.Int("dim", embedder.Dimension()))

	return profile
}

func referenceText(resumePath string, extractor TextExtractor, logger *zap.Logger) string {
	if _, err := os.Stat(resumePath); err != nil {
		logger.Warn("reference resume not found, using fallback reference text",
			zap.String("path", resumePath))
		return FallbackReferenceText
	}

	text, err := extractor.ExtractText(resumePath)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.Warn("reference resume empty or unreadable, using fallback reference text",
			zap.String("path", resumePath), zap.Error(err))
		return FallbackReferenceText
	}

	return text
}
