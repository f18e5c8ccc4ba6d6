package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (s *stubEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vector, nil
}

func (s *stubEmbedder) Dimension() int {
	return len(s.vector)
}

func TestSimilarityScorerScore(t *testing.T) {
	ctx := context.Background()

	t.Run("identical direction is similar", func(t *testing.T) {
		embedder := &stubEmbedder{vector: []float32{3, 4}}
		scorer := NewSimilarityScorer(embedder, []float32{6, 8}, 0.3, nil)

		result, err := scorer.Score(ctx, "candidate text")
		require.NoError(t, err)
		assert.True(t, result.Similar)
		assert.InDelta(t, 1.0, result.Cosine, 1e-9)
	})

	t.Run("orthogonal vectors are not similar", func(t *testing.T) {
		embedder := &stubEmbedder{vector: []float32{0, 1}}
		scorer := NewSimilarityScorer(embedder, []float32{1, 0}, 0.3, nil)

		result, err := scorer.Score(ctx, "candidate text")
		require.NoError(t, err)
		assert.False(t, result.Similar)
		assert.InDelta(t, 0.0, result.Cosine, 1e-9)
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		embedder := &stubEmbedder{vector: []float32{0.5, 0.2, 0.9}}
		scorer := NewSimilarityScorer(embedder, []float32{0.1, 0.8, 0.3}, 0.3, nil)

		first, err := scorer.Score(ctx, "same text")
		require.NoError(t, err)
		second, err := scorer.Score(ctx, "same text")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("missing reference degrades without error", func(t *testing.T) {
		embedder := &stubEmbedder{vector: []float32{1, 0}}
		scorer := NewSimilarityScorer(embedder, nil, 0.3, nil)

		result, err := scorer.Score(ctx, "candidate text")
		require.NoError(t, err)
		assert.False(t, result.Similar)
		assert.Equal(t, 0.0, result.Cosine)
		assert.Contains(t, result.Message, "no reference embedding")
		assert.Zero(t, embedder.calls, "no embedding should be computed without a reference")
	})

	t.Run("embedding failure surfaces as error", func(t *testing.T) {
		embedder := &stubEmbedder{err: errors.New("backend unreachable")}
		scorer := NewSimilarityScorer(embedder, []float32{1, 0}, 0.3, nil)

		_, err := scorer.Score(ctx, "candidate text")
		require.Error(t, err)
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("normalizes magnitudes independently", func(t *testing.T) {
		assert.InDelta(t, 1.0, cosineSimilarity([]float32{100, 0}, []float32{0.001, 0}), 1e-9)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 1}, []float32{-1, -1}), 1e-9)
	})

	t.Run("zero vector yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 2}))
	})

	t.Run("empty input yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, cosineSimilarity(nil, []float32{1}))
	})
}
