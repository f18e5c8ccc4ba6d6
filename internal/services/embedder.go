package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// embeddingDimension is the output size of the text-embedding-004 model.
const embeddingDimension = 768

// maxEmbedChars truncates oversized inputs before embedding (~10k tokens).
const maxEmbedChars = 40000

type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

type geminiEmbeddingService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiEmbeddingService(apiKey, model string, timeout time.Duration) (EmbeddingService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiEmbeddingService{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// GenerateEmbedding implements EmbeddingService.
func (g *geminiEmbeddingService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	result, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// Dimension implements EmbeddingService.
func (g *geminiEmbeddingService) Dimension() int {
	return embeddingDimension
}
