// Command build_reference_store rebuilds the flat reference-embedding store
// from the ground-truth resume. Run it after replacing the reference
// document or switching embedding models; the API server otherwise starts
// with placeholder vectors in degraded mode.
package main

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"

	"apnedoctors/resume-verifier/internal/config"
	"apnedoctors/resume-verifier/internal/services"
)

const (
	chunkSize    = 1000
	chunkOverlap = 200
)

func main() {
	cfg := config.Load()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("building reference store",
		zap.String("resume", cfg.Reference.ResumePath),
		zap.String("store", cfg.Reference.StorePath))

	embedder, err := services.NewGeminiEmbeddingService(
		cfg.Gemini.APIKey,
		cfg.Gemini.EmbedModel,
		cfg.Gemini.EmbedTimeout,
	)
	if err != nil {
		log.Fatal("failed to initialize embedding service", zap.Error(err))
	}

	ocrService := services.NewTesseractOCRService(cfg.Reference.OCRDPI)
	extractor := services.NewPDFTextExtractor(ocrService, log)
	chunker := services.NewTextChunker()

	if _, err := os.Stat(cfg.Reference.ResumePath); err != nil {
		log.Fatal("reference resume not found", zap.String("path", cfg.Reference.ResumePath))
	}

	text, err := extractor.ExtractText(cfg.Reference.ResumePath)
	if err != nil {
		log.Fatal("failed to extract reference resume", zap.Error(err))
	}

	text = services.CleanText(text)
	if strings.TrimSpace(text) == "" {
		log.Fatal("reference resume contains no extractable text")
	}

	chunks := chunker.ChunkText(text, chunkSize, chunkOverlap)
	log.Info("reference resume chunked", zap.Int("chunks", len(chunks)))

	ctx := context.Background()
	vectors := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			log.Fatal("failed to embed chunk", zap.Int("chunk", i), zap.Error(err))
		}
		vectors = append(vectors, embedding)
	}

	store := services.NewReferenceStore(cfg.Reference.StorePath, embedder.Dimension(), log)
	if err := store.Save(vectors); err != nil {
		log.Fatal("failed to write reference store", zap.Error(err))
	}

	log.Info("reference store written",
		zap.Int("vectors", len(vectors)),
		zap.Int("dim", embedder.Dimension()))
}
