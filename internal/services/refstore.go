package services

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"go.uber.org/zap"
)

const placeholderVectorCount = 2

// ReferenceStore persists reference profile embeddings as a flat vector
// file: a little-endian header of vector count and dimension followed by the
// raw float32 values. The store self-heals: a missing file or a dimension
// mismatch with the active embedding model regenerates placeholder content
// instead of failing startup.
type ReferenceStore struct {
	path   string
	dim    int
	logger *zap.Logger
}

func NewReferenceStore(path string, dim int, logger *zap.Logger) *ReferenceStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceStore{path: path, dim: dim, logger: logger}
}

// Ensure returns the stored vectors, creating or regenerating the store
// when it is absent or inconsistent with the embedding dimension.
func (s *ReferenceStore) Ensure() ([][]float32, error) {
	vectors, err := s.Load()
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("reference store not found, generating placeholder embeddings",
			zap.String("path", s.path))
		return s.regenerate()
	}
	if err != nil {
		return nil, err
	}

	if len(vectors) > 0 && len(vectors[0]) != s.dim {
		s.logger.Warn("reference store dimension mismatch, regenerating",
			zap.Int("stored_dim", len(vectors[0])),
			zap.Int("model_dim", s.dim))
		return s.regenerate()
	}

	return vectors, nil
}

// Load reads the store file and validates its shape.
func (s *ReferenceStore) Load() ([][]float32, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read reference store: %w", err)
	}

	if len(data) < 8 {
		return nil, fmt.Errorf("reference store truncated: %s", s.path)
	}

	count := binary.LittleEndian.Uint32(data[:4])
	dim := binary.LittleEndian.Uint32(data[4:8])
	need := int(count) * int(dim) * 4
	if len(data) < 8+need {
		return nil, fmt.Errorf("reference store truncated: %s", s.path)
	}

	reader := bytes.NewReader(data[8 : 8+need])
	vectors := make([][]float32, count)
	for i := range vectors {
		vec := make([]float32, dim)
		if err := binary.Read(reader, binary.LittleEndian, vec); err != nil {
			return nil, fmt.Errorf("failed to decode reference store: %w", err)
		}
		vectors[i] = vec
	}

	return vectors, nil
}

// Save writes the vectors to the store file, overwriting existing content.
func (s *ReferenceStore) Save(vectors [][]float32) error {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(vectors)))
	_ = binary.Write(buf, binary.LittleEndian, uint32(s.dim))
	for _, vec := range vectors {
		if len(vec) != s.dim {
			return fmt.Errorf("vector dimension %d does not match store dimension %d", len(vec), s.dim)
		}
		if err := binary.Write(buf, binary.LittleEndian, vec); err != nil {
			return fmt.Errorf("failed to encode reference store: %w", err)
		}
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write reference store: %w", err)
	}
	return nil
}

// regenerate replaces the store with random placeholder vectors of the
// active dimension so the process can start in degraded mode.
func (s *ReferenceStore) regenerate() ([][]float32, error) {
	vectors := make([][]float32, placeholderVectorCount)
	for i := range vectors {
		vec := make([]float32, s.dim)
		for j := range vec {
			vec[j] = rand.Float32()
		}
		vectors[i] = vec
	}

	if err := s.Save(vectors); err != nil {
		return nil, err
	}

	return vectors, nil
}
