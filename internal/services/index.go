package services

import (
	"math"
	"sort"
	"sync"
)

// Neighbor is one hit from a nearest-neighbor query.
type Neighbor struct {
	ID       int
	Distance float32
}

// FlatIndex is a brute-force in-memory index using squared L2 distance.
// It is populated once at startup from the reference store and read-only
// afterwards; the verification pipeline tolerates a nil index.
type FlatIndex struct {
	mu      sync.RWMutex
	dim     int
	vectors [][]float32
}

func NewFlatIndex(dim int) *FlatIndex {
	return &FlatIndex{dim: dim}
}

// Add appends vectors to the index, skipping any whose dimension does not
// match the index dimension.
func (ix *FlatIndex) Add(vectors ...[]float32) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for _, vec := range vectors {
		if len(vec) != ix.dim {
			continue
		}
		stored := make([]float32, len(vec))
		copy(stored, vec)
		ix.vectors = append(ix.vectors, stored)
	}
}

// Size returns the number of vectors currently stored.
func (ix *FlatIndex) Size() int {
	if ix == nil {
		return 0
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.vectors)
}

// Nearest returns the k closest vectors to vec, ordered by ascending L2
// distance. The ID is the vector's insertion position.
func (ix *FlatIndex) Nearest(vec []float32, k int) []Neighbor {
	if ix == nil || len(vec) == 0 || k <= 0 {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(ix.vectors) == 0 || len(vec) != ix.dim {
		return nil
	}

	neighbors := make([]Neighbor, 0, len(ix.vectors))
	for i, stored := range ix.vectors {
		neighbors = append(neighbors, Neighbor{ID: i, Distance: l2Distance(vec, stored)})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

func l2Distance(a, b []float32) float32 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}
