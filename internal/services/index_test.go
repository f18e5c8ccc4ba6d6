package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatIndexNearest(t *testing.T) {
	index := NewFlatIndex(2)
	index.Add(
		[]float32{0, 0},
		[]float32{3, 4},
		[]float32{1, 0},
	)

	require.Equal(t, 3, index.Size())

	neighbors := index.Nearest([]float32{0, 0}, 2)
	require.Len(t, neighbors, 2)

	assert.Equal(t, 0, neighbors[0].ID)
	assert.Equal(t, float32(0), neighbors[0].Distance)
	assert.Equal(t, 2, neighbors[1].ID)
	assert.Equal(t, float32(1), neighbors[1].Distance)
}

func TestFlatIndexSkipsMismatchedDimensions(t *testing.T) {
	index := NewFlatIndex(3)
	index.Add([]float32{1, 2}, []float32{1, 2, 3})

	assert.Equal(t, 1, index.Size())
}

func TestFlatIndexKLargerThanSize(t *testing.T) {
	index := NewFlatIndex(1)
	index.Add([]float32{1})

	neighbors := index.Nearest([]float32{0}, 10)
	assert.Len(t, neighbors, 1)
}

func TestFlatIndexNilSafety(t *testing.T) {
	var index *FlatIndex

	assert.Equal(t, 0, index.Size())
	assert.Nil(t, index.Nearest([]float32{1}, 1))
}

func TestFlatIndexQueryDimensionMismatch(t *testing.T) {
	index := NewFlatIndex(2)
	index.Add([]float32{1, 2})

	assert.Nil(t, index.Nearest([]float32{1, 2, 3}, 1))
}
