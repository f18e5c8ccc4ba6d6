package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkText(t *testing.T) {
	chunker := NewTextChunker()

	t.Run("short text stays in one chunk", func(t *testing.T) {
		chunks := chunker.ChunkText("a short reference resume", 1000, 200)
		assert.Equal(t, []string{"a short reference resume"}, chunks)
	})

	t.Run("long text is split under the limit", func(t *testing.T) {
		paragraph := strings.Repeat("board certified physician. ", 30)
		text := paragraph + "\n\n" + paragraph

		chunks := chunker.ChunkText(text, 200, 40)
		assert.Greater(t, len(chunks), 1)
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		assert.Empty(t, chunker.ChunkText("", 1000, 200))
	})

	t.Run("degenerate parameters fall back to defaults", func(t *testing.T) {
		chunks := chunker.ChunkText("some text", 0, -5)
		assert.Equal(t, []string{"some text"}, chunks)
	})
}

func TestCleanText(t *testing.T) {
	got := CleanText("  line one \n\n\n   line two  \n")
	assert.Equal(t, "line one\nline two", got)
}
