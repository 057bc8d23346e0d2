package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movewiki/internal/domain"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func expectedChunkCount(n, chunkSize, overlap int) int {
	if n == 0 {
		return 0
	}
	span := n - overlap
	step := chunkSize - overlap
	if span <= 0 {
		// any non-empty text yields at least the first window
		return 1
	}
	return (span + step - 1) / step
}

func TestChunk_CountFormula(t *testing.T) {
	cases := []struct {
		n, chunkSize, overlap int
	}{
		{1, 500, 20},
		{499, 500, 20},
		{500, 500, 20},
		{501, 500, 20},
		{980, 500, 20},
		{1000, 500, 20},
		{12, 5, 2},
		{7, 3, 0},
	}
	for _, tc := range cases {
		c := NewWordChunker(tc.chunkSize, tc.overlap)
		chunks, err := c.Chunk(domain.Document{ID: "abc12345", Text: words(tc.n)})
		require.NoError(t, err)
		assert.Len(t, chunks, expectedChunkCount(tc.n, tc.chunkSize, tc.overlap),
			"n=%d chunkSize=%d overlap=%d", tc.n, tc.chunkSize, tc.overlap)
	}
}

func TestChunk_ReconstructsText(t *testing.T) {
	const n = 12
	c := NewWordChunker(5, 2)
	chunks, err := c.Chunk(domain.Document{ID: "abc12345", Text: words(n)})
	require.NoError(t, err)
	require.Len(t, chunks, 4)

	var rebuilt []string
	for i, ch := range chunks {
		ws := strings.Fields(ch.Text)
		if i > 0 {
			ws = ws[2:] // drop the overlap
		}
		rebuilt = append(rebuilt, ws...)
	}
	assert.Equal(t, words(n), strings.Join(rebuilt, " "))
}

func TestChunk_IDsAndMetadata(t *testing.T) {
	c := NewWordChunker(5, 2)
	doc := domain.Document{
		ID:     "abc12345",
		Title:  "Move Basics",
		URL:    "https://example.com/move",
		Source: "json/wiki.json",
		Text:   words(12),
	}
	chunks, err := c.Chunk(doc)
	require.NoError(t, err)
	for i, ch := range chunks {
		assert.Equal(t, fmt.Sprintf("abc12345_%d", i), ch.ChunkID)
		assert.Equal(t, doc.ID, ch.DocID)
		assert.Equal(t, doc.Title, ch.Title)
		assert.Equal(t, doc.URL, ch.URL)
		assert.Equal(t, doc.Source, ch.Source)
	}
}

func TestChunk_Deterministic(t *testing.T) {
	c := NewWordChunker(500, 20)
	doc := domain.Document{ID: "abc12345", Text: words(1200)}
	first, err := c.Chunk(doc)
	require.NoError(t, err)
	second, err := c.Chunk(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChunk_EmptyText(t *testing.T) {
	c := NewWordChunker(500, 20)
	chunks, err := c.Chunk(domain.Document{ID: "abc12345", Text: "   "})
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestNewWordChunker_ClampsOverlap(t *testing.T) {
	// overlap >= chunkSize would never advance the window
	c := NewWordChunker(5, 9)
	chunks, err := c.Chunk(domain.Document{ID: "abc12345", Text: words(20)})
	require.NoError(t, err)
	assert.NotEmpty(t, chunks)
}
