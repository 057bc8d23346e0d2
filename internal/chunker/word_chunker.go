package chunker

import (
	"strconv"
	"strings"

	"movewiki/internal/domain"
)

// WordChunker splits text into fixed-size word windows with overlap.
type WordChunker struct {
	chunkSize int
	overlap   int
}

// NewWordChunker constrains parameters so the window always advances:
// chunkSize > 0 and 0 <= overlap < chunkSize.
func NewWordChunker(chunkSize, overlap int) *WordChunker {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}
	return &WordChunker{chunkSize: chunkSize, overlap: overlap}
}

// Chunk slides the word window over the document text. The last chunk may
// be shorter than the window; chunk IDs are "<doc_id>_<index>" starting at
// zero. Empty text yields no chunks.
func (c *WordChunker) Chunk(document domain.Document) ([]domain.Chunk, error) {
	words := strings.Fields(document.Text)
	var chunks []domain.Chunk
	start := 0
	for start < len(words) {
		end := start + c.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, domain.Chunk{
			DocID:   document.ID,
			ChunkID: document.ID + "_" + strconv.Itoa(len(chunks)),
			Text:    strings.Join(words[start:end], " "),
			Title:   document.Title,
			URL:     document.URL,
			Source:  document.Source,
		})
		if end == len(words) {
			break
		}
		start += c.chunkSize - c.overlap
	}
	return chunks, nil
}
