package ingest

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"movewiki/internal/domain"
)

// DocumentID derives the stable 8-character identifier of a document from
// its title, URL and the first 50 characters of the raw content. Identical
// inputs always yield the same id. The prefix is 50 characters, not bytes,
// so ids stay stable for multi-byte content.
func DocumentID(title, url, html string) string {
	prefix := html
	if runes := []rune(html); len(runes) > 50 {
		prefix = string(runes[:50])
	}
	sum := md5.Sum([]byte(title + "-" + url + "-" + prefix))
	return hex.EncodeToString(sum[:])[:8]
}

// Process cleans the raw documents, drops denylisted titles and chunks the
// rest. Order is preserved apart from the dropped documents.
func Process(raws []domain.RawDocument, chunker domain.Chunker) ([]domain.Chunk, error) {
	var chunks []domain.Chunk
	for _, raw := range raws {
		if IrrelevantTitle(raw.Title) {
			continue
		}
		doc := domain.Document{
			ID:     DocumentID(raw.Title, raw.URL, raw.HTML),
			Title:  Clean(raw.Title),
			Text:   Clean(raw.HTML),
			URL:    raw.URL,
			Source: raw.Source,
		}
		cs, err := chunker.Chunk(doc)
		if err != nil {
			return nil, fmt.Errorf("chunking document %s: %w", doc.ID, err)
		}
		chunks = append(chunks, cs...)
	}
	return chunks, nil
}
