package ingest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"movewiki/internal/domain"
)

type pageJSON struct {
	HTML  string `json:"html"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type chatJSON struct {
	Messages []struct {
		Content string `json:"content"`
		Author  struct {
			Name string `json:"name"`
		} `json:"author"`
	} `json:"messages"`
}

// LoadDocuments reads every JSON file under <dir>/json. A file is either a
// list of page objects or a chat export with a messages list; each chat
// message becomes a pseudo-document titled by its author. Files with any
// other shape are skipped with a diagnostic.
func LoadDocuments(dir string) ([]domain.RawDocument, error) {
	pattern := filepath.Join(dir, "json", "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}

	var documents []domain.RawDocument
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		source := "json/" + filepath.Base(path)

		// a top-level null unmarshals into a nil slice; treat it as an
		// unsupported shape rather than an empty page file
		var pages []pageJSON
		if err := json.Unmarshal(data, &pages); err == nil && pages != nil {
			for _, p := range pages {
				documents = append(documents, domain.RawDocument{
					HTML:   p.HTML,
					Title:  p.Title,
					URL:    p.URL,
					Source: source,
				})
			}
			continue
		}

		var chat chatJSON
		if err := json.Unmarshal(data, &chat); err == nil && chat.Messages != nil {
			for _, m := range chat.Messages {
				if m.Content == "" {
					continue
				}
				name := m.Author.Name
				if name == "" {
					name = "Unknown"
				}
				documents = append(documents, domain.RawDocument{
					HTML:   m.Content,
					Title:  "Message from " + name,
					Source: source,
				})
			}
			continue
		}

		slog.Warn("unsupported JSON structure, skipping file", "path", path)
	}
	return documents, nil
}
