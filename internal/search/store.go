package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"

	"movewiki/internal/domain"
)

// indexMapping is the fixed index schema: exact-match keys for the
// identifiers, full-text fields for title and text.
const indexMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 0
  },
  "mappings": {
    "properties": {
      "doc_id": {"type": "keyword"},
      "chunk_id": {"type": "keyword"},
      "text": {"type": "text"},
      "title": {"type": "text"},
      "url": {"type": "keyword"},
      "source": {"type": "keyword"}
    }
  }
}`

// Store is the Elasticsearch-backed chunk index. It owns a single index
// whose name is fixed at construction.
type Store struct {
	es    *elasticsearch.Client
	index string
}

// Config holds connection details for the search engine.
type Config struct {
	URL   string
	Index string
}

// NewStore creates a client for the configured Elasticsearch deployment.
func NewStore(cfg Config) (*Store, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}
	return &Store{es: es, index: cfg.Index}, nil
}

// Ping verifies the search engine is reachable.
func (s *Store) Ping(ctx context.Context) error {
	res, err := s.es.Ping(s.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("pinging elasticsearch: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch ping: %s", res.Status())
	}
	return nil
}

// Recreate drops any existing index of the same name and creates it fresh
// with the fixed schema. Re-running indexing therefore always starts from
// a consistent, empty state.
func (s *Store) Recreate(ctx context.Context) error {
	res, err := s.es.Indices.Delete(
		[]string{s.index},
		s.es.Indices.Delete.WithContext(ctx),
		s.es.Indices.Delete.WithIgnoreUnavailable(true),
	)
	if err != nil {
		return fmt.Errorf("deleting index %s: %w", s.index, err)
	}
	res.Body.Close()

	res, err = s.es.Indices.Create(
		s.index,
		s.es.Indices.Create.WithContext(ctx),
		s.es.Indices.Create.WithBody(strings.NewReader(indexMapping)),
	)
	if err != nil {
		return fmt.Errorf("creating index %s: %w", s.index, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("creating index %s: %s", s.index, res.String())
	}
	return nil
}

// IndexChunks inserts every chunk document-by-document, then refreshes the
// index so the chunks are immediately searchable.
func (s *Store) IndexChunks(ctx context.Context, chunks []domain.Chunk) error {
	for _, ch := range chunks {
		data, err := json.Marshal(ch)
		if err != nil {
			return fmt.Errorf("encoding chunk %s: %w", ch.ChunkID, err)
		}
		res, err := s.es.Index(s.index, bytes.NewReader(data), s.es.Index.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("indexing chunk %s: %w", ch.ChunkID, err)
		}
		if res.IsError() {
			status := res.Status()
			res.Body.Close()
			return fmt.Errorf("indexing chunk %s: %s", ch.ChunkID, status)
		}
		res.Body.Close()
	}

	res, err := s.es.Indices.Refresh(
		s.es.Indices.Refresh.WithContext(ctx),
		s.es.Indices.Refresh.WithIndex(s.index),
	)
	if err != nil {
		return fmt.Errorf("refreshing index %s: %w", s.index, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("refreshing index %s: %s", s.index, res.Status())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Score  float64      `json:"_score"`
			Source domain.Chunk `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs the hybrid lexical query and returns up to size hits ranked
// by engine score descending.
func (s *Store) Search(ctx context.Context, query string, size int, source string) ([]domain.SearchResult, error) {
	body, err := json.Marshal(buildQuery(query, size, source))
	if err != nil {
		return nil, fmt.Errorf("encoding search query: %w", err)
	}
	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(s.index),
		s.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("searching index %s: %w", s.index, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("searching index %s: %s", s.index, res.String())
	}
	var out searchResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return hitsToResults(out), nil
}

func hitsToResults(out searchResponse) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		results = append(results, domain.SearchResult{Chunk: h.Source, Score: h.Score})
	}
	return results
}
