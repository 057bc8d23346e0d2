// Package groundtruth loads the question -> (doc_id, chunk_id) fixture
// used by the FAQ endpoint and offline retrieval evaluation.
package groundtruth

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Entry links a benchmark question to the chunk that answers it.
type Entry struct {
	Question string `json:"text"`
	DocID    string `json:"document_id"`
	ChunkID  string `json:"chunk_id"`
}

// Load reads the tabular fixture. The file must have a header row with
// question, doc_id and chunk_id columns, in any order.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ground truth file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading ground truth header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"question", "doc_id", "chunk_id"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("ground truth file missing column %q", required)
		}
	}

	var entries []Entry
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ground truth row: %w", err)
		}
		entries = append(entries, Entry{
			Question: row[cols["question"]],
			DocID:    row[cols["doc_id"]],
			ChunkID:  row[cols["chunk_id"]],
		})
	}
	return entries, nil
}
