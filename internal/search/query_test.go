package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery_HybridShape(t *testing.T) {
	q := buildQuery("What is the Move language?", 5, "")

	assert.Equal(t, 5, q["size"])
	boolQuery := q["query"].(map[string]any)["bool"].(map[string]any)

	must := boolQuery["must"].([]any)
	require.Len(t, must, 1)
	multiMatch := must[0].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "What is the Move language?", multiMatch["query"])
	assert.Equal(t, []string{"title", "text^3"}, multiMatch["fields"])
	assert.Equal(t, "best_fields", multiMatch["type"])
	assert.Equal(t, "AUTO", multiMatch["fuzziness"])

	should := boolQuery["should"].([]any)
	require.Len(t, should, 1)
	phrase := should[0].(map[string]any)["match_phrase"].(map[string]any)["text"].(map[string]any)
	assert.Equal(t, "What is the Move language?", phrase["query"])
	assert.Equal(t, 2, phrase["boost"])

	_, hasFilter := boolQuery["filter"]
	assert.False(t, hasFilter)
}

func TestBuildQuery_SourceFilter(t *testing.T) {
	q := buildQuery("staking", 3, "json/wiki.json")
	boolQuery := q["query"].(map[string]any)["bool"].(map[string]any)

	filter, ok := boolQuery["filter"].(map[string]any)
	require.True(t, ok, "source filter must be a hard restriction, not a boost")
	term := filter["term"].(map[string]any)
	assert.Equal(t, "json/wiki.json", term["source"])
}

func TestBuildQuery_Serializable(t *testing.T) {
	_, err := json.Marshal(buildQuery("anything", 3, "json/wiki.json"))
	require.NoError(t, err)
}

func TestSearchResponse_RankedHits(t *testing.T) {
	// chunk_0 mentions the query terms and must outrank the unrelated chunk_1
	raw := `{
		"hits": {
			"hits": [
				{"_score": 7.31, "_source": {"doc_id": "abc12345", "chunk_id": "abc12345_0", "text": "Move language transactions", "title": "Move", "url": "u0", "source": "json/wiki.json"}},
				{"_score": 1.02, "_source": {"doc_id": "abc12345", "chunk_id": "abc12345_1", "text": "governance roadmap", "title": "Move", "url": "u1", "source": "json/wiki.json"}}
			]
		}
	}`
	var out searchResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &out))

	results := hitsToResults(out)
	require.Len(t, results, 2)
	assert.Equal(t, "abc12345_0", results[0].Chunk.ChunkID)
	assert.Equal(t, "abc12345_1", results[1].Chunk.ChunkID)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Equal(t, "Move language transactions", results[0].Chunk.Text)
}

func TestSearchResponse_Empty(t *testing.T) {
	var out searchResponse
	require.NoError(t, json.Unmarshal([]byte(`{"hits": {"hits": []}}`), &out))
	assert.Empty(t, hitsToResults(out))
}
