package search

// buildQuery constructs the hybrid lexical query: a required fuzzy
// multi-field match over title and text (text weighted 3x), an optional
// exact phrase match on text with a 2x boost, and, when a source filter is
// given, a hard term restriction on the source field.
func buildQuery(query string, size int, source string) map[string]any {
	boolQuery := map[string]any{
		"must": []any{
			map[string]any{
				"multi_match": map[string]any{
					"query":     query,
					"fields":    []string{"title", "text^3"},
					"type":      "best_fields",
					"fuzziness": "AUTO",
				},
			},
		},
		"should": []any{
			map[string]any{
				"match_phrase": map[string]any{
					"text": map[string]any{
						"query": query,
						"boost": 2,
					},
				},
			},
		},
	}
	if source != "" {
		boolQuery["filter"] = map[string]any{
			"term": map[string]any{
				"source": source,
			},
		}
	}
	return map[string]any{
		"size": size,
		"query": map[string]any{
			"bool": boolQuery,
		},
	}
}
