package domain

// RawDocument is a single page or chat message as produced by the loader,
// before any cleaning.
type RawDocument struct {
	HTML   string
	Title  string
	URL    string
	Source string
}

// Document is a cleaned page ready for chunking.
type Document struct {
	ID     string
	Title  string
	Text   string
	URL    string
	Source string
}

// Chunk is a fixed-size overlapping window of a document's normalized text,
// the unit of indexing and retrieval. The JSON tags double as the index
// field names.
type Chunk struct {
	DocID   string `json:"doc_id"`
	ChunkID string `json:"chunk_id"`
	Text    string `json:"text"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// SearchResult is a matching chunk with the engine's relevance score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// Usage counts the tokens consumed by a single model call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Generation is the outcome of a successful completion call.
type Generation struct {
	Answer string
	Usage  Usage
}

// Relevance is the self-evaluation verdict for a generated answer.
type Relevance string

const (
	Relevant         Relevance = "RELEVANT"
	PartlyRelevant   Relevance = "PARTLY_RELEVANT"
	NonRelevant      Relevance = "NON_RELEVANT"
	RelevanceUnknown Relevance = "UNKNOWN"
)

// Evaluation is the parsed verdict of the relevance evaluator.
type Evaluation struct {
	Relevance   Relevance
	Explanation string
}

// Result carries everything produced while answering one question. It is
// the sole contract surface between the pipeline, the HTTP layer and the
// conversation store.
type Result struct {
	Question             string    `json:"query"`
	Context              string    `json:"context"`
	Prompt               string    `json:"prompt"`
	Answer               string    `json:"answer"`
	SearchResults        []Chunk   `json:"search_results"`
	ResponseTime         float64   `json:"response_time"`
	Relevance            Relevance `json:"relevance"`
	RelevanceExplanation string    `json:"relevance_explanation"`
	ModelUsed            string    `json:"model_used"`
	PromptTokens         int       `json:"prompt_tokens"`
	CompletionTokens     int       `json:"completion_tokens"`
	TotalTokens          int       `json:"total_tokens"`
	EvalPromptTokens     int       `json:"eval_prompt_tokens"`
	EvalCompletionTokens int       `json:"eval_completion_tokens"`
	EvalTotalTokens      int       `json:"eval_total_tokens"`
	Cost                 float64   `json:"openai_cost"`
}
