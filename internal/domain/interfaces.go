package domain

import "context"

// Chunker splits cleaned documents into chunks suitable for retrieval
// indexing.
type Chunker interface {
	Chunk(document Document) ([]Chunk, error)
}

// Searcher retrieves ranked candidate chunks for a query. A source filter
// restricts hits to that source; an empty filter matches everything. An
// empty result is not an error.
type Searcher interface {
	Search(ctx context.Context, query string, size int, source string) ([]SearchResult, error)
}

// Completer performs a single synchronous chat-completion call.
type Completer interface {
	Complete(ctx context.Context, prompt, model string) (*Generation, error)
}

// Evaluator grades a generated answer against its question in a second,
// independent model call. It never fails: provider or parse problems
// degrade to an UNKNOWN verdict.
type Evaluator interface {
	Evaluate(ctx context.Context, question, answer string) (Evaluation, Usage)
}

// AnswerService is the single entry point of the answer pipeline.
type AnswerService interface {
	Answer(ctx context.Context, question, model, source string) (*Result, error)
}

// ConversationStore persists answered questions and user feedback.
type ConversationStore interface {
	SaveConversation(ctx context.Context, id, question string, res *Result) error
	SaveFeedback(ctx context.Context, conversationID string, value int) error
}
