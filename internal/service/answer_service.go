// Package service wires retrieval, prompt assembly, generation,
// self-evaluation and cost accounting into the answer pipeline.
package service

import (
	"context"
	"log/slog"
	"time"

	"movewiki/internal/domain"
	"movewiki/internal/llm"
	"movewiki/internal/prompt"
)

// Pipeline answers questions over the indexed corpus. All collaborators are
// passed in explicitly; there is no process-wide client state.
type Pipeline struct {
	searcher  domain.Searcher
	completer domain.Completer
	evaluator domain.Evaluator
	topK      int
}

// NewPipeline creates the answer pipeline. topK <= 0 selects the default
// of 3 retrieved chunks per question.
func NewPipeline(searcher domain.Searcher, completer domain.Completer, evaluator domain.Evaluator, topK int) *Pipeline {
	if topK <= 0 {
		topK = 3
	}
	return &Pipeline{searcher: searcher, completer: completer, evaluator: evaluator, topK: topK}
}

// Answer runs retrieve -> assemble prompt -> generate -> evaluate ->
// account cost and returns the full result record. No stage aborts the
// pipeline: search failures answer without context, generation failures
// return a degraded record with an UNKNOWN verdict and zero cost.
func (p *Pipeline) Answer(ctx context.Context, question, model, source string) (*domain.Result, error) {
	hits, err := p.searcher.Search(ctx, question, p.topK, source)
	if err != nil {
		slog.Warn("search failed, answering without context", "error", err)
		hits = nil
	}
	chunks := make([]domain.Chunk, 0, len(hits))
	for _, h := range hits {
		chunks = append(chunks, h.Chunk)
	}

	promptText, contextText := prompt.Build(question, chunks)
	res := &domain.Result{
		Question:      question,
		Context:       contextText,
		Prompt:        promptText,
		SearchResults: chunks,
		ModelUsed:     model,
		Relevance:     domain.RelevanceUnknown,
	}

	start := time.Now()
	gen, err := p.completer.Complete(ctx, promptText, model)
	res.ResponseTime = time.Since(start).Seconds()
	if err != nil {
		slog.Error("answer generation failed", "error", err)
		res.RelevanceExplanation = "Answer generation failed"
		return res, nil
	}
	res.Answer = gen.Answer
	res.PromptTokens = gen.Usage.PromptTokens
	res.CompletionTokens = gen.Usage.CompletionTokens
	res.TotalTokens = gen.Usage.TotalTokens

	eval, evalUsage := p.evaluator.Evaluate(ctx, question, gen.Answer)
	res.Relevance = eval.Relevance
	res.RelevanceExplanation = eval.Explanation
	res.EvalPromptTokens = evalUsage.PromptTokens
	res.EvalCompletionTokens = evalUsage.CompletionTokens
	res.EvalTotalTokens = evalUsage.TotalTokens

	res.Cost = llm.Cost(model, gen.Usage) + llm.Cost(model, evalUsage)
	return res, nil
}
