package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"movewiki/internal/domain"
)

const evaluationTemplate = `You are an expert evaluator for a RAG system.
Your task is to analyze the relevance of the generated answer to the given question.
Based on the relevance of the generated answer, you will classify it
as "NON_RELEVANT", "PARTLY_RELEVANT", or "RELEVANT".

Here is the data for evaluation:

Question: %s
Generated Answer: %s

Please analyze the content and context of the generated answer in relation to the question
and provide your evaluation in parsable JSON without using code blocks:

{
  "Relevance": "NON_RELEVANT" | "PARTLY_RELEVANT" | "RELEVANT",
  "Explanation": "[Provide a brief explanation for your evaluation]"
}`

// parseFailureExplanation is returned whenever the model's verdict is not
// strict JSON.
const parseFailureExplanation = "Failed to parse evaluation"

// Evaluator self-grades generated answers with a second, independent model
// call.
type Evaluator struct {
	completer domain.Completer
	model     string
}

// NewEvaluator creates an evaluator that grades with the given model.
func NewEvaluator(completer domain.Completer, model string) *Evaluator {
	return &Evaluator{completer: completer, model: model}
}

// Evaluate asks the model to classify the answer's relevance to the
// question. Provider failures and malformed output both degrade to an
// UNKNOWN verdict; the call never fails.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer string) (domain.Evaluation, domain.Usage) {
	prompt := fmt.Sprintf(evaluationTemplate, question, answer)
	gen, err := e.completer.Complete(ctx, prompt, e.model)
	if err != nil {
		slog.Warn("relevance evaluation call failed", "error", err)
		return domain.Evaluation{
			Relevance:   domain.RelevanceUnknown,
			Explanation: "Evaluation call failed",
		}, domain.Usage{}
	}
	return ParseEvaluation(gen.Answer), gen.Usage
}

// ParseEvaluation decodes the model's verdict. It always returns a valid
// evaluation: non-JSON input and unrecognized relevance labels degrade to
// UNKNOWN.
func ParseEvaluation(raw string) domain.Evaluation {
	var out struct {
		Relevance   string `json:"Relevance"`
		Explanation string `json:"Explanation"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return domain.Evaluation{
			Relevance:   domain.RelevanceUnknown,
			Explanation: parseFailureExplanation,
		}
	}
	switch r := domain.Relevance(out.Relevance); r {
	case domain.Relevant, domain.PartlyRelevant, domain.NonRelevant:
		return domain.Evaluation{Relevance: r, Explanation: out.Explanation}
	default:
		explanation := out.Explanation
		if explanation == "" {
			explanation = parseFailureExplanation
		}
		return domain.Evaluation{
			Relevance:   domain.RelevanceUnknown,
			Explanation: explanation,
		}
	}
}
