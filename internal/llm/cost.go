package llm

import (
	"log/slog"

	"movewiki/internal/domain"
)

// modelPricing holds USD rates per 1K tokens.
type modelPricing struct {
	prompt     float64
	completion float64
}

var pricing = map[string]modelPricing{
	"gpt-4o-mini": {prompt: 0.00015, completion: 0.0006},
}

// Cost converts a call's token usage into an estimated USD amount under
// the static pricing table. Unknown models cost zero with a diagnostic.
func Cost(model string, usage domain.Usage) float64 {
	p, ok := pricing[model]
	if !ok {
		slog.Warn("model not in pricing table, cost calculation skipped", "model", model)
		return 0
	}
	return (float64(usage.PromptTokens)*p.prompt + float64(usage.CompletionTokens)*p.completion) / 1000
}
