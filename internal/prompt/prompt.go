// Package prompt renders questions and retrieved evidence into the
// model-ready prompt. The instruction wording is a behavioral contract:
// changing the persona or grounding rules changes answer quality.
package prompt

import (
	"fmt"
	"strings"

	"movewiki/internal/domain"
)

const answerTemplate = `You are an AI-powered Assistant for Movement Labs, specializing in the Move language and the Movement Network ecosystem.
Answer the QUESTION based strictly on the CONTEXT from the knowledge base. If the CONTEXT does not provide enough details, request more information or clarify the question.

Your answer should be clear, concise, and factual. Follow these guidelines:
- Provide a complete answer in 2-3 short paragraphs or bullet points for clarity.
- Focus on the most relevant information.
- If the QUESTION is unclear, ask for clarification.
- Do not speculate or generate information not present in the CONTEXT.
- Ensure your response is complete and not cut off mid-sentence.

QUESTION: %s

CONTEXT:
%s`

// Build renders the retrieved chunks into labeled context blocks and embeds
// them with the question in the answer template. It returns the full prompt
// and the bare context. No retrieved chunks yield an empty context.
func Build(question string, chunks []domain.Chunk) (string, string) {
	blocks := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		blocks = append(blocks, fmt.Sprintf(
			"Document ID: %s\nChunk ID: %s\nTitle: %s\nURL: %s\nContent: %s",
			ch.DocID, ch.ChunkID, ch.Title, ch.URL, ch.Text,
		))
	}
	context := strings.Join(blocks, "\n\n")
	return strings.TrimSpace(fmt.Sprintf(answerTemplate, question, context)), context
}
