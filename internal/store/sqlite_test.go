package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movewiki/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "movewiki.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Init(context.Background()))
	return s
}

func TestSaveConversation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	res := &domain.Result{
		Answer:               "Move is a language.",
		ModelUsed:            "gpt-4o-mini",
		ResponseTime:         1.23,
		Relevance:            domain.Relevant,
		RelevanceExplanation: "on topic",
		PromptTokens:         100,
		CompletionTokens:     50,
		TotalTokens:          150,
		EvalPromptTokens:     80,
		EvalCompletionTokens: 10,
		EvalTotalTokens:      90,
		Cost:                 0.0005,
	}
	require.NoError(t, s.SaveConversation(ctx, "conv-1", "What is Move?", res))

	var question, relevance string
	var cost float64
	row := s.db.QueryRowContext(ctx, "SELECT question, relevance, openai_cost FROM conversations WHERE id = ?", "conv-1")
	require.NoError(t, row.Scan(&question, &relevance, &cost))
	assert.Equal(t, "What is Move?", question)
	assert.Equal(t, "RELEVANT", relevance)
	assert.InDelta(t, 0.0005, cost, 1e-12)
}

func TestSaveFeedback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveConversation(ctx, "conv-1", "q", &domain.Result{}))
	require.NoError(t, s.SaveFeedback(ctx, "conv-1", -1))

	var value int
	row := s.db.QueryRowContext(ctx, "SELECT feedback FROM feedback WHERE conversation_id = ?", "conv-1")
	require.NoError(t, row.Scan(&value))
	assert.Equal(t, -1, value)
}

func TestInit_Reinitializes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveConversation(ctx, "conv-1", "q", &domain.Result{}))
	require.NoError(t, s.SaveFeedback(ctx, "conv-1", 1))
	require.NoError(t, s.Init(ctx))

	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM feedback")
	require.NoError(t, row.Scan(&count))
	assert.Zero(t, count)
}
