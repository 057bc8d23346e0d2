// Package store persists conversations and feedback in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"movewiki/internal/domain"
)

// Store is the SQLite-backed conversation log.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the database at path with WAL mode
// enabled.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Init drops and recreates both tables. It runs alongside index recreation
// so a from-scratch ingest starts with an empty conversation log.
func (s *Store) Init(ctx context.Context) error {
	stmts := []string{
		`DROP TABLE IF EXISTS feedback`,
		`DROP TABLE IF EXISTS conversations`,
		`CREATE TABLE conversations (
			id TEXT PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			model_used TEXT NOT NULL,
			response_time REAL NOT NULL,
			relevance TEXT NOT NULL,
			relevance_explanation TEXT NOT NULL,
			prompt_tokens INTEGER NOT NULL,
			completion_tokens INTEGER NOT NULL,
			total_tokens INTEGER NOT NULL,
			eval_prompt_tokens INTEGER NOT NULL,
			eval_completion_tokens INTEGER NOT NULL,
			eval_total_tokens INTEGER NOT NULL,
			openai_cost REAL NOT NULL,
			timestamp TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE feedback (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			conversation_id TEXT REFERENCES conversations(id),
			feedback INTEGER NOT NULL,
			timestamp TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
	}
	return nil
}

// SaveConversation records one answered question under the generated
// conversation id.
func (s *Store) SaveConversation(ctx context.Context, id, question string, res *domain.Result) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO conversations
		(id, question, answer, model_used, response_time, relevance,
		relevance_explanation, prompt_tokens, completion_tokens, total_tokens,
		eval_prompt_tokens, eval_completion_tokens, eval_total_tokens, openai_cost, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		question,
		res.Answer,
		res.ModelUsed,
		res.ResponseTime,
		string(res.Relevance),
		res.RelevanceExplanation,
		res.PromptTokens,
		res.CompletionTokens,
		res.TotalTokens,
		res.EvalPromptTokens,
		res.EvalCompletionTokens,
		res.EvalTotalTokens,
		res.Cost,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving conversation %s: %w", id, err)
	}
	return nil
}

// SaveFeedback records a +1/-1 vote against a conversation.
func (s *Store) SaveFeedback(ctx context.Context, conversationID string, value int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (conversation_id, feedback, timestamp) VALUES (?, ?, ?)`,
		conversationID, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving feedback for conversation %s: %w", conversationID, err)
	}
	return nil
}
