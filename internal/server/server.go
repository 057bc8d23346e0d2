// Package server exposes the answer pipeline over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"movewiki/internal/domain"
	"movewiki/internal/groundtruth"
)

const defaultModel = "gpt-4o-mini"

// Server holds the pipeline and its collaborators for the HTTP handlers.
type Server struct {
	pipeline       domain.AnswerService
	store          domain.ConversationStore
	faq            []groundtruth.Entry
	allowedOrigins []string
}

// New creates the HTTP server facade. faq may be nil when no ground-truth
// fixture is available.
func New(pipeline domain.AnswerService, store domain.ConversationStore, faq []groundtruth.Entry, allowedOrigins []string) *Server {
	return &Server{pipeline: pipeline, store: store, faq: faq, allowedOrigins: allowedOrigins}
}

// Handler returns the routed handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /question", s.handleQuestion)
	mux.HandleFunc("POST /feedback", s.handleFeedback)
	mux.HandleFunc("GET /faq", s.handleFAQ)
	return s.cors(mux)
}

type questionRequest struct {
	Question string `json:"question"`
	Model    string `json:"model"`
}

type questionResponse struct {
	ConversationID string `json:"conversation_id"`
	*domain.Result
}

func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question must not be empty")
		return
	}
	model := req.Model
	if model == "" {
		model = defaultModel
	}

	conversationID := uuid.NewString()
	res, err := s.pipeline.Answer(r.Context(), req.Question, model, "")
	if err != nil {
		slog.Error("answer pipeline failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to answer question")
		return
	}
	if err := s.store.SaveConversation(r.Context(), conversationID, req.Question, res); err != nil {
		slog.Error("saving conversation failed", "conversation_id", conversationID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save conversation")
		return
	}
	writeJSON(w, http.StatusOK, questionResponse{ConversationID: conversationID, Result: res})
}

type feedbackRequest struct {
	ConversationID string `json:"conversation_id"`
	Feedback       int    `json:"feedback"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Feedback != 1 && req.Feedback != -1 {
		writeError(w, http.StatusBadRequest, "feedback must be 1 or -1")
		return
	}
	if err := s.store.SaveFeedback(r.Context(), req.ConversationID, req.Feedback); err != nil {
		slog.Error("saving feedback failed", "conversation_id", req.ConversationID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save feedback")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Feedback received for conversation %s: %d", req.ConversationID, req.Feedback),
	})
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	if s.faq == nil {
		writeError(w, http.StatusInternalServerError, "ground truth fixture not loaded")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"faq_questions": s.faq})
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, allowed := range s.allowedOrigins {
			if origin == allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				break
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
