package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/veebee17/my-llm-project1/core/session"
	"github.com/veebee17/my-llm-project1/providers/ai"
	"github.com/veebee17/my-llm-project1/providers/observability"
)

// chatRequest is the POST /api/chat body. Temperature and MaxTokens are
// pointers so an absent field can be told apart from an explicit zero.
// Messages carries the prior conversation when the client manages history
// itself; SessionID selects a server-side session instead.
type chatRequest struct {
	Message     string        `json:"message"`
	Provider    string        `json:"provider"`
	Model       string        `json:"model"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Messages    []wireMessage `json:"messages,omitempty"`
	SessionID   string        `json:"session_id,omitempty"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the uniform chat reply: the assistant's text on success,
// a diagnostic string otherwise. Callers never need to inspect anything
// beyond the success flag.
type chatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Generation defaults applied when the request omits the field.
const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, chatResponse{Success: false, Error: "invalid request body: " + err.Error()})
		return
	}

	history, sess, errMsg := s.buildHistory(r, &req)
	if errMsg != "" {
		writeJSON(w, http.StatusOK, chatResponse{Success: false, Error: errMsg})
		return
	}

	// Resolve provider, model, and generation parameters. The request wins;
	// a session fills in whatever the request omits; otherwise the global
	// defaults apply. Explicit request values are persisted back onto the
	// session so follow-up requests can leave them out.
	provider, model := req.Provider, req.Model
	temperature := defaultTemperature
	maxTokens := defaultMaxTokens
	if sess != nil {
		sessProvider, sessModel, sessTemperature, sessMaxTokens := sess.Settings()
		if provider == "" {
			provider = sessProvider
		}
		if model == "" {
			model = sessModel
		}
		temperature = sessTemperature
		maxTokens = sessMaxTokens
	}
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	cfg := ai.GenerationConfig{
		Temperature: &temperature,
		MaxTokens:   maxTokens,
	}
	if sess != nil {
		sess.UpdateSettings(req.Provider, req.Model, temperature, maxTokens)
	}

	userTurn := ai.Message{Role: ai.RoleUser, Content: req.Message}
	history = append(history, userTurn)
	if sess != nil {
		sess.History.AppendMessage(ctx, &userTurn)
	}

	result := s.dispatcher.Send(ctx, provider, model, cfg, history)

	if s.observer != nil {
		status := "success"
		if !result.Ok() {
			status = "failure"
		}
		attrs := []observability.Attribute{
			observability.String(observability.AttrLLMProvider, provider),
			observability.String(observability.AttrLLMModel, model),
			observability.String(observability.AttrStatus, status),
		}
		s.observer.Counter(observability.MetricChatRequestCount).Add(ctx, 1, attrs...)
		s.observer.Histogram(observability.MetricChatRequestDuration).Record(ctx, time.Since(start).Seconds(), attrs...)
	}

	if !result.Ok() {
		writeJSON(w, http.StatusOK, chatResponse{Success: false, Error: result.Err.Message})
		return
	}
	if sess != nil {
		sess.History.AppendMessage(ctx, &ai.Message{Role: ai.RoleAssistant, Content: result.Text})
	}
	writeJSON(w, http.StatusOK, chatResponse{Success: true, Response: result.Text})
}

// buildHistory assembles the prior conversation for a chat request: the
// server-side session history when session_id is set, the request's inline
// messages otherwise. The returned slice never includes the new user turn.
func (s *Server) buildHistory(r *http.Request, req *chatRequest) ([]ai.Message, *session.Session, string) {
	if req.SessionID != "" {
		sess, ok := s.sessions.Get(req.SessionID)
		if !ok {
			return nil, nil, "unknown session: " + req.SessionID
		}
		stored, err := sess.History.AllMessages(r.Context())
		if err != nil {
			return nil, nil, "reading session history: " + err.Error()
		}
		return stored, sess, ""
	}

	history := make([]ai.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, ai.Message{Role: ai.MessageRole(m.Role), Content: m.Content})
	}
	return history, nil, ""
}

func (s *Server) handleModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, modelCatalog)
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.creds.Status())
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	if s.observer != nil {
		s.observer.Info(r.Context(), "Session created",
			observability.String(observability.AttrSessionID, sess.ID))
	}
	writeJSON(w, http.StatusOK, map[string]string{"session_id": sess.ID})
}

func (s *Server) handleSessionClear(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "session_id is required"})
		return
	}
	sess, found := s.sessions.Get(id)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown session: " + id})
		return
	}
	sess.Clear(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"session_id": id, "status": "cleared"})
}

func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "session_id is required"})
		return
	}
	s.sessions.Delete(id)
	writeJSON(w, http.StatusOK, map[string]string{"session_id": id, "status": "deleted"})
}

// sessionID extracts the session id from the query string or, failing that,
// from a {"session_id": ...} body.
func sessionID(r *http.Request) (string, bool) {
	if id := r.URL.Query().Get("session_id"); id != "" {
		return id, true
	}
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.SessionID != "" {
		return body.SessionID, true
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
