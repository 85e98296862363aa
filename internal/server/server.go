package server

import (
	"embed"
	"fmt"
	"net/http"
	"time"

	"github.com/veebee17/my-llm-project1/core/config"
	"github.com/veebee17/my-llm-project1/core/dispatch"
	"github.com/veebee17/my-llm-project1/core/session"
	"github.com/veebee17/my-llm-project1/providers/observability"
)

//go:embed webui/index.html
var webui embed.FS

// Server wires the HTTP routes to the dispatcher, the credential resolver,
// and the session registry. Construct it with New and mount Handler on an
// http.Server.
type Server struct {
	creds      *config.Resolver
	dispatcher *dispatch.Dispatcher
	sessions   *session.Registry
	observer   observability.Provider
}

// New returns a Server. observer may be nil, in which case no request
// logging or metrics are emitted.
func New(creds *config.Resolver, dispatcher *dispatch.Dispatcher, observer observability.Provider) *Server {
	return &Server{
		creds:      creds,
		dispatcher: dispatcher,
		sessions:   session.NewRegistry(),
		observer:   observer,
	}
}

// Sessions exposes the registry, mainly for tests.
func (s *Server) Sessions() *session.Registry {
	return s.sessions
}

// Handler returns the routed handler with the recover and logging middleware
// applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/models", s.handleModels)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/session", s.handleSessionCreate)
	mux.HandleFunc("POST /api/session/clear", s.handleSessionClear)
	mux.HandleFunc("DELETE /api/session", s.handleSessionDelete)
	return s.withRecover(s.withLogging(mux))
}

// withRecover is the outermost guard: any panic escaping a handler is
// rendered as a {success:false, error} value instead of killing the
// connection. This is the transport-level catch-all, distinct from the
// dispatcher folding adapter errors.
func (s *Server) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if s.observer != nil {
					s.observer.Error(r.Context(), "Recovered panic in request handler",
						observability.String(observability.AttrHTTPMethod, r.Method),
						observability.String(observability.AttrHTTPURL, r.URL.Path),
						observability.String(observability.AttrError, fmt.Sprintf("%v", rec)),
					)
				}
				writeJSON(w, http.StatusInternalServerError, chatResponse{
					Success: false,
					Error:   fmt.Sprintf("%v", rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withLogging attaches the observer to the request context and logs one line
// per request with method, path, and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.observer == nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := observability.ContextWithObserver(r.Context(), s.observer)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		s.observer.Info(ctx, "Handled request",
			observability.String(observability.AttrHTTPMethod, r.Method),
			observability.String(observability.AttrHTTPURL, r.URL.Path),
			observability.Duration(observability.AttrDuration, time.Since(start)),
		)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := webui.ReadFile("webui/index.html")
	if err != nil {
		http.Error(w, "ui page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
