// Package api exposes the working-days calculation over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/username/working-days-api/internal/engine"
	"go.uber.org/zap"
)

// Server routes calculation requests to the engine and maps engine errors
// to caller-visible statuses.
type Server struct {
	engine  *engine.Engine
	logger  *zap.Logger
	router  *mux.Router
	version string
}

// Error is the JSON error body returned by every failing route.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewServer creates a new Server
func NewServer(eng *engine.Engine, version string, logger *zap.Logger) *Server {
	s := &Server{
		engine:  eng,
		logger:  logger,
		version: version,
	}
	s.router = mux.NewRouter()
	s.router.HandleFunc("/working-days", s.WorkingDaysHandler).Methods("GET")
	s.router.HandleFunc("/health", s.HealthHandler).Methods("GET")
	s.router.HandleFunc("/version", s.VersionHandler).Methods("GET")
	s.router.NotFoundHandler = http.HandlerFunc(s.NotFoundHandler)
	return s
}

// Router returns the HTTP handler for the server.
func (s *Server) Router() http.Handler {
	return s.router
}

// HealthHandler reports service liveness.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// VersionHandler reports the service version.
func (s *Server) VersionHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// NotFoundHandler answers unknown routes.
func (s *Server) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, "NotFound", "resource not found")
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, Error{Error: code, Message: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}
