// Package server exposes the ray caster as a small JSON-over-HTTP query
// service. The scene travels with every request, exactly like the
// library entry point receives it per call: the service holds no scene
// state between queries.
package server

import (
	"net/http"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

// Server handles ray cast queries over HTTP
type Server struct {
	addr string
	mux  *http.ServeMux
}

// NewServer creates a query server listening on addr
func NewServer(addr string) *Server {
	s := &Server{
		addr: addr,
		mux:  http.NewServeMux(),
	}

	s.mux.HandleFunc("/api/cast", s.handleCast)
	s.mux.HandleFunc("/api/cast-batch", s.handleCastBatch)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the query server and blocks until it stops
func (s *Server) Start() error {
	logs.WithTag("addr", s.addr).Info("starting ray query server")
	return http.ListenAndServe(s.addr, s.mux)
}

// handleHealth provides a simple liveness endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logs.Warn(errors.New("encoding response failed").Wrap(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
