package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kmrl-docs/dochub/internal/artifact"
	"github.com/kmrl-docs/dochub/internal/engine"
	"github.com/kmrl-docs/dochub/internal/model"
	"github.com/kmrl-docs/dochub/internal/store"
)

// Ingestor runs the ingestion pipeline for one uploaded document.
type Ingestor interface {
	Ingest(ctx context.Context, data []byte, filename string) (engine.Result, error)
}

// Sweeper runs one mailbox sweep.
type Sweeper interface {
	Sweep(ctx context.Context) *model.SweepReport
}

// Params collects the server dependencies. Sweeper may be nil when no mail
// source is configured.
type Params struct {
	Registry   store.DocumentRepository
	Artifacts  *artifact.Store
	Pipeline   Ingestor
	Sweeper    Sweeper
	MaxUpload  int64
	CORSOrigin string
}

// Server holds the HTTP handlers and dependencies.
type Server struct {
	registry   store.DocumentRepository
	artifacts  *artifact.Store
	pipeline   Ingestor
	sweeper    Sweeper
	maxUpload  int64
	corsOrigin string
	mux        *http.ServeMux
}

// New creates a new API server.
func New(p Params) *Server {
	if p.MaxUpload <= 0 {
		p.MaxUpload = 20 << 20
	}
	if p.CORSOrigin == "" {
		p.CORSOrigin = "*"
	}
	srv := &Server{
		registry:   p.Registry,
		artifacts:  p.Artifacts,
		pipeline:   p.Pipeline,
		sweeper:    p.Sweeper,
		maxUpload:  p.MaxUpload,
		corsOrigin: p.CORSOrigin,
		mux:        http.NewServeMux(),
	}
	srv.routes()
	return srv
}

// Handler returns the root http.Handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return corsMiddleware(s.corsOrigin, limitBody(s.maxUpload, s.mux))
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/documents", s.handleUpload)
	s.mux.HandleFunc("GET /api/documents", s.handleListDocuments)
	s.mux.HandleFunc("GET /api/documents/{id}", s.handleGetDocument)
	s.mux.HandleFunc("POST /api/sweep", s.handleSweep)
	s.mux.HandleFunc("GET /download/{folder}/{filename}", s.handleDownload)
}

// ---------------------------------------------------------------------------
// Middleware
// ---------------------------------------------------------------------------

// corsMiddleware sets CORS headers for the configured origin.
func corsMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// limitBody restricts the request body to max bytes.
func limitBody(max int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, max)
		next.ServeHTTP(w, r)
	})
}

// ---------------------------------------------------------------------------
// Response helpers
// ---------------------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
