package api

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kmrl-docs/dochub/internal/artifact"
	"github.com/kmrl-docs/dochub/internal/engine"
	"github.com/kmrl-docs/dochub/internal/model"
)

// ---------------------------------------------------------------------------
// POST /api/documents
// ---------------------------------------------------------------------------

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if filename == "" || filename == "." {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	if _, err := s.artifacts.SaveUpload(data, filename); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	res, err := s.pipeline.Ingest(r.Context(), data, filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist artifacts")
		return
	}

	s.record(r, filename, model.SourceUpload, res)
	writeJSON(w, http.StatusOK, res)
}

// record writes the registry row for an ingested document. Registry
// failures don't fail the request that produced the artifacts.
func (s *Server) record(r *http.Request, filename, source string, res engine.Result) {
	if s.registry == nil {
		return
	}
	doc := res.Document(uuid.New().String(), filename, source)
	if err := s.registry.CreateDocument(r.Context(), doc); err != nil {
		slog.Error("record document", "filename", filename, "error", err)
	}
}

// ---------------------------------------------------------------------------
// GET /api/documents
// ---------------------------------------------------------------------------

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	filter := model.DocumentFilter{
		Source: splitComma(r.URL.Query().Get("source")),
		Kind:   splitComma(r.URL.Query().Get("kind")),
	}

	docs, err := s.registry.ListDocuments(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	if docs == nil {
		docs = []model.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// ---------------------------------------------------------------------------
// GET /api/documents/{id}
// ---------------------------------------------------------------------------

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	doc, err := s.registry.GetDocument(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get document")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// ---------------------------------------------------------------------------
// POST /api/sweep
// ---------------------------------------------------------------------------

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	if s.sweeper == nil {
		report := model.NewSweepReport()
		report.AddMessage("mail source not configured")
		writeJSON(w, http.StatusOK, report)
		return
	}
	writeJSON(w, http.StatusOK, s.sweeper.Sweep(r.Context()))
}

// ---------------------------------------------------------------------------
// GET /download/{folder}/{filename}
// ---------------------------------------------------------------------------

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	role, ok := artifact.ParseRole(r.PathValue("folder"))
	if !ok {
		writeError(w, http.StatusBadRequest, "folder must be original or translated")
		return
	}

	name := r.PathValue("filename")
	data, err := s.artifacts.Open(role, name)
	if errors.Is(err, fs.ErrNotExist) {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read artifact")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(name)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
