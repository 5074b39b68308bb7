package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/synapse-hq/synapse/internal/embeddings"
	"github.com/synapse-hq/synapse/internal/extract"
	"github.com/synapse-hq/synapse/internal/ingest"
	"github.com/synapse-hq/synapse/internal/search"
	"github.com/synapse-hq/synapse/internal/vectorstore"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req search.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	params := search.Params{
		Query:     req.Query,
		Threshold: s.cfg.DefaultThreshold,
		Limit:     s.cfg.DefaultCount,
		Topic:     req.Topic,
		Project:   req.Project,
	}
	if req.Threshold != nil {
		params.Threshold = *req.Threshold
	}
	if req.Limit != nil {
		params.Limit = *req.Limit
	}

	hits, err := s.planner.Search(r.Context(), params)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, search.Aggregate(req.Query, hits))
}

type uploadResponse struct {
	Success       bool    `json:"success"`
	DocumentID    string  `json:"document_id"`
	Filename      string  `json:"filename"`
	Topic         *string `json:"topic"`
	Project       *string `json:"project"`
	ChunksCreated int     `json:"chunks_created"`
	Message       string  `json:"message"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "reading upload", http.StatusBadRequest)
		return
	}

	text, err := extract.FromFilename(data, header.Filename)
	if err != nil {
		respondError(w, err)
		return
	}

	topic := r.FormValue("topic")
	project := r.FormValue("project")

	res, err := s.ingestor.Ingest(r.Context(), header.Filename, text, topic, project)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := s.store.Persist(r.Context(), s.cfg.DataDir); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		Success:       true,
		DocumentID:    res.DocumentID,
		Filename:      res.Source,
		Topic:         optional(res.Topic),
		Project:       optional(res.Project),
		ChunksCreated: res.ChunksCreated,
		Message:       fmt.Sprintf("ingested %s into %d chunks", res.Source, res.ChunksCreated),
	})
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.registry.DistinctTopics(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"topics": topics})
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.registry.DistinctProjects(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"projects": projects})
}

type statsResponse struct {
	TotalChunks int      `json:"total_chunks"`
	TotalFiles  int      `json:"total_files"`
	Files       []string `json:"files"`
	Topics      []string `json:"topics"`
	Projects    []string `json:"projects"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := s.registry.Stats(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	docs, err := s.registry.Sources(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	topics, err := s.registry.DistinctTopics(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	projects, err := s.registry.DistinctProjects(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	files := []string{}
	seen := map[string]bool{}
	for _, d := range docs {
		if !seen[d.Source] {
			seen[d.Source] = true
			files = append(files, d.Source)
		}
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalChunks: stats.Chunks,
		TotalFiles:  stats.Documents,
		Files:       files,
		Topics:      topics,
		Projects:    projects,
	})
}

// respondError maps pipeline sentinel errors to HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, search.ErrInvalidQuery),
		errors.Is(err, extract.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	case errors.Is(err, extract.ErrExtraction),
		errors.Is(err, ingest.ErrEmptyDocument):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, embeddings.ErrUnavailable),
		errors.Is(err, vectorstore.ErrUnavailable):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
