// Package server exposes the read-only JSON query surface over the
// entity store. It owns no writes; the batch pipeline is the only
// writer.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/enseco-data/wellstim/internal/common"
	"github.com/enseco-data/wellstim/internal/entity"
	"github.com/enseco-data/wellstim/internal/repository"
)

type Server struct {
	wells  repository.WellRepository
	logger *slog.Logger
}

func New(wells repository.WellRepository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{wells: wells, logger: logger}
}

// Handler builds the route table wrapped with request-ID and access
// logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/wells", s.handleListWells)
	mux.HandleFunc("GET /api/wells/{api}", s.handleGetWell)
	return s.withRequestID(s.withAccessLog(mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListWells(w http.ResponseWriter, r *http.Request) {
	wells, err := s.wells.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to list wells")
		return
	}
	if wells == nil {
		wells = []*entity.Well{} // never serialize null for the collection
	}
	s.writeJSON(w, http.StatusOK, wells)
}

func (s *Server) handleGetWell(w http.ResponseWriter, r *http.Request) {
	api := r.PathValue("api")
	well, err := s.wells.GetByAPI(r.Context(), api)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "well with API "+api+" not found")
			return
		}
		s.writeError(w, http.StatusInternalServerError, "failed to load well")
		return
	}
	s.writeJSON(w, http.StatusOK, well)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
