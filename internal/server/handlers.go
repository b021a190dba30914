package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/katalvlaran/tableau/internal/logging"
	"github.com/katalvlaran/tableau/internal/store"
	"github.com/katalvlaran/tableau/simplex"
)

// SolveRequest is the body of POST /api/solve.
type SolveRequest struct {
	Objective     string   `json:"objective"`
	Constraints   []string `json:"constraints"`
	Direction     string   `json:"direction,omitempty"`
	MaxIterations int      `json:"maxIterations,omitempty"`
}

// SolveResponse is returned by POST /api/solve and GET /api/solves/{id}.
type SolveResponse struct {
	ID          uuid.UUID       `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Objective   string          `json:"objective"`
	Constraints []string        `json:"constraints"`
	Direction   string          `json:"direction"`
	Status      store.Status    `json:"status"`
	Error       string          `json:"error,omitempty"`
	Iterations  int             `json:"iterations"`
	Solution    json.RawMessage `json:"solution,omitempty"`
	History     json.RawMessage `json:"history,omitempty"`
}

func responseOf(r store.Record) SolveResponse {
	return SolveResponse{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		Objective:   r.Objective,
		Constraints: r.Constraints,
		Direction:   r.Direction,
		Status:      r.Status,
		Error:       r.Error,
		Iterations:  r.Iterations,
		Solution:    r.Solution,
		History:     r.History,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExamples(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"examples": simplex.Examples()})
}

// solverOptions merges the daemon limits with the request. A request may
// lower the iteration cap but never raise it.
func (s *Server) solverOptions(req SolveRequest, dir simplex.Direction) []simplex.Option {
	opts := append(s.cfg.Solver.Options(), simplex.WithDirection(dir))
	if req.MaxIterations > 0 && req.MaxIterations < s.cfg.Solver.MaxIterations {
		opts = append(opts, simplex.WithMaxIterations(req.MaxIterations))
	}
	return opts
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "bad_json", fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	dir, err := simplex.ParseDirection(req.Direction)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "bad_direction", err)
		return
	}
	if req.MaxIterations < 0 {
		respondError(w, r, http.StatusBadRequest, "bad_max_iterations",
			fmt.Errorf("%w: maxIterations must be >= 0", errBadRequest))
		return
	}

	rec := store.NewRecord(req.Objective, req.Constraints, dir.String())
	log := logging.WithFields(r.Context(), "solve_id", rec.ID, "direction", dir)

	start := time.Now()
	res, solveErr := simplex.SolveStrings(req.Objective, req.Constraints, s.solverOptions(req, dir)...)
	elapsed := time.Since(start)

	status, code := classify(solveErr)
	rec.Status = status
	if solveErr != nil {
		rec.Error = solveErr.Error()
	} else {
		rec.Iterations = res.Iterations
		if rec.History, err = json.Marshal(res.History); err == nil {
			rec.Solution, err = json.Marshal(res.Solution)
		}
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, "encode", err)
			return
		}
	}
	s.metrics.observe(status, rec.Iterations, elapsed)

	if err := s.store.Save(r.Context(), rec); err != nil {
		respondError(w, r, http.StatusInternalServerError, "store", err)
		return
	}
	log.Info("solve", "status", status, "pivots", rec.Iterations, "duration_ms", elapsed.Milliseconds())

	if solveErr != nil {
		respondJSON(w, code, ErrorResponse{Error: rec.Error, Code: string(status), ID: rec.ID.String()})
		return
	}
	respondJSON(w, code, responseOf(rec))
}

func (s *Server) handleListSolves(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, r, http.StatusBadRequest, "bad_limit", fmt.Errorf("%w: limit %q", errBadRequest, v))
			return
		}
		limit = n
	}
	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "store", err)
		return
	}
	out := make([]SolveResponse, len(recs))
	for i, rec := range recs {
		out[i] = responseOf(rec)
	}
	respondJSON(w, http.StatusOK, map[string]any{"solves": out})
}

func (s *Server) handleGetSolve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "bad_id", fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, "not_found", err)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "store", err)
		return
	}
	respondJSON(w, http.StatusOK, responseOf(rec))
}
