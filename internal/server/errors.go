package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/tableau/expr"
	"github.com/katalvlaran/tableau/internal/logging"
	"github.com/katalvlaran/tableau/internal/store"
	"github.com/katalvlaran/tableau/simplex"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	ID    string `json:"id,omitempty"`
}

var errBadRequest = errors.New("server: bad request")

// classify maps a solve error to its stored status and HTTP status code.
func classify(err error) (store.Status, int) {
	switch {
	case err == nil:
		return store.StatusOptimal, http.StatusCreated
	case errors.Is(err, expr.ErrParse),
		errors.Is(err, simplex.ErrBadShape),
		errors.Is(err, simplex.ErrDimensionMismatch),
		errors.Is(err, simplex.ErrNilCoefficient):
		return store.StatusInvalid, http.StatusBadRequest
	case errors.Is(err, simplex.ErrUnbounded):
		return store.StatusUnbounded, http.StatusUnprocessableEntity
	case errors.Is(err, simplex.ErrInfeasibleInitialTableau):
		return store.StatusInfeasible, http.StatusUnprocessableEntity
	case errors.Is(err, simplex.ErrNonConvergence):
		return store.StatusNonConvergence, http.StatusUnprocessableEntity
	}
	return store.StatusError, http.StatusInternalServerError
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError logs err with the request ID and writes an ErrorResponse.
func respondError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	log := logging.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request error", "path", r.URL.Path, "status", status, "code", code, "error", err)
	} else {
		log.Debug("request rejected", "path", r.URL.Path, "status", status, "code", code, "error", err)
	}
	respondJSON(w, status, ErrorResponse{Error: err.Error(), Code: code})
}
