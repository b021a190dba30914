// Package logging configures log/slog for the simplexd daemon and the CLI.
//
// It integrates with chi's RequestID middleware so every entry written while
// serving a request carries request_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// Setup builds a logger for level and format, installs it as the slog
// default and returns it. A nil w writes to stdout.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a level name to slog.Level; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FromContext returns the default logger, with request_id attached when ctx
// carries a chi request ID.
//
//	func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
//	    logging.FromContext(r.Context()).Info("solve", "constraints", n)
//	}
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	return logger
}

// WithFields returns FromContext(ctx) with additional structured fields.
//
//	log := logging.WithFields(ctx, "solve_id", id)
//	log.Info("solve started")
//	log.Info("solve finished", "pivots", res.Iterations)
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
