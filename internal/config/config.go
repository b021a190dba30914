// Package config loads the simplexd configuration from environment
// variables, applies defaults and validates the result on startup.
package config

import (
	"strconv"
	"time"

	"github.com/katalvlaran/tableau/simplex"
)

// Config holds all daemon configuration.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Solver  SolverConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout per request (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`

	// MaxBodyBytes caps the size of a solve request (default: 1MiB)
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES" default:"1048576"`
}

// StoreConfig selects the solve log backend.
type StoreConfig struct {
	// DSN is memory://, sqlite://<path> or postgres://... (default: memory://)
	// DATABASE_URL is accepted for compatibility with hosted Postgres.
	DSN string `env:"STORE_DSN" envAlt:"DATABASE_URL" default:"memory://"`

	// MaxConns caps the PostgreSQL pool (default: 10)
	MaxConns int `env:"STORE_MAX_CONNS" default:"10"`
}

// SolverConfig holds engine limits applied to every solve.
type SolverConfig struct {
	MaxIterations    int  `env:"SOLVER_MAX_ITERATIONS" default:"1000"`
	AllowNegativeRHS bool `env:"SOLVER_ALLOW_NEGATIVE_RHS" default:"false"`
	StrictBasis      bool `env:"SOLVER_STRICT_BASIS" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Options converts the solver settings into simplex options.
func (c SolverConfig) Options() []simplex.Option {
	opts := []simplex.Option{simplex.WithMaxIterations(c.MaxIterations)}
	if c.AllowNegativeRHS {
		opts = append(opts, simplex.WithAllowNegativeRHS())
	}
	if c.StrictBasis {
		opts = append(opts, simplex.WithStrictBasis())
	}
	return opts
}
