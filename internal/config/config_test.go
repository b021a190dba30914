package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tableau/simplex"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_REQUEST_TIMEOUT",
		"SERVER_MAX_BODY_BYTES", "STORE_DSN", "DATABASE_URL", "STORE_MAX_CONNS",
		"SOLVER_MAX_ITERATIONS", "SOLVER_ALLOW_NEGATIVE_RHS", "SOLVER_STRICT_BASIS",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Second, MaxBodyBytes: 1024},
		Store:   StoreConfig{DSN: "memory://", MaxConns: 1},
		Solver:  SolverConfig{MaxIterations: 10},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "memory://", cfg.Store.DSN)
	assert.Equal(t, simplex.DefaultMaxIterations, cfg.Solver.MaxIterations)
	assert.False(t, cfg.Solver.AllowNegativeRHS)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_OverrideDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "1m30s")
	t.Setenv("STORE_DSN", "sqlite:///tmp/solves.db")
	t.Setenv("SOLVER_MAX_ITERATIONS", "25")
	t.Setenv("SOLVER_STRICT_BASIS", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite:///tmp/solves.db", cfg.Store.DSN)
	assert.Equal(t, 25, cfg.Solver.MaxIterations)
	assert.True(t, cfg.Solver.StrictBasis)
	assert.Equal(t, "debug", cfg.Logging.Level)

	o := simplex.NewOptions(cfg.Solver.Options()...)
	assert.Equal(t, 25, o.MaxIterations())
	assert.True(t, o.StrictBasis())
	assert.False(t, o.AllowNegativeRHS())
}

func TestLoad_AltEnvVar(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/tableau")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/tableau", cfg.Store.DSN)
	assert.NotContains(t, cfg.String(), "localhost")
	assert.Contains(t, cfg.String(), `Scheme: "postgres"`)
}

func TestLoad_BadValues(t *testing.T) {
	cases := map[string]string{
		"SERVER_PORT":               "eighty",
		"SERVER_READ_TIMEOUT":       "soon",
		"SOLVER_ALLOW_NEGATIVE_RHS": "maybe",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			_, err := Load()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), k)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 99999 }, "SERVER_PORT"},
		{"shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "SERVER_SHUTDOWN_TIMEOUT"},
		{"body", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "SERVER_MAX_BODY_BYTES"},
		{"dsn", func(c *Config) { c.Store.DSN = "not a url" }, "STORE_DSN"},
		{"iterations", func(c *Config) { c.Solver.MaxIterations = 0 }, "SOLVER_MAX_ITERATIONS"},
		{"level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9090, ":9090"},
		{"localhost", 3000, "localhost:3000"},
	}
	for _, tt := range tests {
		c := ServerConfig{Host: tt.host, Port: tt.port}
		assert.Equal(t, tt.want, c.Addr())
	}
}
