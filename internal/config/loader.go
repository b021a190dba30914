package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrInvalid wraps every Load and Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		envAlt := field.Tag.Get("envAlt")
		defaultVal := field.Tag.Get("default")
		required := field.Tag.Get("required") == "true"

		if envName == "" {
			continue
		}

		value := os.Getenv(envName)
		if value == "" && envAlt != "" {
			value = os.Getenv(envAlt)
		}

		if value == "" {
			if required {
				return fmt.Errorf("required environment variable %s is not set", envName)
			}
			value = defaultVal
		}

		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is usable and reports every
// problem at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, "SERVER_MAX_BODY_BYTES must be positive")
	}

	if u, err := url.Parse(c.Store.DSN); err != nil || u.Scheme == "" {
		errs = append(errs, fmt.Sprintf("STORE_DSN (%q) must be a URL such as memory://, sqlite://path or postgres://...", c.Store.DSN))
	}
	if c.Store.MaxConns <= 0 {
		errs = append(errs, "STORE_MAX_CONNS must be positive")
	}

	if c.Solver.MaxIterations <= 0 {
		errs = append(errs, "SOLVER_MAX_ITERATIONS must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a representation safe for logging; the store DSN may hold
// credentials and is reduced to its scheme.
func (c *Config) String() string {
	scheme := "?"
	if u, err := url.Parse(c.Store.DSN); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Server: {Host: %q, Port: %d}, ", c.Server.Host, c.Server.Port))
	b.WriteString(fmt.Sprintf("Store: {Scheme: %q, MaxConns: %d}, ", scheme, c.Store.MaxConns))
	b.WriteString(fmt.Sprintf("Solver: {MaxIterations: %d, AllowNegativeRHS: %v, StrictBasis: %v}, ",
		c.Solver.MaxIterations, c.Solver.AllowNegativeRHS, c.Solver.StrictBasis))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
