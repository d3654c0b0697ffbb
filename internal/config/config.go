package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/more/internal/pager"
)

// Environment variables read by NewWithEnv.
const (
	EnvPageSize  = "MORE_LINES"
	EnvPrompt    = "MORE_PROMPT"
	EnvLogLevel  = "MORE_LOG_LEVEL"
	EnvLogFormat = "MORE_LOG_FORMAT"
)

// Defaults applied before environment overrides.
const (
	DefaultPageSize  = 15
	DefaultPrompt    = "More?"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = FormatConsole
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	// ErrInvalidPageSize is returned by Validate for a page size below 1.
	// It is the pager's sentinel, so errors.Is matches either name.
	ErrInvalidPageSize = pager.ErrInvalidPageSize
	// ErrInvalidLogFormat is returned by Validate for an unknown log format.
	ErrInvalidLogFormat = errors.New("log format must be 'console' or 'json'")
)

// Config holds the pager settings resolved from defaults and the environment.
// Command-line flags are applied on top by the caller.
type Config struct {
	// PageSize is the number of lines shown per chunk.
	PageSize int
	// Prompt is written between chunks.
	Prompt  string
	Logging LoggingConfig
}

// LoggingConfig controls the diagnostic logger written to stderr.
type LoggingConfig struct {
	Level  string
	Format string
}

// NewWithEnv returns a Config built from defaults and the given environment
// lookup, for testability. It returns an error if an override cannot be parsed.
func NewWithEnv(lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		PageSize: DefaultPageSize,
		Prompt:   DefaultPrompt,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}

	if v, ok := lookupEnv(EnvPageSize); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("parsing %s=%q: %w", EnvPageSize, v, err)
		}
		cfg.PageSize = n
	}
	if v, ok := lookupEnv(EnvPrompt); ok {
		cfg.Prompt = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}

	return cfg, nil
}

// Validate checks the configuration for values the pager cannot use.
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidPageSize, c.PageSize)
	}
	switch c.Logging.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}
