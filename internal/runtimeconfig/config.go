package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrLoggingProviderRequired = errors.New("md2html config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("md2html config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("md2html config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("md2html config: logging format is invalid")

// ErrCommandTimeoutInvalid rejects negative command timeouts. Zero disables the timeout.
var ErrCommandTimeoutInvalid = errors.New("md2html config: command timeout must be zero or positive")

// Config aggregates the runtime options of the converter CLI.
type Config struct {
	Logging  LoggingConfig
	Markdown MarkdownConfig
	Commands CommandsConfig
}

// LoggingConfig selects the logger provider. Format only applies to gologger.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// MarkdownConfig toggles optional preprocessing of input documents.
type MarkdownConfig struct {
	StripFrontMatter bool
}

// CommandsConfig tunes the command handler wrapping each conversion. A zero
// Timeout leaves the run unbounded.
type CommandsConfig struct {
	Timeout time.Duration
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "error",
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	provider := NormalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	return nil
}

// NormalizeProvider lower-cases and trims a provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
