package bootstrap

import (
	"fmt"
	"io"

	"github.com/goliatone/go-markdown2html/internal/commands"
	markdowncmd "github.com/goliatone/go-markdown2html/internal/commands/markdown"
	"github.com/goliatone/go-markdown2html/internal/logging"
	"github.com/goliatone/go-markdown2html/internal/logging/console"
	"github.com/goliatone/go-markdown2html/internal/logging/gologger"
	"github.com/goliatone/go-markdown2html/internal/markdown"
	"github.com/goliatone/go-markdown2html/internal/runtimeconfig"
	"github.com/goliatone/go-markdown2html/pkg/interfaces"
)

// Options captures what the CLI hands over when building a module.
type Options struct {
	Config runtimeconfig.Config
	// LogWriter receives console provider output. Defaults to stderr.
	LogWriter io.Writer
	// LoggerProvider overrides the provider selected by Config.Logging.
	LoggerProvider interfaces.LoggerProvider
}

// Module bundles the converter, its command handler, and the CLI logger.
type Module struct {
	Converter *markdown.Converter
	Handler   *markdowncmd.ConvertFileHandler
	Logger    interfaces.Logger
}

// BuildModule wires a conversion module from the validated configuration.
func BuildModule(opts Options) (*Module, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	provider := opts.LoggerProvider
	if provider == nil {
		built, err := NewLoggerProvider(opts.Config.Logging, opts.LogWriter)
		if err != nil {
			return nil, fmt.Errorf("initialise logger provider: %w", err)
		}
		provider = built
	}

	converter := markdown.NewConverter(logging.MarkdownLogger(provider))
	handler := markdowncmd.NewConvertFileHandler(
		converter,
		commands.CommandLogger(provider, "markdown"),
		commands.WithTimeout[markdowncmd.ConvertFileCommand](opts.Config.Commands.Timeout),
	)

	return &Module{
		Converter: converter,
		Handler:   handler,
		Logger:    logging.CLILogger(provider),
	}, nil
}

// NewLoggerProvider selects the console or go-logger provider.
func NewLoggerProvider(cfg runtimeconfig.LoggingConfig, writer io.Writer) (interfaces.LoggerProvider, error) {
	switch runtimeconfig.NormalizeProvider(cfg.Provider) {
	case "", "console":
		opts := console.Options{Writer: writer}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, cfg.Provider)
	}
}
