package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-markdown2html/cmd/markdown2html/internal/bootstrap"
	markdowncmd "github.com/goliatone/go-markdown2html/internal/commands/markdown"
	"github.com/goliatone/go-markdown2html/internal/runtimeconfig"
)

const usageLine = "Usage: markdown2html README.md README.html"

var moduleBuilder = bootstrap.BuildModule

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, errorMessage(err))
		return 1
	}
	return 0
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	v := runtimeconfig.NewViper()
	defaults := runtimeconfig.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "markdown2html INPUT OUTPUT",
		Short: "Convert a Markdown file into HTML fragments",
		Long: `markdown2html reads INPUT line by line and writes HTML fragments to OUTPUT.

Supported syntax: # headings (1-6), "-" unordered lists, "*" ordered lists,
paragraphs, **bold**, __emphasis__, [[md5 digest]], ((remove c/C)).

Paths that begin with "-" would be read as flags; place them after "--",
e.g. markdown2html -- -notes.md out.html.

Configuration can also be supplied through MD2HTML_* environment variables,
e.g. MD2HTML_LOGGING_LEVEL=debug.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return markdowncmd.UsageError()
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd.Context(), v, stderr, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.String("log-provider", defaults.Logging.Provider, "Logger provider (console, gologger)")
	flags.String("log-level", defaults.Logging.Level, "Minimum log level (trace, debug, info, warn, error, fatal)")
	flags.String("log-format", defaults.Logging.Format, "gologger output format (json, console, pretty)")
	flags.Bool("log-source", defaults.Logging.AddSource, "Include source locations in gologger entries")
	flags.Bool("strip-front-matter", defaults.Markdown.StripFrontMatter, "Remove a leading front matter block before converting")
	flags.Duration("timeout", defaults.Commands.Timeout, "Maximum duration of a conversion (0 disables)")

	bindFlag(v, cmd, runtimeconfig.KeyLoggingProvider, "log-provider")
	bindFlag(v, cmd, runtimeconfig.KeyLoggingLevel, "log-level")
	bindFlag(v, cmd, runtimeconfig.KeyLoggingFormat, "log-format")
	bindFlag(v, cmd, runtimeconfig.KeyLoggingAddSource, "log-source")
	bindFlag(v, cmd, runtimeconfig.KeyStripFrontMatter, "strip-front-matter")
	bindFlag(v, cmd, runtimeconfig.KeyCommandTimeout, "timeout")

	return cmd
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key, name string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func convert(ctx context.Context, v *viper.Viper, stderr io.Writer, input, output string) error {
	cfg, err := runtimeconfig.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	module, err := moduleBuilder(bootstrap.Options{Config: cfg, LogWriter: stderr})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	runID := uuid.New()
	module.Logger.Debug("cli.convert.start", "run_id", runID.String(), "input", input, "output", output)

	err = module.Handler.Execute(ctx, markdowncmd.ConvertFileCommand{
		InputPath:        input,
		OutputPath:       output,
		StripFrontMatter: cfg.Markdown.StripFrontMatter,
		RunID:            runID,
	})
	if errors.Is(err, markdowncmd.ErrMissingInput) {
		return &missingInputError{path: input, err: err}
	}
	return err
}

type missingInputError struct {
	path string
	err  error
}

func (e *missingInputError) Error() string { return "Missing " + e.path }

func (e *missingInputError) Unwrap() error { return e.err }

func errorMessage(err error) string {
	var missing *missingInputError
	switch {
	case errors.As(err, &missing):
		return missing.Error()
	case errors.Is(err, markdowncmd.ErrUsage):
		return usageLine
	default:
		return "markdown2html: " + err.Error()
	}
}
