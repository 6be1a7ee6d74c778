package markdowncmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goliatone/go-markdown2html/internal/commands"
	"github.com/goliatone/go-markdown2html/internal/logging"
	"github.com/goliatone/go-markdown2html/pkg/interfaces"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

const convertOperation = "markdown.convert_file"

var _ command.Commander[ConvertFileCommand] = (*ConvertFileHandler)(nil)

// ConvertFileHandler owns the file handles of one conversion: it checks the
// input exists, creates the output, and releases both on every exit path.
type ConvertFileHandler struct {
	inner *commands.Handler[ConvertFileCommand]
}

// NewConvertFileHandler creates a handler bound to the supplied converter.
func NewConvertFileHandler(converter interfaces.MarkdownConverter, logger interfaces.Logger, opts ...commands.HandlerOption[ConvertFileCommand]) *ConvertFileHandler {
	if converter == nil {
		panic("markdowncmd: converter cannot be nil")
	}
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ConvertFileCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		runID := msg.RunID
		if runID == uuid.Nil {
			runID = uuid.New()
		}
		runLogger := logging.WithRunContext(baseLogger, runID.String(), msg.InputPath, msg.OutputPath)

		result, err := convertFile(converter, msg)
		if err != nil {
			return err
		}
		if result == nil {
			result = &interfaces.ConvertResult{}
		}

		runLogger.Info("markdown.command.convert_file.completed",
			"lines", result.Lines,
			"fragments", result.Fragments,
			"title", result.Title,
		)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertFileCommand]{
		commands.WithLogger[ConvertFileCommand](baseLogger),
		commands.WithOperation[ConvertFileCommand](convertOperation),
		commands.WithMessageFields(func(msg ConvertFileCommand) map[string]any {
			fields := map[string]any{
				"input":  msg.InputPath,
				"output": msg.OutputPath,
			}
			if msg.StripFrontMatter {
				fields["strip_front_matter"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ConvertFileCommand].
func (h *ConvertFileHandler) Execute(ctx context.Context, msg ConvertFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

func convertFile(converter interfaces.MarkdownConverter, msg ConvertFileCommand) (result *interfaces.ConvertResult, err error) {
	info, statErr := os.Stat(msg.InputPath)
	if statErr != nil || !info.Mode().IsRegular() {
		return nil, MissingInputError(msg.InputPath)
	}

	src, err := os.Open(msg.InputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, MissingInputError(msg.InputPath)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(msg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()

	return converter.Convert(src, dst, interfaces.ConvertOptions{
		StripFrontMatter: msg.StripFrontMatter,
	})
}
