package markdowncmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-markdown2html/internal/commands"
	"github.com/goliatone/go-markdown2html/internal/markdown"
	"github.com/goliatone/go-markdown2html/pkg/interfaces"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

type stubConverter struct {
	calls  int
	opts   interfaces.ConvertOptions
	result *interfaces.ConvertResult
	err    error
}

func (s *stubConverter) Convert(src io.Reader, dst io.Writer, opts interfaces.ConvertOptions) (*interfaces.ConvertResult, error) {
	s.calls++
	s.opts = opts
	if s.err != nil {
		return nil, s.err
	}
	if _, err := io.WriteString(dst, "<p>\n"); err != nil {
		return nil, err
	}
	return s.result, nil
}

type slowConverter struct {
	delay time.Duration
	html  string
}

func (s slowConverter) Convert(src io.Reader, dst io.Writer, _ interfaces.ConvertOptions) (*interfaces.ConvertResult, error) {
	time.Sleep(s.delay)
	if _, err := io.WriteString(dst, s.html); err != nil {
		return nil, err
	}
	return &interfaces.ConvertResult{Lines: 1, Fragments: 3}, nil
}

type captureLogger struct {
	fields       []map[string]any
	infoMessages []string
}

var _ interfaces.Logger = (*captureLogger)(nil)

func (c *captureLogger) Trace(string, ...any) {}
func (c *captureLogger) Debug(string, ...any) {}
func (c *captureLogger) Info(msg string, _ ...any) {
	c.infoMessages = append(c.infoMessages, msg)
}
func (c *captureLogger) Warn(string, ...any)  {}
func (c *captureLogger) Error(string, ...any) {}
func (c *captureLogger) Fatal(string, ...any) {}

func (c *captureLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	c.fields = append(c.fields, copied)
	return c
}

func (c *captureLogger) WithContext(context.Context) interfaces.Logger {
	return c
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestConvertFileHandlerInvokesConverter(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "README.md", "text\n")
	output := filepath.Join(dir, "README.html")

	converter := &stubConverter{result: &interfaces.ConvertResult{Lines: 1, Fragments: 3}}
	logger := &captureLogger{}
	handler := NewConvertFileHandler(converter, logger)

	runID := uuid.New()
	err := handler.Execute(context.Background(), ConvertFileCommand{
		InputPath:        input,
		OutputPath:       output,
		StripFrontMatter: true,
		RunID:            runID,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if converter.calls != 1 || !converter.opts.StripFrontMatter {
		t.Fatalf("expected a single converter call with front matter stripping, got %d %+v", converter.calls, converter.opts)
	}

	foundRun := false
	for _, fields := range logger.fields {
		if fields["run_id"] == runID.String() {
			foundRun = true
		}
	}
	if !foundRun {
		t.Fatalf("expected run_id field, got %v", logger.fields)
	}

	foundCompleted := false
	for _, msg := range logger.infoMessages {
		if msg == "markdown.command.convert_file.completed" {
			foundCompleted = true
		}
	}
	if !foundCompleted {
		t.Fatalf("expected completion log, got %v", logger.infoMessages)
	}
}

func TestConvertFileHandlerWritesHTML(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "README.md", "# Title\n- a\n- b\n\nLine one\nLine two\n")
	output := writeFile(t, dir, "README.html", "stale content that must be overwritten\n")

	handler := NewConvertFileHandler(markdown.NewConverter(nil), nil)
	if err := handler.Execute(context.Background(), ConvertFileCommand{InputPath: input, OutputPath: output}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "<h1>Title</h1>\n<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n<p>\nLine one\n<br/>\nLine two\n</p>\n"
	if string(got) != want {
		t.Fatalf("unexpected output\n got: %q\nwant: %q", got, want)
	}
}

func TestConvertFileHandlerMissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "absent.md")
	output := filepath.Join(dir, "out.html")

	converter := &stubConverter{}
	handler := NewConvertFileHandler(converter, nil)
	err := handler.Execute(context.Background(), ConvertFileCommand{InputPath: input, OutputPath: output})

	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		t.Fatalf("expected not found category, got %v", err)
	}
	if converter.calls != 0 {
		t.Fatal("converter must not run when the input is missing")
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no output file, stat returned %v", statErr)
	}
}

func TestConvertFileHandlerBlankInputIsMissing(t *testing.T) {
	dir := t.TempDir()
	converter := &stubConverter{}
	handler := NewConvertFileHandler(converter, nil)

	err := handler.Execute(context.Background(), ConvertFileCommand{InputPath: "", OutputPath: filepath.Join(dir, "out.html")})
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput for a blank input path, got %v", err)
	}
	if goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("blank input must not surface as a validation error: %v", err)
	}
	if converter.calls != 0 {
		t.Fatal("converter must not run for a blank input path")
	}
}

func TestConvertFileHandlerSlowConversionPastTimeout(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "README.md", "all\n")
	output := filepath.Join(dir, "README.html")

	handler := NewConvertFileHandler(
		slowConverter{delay: 50 * time.Millisecond, html: "<p>\nall\n</p>\n"},
		nil,
		commands.WithTimeout[ConvertFileCommand](10*time.Millisecond),
	)
	if err := handler.Execute(context.Background(), ConvertFileCommand{InputPath: input, OutputPath: output}); err != nil {
		t.Fatalf("expected completed conversion to succeed, got %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := string(data); got != "<p>\nall\n</p>\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestConvertFileHandlerRejectsDirectoryInput(t *testing.T) {
	dir := t.TempDir()
	handler := NewConvertFileHandler(&stubConverter{}, nil)

	err := handler.Execute(context.Background(), ConvertFileCommand{InputPath: dir, OutputPath: filepath.Join(dir, "out.html")})
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput for a directory, got %v", err)
	}
}

func TestConvertFileHandlerValidation(t *testing.T) {
	handler := NewConvertFileHandler(&stubConverter{}, nil)

	err := handler.Execute(context.Background(), ConvertFileCommand{InputPath: "README.md"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestConvertFileHandlerPropagatesConverterErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "README.md", "text\n")
	convertErr := errors.New("broken pipe")

	handler := NewConvertFileHandler(&stubConverter{err: convertErr}, nil)
	err := handler.Execute(context.Background(), ConvertFileCommand{InputPath: input, OutputPath: filepath.Join(dir, "out.html")})
	if !errors.Is(err, convertErr) {
		t.Fatalf("expected converter error, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestUsageErrorCategory(t *testing.T) {
	err := UsageError()
	if !errors.Is(err, ErrUsage) || !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("unexpected usage error %v", err)
	}
}
