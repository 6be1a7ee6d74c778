package markdown

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-markdown2html/internal/logging"
	"github.com/goliatone/go-markdown2html/pkg/interfaces"
)

// Converter implements interfaces.MarkdownConverter. It holds no run state, so
// one instance can serve any number of sequential or concurrent runs.
type Converter struct {
	logger interfaces.Logger
}

var _ interfaces.MarkdownConverter = (*Converter)(nil)

// NewConverter constructs a converter. A nil logger disables logging.
func NewConverter(logger interfaces.Logger) *Converter {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Converter{logger: logger}
}

// Convert reads src line by line and writes HTML fragments to dst, each
// followed by a newline. Fragments are flushed before Convert returns, also
// when reading fails part way through.
func (c *Converter) Convert(src io.Reader, dst io.Writer, opts interfaces.ConvertOptions) (result *interfaces.ConvertResult, err error) {
	if src == nil || dst == nil {
		return nil, errors.New("markdown convert: source and destination are required")
	}

	result = &interfaces.ConvertResult{}
	if opts.StripFrontMatter {
		body, title, ferr := StripFrontMatter(src)
		if ferr != nil {
			return nil, ferr
		}
		src = body
		result.Title = title
		if title != "" {
			c.logger.Debug("markdown.frontmatter.stripped", "title", title)
		}
	}

	out := &fragmentWriter{w: bufio.NewWriter(dst)}
	defer func() {
		if flushErr := out.w.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
		result.Fragments = out.count
	}()

	reader := NewLineReader(src)
	var state BlockState
	for {
		line, rerr := reader.Next()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return result, rerr
		}
		result.Lines++

		line.Text = TransformInline(line.Text)

		var fragments []string
		state, fragments = ProcessLine(line, state)
		if werr := out.write(fragments); werr != nil {
			return result, werr
		}
	}

	if state.Open() {
		c.logger.Trace("markdown.blocks.closing", "unordered", state.Unordered, "ordered", state.Ordered, "paragraph", state.Paragraph)
	}
	if werr := out.write(state.Close()); werr != nil {
		return result, werr
	}
	return result, nil
}

type fragmentWriter struct {
	w     *bufio.Writer
	count int
}

func (f *fragmentWriter) write(fragments []string) error {
	for _, fragment := range fragments {
		if _, err := f.w.WriteString(fragment); err != nil {
			return fmt.Errorf("write fragment: %w", err)
		}
		if err := f.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write fragment: %w", err)
		}
		f.count++
	}
	return nil
}
