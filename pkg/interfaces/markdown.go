package interfaces

import "io"

// MarkdownConverter turns line-oriented Markdown into HTML fragments. A single
// Convert call is one conversion run: block state starts closed and every block
// still open after the last line is closed before Convert returns.
type MarkdownConverter interface {
	Convert(src io.Reader, dst io.Writer, opts ConvertOptions) (*ConvertResult, error)
}

// ConvertOptions toggles optional preprocessing applied before line conversion.
type ConvertOptions struct {
	// StripFrontMatter removes a leading YAML/TOML/JSON front matter block.
	StripFrontMatter bool
}

// ConvertResult summarises a conversion run.
type ConvertResult struct {
	// Lines counts input lines consumed by the state machine.
	Lines int
	// Fragments counts HTML fragments written to the destination.
	Fragments int
	// Title is the front matter title, populated only when StripFrontMatter is set.
	Title string
}
