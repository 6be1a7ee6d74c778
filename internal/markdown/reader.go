package markdown

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader yields input lines with their terminators removed. Both "\n" and
// "\r\n" end a line; a trailing line without a terminator is still returned.
// Lines are not length limited.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps src for line-by-line reading.
func NewLineReader(src io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(src)}
}

// Next returns the next line. It returns io.EOF once the input is exhausted.
func (lr *LineReader) Next() (Line, error) {
	raw, err := lr.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Line{}, fmt.Errorf("read line: %w", err)
	}
	if raw == "" {
		return Line{}, io.EOF
	}

	line := Line{Text: raw}
	if strings.HasSuffix(line.Text, "\n") {
		line.Text = strings.TrimSuffix(line.Text, "\n")
		line.Text = strings.TrimSuffix(line.Text, "\r")
		line.Terminated = true
	}
	return line, nil
}
