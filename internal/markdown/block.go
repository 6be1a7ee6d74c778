package markdown

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	headingMarker   = '#'
	unorderedMarker = '-'
	orderedMarker   = '*'
	maxHeadingLevel = 6
)

const (
	tagUnorderedOpen  = "<ul>"
	tagUnorderedClose = "</ul>"
	tagOrderedOpen    = "<ol>"
	tagOrderedClose   = "</ol>"
	tagParagraphOpen  = "<p>"
	tagParagraphClose = "</p>"
	tagLineBreak      = "<br/>"
)

// Line is one unit of input with its terminator removed. Terminated records
// whether a newline followed the text, since the newline counts towards the
// line length the block rules compare against.
type Line struct {
	Text       string
	Terminated bool
}

// Len returns the length of the line in characters, newline included.
func (l Line) Len() int {
	n := utf8.RuneCountInString(l.Text)
	if l.Terminated {
		n++
	}
	return n
}

// blank reports whether the line is too short to render; a bare newline is a
// block separator.
func (l Line) blank() bool {
	return l.Len() <= 1
}

// BlockState tracks which HTML containers are currently open. The zero value
// is the state at the start of a run.
type BlockState struct {
	Unordered bool
	Ordered   bool
	Paragraph bool
}

// Open reports whether any container still needs a closing tag.
func (s BlockState) Open() bool {
	return s.Unordered || s.Ordered || s.Paragraph
}

// ProcessLine advances the state machine by one line, returning the next state
// and the fragments to emit in order. The line must already have been through
// TransformInline.
//
// The list rules run independently of each other: leaving one list and
// entering the other on the same line closes the first and opens the second.
// Any leading '#' disables paragraph handling, even past the heading range.
func ProcessLine(line Line, state BlockState) (BlockState, []string) {
	text := line.Text
	headingLevel := countLeading(text, headingMarker)
	unorderedDepth := countLeading(text, unorderedMarker)
	orderedDepth := countLeading(text, orderedMarker)

	var fragments []string
	rendered := text

	if headingLevel >= 1 && headingLevel <= maxHeadingLevel {
		level := strconv.Itoa(headingLevel)
		rendered = "<h" + level + ">" + strings.TrimSpace(text[headingLevel:]) + "</h" + level + ">"
	}

	if unorderedDepth > 0 {
		if !state.Unordered {
			fragments = append(fragments, tagUnorderedOpen)
			state.Unordered = true
		}
		rendered = listItem(text[unorderedDepth:])
	}
	if state.Unordered && unorderedDepth == 0 {
		fragments = append(fragments, tagUnorderedClose)
		state.Unordered = false
	}

	if orderedDepth > 0 {
		if !state.Ordered {
			fragments = append(fragments, tagOrderedOpen)
			state.Ordered = true
		}
		rendered = listItem(text[orderedDepth:])
	}
	if state.Ordered && orderedDepth == 0 {
		fragments = append(fragments, tagOrderedClose)
		state.Ordered = false
	}

	if headingLevel == 0 && !state.Unordered && !state.Ordered {
		switch {
		case !line.blank() && !state.Paragraph:
			fragments = append(fragments, tagParagraphOpen)
			state.Paragraph = true
		case !line.blank():
			fragments = append(fragments, tagLineBreak)
		case state.Paragraph:
			fragments = append(fragments, tagParagraphClose)
			state.Paragraph = false
		}
	}

	if !line.blank() {
		fragments = append(fragments, rendered)
	}
	return state, fragments
}

// Close returns the closing tags for every container left open, unordered list
// first, then ordered list, then paragraph.
func (s BlockState) Close() []string {
	var fragments []string
	if s.Unordered {
		fragments = append(fragments, tagUnorderedClose)
	}
	if s.Ordered {
		fragments = append(fragments, tagOrderedClose)
	}
	if s.Paragraph {
		fragments = append(fragments, tagParagraphClose)
	}
	return fragments
}

func listItem(text string) string {
	return "<li>" + strings.TrimSpace(text) + "</li>"
}

func countLeading(text string, marker byte) int {
	n := 0
	for n < len(text) && text[n] == marker {
		n++
	}
	return n
}
