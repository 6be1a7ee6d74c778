// Package markdown converts a constrained Markdown dialect into HTML one line
// at a time. Inline spans are rewritten first (TransformInline), then the block
// state machine (ProcessLine) decides which container tags open or close around
// the line. Converter drives a whole run over an io.Reader.
package markdown
