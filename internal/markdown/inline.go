package markdown

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

const (
	boldDelimiter     = "**"
	emphasisDelimiter = "__"
)

var (
	digestSpanPattern  = regexp.MustCompile(`\[\[(.+?)\]\]`)
	stripCSpanPattern  = regexp.MustCompile(`\(\((.+?)\)\)`)
	removedLetterRunes = "Cc"
)

// TransformInline applies the inline span rules to a single line, in order:
// bold, emphasis, digest substitution, then letter removal. Each rule touches
// at most its first matching pair and leaves the line untouched when no
// complete pair is present.
func TransformInline(line string) string {
	line = replacePair(line, boldDelimiter, "<b>", "</b>")
	line = replacePair(line, emphasisDelimiter, "<em>", "</em>")
	line = replaceDigestSpan(line)
	line = replaceStripCSpan(line)
	return line
}

// replacePair swaps the first two occurrences of delim for open and close.
// A lone delimiter is left as-is.
func replacePair(line, delim, open, close string) string {
	first := strings.Index(line, delim)
	if first < 0 {
		return line
	}
	rest := first + len(delim)
	second := strings.Index(line[rest:], delim)
	if second < 0 {
		return line
	}
	second += rest

	var b strings.Builder
	b.Grow(len(line) + len(open) + len(close))
	b.WriteString(line[:first])
	b.WriteString(open)
	b.WriteString(line[rest:second])
	b.WriteString(close)
	b.WriteString(line[second+len(delim):])
	return b.String()
}

func replaceDigestSpan(line string) string {
	return replaceFirstSubmatch(line, digestSpanPattern, Digest)
}

func replaceStripCSpan(line string) string {
	return replaceFirstSubmatch(line, stripCSpanPattern, RemoveLetterC)
}

func replaceFirstSubmatch(line string, pattern *regexp.Regexp, fn func(string) string) string {
	loc := pattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	inner := line[loc[2]:loc[3]]
	return line[:loc[0]] + fn(inner) + line[loc[1]:]
}

// Digest returns the lowercase hex MD5 digest of text's UTF-8 bytes.
func Digest(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// RemoveLetterC drops every 'C' and 'c' from text.
func RemoveLetterC(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(removedLetterRunes, r) {
			return -1
		}
		return r
	}, text)
}
