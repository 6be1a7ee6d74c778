package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
)

type frontMatterEnvelope struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// StripFrontMatter removes a leading front matter block from src and returns
// the remaining body together with the declared title. Input without front
// matter is returned unchanged.
func StripFrontMatter(src io.Reader) (io.Reader, string, error) {
	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(src, &meta)
	if err != nil {
		return nil, "", fmt.Errorf("parse frontmatter: %w", err)
	}
	return bytes.NewReader(body), strings.TrimSpace(meta.Title), nil
}
