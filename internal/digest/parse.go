package digest

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a Markdown file split into YAML frontmatter and body.
type Document struct {
	Frontmatter map[string]any
	Body        string
}

var fence = []byte("---")

// Parse splits data into frontmatter and body. Frontmatter must open on the
// first line with "---" and close with a line holding only "---". Files
// without it parse as body only.
func Parse(data []byte) (Document, error) {
	doc := Document{Frontmatter: map[string]any{}}
	first, rest, found := bytes.Cut(data, []byte("\n"))
	if !bytes.Equal(bytes.TrimSpace(first), fence) {
		doc.Body = string(data)
		return doc, nil
	}
	if !found {
		return doc, nil
	}

	var fm []byte
	body := rest
	closed := false
	for len(body) > 0 {
		line, next, _ := bytes.Cut(body, []byte("\n"))
		body = next
		if bytes.Equal(bytes.TrimSpace(line), fence) {
			closed = true
			break
		}
		fm = append(fm, line...)
		fm = append(fm, '\n')
	}
	if !closed {
		return Document{}, fmt.Errorf("digest: unterminated frontmatter")
	}
	if err := yaml.Unmarshal(fm, &doc.Frontmatter); err != nil {
		return Document{}, fmt.Errorf("digest: frontmatter: %w", err)
	}
	if doc.Frontmatter == nil {
		doc.Frontmatter = map[string]any{}
	}
	doc.Body = string(body)
	return doc, nil
}

// ParseFile reads and parses a Markdown file.
func ParseFile(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Parse(b)
}
