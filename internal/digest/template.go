package digest

import (
	"bytes"
	_ "embed"
	"strconv"
	"strings"
	"text/template"
)

type Item struct {
	Title     string
	URL       string
	Author    string
	Community string
	Likes     int
	Comments  int
	Created   string
	Preview   string
}

type Data struct {
	Title        string
	Slug         string
	Datetime     string
	Subject      string
	Trend        string
	Summary      string
	Preface      string
	Postscript   string
	PostCount    int
	AverageScore float64
	Items        []Item
}

//go:embed digest.tmpl
var digestTpl string

var compiled = template.Must(template.New("digest").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	// yaml quotes a scalar so titles with colons stay valid frontmatter.
	"yaml": strconv.Quote,
	"indent": func(s string) string {
		lines := strings.Split(strings.TrimSpace(s), "\n")
		for i, l := range lines {
			lines[i] = "  " + l
		}
		return strings.Join(lines, "\n")
	},
}).Parse(digestTpl))

func Render(d Data) (string, error) {
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
