// Package parser extracts the key-value frontmatter header and body from
// markdown content.
//
// The grammar is intentionally tiny: flat `key: value` lines, where a value is
// either a scalar (one surrounding quote pair stripped) or a bracketed,
// comma-separated list of scalars. There are no nested maps, multi-line
// scalars or escapes.
package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/starford/contentlint/internal/models"
)

var frontmatterRe = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)$`)

// Result holds the output of parsing a markdown file.
type Result struct {
	// Fields is nil when the content has no delimited frontmatter block.
	Fields models.Fields
	Body   string
}

// Parse splits raw markdown into frontmatter fields and body. When the
// content does not start with a well-formed `---` block, Fields is nil and
// Body is the input unchanged.
func Parse(data []byte) *Result {
	raw := string(data)
	m := frontmatterRe.FindStringSubmatch(raw)
	if m == nil {
		return &Result{Body: raw}
	}

	return &Result{
		Fields: parseHeader(m[1]),
		Body:   m[2],
	}
}

// parseHeader reads `key: value` lines. Only the first colon separates key
// from value; lines without a colon are ignored.
func parseHeader(header string) models.Fields {
	fields := make(models.Fields)
	for _, line := range strings.Split(header, "\n") {
		i := strings.Index(line, ":")
		if i < 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		fields[key] = parseValue(strings.TrimSpace(line[i+1:]))
	}
	return fields
}

func parseValue(raw string) models.Value {
	v := stripQuotes(raw)
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		// An empty list "[]" yields one empty element.
		parts := strings.Split(v[1:len(v)-1], ",")
		items := make([]string, len(parts))
		for i, p := range parts {
			items[i] = stripQuotes(strings.TrimSpace(p))
		}
		return models.ListValue(items...)
	}
	return models.ScalarValue(v)
}

// stripQuotes removes a single matching pair of surrounding quotes.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// Format renders fields as a frontmatter block (delimiters included) in
// sorted key order. Parsing the output yields the same fields; every scalar
// is wrapped in double quotes so exactly that pair is stripped again.
func Format(fields models.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		v := fields[k]
		if v.IsList {
			quoted := make([]string, len(v.List))
			for i, item := range v.List {
				quoted[i] = `"` + item + `"`
			}
			lines = append(lines, k+": ["+strings.Join(quoted, ", ")+"]")
			continue
		}
		lines = append(lines, k+`: "`+v.Scalar+`"`)
	}
	// An empty field set still needs the blank header line before the
	// closing delimiter.
	return "---\n" + strings.Join(lines, "\n") + "\n---\n"
}
