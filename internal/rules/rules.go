// Package rules evaluates the per-content-type validation rules against a
// parsed document.
package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/starford/contentlint/internal/models"
)

// FileChecker reports whether a path relative to the content root exists.
type FileChecker interface {
	Exists(path string) bool
}

// CheckFunc inspects a document and returns a message when the rule is
// violated.
type CheckFunc func(doc models.Document, files FileChecker) (msg string, violated bool)

// Rule is a single independent check with a fixed severity.
type Rule struct {
	Name     string
	Severity models.Severity
	Check    CheckFunc
}

// Set is an ordered list of rules for one content type.
type Set struct {
	Name  string
	Rules []Rule
}

// Evaluate runs every rule of the set against doc in order. A document
// without frontmatter yields a single error and no further checks.
func (s Set) Evaluate(doc models.Document, files FileChecker) []models.Finding {
	if doc.Fields == nil {
		return []models.Finding{{
			Severity: models.SeverityError,
			Path:     doc.Path,
			Message:  "missing or invalid frontmatter",
		}}
	}

	var out []models.Finding
	for _, r := range s.Rules {
		msg, violated := r.Check(doc, files)
		if !violated {
			continue
		}
		out = append(out, models.Finding{
			Severity: r.Severity,
			Path:     doc.Path,
			Message:  msg,
		})
	}
	return out
}

func required(key string) Rule {
	return Rule{
		Name:     "required-" + key,
		Severity: models.SeverityError,
		Check: func(doc models.Document, _ FileChecker) (string, bool) {
			if _, ok := doc.Fields.Get(key); ok {
				return "", false
			}
			return fmt.Sprintf("missing required field %q", key), true
		},
	}
}

func recommended(key string) Rule {
	return Rule{
		Name:     "recommended-" + key,
		Severity: models.SeverityWarning,
		Check: func(doc models.Document, _ FileChecker) (string, bool) {
			if _, ok := doc.Fields.Get(key); ok {
				return "", false
			}
			return fmt.Sprintf("missing recommended field %q", key), true
		},
	}
}

// imageExists warns when a referenced image cannot be found under the
// content root. An absent image is not this rule's concern.
func imageExists() Rule {
	return Rule{
		Name:     "image-exists",
		Severity: models.SeverityWarning,
		Check: func(doc models.Document, files FileChecker) (string, bool) {
			v, ok := doc.Fields.Get("image")
			if !ok {
				return "", false
			}
			if files.Exists(v.String()) {
				return "", false
			}
			return fmt.Sprintf("image not found: %s", v.String()), true
		},
	}
}

func minBodyLength(threshold int) Rule {
	return Rule{
		Name:     "body-length",
		Severity: models.SeverityWarning,
		Check: func(doc models.Document, _ FileChecker) (string, bool) {
			n := bodyLength(doc.Body)
			if n >= threshold {
				return "", false
			}
			return fmt.Sprintf("content is too short (%d characters, expected at least %d)", n, threshold), true
		},
	}
}

func validURLField(key string) Rule {
	return Rule{
		Name:     "url-" + key,
		Severity: models.SeverityError,
		Check: func(doc models.Document, _ FileChecker) (string, bool) {
			v, ok := doc.Fields.Get(key)
			if !ok || ValidURL(v.String()) {
				return "", false
			}
			return fmt.Sprintf("invalid %s: %s", key, v.String()), true
		},
	}
}

// bodyLength counts the characters of the trimmed body.
func bodyLength(body string) int {
	return utf8.RuneCountInString(strings.TrimSpace(body))
}
