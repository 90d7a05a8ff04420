// Package models defines the domain types for contentlint.
package models

import "fmt"

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single rule violation for a whole document or section.
type Finding struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

// String renders the finding with its path, e.g. "blog/a.md: missing title".
func (f Finding) String() string {
	if f.Path == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}

// Result accumulates findings of a lint run in processing order.
type Result struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// Add appends f to the bucket matching its severity.
func (r *Result) Add(f Finding) {
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f)
	default:
		r.Warnings = append(r.Warnings, f)
	}
}

// Merge appends all findings of other, preserving order.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// HasErrors reports whether the run should fail.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}
