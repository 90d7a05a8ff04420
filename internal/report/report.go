// Package report renders lint results for humans (styled text) or machines
// (JSON).
package report

import (
	"fmt"
	"io"

	"github.com/starford/contentlint/internal/models"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Reporter renders the progress and the outcome of a lint run.
type Reporter interface {
	// Progress announces that a section is about to be validated.
	Progress(section string)
	// Report renders the accumulated findings.
	Report(res models.Result) error
}

// New returns the reporter for format writing to w.
func New(format string, w io.Writer, color ColorMode) (Reporter, error) {
	switch format {
	case FormatText, "":
		return NewText(w, color), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", format)
	}
}

// Summary returns the "N error(s), M warning(s)" line.
func Summary(res models.Result) string {
	return fmt.Sprintf("%d error(s), %d warning(s)", len(res.Errors), len(res.Warnings))
}
