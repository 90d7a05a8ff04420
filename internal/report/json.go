package report

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/starford/contentlint/internal/models"
)

// JSON writes the result as a single JSON document. Progress is not
// reported so the output stays machine readable.
type JSON struct {
	w io.Writer
}

// NewJSON creates a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Progress is a no-op for JSON output.
func (j *JSON) Progress(string) {}

type summaryJSON struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Report encodes the result with its summary as indented JSON.
func (j *JSON) Report(res models.Result) error {
	errs := res.Errors
	if errs == nil {
		errs = []models.Finding{}
	}
	warns := res.Warnings
	if warns == nil {
		warns = []models.Finding{}
	}

	out := struct {
		OK       bool             `json:"ok"`
		Summary  summaryJSON      `json:"summary"`
		Errors   []models.Finding `json:"errors"`
		Warnings []models.Finding `json:"warnings"`
	}{
		OK:       !res.HasErrors(),
		Summary:  summaryJSON{Errors: len(res.Errors), Warnings: len(res.Warnings)},
		Errors:   errs,
		Warnings: warns,
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
