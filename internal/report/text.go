package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/starford/contentlint/internal/models"
)

// Text writes a human-readable report.
type Text struct {
	w      io.Writer
	styles styles
}

// NewText creates a text reporter writing to w.
func NewText(w io.Writer, color ColorMode) *Text {
	return &Text{w: w, styles: newStyles(w, color)}
}

// Progress prints a "Validating <section>..." line.
func (t *Text) Progress(section string) {
	_, _ = fmt.Fprintln(t.w, t.styles.muted.Render(fmt.Sprintf("Validating %s...", section)))
}

// Report prints the results banner, the finding lists and the summary.
func (t *Text) Report(res models.Result) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(t.styles.header.Render("=== Content Validation Results ==="))
	b.WriteString("\n")

	if len(res.Errors) > 0 {
		b.WriteString("\n" + t.styles.errors.Render("Errors:") + "\n")
		for _, f := range res.Errors {
			b.WriteString("  • " + f.String() + "\n")
		}
	}
	if len(res.Warnings) > 0 {
		b.WriteString("\n" + t.styles.warning.Render("Warnings:") + "\n")
		for _, f := range res.Warnings {
			b.WriteString("  • " + f.String() + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case len(res.Errors) == 0 && len(res.Warnings) == 0:
		b.WriteString(t.styles.success.Render("✔ All content is valid!"))
	case len(res.Errors) == 0:
		b.WriteString(t.styles.warning.Render(Summary(res)))
	default:
		b.WriteString(t.styles.errors.Render(Summary(res)))
	}
	b.WriteString("\n")

	_, err := io.WriteString(t.w, b.String())
	return err
}
