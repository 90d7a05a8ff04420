package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/starford/contentlint/internal/models"
)

func sampleResult() models.Result {
	var res models.Result
	res.Add(models.Finding{Severity: models.SeverityError, Path: "content/blog/a.md", Message: `missing required field "date"`})
	res.Add(models.Finding{Severity: models.SeverityWarning, Path: "content/projects/p.md", Message: "no featured image specified"})
	res.Add(models.Finding{Severity: models.SeverityWarning, Path: "content/projects/q.md", Message: "no demo_url or github_url specified"})
	return res
}

func TestText_ProgressAndReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, ColorNever)
	r.Progress("blog posts")
	r.Progress("projects")
	if err := r.Report(sampleResult()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	out := buf.String()
	wantInOrder := []string{
		"Validating blog posts...",
		"Validating projects...",
		"=== Content Validation Results ===",
		"Errors:",
		`  • content/blog/a.md: missing required field "date"`,
		"Warnings:",
		"  • content/projects/p.md: no featured image specified",
		"  • content/projects/q.md: no demo_url or github_url specified",
		"1 error(s), 2 warning(s)",
	}
	pos := 0
	for _, want := range wantInOrder {
		i := strings.Index(out[pos:], want)
		if i < 0 {
			t.Fatalf("output missing %q after offset %d:\n%s", want, pos, out)
		}
		pos += i + len(want)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("ColorNever output should not contain ANSI escapes")
	}
}

func TestText_Success(t *testing.T) {
	var buf bytes.Buffer
	if err := NewText(&buf, ColorNever).Report(models.Result{}); err != nil {
		t.Fatalf("Report: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "All content is valid!") {
		t.Errorf("missing success message:\n%s", out)
	}
	if strings.Contains(out, "Errors:") || strings.Contains(out, "Warnings:") {
		t.Errorf("empty lists should be omitted:\n%s", out)
	}
}

func TestText_WarningsOnlyShowsSummary(t *testing.T) {
	var res models.Result
	res.Add(models.Finding{Severity: models.SeverityWarning, Path: "content/blog", Message: "no blog posts found"})

	var buf bytes.Buffer
	if err := NewText(&buf, ColorNever).Report(res); err != nil {
		t.Fatalf("Report: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "0 error(s), 1 warning(s)") {
		t.Errorf("missing summary:\n%s", out)
	}
	if strings.Contains(out, "Errors:") {
		t.Errorf("unexpected Errors header:\n%s", out)
	}
}

func TestJSON_Report(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSON(&buf)
	r.Progress("blog posts")
	if err := r.Report(sampleResult()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	var got struct {
		OK      bool `json:"ok"`
		Summary struct {
			Errors   int `json:"errors"`
			Warnings int `json:"warnings"`
		} `json:"summary"`
		Errors   []models.Finding `json:"errors"`
		Warnings []models.Finding `json:"warnings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.OK {
		t.Error("ok = true, want false")
	}
	if got.Summary.Errors != 1 || got.Summary.Warnings != 2 {
		t.Errorf("summary = %+v", got.Summary)
	}
	if len(got.Errors) != 1 || got.Errors[0].Severity != models.SeverityError || got.Errors[0].Path != "content/blog/a.md" {
		t.Errorf("errors = %+v", got.Errors)
	}
}

func TestJSON_EmptyListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSON(&buf).Report(models.Result{}); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(buf.String(), `"errors": []`) {
		t.Errorf("expected empty errors array:\n%s", buf.String())
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New("xml", &bytes.Buffer{}, ColorNever); err == nil {
		t.Error("expected error for unknown format")
	}
}
