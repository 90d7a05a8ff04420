package internal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/starford/contentlint/internal/apperr"
	"github.com/starford/contentlint/internal/testutil"
)

func runWith(t *testing.T, files map[string]string, format string) (string, error) {
	t.Helper()
	root, _ := testutil.TestContent(t, files)

	cfg := NewDefaultConfig()
	cfg.Content.Root = root
	cfg.App.Format = format
	cfg.App.Color = "never"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), WithConfig(cfg), WithOutput(&stdout, &stderr))
	return stdout.String(), err
}

func TestRun_RequiresConfig(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Fatal("expected error without config")
	}
}

func TestRun_BlogMissingDate(t *testing.T) {
	out, err := runWith(t, map[string]string{
		"content/blog/hello.md": "---\ntitle: Hello\n---\n" + testutil.Body(150),
		"content/projects/p.md": "---\ntitle: P\ndescription: D\ntechnologies: [Go]\nimage: p.png\ndemo_url: https://example.com\n---\n" + testutil.Body(250),
		"p.png":                 "png",
	}, "text")
	if !errors.Is(err, apperr.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	for _, want := range []string{
		"Validating blog posts...",
		"Validating projects...",
		`content/blog/hello.md: missing required field "date"`,
		`content/blog/hello.md: missing recommended field "excerpt"`,
		"1 error(s), 1 warning(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_WarningsDoNotFail(t *testing.T) {
	_, err := runWith(t, map[string]string{
		"content/blog/hello.md": "---\ntitle: Hello\ndate: 2024-03-01\nexcerpt: e\n---\nshort",
	}, "text")
	// The projects directory is missing, which is an error.
	if !errors.Is(err, apperr.ErrValidationFailed) {
		t.Fatalf("err = %v", err)
	}

	out, err := runWith(t, map[string]string{
		"content/blog/hello.md":     "---\ntitle: Hello\ndate: 2024-03-01\nexcerpt: e\n---\nshort",
		"content/projects/.gitkeep": "",
	}, "text")
	if err != nil {
		t.Fatalf("warnings alone should not fail: %v", err)
	}
	if !strings.Contains(out, "0 error(s), 2 warning(s)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRun_JSONFormat(t *testing.T) {
	out, err := runWith(t, map[string]string{
		"content/blog/a.md":     "---\ntitle: A\ndate: 2024-01-01\nexcerpt: e\n---\n" + testutil.Body(100),
		"content/projects/p.md": "---\ntitle: P\ndescription: D\ntechnologies: [Go]\nimage: p.png\ngithub_url: https://github.com/a/b\n---\n" + testutil.Body(200),
		"p.png":                 "png",
	}, "json")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out, "Validating") {
		t.Errorf("json output should not contain progress lines:\n%s", out)
	}
	if !strings.Contains(out, `"ok": true`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRun_MissingRoot(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Content.Root = t.TempDir() + "/does-not-exist"
	var stdout, stderr bytes.Buffer
	if err := Run(context.Background(), WithConfig(cfg), WithOutput(&stdout, &stderr)); err == nil {
		t.Fatal("expected error for missing content root")
	}
}
