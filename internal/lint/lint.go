// Package lint walks the content sections, runs the parser and rule sets on
// every document and accumulates the findings.
package lint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/starford/contentlint/internal/apperr"
	"github.com/starford/contentlint/internal/models"
	"github.com/starford/contentlint/internal/parser"
	"github.com/starford/contentlint/internal/rules"
	"github.com/starford/contentlint/internal/storage"
)

// Section is one content type living in its own directory.
type Section struct {
	// Name is the human readable plural, e.g. "blog posts".
	Name string
	// Dir is relative to the content root.
	Dir   string
	Rules rules.Set
	// EmptyMessage is reported as a warning when Dir has no documents.
	EmptyMessage string
}

// BlogSection returns the blog post section rooted at dir.
func BlogSection(dir string) Section {
	return Section{
		Name:         "blog posts",
		Dir:          dir,
		Rules:        rules.Blog(),
		EmptyMessage: "no blog posts found",
	}
}

// ProjectSection returns the project section rooted at dir.
func ProjectSection(dir string) Section {
	return Section{
		Name:         "projects",
		Dir:          dir,
		Rules:        rules.Project(),
		EmptyMessage: "no projects found",
	}
}

// ProgressFunc is called before a section is validated.
type ProgressFunc func(s Section)

// Option configures a Linter.
type Option func(*Linter)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		l.logger = logger
	}
}

// WithProgress registers a callback invoked once per section.
func WithProgress(fn ProgressFunc) Option {
	return func(l *Linter) {
		l.progress = fn
	}
}

// Linter validates content sections against their rule sets.
type Linter struct {
	store    storage.Provider
	sections []Section
	logger   *slog.Logger
	progress ProgressFunc
}

// New creates a Linter over store. Sections are validated in the given order.
func New(store storage.Provider, sections []Section, opts ...Option) *Linter {
	l := &Linter{
		store:    store,
		sections: sections,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run validates every section sequentially. Sections are independent: a
// missing directory is recorded and the next section still runs. The only
// error returned is ctx's.
func (l *Linter) Run(ctx context.Context) (models.Result, error) {
	var res models.Result
	for _, s := range l.sections {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if l.progress != nil {
			l.progress(s)
		}
		sr, err := l.runSection(ctx, s)
		res.Merge(sr)
		if err != nil {
			return res, err
		}
	}
	l.logger.Debug("lint: finished",
		slog.Int("errors", len(res.Errors)),
		slog.Int("warnings", len(res.Warnings)))
	return res, nil
}

func (l *Linter) runSection(ctx context.Context, s Section) (models.Result, error) {
	var res models.Result

	metas, err := l.store.List(s.Dir)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		res.Add(models.Finding{
			Severity: models.SeverityError,
			Path:     s.Dir,
			Message:  fmt.Sprintf("%s directory not found", s.Rules.Name),
		})
		return res, nil
	case err != nil:
		res.Add(models.Finding{
			Severity: models.SeverityError,
			Path:     s.Dir,
			Message:  fmt.Sprintf("could not list %s directory: %v", s.Rules.Name, err),
		})
		return res, nil
	}

	if len(metas) == 0 {
		res.Add(models.Finding{
			Severity: models.SeverityWarning,
			Path:     s.Dir,
			Message:  s.EmptyMessage,
		})
		return res, nil
	}

	for _, m := range metas {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		for _, f := range l.lintFile(s, m.Path) {
			res.Add(f)
		}
	}
	return res, nil
}

// lintFile parses and evaluates one document. A read failure becomes an
// error finding for that file.
func (l *Linter) lintFile(s Section, path string) []models.Finding {
	data, err := l.store.Read(path)
	if err != nil {
		l.logger.Warn("lint: read failed", slog.String("path", path), slog.String("error", err.Error()))
		return []models.Finding{{
			Severity: models.SeverityError,
			Path:     path,
			Message:  fmt.Sprintf("could not read file: %v", readCause(err)),
		}}
	}

	parsed := parser.Parse(data)
	doc := models.Document{Path: path, Fields: parsed.Fields, Body: parsed.Body}
	findings := s.Rules.Evaluate(doc, l.store)
	l.logger.Debug("lint: checked",
		slog.String("path", path),
		slog.String("section", s.Rules.Name),
		slog.Int("findings", len(findings)))
	return findings
}

// readCause strips the absolute path from a file system error so findings
// only ever name the relative path.
func readCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
