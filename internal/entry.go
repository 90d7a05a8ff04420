// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/contentlint/internal/apperr"
	"github.com/starford/contentlint/internal/lint"
	"github.com/starford/contentlint/internal/report"
	"github.com/starford/contentlint/internal/storage"
	"github.com/starford/contentlint/internal/watch"
)

// Run lints the configured content once, or keeps re-linting on change in
// watch mode. It returns apperr.ErrValidationFailed when a single run
// recorded errors.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(app.stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("content_root", cfg.Content.Root),
		slog.String("blog_dir", cfg.Content.BlogDir),
		slog.String("projects_dir", cfg.Content.ProjectsDir),
		slog.String("format", cfg.App.Format),
		slog.Bool("watch", cfg.Watch.Enabled),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Content.Root,
		storage.WithPattern(cfg.Content.Pattern),
		storage.WithExclude(cfg.Content.Exclude...),
	)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	reporter, err := report.New(cfg.App.Format, app.stdout, report.ColorMode(cfg.App.Color))
	if err != nil {
		return err
	}

	linter := lint.New(store,
		[]lint.Section{
			lint.BlogSection(cfg.Content.BlogDir),
			lint.ProjectSection(cfg.Content.ProjectsDir),
		},
		lint.WithLogger(logger),
		lint.WithProgress(func(s lint.Section) { reporter.Progress(s.Name) }),
	)

	lintOnce := func(ctx context.Context) (bool, error) {
		res, err := linter.Run(ctx)
		if err != nil {
			return false, err
		}
		if err := reporter.Report(res); err != nil {
			return false, fmt.Errorf("write report: %w", err)
		}
		return res.HasErrors(), nil
	}

	if !cfg.Watch.Enabled {
		failed, err := lintOnce(ctx)
		if err != nil {
			return err
		}
		if failed {
			return apperr.ErrValidationFailed
		}
		return nil
	}

	return runWatch(ctx, cfg, store, logger, lintOnce)
}

func runWatch(ctx context.Context, cfg *Config, store storage.Provider, logger *slog.Logger, lintOnce func(context.Context) (bool, error)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if _, err := lintOnce(ctx); err != nil {
		return err
	}

	w := watch.New(store, []string{cfg.Content.BlogDir, cfg.Content.ProjectsDir}, cfg.Watch.Debounce, logger)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return w.Run(gCtx, func(runCtx context.Context) {
			if _, err := lintOnce(runCtx); err != nil {
				logger.Warn("watch: lint run failed", slog.String("error", err.Error()))
			}
		})
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}
		cancel()
		return nil
	})

	return g.Wait()
}
