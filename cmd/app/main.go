package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/contentlint/internal"
	"github.com/starford/contentlint/internal/apperr"
	pkgconfig "github.com/starford/contentlint/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.IsSet("root") {
		cfg.Content.Root = cmd.String("root")
	}
	if cmd.IsSet("format") {
		cfg.App.Format = cmd.String("format")
	}
	if cmd.IsSet("watch") {
		cfg.Watch.Enabled = cmd.Bool("watch")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		if errors.Is(err, apperr.ErrValidationFailed) {
			return cli.Exit("", 1)
		}
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "contentlint",
		Usage:  "Validate frontmatter and content of blog posts and projects",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "contentlint.yaml",
				Value:       "contentlint.yaml",
				Sources:     cli.EnvVars("CONTENTLINT_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "root",
				Usage:   "Content root; image paths resolve against it",
				Sources: cli.EnvVars("CONTENTLINT_ROOT"),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Report format (text, json)",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Re-run validation whenever content changes",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
