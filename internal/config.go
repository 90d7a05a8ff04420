package internal

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/contentlint/internal/report"
	"github.com/starford/contentlint/internal/storage"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Content ContentConfig     `yaml:"content"`
	Watch   WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Content.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	// Format selects the report renderer: "text" or "json".
	Format string `yaml:"format"`
	// Color is one of "auto", "always", "never" and only affects text output.
	Color string `yaml:"color"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.Format == "" {
		c.Format = report.FormatText
	}
	if c.Color == "" {
		c.Color = string(report.ColorAuto)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.In(report.FormatText, report.FormatJSON)),
		validation.Field(&c.Color, validation.In(
			string(report.ColorAuto), string(report.ColorAlways), string(report.ColorNever))),
	)
}

// ContentConfig describes where the content lives. BlogDir and ProjectsDir
// are relative to Root, and image paths in frontmatter resolve against Root.
type ContentConfig struct {
	Root        string   `yaml:"root"`
	BlogDir     string   `yaml:"blog_dir"`
	ProjectsDir string   `yaml:"projects_dir"`
	Pattern     string   `yaml:"pattern"`
	Exclude     []string `yaml:"exclude"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.BlogDir, validation.Required),
		validation.Field(&c.ProjectsDir, validation.Required),
		validation.Field(&c.Pattern, validation.Required),
	)
}

// WatchConfig holds watch mode configuration.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Min(time.Duration(0))),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
			Format:   report.FormatText,
			Color:    string(report.ColorAuto),
		},
		Content: ContentConfig{
			Root:        ".",
			BlogDir:     "content/blog",
			ProjectsDir: "content/projects",
			Pattern:     storage.DefaultPattern,
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
	}
}
