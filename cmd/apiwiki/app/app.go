// Package app provides the application context and dependency management
// for the apiwiki CLI. It centralizes configuration, logging and the
// construction of the wiki updater.
package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/apiwiki/internal/discovery"
	"github.com/agentstation/apiwiki/internal/transport"
	"github.com/agentstation/apiwiki/internal/wikisync"
)

// App represents the apiwiki application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Output receives the run summary, usage text and dry-run pages
	out io.Writer
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment, .env files
// and the default config file, then customized by functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		out:     os.Stdout,
	}

	config, err := LoadConfig("", nil)
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Updater builds a wiki updater for the two checkouts from the current
// configuration.
func (a *App) Updater(wikiDir, samplesDir string) (*wikisync.Updater, error) {
	cfg := a.config

	t := transport.New(
		transport.WithTimeout(cfg.HTTPTimeout),
		transport.WithRateLimit(cfg.Rate),
		transport.WithUserAgent(cfg.UserAgent),
	)

	opts := []wikisync.Option{
		wikisync.WithTransport(t),
		wikisync.WithEndpoints(wikisync.Endpoints{
			Discovery: cfg.DiscoveryURL,
			Codegen:   cfg.CodegenURL,
			Samples:   cfg.SamplesURL,
			Explorer:  cfg.ExplorerURL,
			Console:   cfg.ConsoleURL,
		}),
		wikisync.WithLanguage(cfg.Language),
		wikisync.WithConcurrency(cfg.Concurrency),
		wikisync.WithDryRun(cfg.DryRun),
	}

	if cfg.Extras != "" {
		extras, err := discovery.LoadExtras(cfg.Extras)
		if err != nil {
			return nil, err
		}
		opts = append(opts, wikisync.WithExtras(extras))
	}

	return wikisync.New(wikiDir, samplesDir, opts...), nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects user-facing output (useful for testing).
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
