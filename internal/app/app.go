package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/executor"
	"github.com/specialistvlad/modgraph/internal/hcl_adapter"
	"github.com/specialistvlad/modgraph/internal/yaml_adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	ctx        context.Context
	config     *Config
	loaders    []config.Loader
	compiler   executor.Compiler
	metrics    *metrics
	httpServer *http.Server
}

// Option customises an App.
type Option func(*App)

// WithCompiler replaces the dry-run compiler used by the build command.
func WithCompiler(c executor.Compiler) Option {
	return func(a *App) { a.compiler = c }
}

// WithLoaders replaces the default HCL and YAML manifest loaders.
func WithLoaders(loaders ...config.Loader) Option {
	return func(a *App) { a.loaders = loaders }
}

// NewApp is the constructor for the main application. Rendered output goes to
// outW and logs go to logW; each App gets its own logger and metrics registry.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:    outW,
		logger:  logger,
		ctx:     ctx,
		config:  cfg,
		loaders: []config.Loader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()},
		metrics: newMetrics(prometheus.NewRegistry()),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.compiler == nil {
		a.compiler = &DryRunCompiler{}
	}
	return a
}

// Config returns the application's configuration.
func (a *App) Config() *Config {
	return a.config
}

// MetricsRegistry returns the Prometheus registry backing /metrics.
func (a *App) MetricsRegistry() *prometheus.Registry {
	return a.metrics.registry
}
