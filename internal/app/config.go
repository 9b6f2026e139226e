package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/render"
)

// Command selects what Run produces.
type Command string

const (
	CommandPlan       Command = "plan"
	CommandGraph      Command = "graph"
	CommandVisibility Command = "visibility"
	CommandBuild      Command = "build"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command Command
	// Paths are manifest files or directories searched recursively.
	Paths []string
	// Module restricts the visibility command to one module.
	Module string
	Format string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int

	Platform      string
	Configuration string
	Toolchain     string
	Strict        bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one manifest path is required")
	}
	switch cfg.Command {
	case CommandPlan, CommandGraph, CommandVisibility, CommandBuild:
	case "":
		cfg.Command = CommandPlan
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if cfg.Module != "" && cfg.Command != CommandVisibility {
		return nil, fmt.Errorf("a module filter is only valid for the %s command", CommandVisibility)
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	cfg.Format = string(format)

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be one of %v", cfg.LogLevel, logLevels)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", cfg.LogFormat, logFormats)
	}

	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 4
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("worker count must be positive, got %d", cfg.WorkerCount)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port %d is out of range", cfg.HealthcheckPort)
	}

	def := dag.DefaultEnvironment()
	if cfg.Platform == "" {
		cfg.Platform = def.Platform
	}
	if cfg.Configuration == "" {
		cfg.Configuration = def.Configuration
	}
	if cfg.Toolchain == "" {
		cfg.Toolchain = def.Toolchain
	}
	return &cfg, nil
}

// Environment returns the build environment described by the config.
func (c *Config) Environment() dag.BuildEnvironment {
	return dag.BuildEnvironment{
		Platform:      c.Platform,
		Configuration: c.Configuration,
		Toolchain:     c.Toolchain,
		Strict:        c.Strict,
	}
}
