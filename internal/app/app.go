// Package app implements the application layer for xtask.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/xtask/internal/core/domain"
	"go.trai.ch/xtask/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	invokers     ports.InvokerFactory
	reporter     ports.Reporter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	invokers ports.InvokerFactory,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		invokers:     invokers,
		reporter:     reporter,
		logger:       log,
	}
}

// RunOptions configures a Run. Non-empty fields override the configuration file.
type RunOptions struct {
	ConfigPath string
	Tool       string
	Target     string
	Profile    string
	Package    string
	Features   []string
	// Strict turns a nonzero tool exit into ErrBuildFailed.
	Strict bool
}

// Build runs the toolchain once for def and reports the result.
// A nonzero exit is returned as data; only a tool that cannot be started is an error.
func (a *App) Build(ctx context.Context, tc domain.Toolchain, def domain.BuildDefinition) (*domain.BuildResult, error) {
	res, err := a.invokers(tc).Invoke(ctx, def)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "build invocation failed"), "definition", def.String())
	}

	if err := a.reporter.Report(tc.Name, res); err != nil {
		return res, err
	}
	return res, nil
}

// Run resolves the configuration, builds the definition it describes and applies
// the exit policy selected by opts.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(cfg, opts)

	def, err := cfg.Definition()
	if err != nil {
		return err
	}

	res, err := a.Build(ctx, cfg.Toolchain(), def)
	if err != nil {
		return err
	}

	if res.Success() {
		return nil
	}

	if res.Signaled() {
		a.logger.Warn(fmt.Sprintf("%s terminated abnormally (code %d)", cfg.Tool, res.ExitCode))
	}

	if opts.Strict {
		return zerr.With(zerr.Wrap(domain.ErrBuildFailed, "build of "+def.String()), "exit_code", res.ExitCode)
	}
	return nil
}

func applyOverrides(cfg *domain.Config, opts RunOptions) {
	if opts.Tool != "" {
		cfg.Tool = opts.Tool
	}
	if opts.Target != "" {
		cfg.Target = opts.Target
	}
	if opts.Profile != "" {
		cfg.Profile = opts.Profile
	}
	if opts.Package != "" {
		cfg.Package = opts.Package
	}
	if len(opts.Features) > 0 {
		cfg.Features = opts.Features
	}
}
