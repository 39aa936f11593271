// Package app implements the application layer for wafer.
package app

import (
	"context"
	"runtime"
	"strings"

	"go.trai.ch/wafer/internal/adapters/telemetry"
	"go.trai.ch/wafer/internal/core/domain"
	"go.trai.ch/wafer/internal/core/ports"
	"go.trai.ch/wafer/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ProfileLoader
	invoker ports.Invoker
	logger  ports.Logger
	tracer  ports.Tracer
	goos    string
	dir     string
}

// New creates a new App instance.
func New(
	loader ports.ProfileLoader,
	invoker ports.Invoker,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:  loader,
		invoker: invoker,
		logger:  log,
		tracer:  tracer,
		goos:    runtime.GOOS,
		dir:     ".",
	}
}

// WithHostOS overrides the GOOS value used for --os=auto.
func (a *App) WithHostOS(goos string) *App {
	a.goos = goos
	return a
}

// WithDir sets the directory searched for the profile file.
func (a *App) WithDir(dir string) *App {
	a.dir = dir
	return a
}

// ResolveOptions configures Resolve and Build.
type ResolveOptions struct {
	// Platform is a platform name, "auto" for the host, or empty for the profile default.
	Platform string
	// ConfigPath is an explicit profile file. Empty means the optional file in the working directory.
	ConfigPath string
}

// Resolve loads the profile, selects the platform and computes the invocation.
// Nothing is executed.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (domain.InvocationSpec, error) {
	_, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	spec, err := a.resolve(opts)
	if err != nil {
		span.RecordError(err)
		return domain.InvocationSpec{}, err
	}

	span.SetAttribute("platform", spec.Platform().String())
	span.SetAttribute("mechanism", spec.Mechanism().String())
	span.SetAttribute("fingerprint", spec.Fingerprint())
	return spec, nil
}

func (a *App) resolve(opts ResolveOptions) (domain.InvocationSpec, error) {
	profile, err := a.loadProfile(opts.ConfigPath)
	if err != nil {
		return domain.InvocationSpec{}, zerr.Wrap(err, "failed to load profile")
	}

	p, err := a.selectPlatform(opts.Platform, profile)
	if err != nil {
		return domain.InvocationSpec{}, err
	}

	return resolver.New(profile.Catalogue(p), profile.ResolvedToolchain()).Resolve(p)
}

func (a *App) loadProfile(path string) (domain.Profile, error) {
	if path != "" {
		return a.loader.LoadFile(path)
	}
	return a.loader.Load(a.dir)
}

// selectPlatform applies the precedence explicit name, then profile default, then posix.
func (a *App) selectPlatform(name string, profile domain.Profile) (domain.Platform, error) {
	switch {
	case strings.TrimSpace(name) == "":
		return profile.Platform(), nil
	case strings.EqualFold(strings.TrimSpace(name), domain.HostPlatformName):
		return domain.HostPlatform(a.goos)
	default:
		return domain.ParsePlatform(name)
	}
}

// Build resolves the invocation, logs it and runs the toolchain once.
// Toolchain and spawn failures are returned unchanged so callers can read the exit status.
func (a *App) Build(ctx context.Context, opts ResolveOptions) error {
	ctx, span := a.tracer.Start(ctx, "build")
	defer span.End()

	spec, err := a.Resolve(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return err
	}

	a.logger.Info("waf build command",
		"command", strings.Join(spec.Command(), " "),
		"platform", spec.Platform().String(),
		"fingerprint", spec.Fingerprint(),
	)

	if err := a.invoke(ctx, spec); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) invoke(ctx context.Context, spec domain.InvocationSpec) error {
	ctx, span := a.tracer.Start(ctx, "invoke")
	defer span.End()

	span.SetAttribute("program", spec.Program())
	span.SetAttribute("argv", spec.Argv())

	if err := a.invoker.Invoke(ctx, spec); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Platforms returns every recognized platform in declaration order.
func (a *App) Platforms() []domain.Platform {
	return domain.Platforms()
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if s, ok := a.logger.(jsonSwitcher); ok {
		s.SetJSON(enable)
	}
}

// EnableTracing installs a tracer provider that logs every finished span.
// The returned function flushes and shuts it down.
func (a *App) EnableTracing() func(context.Context) error {
	return telemetry.Install(a.logger)
}
