package gen

import (
	"github.com/dogmatiq/wirekit/internal/telemetry"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// An Option changes the behavior of a [Generator].
type Option func(*options)

type options struct {
	Packages    []string
	Types       []string
	PackageName string
	OutputDir   string
	FS          afero.Fs
	Telemetry   telemetry.Provider
}

// WithPackages restricts generation to messages and enums declared in the
// given schema packages.
//
// By default every type in the descriptor set is generated.
func WithPackages(packages ...string) Option {
	return func(o *options) {
		o.Packages = append(o.Packages, packages...)
	}
}

// WithTypes restricts generation to the named messages and enums.
//
// A name may be a full name (with or without its leading dot) or a bare
// short name, resolved per [schema.Index.Resolve]. When types are named
// explicitly, [WithPackages] has no effect.
func WithTypes(names ...string) Option {
	return func(o *options) {
		o.Types = append(o.Types, names...)
	}
}

// WithPackageName sets the Go package name declared by every generated unit.
//
// The default is "generated".
func WithPackageName(name string) Option {
	return func(o *options) {
		o.PackageName = name
	}
}

// WithOutputDir sets the directory generated units are written to.
//
// The directory is created if it does not exist. The default is the current
// directory.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.OutputDir = dir
	}
}

// WithFS sets the filesystem generated units are written to.
//
// The default is the operating system's filesystem.
func WithFS(fs afero.Fs) Option {
	return func(o *options) {
		o.FS = fs
	}
}

// WithTelemetry enables trace, metric and log instrumentation of generator
// runs using the given providers.
func WithTelemetry(
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	lp log.LoggerProvider,
) Option {
	return func(o *options) {
		o.Telemetry = telemetry.Provider{
			TracerProvider: tp,
			MeterProvider:  mp,
			LoggerProvider: lp,
		}
	}
}

func resolveOptions(opts []Option) options {
	o := options{
		PackageName: "generated",
		OutputDir:   ".",
		FS:          afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
