// Package gen renders Go source for the messages and enums of a descriptor
// set.
//
// [Emit] is the pure emission engine: one target in, one self-contained
// source unit out, byte-identical for identical inputs. [Generator] is the
// batch driver around it: it selects targets, renders each one, writes the
// units to a filesystem, and collects per-target failures into a [Report]
// rather than aborting the run.
package gen

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dogmatiq/wirekit/internal/telemetry"
	"github.com/dogmatiq/wirekit/internal/x/xtelemetry"
	"github.com/dogmatiq/wirekit/schema"
	"github.com/spf13/afero"
)

// A Generator writes generated units for a selection of targets.
type Generator struct {
	opts options
	rec  *telemetry.Recorder

	emittedCount telemetry.Instrument[int64]
	failedCount  telemetry.Instrument[int64]
	skippedCount telemetry.Instrument[int64]
}

// NewGenerator returns a generator configured by the given options.
func NewGenerator(options ...Option) *Generator {
	g := &Generator{
		opts: resolveOptions(options),
	}

	g.rec = g.opts.Telemetry.Recorder(
		"github.com/dogmatiq/wirekit/gen",
		telemetry.String("handle", xtelemetry.HandleID()),
	)

	g.emittedCount = g.rec.Counter("emitted", "{unit}", "The number of generated units written successfully.")
	g.failedCount = g.rec.Counter("failed", "{target}", "The number of targets that could not be generated.")
	g.skippedCount = g.rec.Counter("skipped", "{field}", "The number of fields degraded to placeholders because their shape is unsupported.")

	return g
}

// A Report summarizes one generator run.
type Report struct {
	// Emitted is the full name of every target whose unit was written.
	Emitted []schema.FullName

	// SkippedFields is the number of fields across all emitted units that
	// were degraded to placeholders because their shape is unsupported.
	SkippedFields int

	// Failed records each target that could not be generated, in selection
	// order.
	Failed []TargetError
}

// Ok returns true if every selected target was generated.
func (r *Report) Ok() bool {
	return len(r.Failed) == 0
}

// A TargetError is the failure of a single target within a run.
type TargetError struct {
	// Name is the target as it was selected: a resolved full name, or the
	// user-supplied name if resolution itself failed.
	Name string

	// Err is the underlying cause.
	Err error
}

func (e TargetError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Err)
}

func (e TargetError) Unwrap() error {
	return e.Err
}

// Run generates every selected target against x.
//
// A failure to generate one target is recorded in the report and does not
// affect the remaining targets. Run returns a non-nil error only for
// environmental failures, such as an output directory that cannot be
// written.
func (g *Generator) Run(ctx context.Context, x *schema.Index) (*Report, error) {
	ctx, span := g.rec.StartSpan(
		ctx,
		"generate",
		telemetry.String("output_dir", g.opts.OutputDir),
		telemetry.String("package_name", g.opts.PackageName),
	)
	defer span.End()

	if err := g.opts.FS.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		g.rec.Error(ctx, "generate.abort", err)
		return nil, err
	}

	rep := &Report{}

	for _, sel := range g.selectTargets(ctx, x, rep) {
		src, skipped, err := emit(sel, x, g.opts.PackageName)
		if err != nil {
			g.fail(ctx, rep, string(sel.Name), err)
			continue
		}

		name := filepath.Join(g.opts.OutputDir, unitFileName(sel.Name))
		if err := afero.WriteFile(g.opts.FS, name, []byte(src), 0o644); err != nil {
			g.fail(ctx, rep, string(sel.Name), err)
			continue
		}

		rep.Emitted = append(rep.Emitted, sel.Name)
		rep.SkippedFields += skipped

		g.emittedCount(ctx, 1)
		g.skippedCount(ctx, int64(skipped))

		g.rec.Debug(
			ctx,
			"generate.unit",
			"generated unit written",
			telemetry.String("target", sel.Name),
			telemetry.String("file", name),
		)
	}

	g.rec.Info(
		ctx,
		"generate.done",
		"generator run complete",
		telemetry.Bool("ok", rep.Ok()),
		telemetry.Int("emitted", len(rep.Emitted)),
		telemetry.Int("failed", len(rep.Failed)),
		telemetry.Int("skipped_fields", rep.SkippedFields),
	)

	return rep, nil
}

// selectTargets resolves the run's target selection against x.
//
// Resolution failures of explicitly named types are recorded in the report
// like any other per-target failure.
func (g *Generator) selectTargets(ctx context.Context, x *schema.Index, rep *Report) []schema.Target {
	var targets []schema.Target
	seen := map[schema.FullName]bool{}

	add := func(t schema.Target) {
		if !seen[t.Name] {
			seen[t.Name] = true
			targets = append(targets, t)
		}
	}

	if len(g.opts.Types) != 0 {
		for _, name := range g.opts.Types {
			t, err := x.Resolve(name)
			if err != nil {
				g.fail(ctx, rep, name, err)
				continue
			}
			add(t)
		}
		return targets
	}

	for _, n := range x.ListNames(g.opts.Packages...) {
		// A full name always resolves; it was just listed.
		t, _ := x.Resolve(string(n))
		add(t)
	}

	return targets
}

func (g *Generator) fail(ctx context.Context, rep *Report, name string, err error) {
	rep.Failed = append(rep.Failed, TargetError{Name: name, Err: err})
	g.failedCount(ctx, 1)
	g.rec.Error(ctx, "generate.target", err, telemetry.String("target", name))
}

// unitFileName maps a full name to a filesystem-safe file name.
//
// The leading dot is dropped and every other rune that is not valid in a Go
// identifier becomes an underscore, so ".market.Candle" becomes
// "market_Candle.go".
func unitFileName(n schema.FullName) string {
	s := []byte(string(n))
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
	}

	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '_':
		default:
			s[i] = '_'
		}
	}

	return string(s) + ".go"
}
