package gen_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	. "github.com/dogmatiq/wirekit/gen"
	"github.com/dogmatiq/wirekit/internal/x/xtesting"
	"github.com/dogmatiq/wirekit/schema"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/log"
	lognoop "go.opentelemetry.io/otel/log/noop"
	"google.golang.org/protobuf/proto"
)

func TestGenerator_emitsEveryTarget(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	x := schema.NewIndex(testDescriptorSet())

	out := xtesting.UniqueName("out")

	g := NewGenerator(
		WithFS(fs),
		WithOutputDir(out),
		WithPackageName("candles"),
		WithPackages("market"),
	)

	rep, err := g.Run(context.Background(), x)
	if err != nil {
		t.Fatal(err)
	}
	if !rep.Ok() {
		t.Fatalf("unexpected failures: %v", rep.Failed)
	}

	want := []schema.FullName{
		".market.Candle",
		".market.CandleInterval",
		".market.GetCandlesRequest",
		".market.GetCandlesResponse",
		".market.MarketEvent",
		".market.Quotation",
		".market.Tick",
	}
	if diff := cmp.Diff(want, rep.Emitted); diff != "" {
		t.Fatalf("unexpected emitted targets (-want +got):\n%s", diff)
	}

	// The one-of members of MarketEvent degrade to placeholders.
	if rep.SkippedFields != 2 {
		t.Fatalf("unexpected skipped field count: got %d, want 2", rep.SkippedFields)
	}

	data, err := afero.ReadFile(fs, out+"/market_CandleInterval.go")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "package candles") {
		t.Fatalf("unexpected unit content:\n%s", data)
	}
}

func TestGenerator_collectsPerTargetFailures(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	x := schema.NewIndex(testDescriptorSet())

	g := NewGenerator(
		WithFS(fs),
		WithOutputDir("out"),
	)

	rep, err := g.Run(context.Background(), x)
	if err != nil {
		t.Fatal(err)
	}

	// The broken target fails, every other target is still emitted.
	if len(rep.Failed) != 1 {
		t.Fatalf("unexpected failures: %v", rep.Failed)
	}
	if rep.Failed[0].Name != ".broken.Broken" {
		t.Fatalf("unexpected failed target: %q", rep.Failed[0].Name)
	}

	var missing schema.MissingTypeError
	if !errors.As(rep.Failed[0], &missing) {
		t.Fatalf("expected a missing type error, got %v", rep.Failed[0].Err)
	}

	if len(rep.Emitted) != 8 {
		t.Fatalf("unexpected emitted count: got %d, want 8", len(rep.Emitted))
	}
}

func TestGenerator_explicitTypeSelection(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	x := schema.NewIndex(testDescriptorSet())

	g := NewGenerator(
		WithFS(fs),
		WithOutputDir("out"),
		WithTypes(
			"GetCandlesRequest", // short name, unambiguous
			"Candle",            // short name, ambiguous across packages
			".market.Quotation", // full name
			".market.Quotation", // duplicate selection is emitted once
		),
	)

	rep, err := g.Run(context.Background(), x)
	if err != nil {
		t.Fatal(err)
	}

	want := []schema.FullName{
		".market.GetCandlesRequest",
		".market.Quotation",
	}
	if diff := cmp.Diff(want, rep.Emitted); diff != "" {
		t.Fatalf("unexpected emitted targets (-want +got):\n%s", diff)
	}

	if len(rep.Failed) != 1 || rep.Failed[0].Name != "Candle" {
		t.Fatalf("unexpected failures: %v", rep.Failed)
	}

	var ambiguous schema.AmbiguousTypeError
	if !errors.As(rep.Failed[0], &ambiguous) {
		t.Fatalf("expected an ambiguous type error, got %v", rep.Failed[0].Err)
	}
}

// captureLoggerProvider is a [log.LoggerProvider] that hands out a single
// record-capturing logger.
type captureLoggerProvider struct {
	lognoop.LoggerProvider
	logger *captureLogger
}

func (p *captureLoggerProvider) Logger(string, ...log.LoggerOption) log.Logger {
	return p.logger
}

type captureLogger struct {
	lognoop.Logger

	mu      sync.Mutex
	records []log.Record
}

func (l *captureLogger) Emit(_ context.Context, r log.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
}

func (l *captureLogger) Enabled(context.Context, log.EnabledParameters) bool {
	return true
}

func (l *captureLogger) eventNames() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, len(l.records))
	for i, r := range l.records {
		names[i] = r.EventName()
	}
	return names
}

func TestGenerator_reportsResolutionFailuresToTelemetry(t *testing.T) {
	t.Parallel()

	logger := &captureLogger{}
	x := schema.NewIndex(testDescriptorSet())

	g := NewGenerator(
		WithFS(afero.NewMemMapFs()),
		WithOutputDir("out"),
		WithTypes(".market.Nope"),
		WithTelemetry(nil, nil, &captureLoggerProvider{logger: logger}),
	)

	rep, err := g.Run(context.Background(), x)
	if err != nil {
		t.Fatal(err)
	}

	if len(rep.Failed) != 1 || rep.Failed[0].Name != ".market.Nope" {
		t.Fatalf("unexpected failures: %v", rep.Failed)
	}

	// A target that fails to resolve is logged the same way as a target
	// that fails to emit.
	if !slices.Contains(logger.eventNames(), "generate.target") {
		t.Fatalf("resolution failure was not logged, events: %v", logger.eventNames())
	}
}

func TestLoadDescriptorSet(t *testing.T) {
	t.Parallel()

	data, err := proto.Marshal(testDescriptorSet())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "schema.bin", data, 0o644); err != nil {
			t.Fatal(err)
		}

		fds, err := LoadDescriptorSet(fs, "schema.bin")
		if err != nil {
			t.Fatal(err)
		}
		if !proto.Equal(fds, testDescriptorSet()) {
			t.Fatal("loaded descriptor set does not match")
		}
	})

	t.Run("gzipped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			t.Fatal(err)
		}

		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "schema.bin.gz", buf.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}

		fds, err := LoadDescriptorSet(fs, "schema.bin.gz")
		if err != nil {
			t.Fatal(err)
		}
		if !proto.Equal(fds, testDescriptorSet()) {
			t.Fatal("loaded descriptor set does not match")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "schema.bin", []byte("not a descriptor set"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadDescriptorSet(fs, "schema.bin"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	manifest := `
descriptor_set = "schema/market.bin"
output_dir = "example/candles"
package_name = "candles"
packages = ["market"]
types = ["Candle", ".market.Quotation"]
`

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "wirekit.toml", []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(fs, "wirekit.toml")
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		DescriptorSet: "schema/market.bin",
		OutputDir:     "example/candles",
		PackageName:   "candles",
		Packages:      []string{"market"},
		Types:         []string{"Candle", ".market.Quotation"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}

	if n := len(c.Options()); n != 4 {
		t.Fatalf("unexpected option count: got %d, want 4", n)
	}
}
