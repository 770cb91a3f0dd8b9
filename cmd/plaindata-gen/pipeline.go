package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"plaindata/internal/analyze"
	"plaindata/internal/manifest"
	"plaindata/internal/plan"
)

// buildPlan loads the manifest at path, analyzes its packages and plans
// every type. Manifest problems come back as plan diagnostics so the caller
// reports them the same way as planning problems.
func buildPlan(path string, logger *slog.Logger) (*plan.Plan, error) {
	mf, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}

	validation := manifest.Validate(mf)
	if validation.HasErrors() {
		return &plan.Plan{Diagnostics: *validation}, nil
	}

	patterns := make([]string, 0, len(mf.Packages))
	for _, pkg := range mf.Packages {
		patterns = append(patterns, pkg.Path)
	}

	logger.Debug("loading packages", "manifest", path, "packages", patterns)

	analyzer := analyze.NewAnalyzer(
		analyze.WithDir(filepath.Dir(path)),
		analyze.WithLogger(logger),
	)

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	p := plan.NewPlanner(graph, logger).Plan(mf)
	p.Diagnostics.Merge(*validation)

	return p, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
