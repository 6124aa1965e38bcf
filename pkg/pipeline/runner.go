package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/io"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
	"github.com/matzehuels/wedgeplot/pkg/observability"
)

// Runner encapsulates pipeline execution with logging and hooks.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// ExecuteFile loads the TOML config at path and runs the pipeline on it.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	loadStart := time.Now()
	cfg, err := r.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	if opts.Source == "" {
		opts.Source = path
	}
	result, err := r.Execute(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// Execute runs the assemble → render pipeline on cfg.
func (r *Runner) Execute(ctx context.Context, cfg magnet.Config, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Config: cfg}

	// Stage 1: Assemble
	assembleStart := time.Now()
	d, err := r.Assemble(ctx, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Diagram = d
	result.Stats.AssembleTime = time.Since(assembleStart)
	result.Stats.Sectors = d.Sectors
	result.Stats.Primitives = len(d.Primitives)

	r.Logger.Info("assembled diagram",
		"mode", d.Mode,
		"sectors", d.Sectors,
		"primitives", len(d.Primitives),
		"duration", result.Stats.AssembleTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load decodes and validates the TOML config at path.
func (r *Runner) Load(ctx context.Context, path string) (magnet.Config, error) {
	if err := ctx.Err(); err != nil {
		return magnet.Config{}, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)

	start := time.Now()
	cfg, err := io.ImportTOML(path)
	hooks.OnLoadComplete(ctx, path, cfg.SectorCount(), time.Since(start), err)
	if err != nil {
		return magnet.Config{}, err
	}

	r.Logger.Debug("loaded config",
		"path", path,
		"sectors", cfg.SectorCount(),
		"span", cfg.TotalSpanDegrees)
	return cfg, nil
}

// Assemble builds the diagram for cfg in the requested mode.
func (r *Runner) Assemble(ctx context.Context, cfg magnet.Config, opts Options) (diagram.Diagram, error) {
	if err := opts.ValidateForAssemble(); err != nil {
		return diagram.Diagram{}, err
	}
	if err := ctx.Err(); err != nil {
		return diagram.Diagram{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnAssembleStart(ctx, opts.Mode, cfg.SectorCount())

	start := time.Now()
	d, err := diagram.Assemble(cfg, diagram.Mode(opts.Mode), opts.AssembleOptions()...)
	hooks.OnAssembleComplete(ctx, opts.Mode, len(d.Primitives), time.Since(start), err)
	return d, err
}

// Render generates artifacts for every requested format.
func (r *Runner) Render(ctx context.Context, d diagram.Diagram, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)

	start := time.Now()
	artifacts, err := Render(d, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)

	for format, data := range artifacts {
		r.Logger.Debug("rendered", "format", format, "bytes", len(data))
	}
	return artifacts, err
}
