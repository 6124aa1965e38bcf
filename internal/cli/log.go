// Package cli implements the wedgeplot command-line interface.
//
// This package provides commands for rendering magnet layouts, inspecting
// the computed sector geometry and scaffolding new configuration files. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF or JSON diagrams from a TOML config
//   - inspect: Print the sector table of a config
//   - init: Write a starter config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which adds the
// pipeline hook events and per-stage timings. Loggers are passed through
// context.Context so the render command can report sector and primitive
// counts when it finishes.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/pipeline"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one render run and reports what it produced.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs the diagram size and file count with the elapsed wall time, then
// the per-stage timings at debug level.
func (p *progress) done(mode diagram.Mode, files int, stats pipeline.Stats) {
	p.logger.Infof("Rendered %s diagram to %d file(s): %d sectors, %d primitives (%s)",
		mode, files, stats.Sectors, stats.Primitives, time.Since(p.start).Round(time.Millisecond))
	p.logger.Debug("stage timings",
		"load", stats.LoadTime.Round(time.Microsecond),
		"assemble", stats.AssembleTime.Round(time.Microsecond),
		"render", stats.RenderTime.Round(time.Microsecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
