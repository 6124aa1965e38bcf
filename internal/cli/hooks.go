package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wedgeplot/pkg/observability"
)

// logHooks reports pipeline and output events to the CLI logger at debug
// level, so they only show up with --verbose.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.OutputHooks   = (*logHooks)(nil)
)

func (h *logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("load started", "path", path)
}

func (h *logHooks) OnLoadComplete(_ context.Context, path string, sectors int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("load complete", "path", path, "sectors", sectors, "duration", d)
}

func (h *logHooks) OnAssembleStart(_ context.Context, mode string, sectors int) {
	h.logger.Debug("assemble started", "mode", mode, "sectors", sectors)
}

func (h *logHooks) OnAssembleComplete(_ context.Context, mode string, primitives int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("assemble failed", "mode", mode, "err", err)
		return
	}
	h.logger.Debug("assemble complete", "mode", mode, "primitives", primitives, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render started", "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h *logHooks) OnWrite(_ context.Context, format, path string, size int) {
	h.logger.Debug("wrote file", "format", format, "path", path, "bytes", size)
}

func (h *logHooks) OnWriteError(_ context.Context, format, path string, err error) {
	h.logger.Error("write failed", "format", format, "path", path, "err", err)
}
