package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/pipeline"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output missing after SetLogLevel: %q", buf.String())
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done(diagram.ModeFull, 2, pipeline.Stats{Sectors: 20, Primitives: 102})

	out := buf.String()
	if !strings.Contains(out, "Rendered full diagram to 2 file(s): 20 sectors, 102 primitives") {
		t.Errorf("progress output %q missing summary", out)
	}
	if !strings.Contains(out, "ms)") {
		t.Errorf("progress output %q missing duration", out)
	}
	if strings.Contains(out, "stage timings") {
		t.Errorf("stage timings logged at info level: %q", out)
	}

	buf.Reset()
	prog = newProgress(newLogger(&buf, log.DebugLevel))
	prog.done(diagram.ModeQuadrant, 1, pipeline.Stats{AssembleTime: 3 * time.Millisecond})
	if !strings.Contains(buf.String(), "assemble=3ms") {
		t.Errorf("debug output %q missing stage timing", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without logger should return log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnLoadStart(ctx, "magnet.toml")
	h.OnLoadComplete(ctx, "magnet.toml", 5, time.Millisecond, nil)
	h.OnAssembleStart(ctx, "full", 5)
	h.OnAssembleComplete(ctx, "full", 102, time.Millisecond, nil)
	h.OnRenderStart(ctx, []string{"svg"})
	h.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, errors.New("boom"))
	h.OnWrite(ctx, "svg", "out.svg", 1024)
	h.OnWriteError(ctx, "png", "out.png", errors.New("disk full"))

	out := buf.String()
	for _, want := range []string{
		"load started", "load complete", "assemble started", "assemble complete",
		"render started", "render failed", "wrote file", "write failed", "disk full",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("hook output missing %q:\n%s", want, out)
		}
	}
}
