// Package cli implements the ganttcal command-line interface.
//
// This package provides commands for computing Gantt calendar headers from a
// date range or tick list, rendering them to files, previewing them in the
// terminal and serving them over HTTP. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, JSON, PDF or PNG headers
//   - layout: Print the computed header plan
//   - dates: Look up ISO weeks, month lengths and localized names
//   - preview: Interactive terminal preview
//   - serve: HTTP API for headers
//   - cache: Manage the local plan and artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. In verbose
// mode pipeline, cache and HTTP events are logged through observability
// hooks. Loggers are passed through context.Context.
//
// # Example
//
//	import "github.com/matzehuels/ganttcal/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 artifacts (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
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

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks implements the observability hook interfaces by writing debug logs.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnSeed(_ context.Context, mode string, tickCount int) {
	h.logger.Debug("seeded ticks", "mode", mode, "ticks", tickCount)
}

func (h *logHooks) OnLayoutStart(_ context.Context, mode string, tickCount int) {
	h.logger.Debug("layout start", "mode", mode, "ticks", tickCount)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, mode string, groups, units int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "mode", mode, "error", err)
		return
	}
	h.logger.Debug("layout done", "mode", mode, "groups", groups, "units", units, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, requestID, method, path string) {
	h.logger.Debug("request", "id", requestID, "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, requestID, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "id", requestID, "method", method, "path", path, "status", status, "duration", d)
}

func (h *logHooks) OnError(_ context.Context, requestID, method, path string, err error) {
	h.logger.Error("request failed", "id", requestID, "method", method, "path", path, "error", err)
}
