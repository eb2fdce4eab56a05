// Package cli implements the carquery command-line interface.
//
// The commands wrap the carquery client: lookups for years, makes, models,
// trims and single trim details, an interactive browser, a JSON facade
// server, and housekeeping for the response cache and config file. The CLI
// is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - years, makes, models, trims, model: one API command each
//   - browse: pick year, make and model interactively, then list trims
//   - serve: run the HTTP facade
//   - cache: manage the response cache
//   - config: write or print the configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every API query, cache lookup and HTTP request.
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
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Fetched 42 trims (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks writes observability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnQueryStart(ctx context.Context, command string) {
	h.logger.Debug("query", "cmd", command)
}

func (h *logHooks) OnQueryComplete(ctx context.Context, command string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("query failed", "cmd", command, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("query done", "cmd", command, "records", records, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(ctx context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(ctx context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(ctx context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "err", err)
}
