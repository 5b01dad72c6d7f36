package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements PipelineHooks and CacheHooks by writing debug records
// to a charmbracelet logger. The CLI registers it in verbose mode.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, or to the default logger
// when logger is nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnRenderStart(_ context.Context, diagram, format string) {
	h.Logger.Debug("render start", "diagram", diagram, "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, diagram, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "diagram", diagram, "format", format, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render done", "diagram", diagram, "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnWrite(_ context.Context, diagram, path string, size int, err error) {
	if err != nil {
		h.Logger.Debug("write failed", "diagram", diagram, "path", path, "err", err)
		return
	}
	h.Logger.Debug("wrote artifact", "diagram", diagram, "path", path, "bytes", size)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
