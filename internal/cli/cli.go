// Package cli implements the tptdiagram command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tradingpt/tptdiagram/pkg/cache"
	"github.com/tradingpt/tptdiagram/pkg/errors"
	"github.com/tradingpt/tptdiagram/pkg/observability"
	"github.com/tradingpt/tptdiagram/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "tptdiagram"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
//
// Out receives command results (banners, DOT source, tables) and must stay
// free of log noise. Status lines and logs go to Err.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
	Err    io.Writer
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level. At debug level the pipeline and
// cache hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheOpts selects the artifact cache backend.
type cacheOpts struct {
	noCache bool   // disable caching entirely
	url     string // redis:// URL; empty selects the file cache
}

// newRunner creates a pipeline runner for CLI use. The caller closes
// runner.Cache.
func (c *CLI) newRunner(ctx context.Context, opts cacheOpts) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, opts)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, opts cacheOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.url != "":
		if !strings.HasPrefix(opts.url, "redis://") && !strings.HasPrefix(opts.url, "rediss://") {
			return nil, errors.New(errors.ErrCodeUnsupported, "cache url %q: only redis:// and rediss:// are supported", opts.url)
		}
		rc, err := cache.NewRedisCache(ctx, opts.url)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "open redis cache")
		}
		c.Logger.Debug("using redis cache")
		return rc, nil
	}

	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache(), nil
	}
	c.Logger.Debug("using file cache", "dir", dir)
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/tptdiagram/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
