package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tradingpt/tptdiagram/pkg/cache"
	"github.com/tradingpt/tptdiagram/pkg/errors"
	"github.com/tradingpt/tptdiagram/pkg/observability"
	"github.com/tradingpt/tptdiagram/pkg/render"
)

const artifactKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute validates the diagram, renders it and writes the artifact.
// No file is written when validation or rendering fails.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	d := opts.Diagram
	if err := d.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Diagram: d.Stats()}

	renderStart := time.Now()
	data, hit, err := r.Render(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheHit = hit

	r.Logger.Debug("rendered diagram",
		"diagram", d.Name,
		"format", opts.Format,
		"bytes", len(data),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	writeStart := time.Now()
	path := filepath.Join(opts.OutputDir, opts.OutputName())
	err = writeArtifact(path, data)
	observability.Pipeline().OnWrite(ctx, d.Name, path, len(data), err)
	if err != nil {
		return nil, err
	}
	result.Path = path
	result.Size = len(data)
	result.Stats.WriteTime = time.Since(writeStart)

	return result, nil
}

// Render produces the artifact bytes for opts, consulting the cache unless
// opts.Refresh is set. The bool result reports a cache hit.
func (r *Runner) Render(ctx context.Context, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	d := opts.Diagram

	dot := d.ToDOT(opts.DOTOptions())
	key := cache.ArtifactKey(dot, opts.Format)

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "diagram", d.Name, "err", err)
		case hit && len(data) > 0:
			observability.Cache().OnCacheHit(ctx, artifactKeyType)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, artifactKeyType)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, d.Name, opts.Format)
	start := time.Now()
	data, err := render.Render(ctx, dot, opts.Format)
	hooks.OnRenderComplete(ctx, d.Name, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Content-addressed keys never go stale, so entries carry no TTL.
	if err := r.Cache.Set(ctx, key, data, 0); err != nil {
		r.Logger.Warn("cache write failed", "diagram", d.Name, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, artifactKeyType, len(data))
	}
	return data, false, nil
}

// writeArtifact replaces path with data, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

// String implements fmt.Stringer for log output.
func (r *Result) String() string {
	return fmt.Sprintf("%s (%d bytes, %d nodes, %d edges)", r.Path, r.Size, r.Diagram.Nodes, r.Diagram.Edges)
}
