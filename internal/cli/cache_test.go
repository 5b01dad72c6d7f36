package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tradingpt/tptdiagram/pkg/cache"
	"github.com/tradingpt/tptdiagram/pkg/errors"
)

func TestCachePathCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	c, out, _ := testCLI()
	if err := run(c, "cache", "path"); err != nil {
		t.Fatalf("cache path: %v", err)
	}

	want := filepath.Join(xdg, appName)
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	fc, err := cache.NewFileCache(filepath.Join(xdg, appName))
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b"} {
		if err := fc.Set(context.Background(), k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	c, _, errOut := testCLI()
	if err := run(c, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(errOut.String(), "Cleared 2 cached entries") {
		t.Errorf("unexpected status output %q", errOut.String())
	}

	entries, _ := os.ReadDir(filepath.Join(xdg, appName))
	if len(entries) != 0 {
		t.Errorf("cache dir should be empty, has %d entries", len(entries))
	}
}

func TestCacheClearMissingDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "nothing-here"))

	c, _, errOut := testCLI()
	if err := run(c, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(errOut.String(), "Cache is empty") {
		t.Errorf("unexpected status output %q", errOut.String())
	}
}

func TestNewCacheSelection(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, _, _ := testCLI()
	ctx := context.Background()

	cc, err := c.newCache(ctx, cacheOpts{noCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.NullCache); !ok {
		t.Errorf("--no-cache should select NullCache, got %T", cc)
	}

	cc, err = c.newCache(ctx, cacheOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("default should select FileCache, got %T", cc)
	}

	_, err = c.newCache(ctx, cacheOpts{url: "memcached://localhost"})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("non-redis url error = %v, want UNSUPPORTED", err)
	}
}
