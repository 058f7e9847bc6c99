package compilation

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/robbyt/go-sassbind/loader"
	"github.com/robbyt/go-sassbind/options"
)

// FolderContext compiles every stylesheet under a search directory and
// writes the CSS under an output directory, mirroring the layout:
// <search>/pages/home.scss becomes <output>/pages/home.css. Partials are
// skipped.
type FolderContext struct {
	opts       *options.Options
	search     *loader.FromDir
	outputPath string
	cfg        *config

	mu      sync.Mutex
	results map[string]string
}

// NewFolderContext prepares searchPath for compilation into outputPath.
// Both must be absolute. Neither is touched until Compile.
func NewFolderContext(searchPath, outputPath string, opts *options.Options, ctxOpts ...Option) (*FolderContext, error) {
	if err := requireOptions(opts); err != nil {
		return nil, err
	}

	search, err := loader.NewFromDir(searchPath)
	if err != nil {
		return nil, err
	}

	if outputPath == "" || !filepath.IsAbs(outputPath) {
		return nil, fmt.Errorf("%w: output path must be absolute: %q", options.ErrType, outputPath)
	}

	cfg, err := newConfig("FolderContext", ctxOpts)
	if err != nil {
		return nil, err
	}

	return &FolderContext{
		opts:       opts,
		search:     search,
		outputPath: filepath.Clean(outputPath),
		cfg:        cfg,
		results:    map[string]string{},
	}, nil
}

func (c *FolderContext) Options() (*options.Options, error) {
	return c.opts, nil
}

// Compile compiles the stylesheets in lexical order and stops at the first
// failure. Files written before the failure stay on disk and in Results.
// Each call replaces the results of the previous one. It returns the output
// directory.
func (c *FolderContext) Compile(ctx context.Context) (string, error) {
	logger := c.cfg.logger.With("search", c.search.Root(), "output", c.outputPath)

	results := map[string]string{}
	defer func() {
		c.mu.Lock()
		c.results = results
		c.mu.Unlock()
	}()

	entries, err := c.search.Entries()
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		logger.Warn("No stylesheets found")
	}

	for _, entry := range entries {
		css, err := compileLoader(ctx, c.cfg.backend, c.cfg.logger, c.opts, entry.Loader, entry.Loader.Path())
		if err != nil {
			return "", err
		}

		dst := filepath.Join(c.outputPath, cssName(entry.Rel))
		if err := writeCSS(dst, css); err != nil {
			return "", err
		}
		logger.Debug("Wrote stylesheet", "file", entry.Rel, "dst", dst)
		results[entry.Rel] = dst
	}

	return c.outputPath, nil
}

// Results maps each source compiled by the most recent Compile, relative to
// the search directory, to the CSS file written for it.
func (c *FolderContext) Results() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.results)
}

// OutputPath returns the output directory.
func (c *FolderContext) OutputPath() string {
	return c.outputPath
}

func (c *FolderContext) String() string {
	return fmt.Sprintf("compilation.FolderContext{Search: %s, Output: %s}", c.search.Root(), c.outputPath)
}

func cssName(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".css"
}

func writeCSS(dst, css string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(css), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
