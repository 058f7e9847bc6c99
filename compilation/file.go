package compilation

import (
	"context"
	"fmt"

	"github.com/robbyt/go-sassbind/loader"
	"github.com/robbyt/go-sassbind/options"
)

// FileContext compiles a single stylesheet file. Imports are resolved
// relative to the file and then through the include paths.
type FileContext struct {
	opts   *options.Options
	source *loader.FromDisk
	cfg    *config
}

// NewFileContext prepares the file at path for compilation with opts. The
// path must be absolute; it may carry a file:// prefix. The file is only
// opened by Compile.
func NewFileContext(path string, opts *options.Options, ctxOpts ...Option) (*FileContext, error) {
	if err := requireOptions(opts); err != nil {
		return nil, err
	}

	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}

	cfg, err := newConfig("FileContext", ctxOpts)
	if err != nil {
		return nil, err
	}

	return &FileContext{opts: opts, source: l, cfg: cfg}, nil
}

func (c *FileContext) Options() (*options.Options, error) {
	return c.opts, nil
}

// Path returns the file being compiled.
func (c *FileContext) Path() string {
	return c.source.Path()
}

// Compile returns the CSS generated from the file.
func (c *FileContext) Compile(ctx context.Context) (string, error) {
	return compileLoader(ctx, c.cfg.backend, c.cfg.logger, c.opts, c.source, c.source.Path())
}

func (c *FileContext) String() string {
	return fmt.Sprintf("compilation.FileContext{Path: %s}", c.source.Path())
}
