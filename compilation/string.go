package compilation

import (
	"context"
	"fmt"

	"github.com/robbyt/go-sassbind/loader"
	"github.com/robbyt/go-sassbind/options"
)

// StringContext compiles inline stylesheet source.
type StringContext struct {
	opts   *options.Options
	source *loader.FromString
	cfg    *config
}

// NewStringContext prepares source for compilation with opts. Source that
// is empty after trimming is rejected with loader.ErrSourceNotAvailable.
func NewStringContext(source string, opts *options.Options, ctxOpts ...Option) (*StringContext, error) {
	if err := requireOptions(opts); err != nil {
		return nil, err
	}

	l, err := loader.NewFromString(source)
	if err != nil {
		return nil, err
	}

	cfg, err := newConfig("StringContext", ctxOpts)
	if err != nil {
		return nil, err
	}

	return &StringContext{opts: opts, source: l, cfg: cfg}, nil
}

func (c *StringContext) Options() (*options.Options, error) {
	return c.opts, nil
}

// Compile returns the CSS generated from the inline source.
func (c *StringContext) Compile(ctx context.Context) (string, error) {
	return compileLoader(ctx, c.cfg.backend, c.cfg.logger, c.opts, c.source, "")
}

func (c *StringContext) String() string {
	return fmt.Sprintf("compilation.StringContext{Source: %s}", c.source.GetSourceURL())
}
