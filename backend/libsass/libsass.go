// Package libsass implements backend.Backend on top of the libsass C
// library through github.com/wellington/go-libsass. Building it requires
// cgo.
package libsass

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	golibsass "github.com/wellington/go-libsass"

	"github.com/robbyt/go-sassbind/backend"
	"github.com/robbyt/go-sassbind/options"
)

// Backend compiles stylesheets with libsass.
type Backend struct{}

// New returns a libsass backed compiler.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) String() string {
	return "libsass.Backend"
}

// Compile runs one libsass compilation. The context is only checked before
// the call; libsass itself cannot be interrupted.
func (b *Backend) Compile(ctx context.Context, req backend.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Source == nil {
		return "", fmt.Errorf("%w: request has no source", backend.ErrInvalidRequest)
	}

	style, err := outputStyle(req.Options.OutputStyle)
	if err != nil {
		return "", err
	}

	syntax := golibsass.SCSSSyntax
	if filepath.Ext(req.Path) == ".sass" {
		syntax = golibsass.SassSyntax
	}

	// Path and ImgDir are no-ops for empty strings.
	var out bytes.Buffer
	comp, err := golibsass.New(&out, req.Source,
		golibsass.OutputStyle(style),
		golibsass.IncludePaths(options.SplitIncludePaths(req.Options.IncludePaths)),
		golibsass.ImgDir(req.Options.ImagePath),
		golibsass.Path(req.Path),
		golibsass.WithSyntax(syntax),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create libsass compiler: %w", err)
	}
	if err := comp.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// outputStyle maps an options ordinal onto the go-libsass constant.
func outputStyle(v int) (int, error) {
	switch options.OutputStyle(v) {
	case options.Nested:
		return golibsass.NESTED_STYLE, nil
	case options.Expanded:
		return golibsass.EXPANDED_STYLE, nil
	case options.Compact:
		return golibsass.COMPACT_STYLE, nil
	case options.Compressed:
		return golibsass.COMPRESSED_STYLE, nil
	}
	return 0, fmt.Errorf("%w: output_style is invalid (%d)", options.ErrInvariantViolation, v)
}
