package compilation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-sassbind/backend"
	"github.com/robbyt/go-sassbind/loader"
	"github.com/robbyt/go-sassbind/options"
)

// compileLoader reads the loader's source and hands it to the backend.
// path is passed through to the backend for import resolution.
func compileLoader(
	ctx context.Context,
	b backend.Backend,
	logger *slog.Logger,
	opts *options.Options,
	l loader.Loader,
	path string,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source := l.GetSourceURL().String()
	logger = logger.With("source", source)

	reader, err := l.GetReader()
	if err != nil {
		logger.Warn("Unable to read source", "error", err)
		return "", fmt.Errorf("failed to read source: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warn("Failed to close source reader", "error", err)
		}
	}()

	logger.Debug("Starting compilation")
	css, err := b.Compile(ctx, backend.Request{
		Options: opts.Native(),
		Source:  reader,
		Path:    path,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			logger.Debug("Compilation interrupted", "error", err)
			return "", err
		}
		logger.Warn("Compilation failed", "error", err)
		return "", newCompileError(source, err)
	}

	logger.Debug("Compilation completed", "bytes", len(css))
	return css, nil
}

func requireOptions(opts *options.Options) error {
	if opts == nil {
		return fmt.Errorf("%w: options must not be nil", options.ErrType)
	}
	return nil
}
