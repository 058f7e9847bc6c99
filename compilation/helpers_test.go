package compilation

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/robbyt/go-sassbind/backend"
	"github.com/robbyt/go-sassbind/options"
	"github.com/stretchr/testify/require"
)

// recordingBackend returns the source it was given wrapped in a comment and
// records every request.
type recordingBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	fail     map[string]error
}

type recordedRequest struct {
	Options options.Native
	Source  string
	Path    string
}

func (b *recordingBackend) Compile(_ context.Context, req backend.Request) (string, error) {
	src, err := io.ReadAll(req.Source)
	if err != nil {
		return "", err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, recordedRequest{Options: req.Options, Source: string(src), Path: req.Path})

	if err := b.fail[filepath.Base(req.Path)]; err != nil {
		return "", err
	}
	return "/* compiled */\n" + string(src), nil
}

func testOptions(t *testing.T) *options.Options {
	t.Helper()
	opts, err := options.New("compressed", []string{"/lib/scss", "/vendor"}, "/img")
	require.NoError(t, err)
	return opts
}

func testLogHandler() slog.Handler {
	return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
