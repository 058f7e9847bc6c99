package libsass

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robbyt/go-sassbind/backend"
	"github.com/robbyt/go-sassbind/options"
	"github.com/stretchr/testify/require"
)

var _ backend.Backend = (*Backend)(nil)

func nativeOptions(t *testing.T, style string, includePaths any) options.Native {
	t.Helper()
	opts, err := options.New(style, includePaths, "")
	require.NoError(t, err)
	return opts.Native()
}

func TestBackend_Compile(t *testing.T) {
	t.Parallel()

	t.Run("compressed", func(t *testing.T) {
		css, err := New().Compile(context.Background(), backend.Request{
			Options: nativeOptions(t, "compressed", []string{}),
			Source:  strings.NewReader("#foo {\n#bar { width: 100px;\n}\n}"),
		})
		require.NoError(t, err)
		require.Contains(t, css, "#foo #bar{width:100px")
		require.NotContains(t, css, "\n  ")
	})

	t.Run("expanded", func(t *testing.T) {
		css, err := New().Compile(context.Background(), backend.Request{
			Options: nativeOptions(t, "expanded", []string{}),
			Source:  strings.NewReader("$w: 10px;\n.a { .b { width: $w * 2; } }"),
		})
		require.NoError(t, err)
		require.Contains(t, css, ".a .b {")
		require.Contains(t, css, "width: 20px;")
	})

	t.Run("include paths", func(t *testing.T) {
		lib := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(lib, "_colors.scss"), []byte("$brand: #336699;"), 0o644))

		css, err := New().Compile(context.Background(), backend.Request{
			Options: nativeOptions(t, "compressed", []string{lib}),
			Source:  strings.NewReader(`@import "colors"; a { color: $brand; }`),
		})
		require.NoError(t, err)
		require.Contains(t, css, "#336699")
	})

	t.Run("file path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "main.scss")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "_base.scss"), []byte("b { margin: 0; }"), 0o644))
		require.NoError(t, os.WriteFile(path, []byte(`@import "base";`), 0o644))

		f, err := os.Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = f.Close() })

		css, err := New().Compile(context.Background(), backend.Request{
			Options: nativeOptions(t, "compressed", ""),
			Source:  f,
			Path:    path,
		})
		require.NoError(t, err)
		require.Contains(t, css, "b{margin:0")
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := New().Compile(context.Background(), backend.Request{
			Options: nativeOptions(t, "nested", []string{}),
			Source:  strings.NewReader("a { color: ; "),
		})
		require.Error(t, err)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := New().Compile(context.Background(), backend.Request{
			Options: nativeOptions(t, "nested", []string{}),
		})
		require.ErrorIs(t, err, backend.ErrInvalidRequest)

		_, err = New().Compile(context.Background(), backend.Request{
			Options: options.Native{OutputStyle: 42},
			Source:  strings.NewReader("a{}"),
		})
		require.ErrorIs(t, err, options.ErrInvariantViolation)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New().Compile(ctx, backend.Request{
			Options: nativeOptions(t, "nested", []string{}),
			Source:  strings.NewReader("a{}"),
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestOutputStyle(t *testing.T) {
	t.Parallel()

	for _, label := range options.Styles() {
		style, err := options.ParseOutputStyle(label)
		require.NoError(t, err)

		got, err := outputStyle(int(style))
		require.NoError(t, err)
		require.Equal(t, int(style), got)
	}
}
