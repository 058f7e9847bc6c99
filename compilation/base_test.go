package compilation

import (
	"context"
	"testing"

	"github.com/robbyt/go-sassbind/options"
	"github.com/stretchr/testify/require"
)

func TestNewBaseContext(t *testing.T) {
	t.Parallel()

	c, err := NewBaseContext()
	require.Nil(t, c)
	require.ErrorIs(t, err, ErrNotSupported)
	require.ErrorIs(t, err, options.ErrType)
	require.Contains(t, err.Error(), "abstract interface")
	require.Contains(t, err.Error(), "StringContext")
}

func TestBaseContext_Methods(t *testing.T) {
	t.Parallel()

	var c BaseContext

	t.Run("compile", func(t *testing.T) {
		css, err := c.Compile(context.Background())
		require.ErrorIs(t, err, ErrNotImplemented)
		require.Contains(t, err.Error(), "FolderContext")
		require.Empty(t, css)
	})

	t.Run("options", func(t *testing.T) {
		opts, err := c.Options()
		require.ErrorIs(t, err, ErrNotImplemented)
		require.Nil(t, opts)
	})

	t.Run("through the interface", func(t *testing.T) {
		var ctx Context = &c
		_, err := ctx.Compile(context.Background())
		require.ErrorIs(t, err, ErrNotImplemented)
		require.NotErrorIs(t, err, ErrNotSupported)
	})
}
