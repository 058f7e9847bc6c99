// Package compilation defines the compilation context: where stylesheet
// source comes from and which options it is compiled with.
//
// Three variants implement Context. StringContext compiles inline source,
// FileContext compiles a single file, and FolderContext compiles every
// stylesheet under a directory into an output directory. BaseContext is the
// abstract form of the interface and fails on every use.
package compilation

import (
	"context"

	"github.com/robbyt/go-sassbind/options"
)

// Context is the capability shared by every compilation context.
type Context interface {
	// Options returns the options the context compiles with.
	Options() (*options.Options, error)

	// Compile runs the native compiler and returns its output. For
	// FolderContext the output is the directory the CSS files were
	// written to.
	Compile(ctx context.Context) (string, error)
}

var (
	_ Context = (*BaseContext)(nil)
	_ Context = (*StringContext)(nil)
	_ Context = (*FileContext)(nil)
	_ Context = (*FolderContext)(nil)
)
