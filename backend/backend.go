// Package backend defines the contract between a compilation context and the
// native compiler it drives.
package backend

import (
	"context"
	"io"

	"github.com/robbyt/go-sassbind/options"
)

// Request is one compilation handed to a Backend.
type Request struct {
	// Options is the native options structure built by options.Options.Native.
	Options options.Native

	// Source is the stylesheet to compile.
	Source io.Reader

	// Path is the file Source was read from, or "" for inline source. A
	// backend uses it to resolve imports relative to the file.
	Path string
}

// Backend compiles a request into CSS text. Compile errors from the native
// compiler are returned as-is; callers wrap them with position information.
type Backend interface {
	Compile(ctx context.Context, req Request) (string, error)
}

// Func adapts an ordinary function to the Backend interface.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Compile(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
