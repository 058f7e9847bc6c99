package compilation

import (
	"context"
	"fmt"

	"github.com/robbyt/go-sassbind/options"
)

// BaseContext is the abstract compilation context. NewBaseContext always
// fails, and the methods of a BaseContext obtained any other way return
// ErrNotImplemented.
type BaseContext struct{}

// NewBaseContext always returns ErrNotSupported.
func NewBaseContext() (*BaseContext, error) {
	return nil, fmt.Errorf(
		"%w: the compilation.BaseContext type cannot be instantiated because it's an abstract interface. %s",
		ErrNotSupported, abstractRedirect)
}

func (*BaseContext) Compile(context.Context) (string, error) {
	return "", abstractError()
}

func (*BaseContext) Options() (*options.Options, error) {
	return nil, abstractError()
}

func (*BaseContext) String() string {
	return "compilation.BaseContext"
}

func abstractError() error {
	return fmt.Errorf("%w: the compilation.BaseContext type is an abstract interface. %s",
		ErrNotImplemented, abstractRedirect)
}
