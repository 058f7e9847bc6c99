package compilation

import (
	"errors"
	"fmt"

	"github.com/robbyt/go-sassbind/options"
)

var (
	// ErrNotSupported is a type error: the abstract BaseContext cannot be
	// constructed.
	ErrNotSupported   = fmt.Errorf("%w: not supported", options.ErrType)
	ErrNotImplemented = errors.New("not implemented")
	ErrCompile        = errors.New("compilation failed")
)

const abstractRedirect = "use one of compilation.StringContext, compilation.FileContext, " +
	"or compilation.FolderContext instead"
