// Package sassbind binds the libsass SASS/SCSS compiler.
//
// Build an options.Options, then hand it to one of the compilation
// contexts. The constructors here cover the common cases:
//
//	opts, err := options.New("compressed", []string{"scss/lib"}, "img")
//	if err != nil {
//	    return err
//	}
//	c, err := sassbind.FromFile("/srv/site/scss/main.scss", opts)
//	if err != nil {
//	    return err
//	}
//	css, err := c.Compile(ctx)
package sassbind

import (
	"context"
	"fmt"

	"github.com/robbyt/go-sassbind/compilation"
	"github.com/robbyt/go-sassbind/options"
)

// FromString creates a context that compiles inline source.
func FromString(source string, opts *options.Options, ctxOpts ...compilation.Option) (*compilation.StringContext, error) {
	return compilation.NewStringContext(source, opts, ctxOpts...)
}

// FromFile creates a context that compiles one stylesheet file.
func FromFile(path string, opts *options.Options, ctxOpts ...compilation.Option) (*compilation.FileContext, error) {
	return compilation.NewFileContext(path, opts, ctxOpts...)
}

// FromFolder creates a context that compiles every stylesheet under
// searchPath into outputPath.
func FromFolder(searchPath, outputPath string, opts *options.Options, ctxOpts ...compilation.Option) (*compilation.FolderContext, error) {
	return compilation.NewFolderContext(searchPath, outputPath, opts, ctxOpts...)
}

// FromConfigFile loads options from an HCL file and creates a context that
// compiles the stylesheet at sourcePath with them.
func FromConfigFile(configPath, sourcePath string, ctxOpts ...compilation.Option) (*compilation.FileContext, error) {
	opts, err := options.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	return compilation.NewFileContext(sourcePath, opts, ctxOpts...)
}

// CompileString builds the options, compiles source once and returns the
// CSS.
func CompileString(
	ctx context.Context,
	source string,
	outputStyle string,
	includePaths any,
	imagePath string,
	ctxOpts ...compilation.Option,
) (string, error) {
	opts, err := options.New(outputStyle, includePaths, imagePath)
	if err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}

	c, err := FromString(source, opts, ctxOpts...)
	if err != nil {
		return "", err
	}
	return c.Compile(ctx)
}
