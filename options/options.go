// Package options holds the compilation settings handed to libsass and
// converts them to and from the native structure layout.
package options

import (
	"fmt"
)

// Native mirrors the libsass sass_options structure: an integer output
// style, a colon-joined include path list and an image path.
type Native struct {
	OutputStyle  int
	IncludePaths string
	ImagePath    string
}

// Options is an immutable set of compilation settings. Build one with New.
type Options struct {
	outputStyle  OutputStyle
	includePaths string
	imagePath    string
}

// New validates and stores the three compilation settings. All of them are
// required.
//
// includePaths is either a pre-joined string ("a:b:c"), stored verbatim,
// or a sequence ([]string or []any of strings) joined with ':' in order.
// nil and any other type are rejected with ErrType.
func New(outputStyle string, includePaths any, imagePath string) (*Options, error) {
	style, err := ParseOutputStyle(outputStyle)
	if err != nil {
		return nil, err
	}

	joined, err := joinIncludePathsValue(includePaths)
	if err != nil {
		return nil, err
	}

	return &Options{
		outputStyle:  style,
		includePaths: joined,
		imagePath:    imagePath,
	}, nil
}

// FromNative wraps a native structure without validating it. Reading the
// output style of a value with an unknown ordinal fails with
// ErrInvariantViolation.
func FromNative(n Native) *Options {
	return &Options{
		outputStyle:  OutputStyle(n.OutputStyle),
		includePaths: n.IncludePaths,
		imagePath:    n.ImagePath,
	}
}

// OutputStyle returns the label of the stored output style.
func (o *Options) OutputStyle() (string, error) {
	return o.outputStyle.Label()
}

// Style returns the stored output style value.
func (o *Options) Style() OutputStyle {
	return o.outputStyle
}

// IncludePaths returns the include paths split on ':'. Empty segments are
// never returned, see SplitIncludePaths.
func (o *Options) IncludePaths() []string {
	return SplitIncludePaths(o.includePaths)
}

// JoinedIncludePaths returns the include paths in their stored, joined form.
func (o *Options) JoinedIncludePaths() string {
	return o.includePaths
}

// ImagePath returns the image path exactly as given to New.
func (o *Options) ImagePath() string {
	return o.imagePath
}

// Native returns the structure consumed by the native compiler.
func (o *Options) Native() Native {
	return Native{
		OutputStyle:  int(o.outputStyle),
		IncludePaths: o.includePaths,
		ImagePath:    o.imagePath,
	}
}

func (o *Options) String() string {
	return fmt.Sprintf("options.Options{OutputStyle: %s, IncludePaths: %q, ImagePath: %q}",
		o.outputStyle, o.includePaths, o.imagePath)
}
