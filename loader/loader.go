// Package loader acquires stylesheet source for a compilation context:
// from an inline string, a single file on disk, or every stylesheet under a
// directory.
package loader

import (
	"io"
	"net/url"
)

// Loader provides source for a single compilation.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
