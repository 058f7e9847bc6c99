package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/robbyt/go-sassbind/internal/helpers"
)

// FromDisk reads a stylesheet from an absolute path.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk accepts an absolute path, optionally prefixed with file://.
// The file is not opened until GetReader is called.
func NewFromDisk(path string) (*FromDisk, error) {
	u, err := parseFileURL(path)
	if err != nil {
		return nil, err
	}
	return &FromDisk{
		path:      u.Path,
		sourceURL: u,
	}, nil
}

// parseFileURL validates an absolute local path and returns it as a file URL.
func parseFileURL(path string) (*url.URL, error) {
	path = strings.TrimPrefix(path, "file://")

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}

	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: relative paths are not supported", ErrSourceNotAvailable)
	}

	path = filepath.Clean(path)
	if path == "/" || path == "\\" {
		return nil, fmt.Errorf("%w: path is empty or invalid", ErrSourceNotAvailable)
	}

	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u, nil
}

func (l *FromDisk) String() string {
	noDigest := fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)

	reader, err := l.GetReader()
	if err != nil {
		return noDigest
	}
	defer func() { _ = reader.Close() }()

	digest, err := helpers.SHA256Reader(reader)
	if err != nil {
		return noDigest
	}
	return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.path, digest[:8])
}

// Path returns the cleaned filesystem path.
func (l *FromDisk) Path() string {
	return filepath.FromSlash(l.path)
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	return os.Open(l.Path())
}

func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
