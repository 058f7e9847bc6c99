package loader

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extensions lists the file extensions FromDir treats as stylesheets.
var Extensions = []string{".scss", ".sass"}

// Entry is one stylesheet found by FromDir.
type Entry struct {
	// Rel is the path relative to the search directory, using the OS
	// separator.
	Rel    string
	Loader *FromDisk
}

// FromDir lists stylesheets under a search directory. Partials, files whose
// base name starts with '_', are skipped since they are only compiled
// through an import.
type FromDir struct {
	root      string
	sourceURL *url.URL
}

// NewFromDir accepts an absolute directory path, optionally prefixed with
// file://. The directory is only read by Entries.
func NewFromDir(path string) (*FromDir, error) {
	u, err := parseFileURL(path)
	if err != nil {
		return nil, err
	}
	return &FromDir{
		root:      filepath.FromSlash(u.Path),
		sourceURL: u,
	}, nil
}

func (l *FromDir) String() string {
	return fmt.Sprintf("loader.FromDir{Root: %s}", l.root)
}

// Root returns the search directory.
func (l *FromDir) Root() string {
	return l.root
}

func (l *FromDir) GetSourceURL() *url.URL {
	return l.sourceURL
}

// Entries walks the search directory and returns every non-partial
// stylesheet in lexical order.
func (l *FromDir) Entries() ([]Entry, error) {
	info, err := os.Stat(l.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceNotAvailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceNotAvailable, l.root)
	}

	var entries []Entry
	err = filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isStylesheet(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		fd, err := NewFromDisk(path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Rel: rel, Loader: fd})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", l.root, err)
	}
	return entries, nil
}

func isStylesheet(name string) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	return slices.Contains(Extensions, filepath.Ext(name))
}
