package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-sassbind/internal/helpers"
)

// FromString holds inline stylesheet source.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString trims content and rejects it when nothing is left.
func NewFromString(content string) (*FromString, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: %w: content is empty", ErrSourceNotAvailable, ErrInputEmpty)
	}

	u, err := url.Parse("string://inline/" + helpers.ShortDigest(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

// GetReader returns a fresh reader over the stored source on every call.
func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
