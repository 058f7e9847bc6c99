package compilation

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/robbyt/go-sassbind/backend"
	"github.com/robbyt/go-sassbind/backend/libsass"
	"github.com/robbyt/go-sassbind/internal/helpers"
)

// Option configures a compilation context.
type Option func(*config) error

type config struct {
	backend    backend.Backend
	logHandler slog.Handler
	logger     *slog.Logger
}

// WithBackend sets the compiler the context drives. The default is the
// libsass backend.
func WithBackend(b backend.Backend) Option {
	return func(c *config) error {
		if b == nil {
			return errors.New("backend cannot be nil")
		}
		c.backend = b
		return nil
	}
}

// WithLogHandler sets the log handler. The context adds its own groups.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *config) error {
		if handler == nil {
			return errors.New("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger sets a logger that is used as-is, without extra groups.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

// newConfig applies opts in order, fills in defaults and prepares the
// logger for the named context.
func newConfig(name string, opts []Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying context option: %w", err)
		}
	}
	c.applyDefaults()
	c.setupLogger(name)
	return c, nil
}

func (c *config) applyDefaults() {
	if c.backend == nil {
		c.backend = libsass.New()
	}
	if c.logHandler == nil && c.logger == nil {
		c.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}
}

func (c *config) setupLogger(name string) {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
		return
	}
	c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "sass", name)
}
