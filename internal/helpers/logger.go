// Package helpers contains small utilities shared by the binding packages.
package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger groups handler under component and returns it together with a
// logger that adds groupName, when set, as a second group. A nil handler is
// replaced by a text handler on stderr and a warning is logged through it.
//
// The returned handler carries the component group, so loggers derived from
// it stay grouped the same way.
func SetupLogger(handler slog.Handler, component string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil)
		slog.New(handler.WithGroup(component)).Warn("Handler is nil, using the default logger configuration.")
	}
	if component != "" {
		handler = handler.WithGroup(component)
	}

	if groupName == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(groupName))
}
