package mocks

import (
	"context"

	"github.com/robbyt/go-sassbind/backend"
	"github.com/stretchr/testify/mock"
)

// Backend is a mock implementation of backend.Backend for testing purposes.
type Backend struct {
	mock.Mock
}

// Compile is a mock implementation of the Compile method.
func (m *Backend) Compile(ctx context.Context, req backend.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
