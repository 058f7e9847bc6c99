package mocks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/robbyt/go-sassbind/backend"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestBackendImplementsBackend verifies at compile time that the mock
// satisfies backend.Backend.
func TestBackendImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*Backend)(nil)
}

func TestBackend_Compile(t *testing.T) {
	t.Parallel()

	m := new(Backend)
	m.On("Compile", mock.Anything, mock.MatchedBy(func(req backend.Request) bool {
		return req.Path == "/ok.scss"
	})).Return("a{}", nil)
	m.On("Compile", mock.Anything, mock.Anything).Return("", errors.New("boom"))

	css, err := m.Compile(context.Background(), backend.Request{Source: strings.NewReader(""), Path: "/ok.scss"})
	require.NoError(t, err)
	require.Equal(t, "a{}", css)

	_, err = m.Compile(context.Background(), backend.Request{Path: "/bad.scss"})
	require.EqualError(t, err, "boom")

	m.AssertNumberOfCalls(t, "Compile", 2)
}
