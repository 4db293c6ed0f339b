package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type mockAdminStore struct {
	err   error
	calls int
}

func (m *mockAdminStore) Reset(context.Context) error {
	m.calls++
	return m.err
}

func TestAdminServiceResetWithoutConfiguredToken(t *testing.T) {
	mock := &mockAdminStore{}
	svc := NewAdminService(mock, "", zerolog.New(io.Discard))

	require.NoError(t, svc.Reset(context.Background(), ""))
	require.NoError(t, svc.Reset(context.Background(), "anything"))
	require.Equal(t, 2, mock.calls)
}

func TestAdminServiceResetTokenGuard(t *testing.T) {
	mock := &mockAdminStore{}
	svc := NewAdminService(mock, "s3cret", zerolog.New(io.Discard))

	require.ErrorIs(t, svc.Reset(context.Background(), ""), ErrResetUnauthorized)
	require.ErrorIs(t, svc.Reset(context.Background(), "wrong"), ErrResetUnauthorized)
	require.Zero(t, mock.calls)

	require.NoError(t, svc.Reset(context.Background(), "s3cret"))
	require.NoError(t, svc.Reset(context.Background(), "  s3cret  "))
	require.Equal(t, 2, mock.calls)
}

func TestAdminServiceResetPropagatesStoreError(t *testing.T) {
	mock := &mockAdminStore{err: errors.New("drop failed")}
	svc := NewAdminService(mock, "", zerolog.New(io.Discard))

	require.Error(t, svc.Reset(context.Background(), ""))
}
