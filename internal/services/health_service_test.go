package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_Check(t *testing.T) {
	repo := newMockRepository()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewHealthService(repo, logger)

	health, err := svc.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "connected", health.Database)
	assert.Equal(t, "disabled", health.Cache)
	assert.Equal(t, int64(0), health.UserCount)
}

func TestHealthService_Check_CacheDown(t *testing.T) {
	repo := newMockRepository()
	repo.pingCacheErr = errors.New("connection refused")
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewHealthService(repo, logger)

	// A broken cache is reported but never fails the check
	health, err := svc.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "unavailable", health.Cache)
}

func TestHealthService_Check_CacheUp(t *testing.T) {
	repo := newMockRepository()
	repo.pingCacheErr = nil
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewHealthService(repo, logger)

	health, err := svc.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "connected", health.Cache)
}
