package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/profile-service/internal/cache"
	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
)

type healthService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewHealthService(repo repositories.Repository, logger *slog.Logger) HealthService {
	return &healthService{
		repo:   repo,
		logger: logger,
	}
}

// Check pings storage and returns a live user row count. Only storage
// failures make the check fail; the cache is optional and merely reported.
func (s *healthService) Check(ctx context.Context) (*models.HealthResponse, error) {
	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Error("Health check failed", "error", err)
		return nil, fmt.Errorf("storage unreachable: %w", err)
	}

	count, err := s.repo.Profile().Count(ctx, nil)
	if err != nil {
		s.logger.Error("Health check count failed", "error", err)
		return nil, fmt.Errorf("storage unreachable: %w", err)
	}

	cacheStatus := "connected"
	if err := s.repo.PingCache(ctx); err != nil {
		if errors.Is(err, cache.ErrCacheNotAvailable) {
			cacheStatus = "disabled"
		} else {
			s.logger.Warn("Cache unreachable", "error", err)
			cacheStatus = "unavailable"
		}
	}

	return &models.HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Cache:     cacheStatus,
		UserCount: count,
	}, nil
}
