package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/profile-service/internal/events"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
	"github.com/SAP-F-2025/profile-service/internal/validator"
)

// DefaultServiceManager wires all services over a shared repository.
type DefaultServiceManager struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator

	profileService ProfileService
	healthService  HealthService
	exportService  ExportService
}

func NewDefaultServiceManager(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) ServiceManager {
	return &DefaultServiceManager{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Initialize constructs all service instances.
func (m *DefaultServiceManager) Initialize(_ context.Context) error {
	m.profileService = NewProfileService(m.repo, m.publisher, m.logger, m.validator)
	m.healthService = NewHealthService(m.repo, m.logger)
	m.exportService = NewExportService(m.repo, m.logger)

	m.logger.Info("Services initialized")
	return nil
}

// Shutdown releases service-owned resources.
func (m *DefaultServiceManager) Shutdown(_ context.Context) error {
	if m.publisher != nil {
		if err := m.publisher.Close(); err != nil {
			m.logger.Error("Failed to close event publisher", "error", err)
			return err
		}
	}
	return nil
}

func (m *DefaultServiceManager) Profile() ProfileService {
	return m.profileService
}

func (m *DefaultServiceManager) Health() HealthService {
	return m.healthService
}

func (m *DefaultServiceManager) Export() ExportService {
	return m.exportService
}
