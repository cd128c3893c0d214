package services

import (
	"bytes"
	"context"

	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
)

// ===== REQUEST/RESPONSE DTOs =====

type CreateProfileRequest = models.ProfileCreateRequest
type UpdateProfileRequest = models.ProfileUpdateRequest

// ===== SERVICE INTERFACES =====

// ProfileService implements the profile CRUD contract.
type ProfileService interface {
	Create(ctx context.Context, req *CreateProfileRequest) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, filters repositories.ProfileFilters) ([]*models.User, error)
	Update(ctx context.Context, id uint, req *UpdateProfileRequest) (*models.User, error)
	Delete(ctx context.Context, id uint) error

	IncrementTestCount(ctx context.Context, id uint) (*models.User, error)
	UpdateScore(ctx context.Context, id uint, newScore float64) (*models.User, error)
}

// HealthService reports storage reachability.
type HealthService interface {
	Check(ctx context.Context) (*models.HealthResponse, error)
}

// ExportService renders profiles as a spreadsheet.
type ExportService interface {
	ExportProfiles(ctx context.Context, filters repositories.ProfileFilters) (*bytes.Buffer, error)
}

// ServiceManager wires and owns all services.
type ServiceManager interface {
	Profile() ProfileService
	Health() HealthService
	Export() ExportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
