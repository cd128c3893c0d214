package repositories

import "context"

// Repository aggregates all repository interfaces of the profile service.
type Repository interface {
	// Profile domain
	Profile() ProfileRepository
	Education() EducationRepository

	// Transaction support. Repositories handed to fn bypass the cache;
	// call InvalidateProfile once the transaction has committed.
	WithTransaction(ctx context.Context, fn func(Repository) error) error
	InvalidateProfile(ctx context.Context, userID uint)

	// Health checks; PingCache failing does not imply storage is down
	Ping(ctx context.Context) error
	PingCache(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
