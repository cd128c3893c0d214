package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/profile-service/internal/models"
)

// ProfileFilters defines filters for profile list queries.
type ProfileFilters struct {
	UserType *models.UserType `json:"user_type"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// ProfileRepository handles persistence of user profile rows.
type ProfileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error)
	Update(ctx context.Context, tx *gorm.DB, user *models.User) error
	UpdateColumns(ctx context.Context, tx *gorm.DB, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error

	List(ctx context.Context, tx *gorm.DB, filters ProfileFilters) ([]*models.User, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)

	// IncrementTestCount bumps test_count atomically with a SQL expression.
	IncrementTestCount(ctx context.Context, tx *gorm.DB, id uint) error

	ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

// EducationRepository handles persistence of education rows owned by users.
// Reads go through the user model's Education preload.
type EducationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, education *models.Education) error

	// DeleteByUserID removes every education row of a user; used by the
	// replace-not-merge update path.
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) error
}
