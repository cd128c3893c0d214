package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
)

type educationRepository struct {
	db *gorm.DB
}

func NewEducationPostgreSQL(db *gorm.DB) repositories.EducationRepository {
	return &educationRepository{db: db}
}

func (r *educationRepository) Create(ctx context.Context, tx *gorm.DB, education *models.Education) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(education).Error; err != nil {
		return handleDBError(err, "create education")
	}
	return nil
}

func (r *educationRepository) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Education{}).Error; err != nil {
		return handleDBError(err, "delete education by user id")
	}
	return nil
}

func (r *educationRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}
