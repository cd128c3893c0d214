package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/profile-service/internal/cache"
	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
)

type profileRepository struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager

	// bound marks a repository constructed inside WithTransaction. A bound
	// repository never touches the cache: its reads must see uncommitted tx
	// state, and invalidating before commit would let a concurrent reader
	// re-populate the cache with the pre-commit row.
	bound bool
}

func NewProfilePostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ProfileRepository {
	return &profileRepository{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// ===== BASIC CRUD OPERATIONS =====

func (r *profileRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return r.handleDBError(err, "create profile")
	}

	r.invalidate(ctx, user.UserID)
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error) {
	if r.cacheable(tx) {
		var cached models.User
		if err := r.cacheManager.Profile.Get(ctx, fmt.Sprintf("id:%d", id), &cached); err == nil {
			return &cached, nil
		}
	}

	db := r.getDB(tx)
	var user models.User
	if err := db.WithContext(ctx).
		Preload("Education").
		First(&user, id).Error; err != nil {
		return nil, r.handleDBError(err, "get profile by id")
	}

	if r.cacheable(tx) {
		_ = r.cacheManager.Profile.Set(ctx, fmt.Sprintf("id:%d", id), &user, cache.ProfileCacheConfig.TTL)
	}

	return &user, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error) {
	db := r.getDB(tx)
	var user models.User
	if err := db.WithContext(ctx).
		Preload("Education").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, r.handleDBError(err, "get profile by email")
	}
	return &user, nil
}

func (r *profileRepository) Update(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Save(user).Error; err != nil {
		return r.handleDBError(err, "update profile")
	}

	r.invalidate(ctx, user.UserID)
	return nil
}

func (r *profileRepository) UpdateColumns(ctx context.Context, tx *gorm.DB, id uint, columns map[string]interface{}) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", id).
		Updates(columns).Error; err != nil {
		return r.handleDBError(err, "update profile columns")
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := r.getDB(tx)
	// Education rows go with the user via the cascade FK
	if err := db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return r.handleDBError(err, "delete profile")
	}

	r.invalidate(ctx, id)
	return nil
}

// ===== QUERY OPERATIONS =====

func (r *profileRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.ProfileFilters) ([]*models.User, error) {
	db := r.getDB(tx)
	var users []*models.User

	query := db.WithContext(ctx).Model(&models.User{}).Preload("Education")
	query = r.applyProfileFilters(query, filters)

	if err := query.Order("user_id").Find(&users).Error; err != nil {
		return nil, r.handleDBError(err, "list profiles")
	}

	return users, nil
}

func (r *profileRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	if r.cacheable(tx) {
		var cached int64
		if err := r.cacheManager.Stats.Get(ctx, "user_count", &cached); err == nil {
			return cached, nil
		}
	}

	db := r.getDB(tx)
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, r.handleDBError(err, "count profiles")
	}

	if r.cacheable(tx) {
		_ = r.cacheManager.Stats.Set(ctx, "user_count", count, cache.StatsCacheConfig.TTL)
	}

	return count, nil
}

func (r *profileRepository) IncrementTestCount(ctx context.Context, tx *gorm.DB, id uint) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", id).
		Update("test_count", gorm.Expr("test_count + ?", 1))
	if result.Error != nil {
		return r.handleDBError(result.Error, "increment test count")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// ===== EXISTENCE CHECKS =====

func (r *profileRepository) ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	key := fmt.Sprintf("user:%d", id)
	if r.cacheable(tx) {
		var cached bool
		if err := r.cacheManager.Exists.Get(ctx, key, &cached); err == nil && cached {
			return true, nil
		}
	}

	db := r.getDB(tx)
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", id).
		Count(&count).Error; err != nil {
		return false, r.handleDBError(err, "check profile exists by id")
	}

	// Only positive results are cached; absence is cheap to re-check
	if r.cacheable(tx) && count > 0 {
		_ = r.cacheManager.Exists.Set(ctx, key, true, cache.ExistsCacheConfig.TTL)
	}

	return count > 0, nil
}

func (r *profileRepository) ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	key := fmt.Sprintf("email:%s", email)
	if r.cacheable(tx) {
		var cached bool
		if err := r.cacheManager.Exists.Get(ctx, key, &cached); err == nil && cached {
			return true, nil
		}
	}

	db := r.getDB(tx)
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, r.handleDBError(err, "check profile exists by email")
	}

	if r.cacheable(tx) && count > 0 {
		_ = r.cacheManager.Exists.Set(ctx, key, true, cache.ExistsCacheConfig.TTL)
	}

	return count > 0, nil
}

// ===== HELPER METHODS =====

func (r *profileRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// cacheable reports whether cache reads and writes are safe: never inside a
// transaction, where uncommitted state must not leak into the cache.
func (r *profileRepository) cacheable(tx *gorm.DB) bool {
	return tx == nil && !r.bound
}

func (r *profileRepository) invalidate(ctx context.Context, id uint) {
	if r.bound {
		// Deferred to after commit; see Repository.InvalidateProfile
		return
	}
	cache.InvalidateProfileCache(ctx, r.cacheManager, id)
}

func (r *profileRepository) handleDBError(err error, operation string) error {
	return handleDBError(err, operation)
}

func (r *profileRepository) applyProfileFilters(query *gorm.DB, filters repositories.ProfileFilters) *gorm.DB {
	if filters.UserType != nil {
		query = query.Where("user_type = ?", *filters.UserType)
	}
	if filters.Skip > 0 {
		query = query.Offset(filters.Skip)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	return query
}
