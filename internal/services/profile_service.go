package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/profile-service/internal/events"
	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
	"github.com/SAP-F-2025/profile-service/internal/validator"
)

type profileService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewProfileService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) ProfileService {
	return &profileService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== CORE CRUD OPERATIONS =====

func (s *profileService) Create(ctx context.Context, req *CreateProfileRequest) (*models.User, error) {
	s.logger.Info("Creating profile", "email", req.Email, "user_type", req.UserType)

	if errs := s.validator.ValidateProfileCreate(req); len(errs) > 0 {
		return nil, errs
	}

	var userID uint
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if _, err := txRepo.Profile().GetByEmail(ctx, nil, req.Email); err == nil {
			return ErrEmailExists
		} else if !repositories.IsNotFoundError(err) {
			return fmt.Errorf("email check failed: %w", err)
		}

		user := &models.User{
			Name:      req.Name,
			Email:     req.Email,
			Bio:       req.Bio,
			Location:  req.Location,
			Score:     req.Score,
			TestCount: req.TestCount,
			PhoneNo:   req.PhoneNo,
			UserType:  req.UserType,
		}

		if err := txRepo.Profile().Create(ctx, nil, user); err != nil {
			if repositories.IsDuplicateError(err) {
				return ErrEmailExists
			}
			return fmt.Errorf("failed to create profile: %w", err)
		}

		if req.Education != nil {
			education := &models.Education{
				UserID:      user.UserID,
				Degree:      req.Education.Degree,
				Institution: req.Education.Institution,
				Year:        req.Education.Year,
			}
			if err := txRepo.Education().Create(ctx, nil, education); err != nil {
				return fmt.Errorf("failed to create education: %w", err)
			}
		}

		userID = user.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.repo.InvalidateProfile(ctx, userID)

	user, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewProfileEvent(events.EventProfileCreated, user))
	s.logger.Info("Profile created", "user_id", user.UserID)

	return user, nil
}

func (s *profileService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getProfile(ctx, id)
}

func (s *profileService) List(ctx context.Context, filters repositories.ProfileFilters) ([]*models.User, error) {
	users, err := s.repo.Profile().List(ctx, nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return users, nil
}

func (s *profileService) Update(ctx context.Context, id uint, req *UpdateProfileRequest) (*models.User, error) {
	s.logger.Info("Updating profile", "user_id", id)

	if errs := s.validator.ValidateProfileUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		user, err := txRepo.Profile().GetByID(ctx, nil, id)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("failed to get profile: %w", err)
		}

		if req.Email != nil && *req.Email != user.Email {
			exists, err := txRepo.Profile().ExistsByEmail(ctx, nil, *req.Email)
			if err != nil {
				return fmt.Errorf("email check failed: %w", err)
			}
			if exists {
				return ErrEmailExists
			}
		}

		applyProfileUpdate(user, req)
		user.Education = nil // education rows are managed below, not by Save

		if err := txRepo.Profile().Update(ctx, nil, user); err != nil {
			if repositories.IsDuplicateError(err) {
				return ErrEmailExists
			}
			return fmt.Errorf("failed to update profile: %w", err)
		}

		// Replace-not-merge: the new education payload supersedes every
		// existing row, atomically with the column updates above.
		if req.Education != nil {
			if err := txRepo.Education().DeleteByUserID(ctx, nil, id); err != nil {
				return fmt.Errorf("failed to delete education: %w", err)
			}
			education := &models.Education{
				UserID:      id,
				Degree:      req.Education.Degree,
				Institution: req.Education.Institution,
				Year:        req.Education.Year,
			}
			if err := txRepo.Education().Create(ctx, nil, education); err != nil {
				return fmt.Errorf("failed to create education: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.repo.InvalidateProfile(ctx, id)

	user, err := s.getProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewProfileEvent(events.EventProfileUpdated, user))

	return user, nil
}

func (s *profileService) Delete(ctx context.Context, id uint) error {
	s.logger.Info("Deleting profile", "user_id", id)

	user, err := s.getProfile(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Profile().Delete(ctx, nil, id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	s.publishEvent(ctx, events.NewProfileEvent(events.EventProfileDeleted, user))
	s.logger.Info("Profile deleted", "user_id", id)

	return nil
}

// ===== SCORE AND TEST COUNT OPERATIONS =====

func (s *profileService) IncrementTestCount(ctx context.Context, id uint) (*models.User, error) {
	if err := s.repo.Profile().IncrementTestCount(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to increment test count: %w", err)
	}

	user, err := s.getProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewProfileEvent(events.EventProfileUpdated, user))

	return user, nil
}

func (s *profileService) UpdateScore(ctx context.Context, id uint, newScore float64) (*models.User, error) {
	// Range check happens before any storage access
	if errs := s.validator.ValidateScore(newScore); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Profile().ExistsByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("profile check failed: %w", err)
	}
	if !exists {
		return nil, ErrProfileNotFound
	}

	if err := s.repo.Profile().UpdateColumns(ctx, nil, id, map[string]interface{}{"score": newScore}); err != nil {
		return nil, fmt.Errorf("failed to update score: %w", err)
	}

	user, err := s.getProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	ev := events.NewProfileEvent(events.EventProfileScoreUpdated, user)
	ev.Score = &newScore
	s.publishEvent(ctx, ev)

	return user, nil
}

// ===== HELPER METHODS =====

func (s *profileService) getProfile(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.Profile().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if user.Education == nil {
		user.Education = []models.Education{}
	}
	return user, nil
}

func (s *profileService) publishEvent(ctx context.Context, event events.ProfileEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProfileEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish profile event",
			"error", err,
			"event_type", event.EventType,
			"user_id", event.UserID)
	}
}

// applyProfileUpdate copies every field present in the request onto the user.
// Absent fields stay untouched; a present empty value is applied as-is.
func applyProfileUpdate(user *models.User, req *UpdateProfileRequest) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.Score != nil {
		user.Score = *req.Score
	}
	if req.TestCount != nil {
		user.TestCount = *req.TestCount
	}
	if req.PhoneNo != nil {
		user.PhoneNo = req.PhoneNo
	}
	if req.UserType != nil {
		user.UserType = *req.UserType
	}
}
