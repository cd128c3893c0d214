package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/SAP-F-2025/profile-service/internal/models"
)

// Validator handles request validation and profile business rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with all custom rules registered.
func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerBusinessRules()

	return v
}

// Validate validates struct-level rules for any request type.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateProfileCreate validates profile creation rules.
func (v *Validator) ValidateProfileCreate(req *models.ProfileCreateRequest) ValidationErrors {
	return v.Validate(req)
}

// ValidateProfileUpdate validates partial-update rules. An empty payload is
// valid; the update is then a no-op returning the stored profile.
func (v *Validator) ValidateProfileUpdate(req *models.ProfileUpdateRequest) ValidationErrors {
	return v.Validate(req)
}

// ValidateScore validates a score value against the allowed range.
func (v *Validator) ValidateScore(score float64) ValidationErrors {
	if score < 0 || score > 100 {
		return ValidationErrors{{
			Field:   "new_score",
			Message: "score must be between 0 and 100",
			Value:   score,
			Rule:    "range",
		}}
	}
	return nil
}

func (v *Validator) registerBusinessRules() {
	// user_type must match the closed enumeration shared with the storage layer
	_ = v.validate.RegisterValidation("user_type", func(fl validator.FieldLevel) bool {
		return models.UserType(fl.Field().String()).Valid()
	})
}
