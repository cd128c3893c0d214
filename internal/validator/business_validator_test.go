package validator

import (
	"testing"

	"github.com/SAP-F-2025/profile-service/internal/models"
)

func validCreate() *models.ProfileCreateRequest {
	return &models.ProfileCreateRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Score:    85.5,
		UserType: models.TypeStudent,
	}
}

func TestValidator_ValidateProfileCreate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		mutate    func(*models.ProfileCreateRequest)
		wantField string
	}{
		{name: "valid"},
		{name: "valid professor", mutate: func(r *models.ProfileCreateRequest) { r.UserType = models.TypeProfessor }},
		{name: "valid teacher", mutate: func(r *models.ProfileCreateRequest) { r.UserType = models.TypeTeacher }},
		{name: "missing name", mutate: func(r *models.ProfileCreateRequest) { r.Name = "" }, wantField: "name"},
		{name: "name too short", mutate: func(r *models.ProfileCreateRequest) { r.Name = "J" }, wantField: "name"},
		{name: "malformed email", mutate: func(r *models.ProfileCreateRequest) { r.Email = "nope" }, wantField: "email"},
		{name: "unknown user type", mutate: func(r *models.ProfileCreateRequest) { r.UserType = "admin" }, wantField: "user_type"},
		{name: "score below range", mutate: func(r *models.ProfileCreateRequest) { r.Score = -1 }, wantField: "score"},
		{name: "score above range", mutate: func(r *models.ProfileCreateRequest) { r.Score = 100.1 }, wantField: "score"},
		{name: "negative test count", mutate: func(r *models.ProfileCreateRequest) { r.TestCount = -5 }, wantField: "test_count"},
		{name: "education year too early", mutate: func(r *models.ProfileCreateRequest) {
			r.Education = &models.EducationRequest{Degree: "BSc", Institution: "MIT", Year: 1899}
		}, wantField: "year"},
		{name: "education missing degree", mutate: func(r *models.ProfileCreateRequest) {
			r.Education = &models.EducationRequest{Institution: "MIT", Year: 2000}
		}, wantField: "degree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			errs := v.ValidateProfileCreate(req)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}

			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, err := range errs {
				if err.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error on field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidator_ValidateProfileUpdate(t *testing.T) {
	v := New()

	name := "Jane"
	badEmail := "not-an-email"

	if errs := v.ValidateProfileUpdate(&models.ProfileUpdateRequest{Name: &name}); len(errs) != 0 {
		t.Errorf("valid partial update rejected: %v", errs)
	}

	if errs := v.ValidateProfileUpdate(&models.ProfileUpdateRequest{}); len(errs) != 0 {
		t.Errorf("empty update payload rejected: %v", errs)
	}

	if errs := v.ValidateProfileUpdate(&models.ProfileUpdateRequest{Email: &badEmail}); len(errs) == 0 {
		t.Error("malformed email accepted")
	}
}

func TestValidator_ValidateScore(t *testing.T) {
	v := New()

	for _, score := range []float64{0, 50, 95.5, 100} {
		if errs := v.ValidateScore(score); len(errs) != 0 {
			t.Errorf("ValidateScore(%v) = %v, want no errors", score, errs)
		}
	}
	for _, score := range []float64{-0.1, 100.1, 150} {
		if errs := v.ValidateScore(score); len(errs) == 0 {
			t.Errorf("ValidateScore(%v) accepted an out-of-range score", score)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "score", Message: "must be at most 100"},
	}
	want := "email: must be a valid email address; score: must be at most 100"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
