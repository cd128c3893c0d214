package models

type EducationRequest struct {
	Degree      string `json:"degree" validate:"required,max=255"`
	Institution string `json:"institution" validate:"required,max=255"`
	Year        int    `json:"year" validate:"required,min=1900,max=2100"`
}

type ProfileCreateRequest struct {
	Name      string            `json:"name" validate:"required,min=2,max=100"`
	Email     string            `json:"email" validate:"required,email,max=255"`
	Bio       *string           `json:"bio" validate:"omitempty,max=500"`
	Location  *string           `json:"location" validate:"omitempty,max=255"`
	Score     float64           `json:"score" validate:"min=0,max=100"`
	TestCount int               `json:"test_count" validate:"min=0"`
	PhoneNo   *string           `json:"phone_no" validate:"omitempty,max=20"`
	UserType  UserType          `json:"user_type" validate:"required,user_type"`
	Education *EducationRequest `json:"education"`
}

// ProfileUpdateRequest carries a partial update. A field is applied iff it is
// present in the payload; absent fields leave the stored column untouched.
type ProfileUpdateRequest struct {
	Name      *string           `json:"name" validate:"omitempty,min=2,max=100"`
	Email     *string           `json:"email" validate:"omitempty,email,max=255"`
	Bio       *string           `json:"bio" validate:"omitempty,max=500"`
	Location  *string           `json:"location" validate:"omitempty,max=255"`
	Score     *float64          `json:"score" validate:"omitempty,min=0,max=100"`
	TestCount *int              `json:"test_count" validate:"omitempty,min=0"`
	PhoneNo   *string           `json:"phone_no" validate:"omitempty,max=20"`
	UserType  *UserType         `json:"user_type" validate:"omitempty,user_type"`
	Education *EducationRequest `json:"education"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	UserCount int64  `json:"user_count"`
}

type ServiceInfoResponse struct {
	Service  string `json:"service"`
	Message  string `json:"message"`
	Database string `json:"database"`
}
