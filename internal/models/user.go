package models

import (
	"time"
)

type UserType string

const (
	TypeStudent   UserType = "student"
	TypeProfessor UserType = "professor"
	TypeTeacher   UserType = "teacher"
)

// Valid reports whether the value is one of the known user types.
func (t UserType) Valid() bool {
	switch t {
	case TypeStudent, TypeProfessor, TypeTeacher:
		return true
	}
	return false
}

type User struct {
	UserID    uint     `json:"user_id" gorm:"primaryKey;column:user_id"`
	Name      string   `json:"name" gorm:"not null;size:100" validate:"required,min=2,max=100"`
	Email     string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email"`
	Bio       *string  `json:"bio" gorm:"type:text" validate:"omitempty,max=500"`
	Location  *string  `json:"location" gorm:"size:255" validate:"omitempty,max=255"`
	Score     float64  `json:"score" gorm:"not null;default:0;check:score >= 0 AND score <= 100" validate:"min=0,max=100"`
	TestCount int      `json:"test_count" gorm:"not null;default:0;check:test_count >= 0" validate:"min=0"`
	PhoneNo   *string  `json:"phone_no" gorm:"size:20" validate:"omitempty,max=20"`
	UserType  UserType `json:"user_type" gorm:"not null;size:20;check:user_type IN ('student', 'professor', 'teacher')" validate:"required,user_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Education []Education `json:"education" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

type Education struct {
	EducationID uint   `json:"education_id" gorm:"primaryKey;column:education_id"`
	UserID      uint   `json:"user_id" gorm:"not null;index"`
	Degree      string `json:"degree" gorm:"not null;size:255" validate:"required"`
	Institution string `json:"institution" gorm:"not null;size:255" validate:"required"`
	Year        int    `json:"year" gorm:"not null" validate:"required,min=1900,max=2100"`

	CreatedAt time.Time `json:"created_at"`
}

func (Education) TableName() string {
	return "education"
}
