package services

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailExists     = errors.New("email already registered")
)
