package models

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("all fields are required")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrNoActiveSession    = errors.New("no active quiz session")
)
