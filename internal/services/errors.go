package services

import "errors"

// Sentinel errors the handlers map to HTTP status codes.
var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrContentNotFound   = errors.New("content not found")
)
