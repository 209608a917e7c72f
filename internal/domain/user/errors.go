package user

import "errors"

var (
	ErrInvalidToken            = errors.New("invalid or missing access token")
	ErrUserIDMissing           = errors.New("user_id claim is missing or invalid")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
