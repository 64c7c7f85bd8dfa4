package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrMissingIndustry    = errors.New("industry users must provide company details")
	ErrResetTokenNotFound = errors.New("reset token not found")
)
