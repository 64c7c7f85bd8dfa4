package notification

import "errors"

var (
	ErrNotFound = errors.New("notification not found")
	ErrNotOwner = errors.New("notification does not belong to this user")
)
