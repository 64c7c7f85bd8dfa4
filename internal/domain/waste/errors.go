package waste

import "errors"

var (
	ErrNotFound = errors.New("waste record not found")
	ErrNotOwner = errors.New("waste record does not belong to this user")
)
