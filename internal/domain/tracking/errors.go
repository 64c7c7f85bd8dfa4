package tracking

import "errors"

var (
	ErrNotFound          = errors.New("tracking record not found")
	ErrInvalidTrackingID = errors.New("invalid tracking id")
	ErrInvalidStatus     = errors.New("invalid tracking status")
	ErrDuplicateID       = errors.New("tracking id already exists")
)
