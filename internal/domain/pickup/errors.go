package pickup

import "errors"

var (
	ErrNotFound         = errors.New("pickup not found")
	ErrNotOwner         = errors.New("pickup does not belong to this user")
	ErrInvalidWasteType = errors.New("invalid waste type")
	ErrInvalidTimeSlot  = errors.New("invalid time slot")
	ErrPastDate         = errors.New("pickup date must be today or in the future")
	ErrAlreadyCompleted = errors.New("pickup is already completed")
	ErrAlreadyCancelled = errors.New("pickup is already cancelled")
	ErrNotCompleted     = errors.New("only completed pickups can be rated")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)
