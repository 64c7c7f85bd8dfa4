package feedback

import "errors"

var (
	ErrNotFound     = errors.New("feedback not found")
	ErrNotOwner     = errors.New("feedback does not belong to this user")
	ErrNoResponse   = errors.New("cannot rate feedback without a response")
	ErrInvalidType  = errors.New("invalid feedback type")
	ErrInvalidRating = errors.New("rating must be helpful or not_helpful")
)
