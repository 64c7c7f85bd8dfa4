package declaration

import "errors"

var (
	ErrNotFound        = errors.New("declaration not found")
	ErrNotOwner        = errors.New("declaration does not belong to this industry")
	ErrPeriodExists    = errors.New("declaration already exists for this period")
	ErrNotDraft        = errors.New("only draft declarations can be deleted")
	ErrNotApproved     = errors.New("certificate can only be generated for approved declarations")
	ErrInvalidPeriod   = errors.New("invalid declaration period")
	ErrEmptyCategories = errors.New("declaration must contain at least one waste category")
)
