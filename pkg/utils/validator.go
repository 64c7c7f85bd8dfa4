package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateStruct runs struct-tag validation and rewrites the first failure
// into a readable message.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var errs validator.ValidationErrors
		if ok := isValidationErrors(err, &errs); ok && len(errs) > 0 {
			fe := errs[0]
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				return fmt.Errorf("%s is required", field)
			case "min":
				return fmt.Errorf("%s must be at least %s", field, fe.Param())
			case "max":
				return fmt.Errorf("%s must be at most %s", field, fe.Param())
			case "oneof":
				return fmt.Errorf("%s must be one of: %s", field, fe.Param())
			case "email":
				return fmt.Errorf("%s must be a valid email address", field)
			default:
				return fmt.Errorf("%s is invalid", field)
			}
		}
		return err
	}
	return nil
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	if errs, ok := err.(validator.ValidationErrors); ok {
		*target = errs
		return true
	}
	return false
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
