package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct runs validator tag checks against the given struct.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

// IsValidationError reports whether err came from struct validation.
// Used by the response layer to classify constraint violations.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(validator.ValidationErrors)
	return ok
}
