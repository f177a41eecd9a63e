package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct validates a struct against its `validate` tags.
// The form handlers use this for the required-name presence check;
// a failure there is answered with a silent redirect, not an error page.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}
