package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the tag declared validations of any model type and
// maps failures to ErrNotValid.
func ValidateStruct(s interface{}) error {
	err := structValidator.Struct(s)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrNotValid)
	}
	return nil
}
