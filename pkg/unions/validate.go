package unions

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is cached to avoid recreation on each decode.
var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

// Validator returns the shared validator used to check required shape fields.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInstance
}

// validateShape checks the struct tags of a decoded shape. Shapes that are
// not structs have nothing to validate.
func validateShape(v any) error {
	err := Validator().Struct(v)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	return err
}
