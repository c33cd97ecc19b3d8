package transport

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a request DTO against its struct tags. Runs before the
// workflow engine is invoked; a failure never reaches the service layer.
func Validate(v any) error {
	return validate.Struct(v)
}
