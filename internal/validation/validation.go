package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate applies the rules declared on the DTO's struct tags and returns
// a map of field name to violation messages. All violations are collected
// in one pass; a nil result means the value is valid.
func Validate(dto interface{}) map[string][]string {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// A non-struct value was passed in; report it against the empty
		// field name rather than panicking.
		return map[string][]string{"": {err.Error()}}
	}

	errs := make(map[string][]string)
	for _, fieldError := range validationErrors {
		errs[fieldError.Field()] = append(errs[fieldError.Field()], message(fieldError))
	}
	return errs
}

// message renders a single violation as a human-readable sentence.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater.", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", fe.Field())
	case "hexcolor", "len":
		return fmt.Sprintf("%s must be a hex color like #RRGGBB.", fe.Field())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule.", fe.Field(), fe.Tag())
	}
}
