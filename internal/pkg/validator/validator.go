// Package validator wraps go-playground struct validation behind a
// single helper returning a field-to-tag map the response envelope can
// embed as validation details.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks v's `validate` tags. It returns nil when every field
// passes, otherwise a map of field name to the first failed rule tag.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
