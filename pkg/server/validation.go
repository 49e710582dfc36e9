package server

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
)

// fieldName reports a field the way clients send it: its json, query or path
// parameter name, falling back to the snake cased Go name.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query", "params"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}

		if name != "" {
			return name
		}
	}

	return strcase.ToSnake(field.Name)
}

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	return validate
}
