package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"

	"github.com/redmane/redmane/pkg/contract"
)

type HTTPRequestParser struct {
	validator *validator.Validate
}

func NewHTTPRequestParser() *HTTPRequestParser {
	return &HTTPRequestParser{
		validator: NewValidator(),
	}
}

func (p *HTTPRequestParser) ParseBody(ctx *fiber.Ctx, input interface{}) *contract.Error {
	if !json.Valid(ctx.Body()) {
		return contract.NewError(contract.BadRequest, "Malformed JSON request body")
	}

	if err := ctx.BodyParser(input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return newErrorFromTypeError(ctx.Body(), reflect.TypeOf(input), typeErr)
		}

		return contract.NewError(contract.BadRequest, err.Error())
	}

	return p.validate(input)
}

// newErrorFromTypeError reports the offending value of a type mismatch under the
// field's json name. The decoder only knows the Go field name.
func newErrorFromTypeError(body []byte, input reflect.Type, typeErr *json.UnmarshalTypeError) *contract.Error {
	name := typeErr.Field
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	if field, ok := findField(input, name); ok {
		name = fieldName(field)
	}

	value := typeErr.Value
	if result, ok := findMismatch(gjson.ParseBytes(body), name, typeErr.Type); ok {
		value = result.Str
		if result.Type != gjson.String {
			value = result.Raw
		}
	}

	return contract.NewError(
		contract.InvalidParameterValue,
		fmt.Sprintf("Invalid value %s for parameter '%s' supplied", value, name),
	)
}

// findField looks up a struct field by Go name anywhere below t.
func findField(t reflect.Type, name string) (reflect.StructField, bool) {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}

	if field, ok := t.FieldByName(name); ok {
		return field, true
	}

	for i := 0; i < t.NumField(); i++ {
		if field, ok := findField(t.Field(i).Type, name); ok {
			return field, true
		}
	}

	return reflect.StructField{}, false
}

// findMismatch returns the first value stored under key name that cannot be decoded into target.
func findMismatch(node gjson.Result, name string, target reflect.Type) (gjson.Result, bool) {
	var (
		found gjson.Result
		ok    bool
	)

	node.ForEach(func(key, value gjson.Result) bool {
		if key.Type == gjson.String && key.Str == name && !decodable(value, target) {
			found, ok = value, true

			return false
		}

		if value.IsObject() || value.IsArray() {
			found, ok = findMismatch(value, name, target)
		}

		return !ok
	})

	return found, ok
}

func decodable(value gjson.Result, target reflect.Type) bool {
	if target == nil || value.Type == gjson.Null {
		return true
	}

	for target.Kind() == reflect.Ptr {
		target = target.Elem()
	}

	//nolint:exhaustive
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return value.Type == gjson.Number
	case reflect.String:
		return value.Type == gjson.String
	case reflect.Bool:
		return value.Type == gjson.True || value.Type == gjson.False
	case reflect.Slice, reflect.Array:
		return value.IsArray()
	case reflect.Struct, reflect.Map:
		return value.IsObject()
	default:
		return true
	}
}

func (p *HTTPRequestParser) ParseQuery(ctx *fiber.Ctx, input interface{}) *contract.Error {
	if err := ctx.QueryParser(input); err != nil {
		return contract.NewError(contract.InvalidParameterValue, err.Error())
	}

	return p.validate(input)
}

func (p *HTTPRequestParser) ParseRequest(ctx *fiber.Ctx, input interface{}) *contract.Error {
	if err := ctx.ParamsParser(input); err != nil {
		return contract.NewError(contract.InvalidParameterValue, err.Error())
	}

	return p.ParseQuery(ctx, input)
}

// validate checks a struct, or every element of a slice of structs.
func (p *HTTPRequestParser) validate(input interface{}) *contract.Error {
	value := reflect.Indirect(reflect.ValueOf(input))
	if value.Kind() != reflect.Slice {
		if err := p.validator.Struct(input); err != nil {
			return newErrorFromValidationError(err)
		}

		return nil
	}

	for i := 0; i < value.Len(); i++ {
		element := value.Index(i)
		if element.Kind() == reflect.Ptr && element.IsNil() {
			return contract.NewError(contract.InvalidParameterValue, fmt.Sprintf("Missing value for item %d", i))
		}

		if err := p.validator.Struct(element.Interface()); err != nil {
			return newErrorFromValidationError(err)
		}
	}

	return nil
}

func dereference(value interface{}) interface{} {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}

		return v.Elem().Interface()
	}

	return value
}

func newErrorFromValidationError(err error) *contract.Error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return contract.NewError(contract.InternalError, err.Error())
	}

	validationErrors := make([]string, 0, len(errs))

	for _, err := range errs {
		field := err.Field()

		var vErr string

		switch err.Tag() {
		case "required":
			vErr = fmt.Sprintf("Missing value for required parameter '%s'", field)
		default:
			vErr = fmt.Sprintf("Invalid value %v for parameter '%s' supplied", dereference(err.Value()), field)
		}

		validationErrors = append(validationErrors, vErr)
	}

	return contract.NewError(contract.InvalidParameterValue, strings.Join(validationErrors, ", "))
}
