package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as their json tags so clients see the keys they sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckStruct validates a payload struct and returns a field -> message map,
// empty when the payload is valid.
func CheckStruct(payload interface{}) map[string]string {
	errors := make(map[string]string)

	err := validate.Struct(payload)
	if err == nil {
		return errors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["payload"] = "Invalid request body!"
		return errors
	}

	for _, fieldErr := range validationErrors {
		errors[fieldErr.Field()] = messageFor(fieldErr)
	}
	return errors
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Invalid email!"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long!", fieldErr.Param())
		}
		return fmt.Sprintf("Must be at least %s!", fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters long!", fieldErr.Param())
		}
		return fmt.Sprintf("Must be at most %s!", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s!", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("Must be %s or more!", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s!", strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	}
	return "Invalid value!"
}
