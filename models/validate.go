package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingValidator reads the same binding tags gin checks in ShouldBindJSON,
// so a form submitted through a service gets the rules a handler applies.
var bindingValidator = newBindingValidator()

func newBindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	UseJSONNames(v)
	return v
}

// UseJSONNames makes v report fields by their json name.
func UseJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// CheckBinding runs the binding tags of s.
func CheckBinding(s any) error {
	return FieldError(bindingValidator.Struct(s))
}

// FieldError turns validator field errors into a *ValidationError naming the
// first failing field. Other errors are returned unchanged.
func FieldError(err error) error {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return err
	}
	fe := fields[0]
	switch fe.Tag() {
	case "required":
		return required(fe.Field())
	case "email":
		return invalid(fe.Field(), "a valid email is required")
	default:
		return invalid(fe.Field(), fe.Field()+" is invalid")
	}
}
