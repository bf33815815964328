package models

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/student-showcase/portfolio-backend/errs"
)

var phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-\(\)]{10,20}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations against the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate checks every declared field constraint and returns the full
// ordered list of violations. A nil result means the record is valid.
func Validate(record any) []errs.Violation {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []errs.Violation{{Field: "", Message: err.Error()}}
	}

	violations := make([]errs.Violation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, errs.Violation{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return violations
}

// messageFor mirrors the admin frontend's expected wording for each constraint.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This value should not be blank"
	case "email":
		return "This value is not a valid email address"
	case "url":
		return "This value is not a valid URL"
	case "phone":
		return "Please enter a valid phone number"
	case "min":
		return fmt.Sprintf("This value is too short. It should have %s characters or more", fe.Param())
	case "max":
		return fmt.Sprintf("This value is too long. It should have %s characters or less", fe.Param())
	case "len", "number":
		if fe.Field() == "year" {
			return "Year of study must be a 1-digit number"
		}
		return fmt.Sprintf("This value should have exactly %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("The value you selected is not a valid choice. Valid choices: %s", fe.Param())
	case "eq":
		if fe.Field() == "gdprConsent" {
			return "You must accept the GDPR consent to submit this form"
		}
		return fmt.Sprintf("This value should be equal to %s", fe.Param())
	default:
		return fmt.Sprintf("This value is not valid (%s)", fe.Tag())
	}
}
