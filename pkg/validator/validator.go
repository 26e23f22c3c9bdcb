package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("clock", validateClock)
	v.RegisterValidation("isodate", validateISODate)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validateClock accepts H:MM or HH:MM between 00:00 and 23:59
func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// validateISODate accepts YYYY-MM-DD or a full RFC 3339 timestamp
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if _, err := time.Parse("2006-01-02", value); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}

// FormatValidationErrors turns validator errors into one message per failed field, in struct order
func (cv *CustomValidator) FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, field+" must be a valid email address")
		case "min":
			messages = append(messages, field+" must be at least "+e.Param()+" characters")
		case "max":
			messages = append(messages, field+" must be at most "+e.Param()+" characters")
		case "gte":
			messages = append(messages, field+" must be greater than or equal to "+e.Param())
		case "oneof":
			messages = append(messages, field+" must be one of: "+strings.ReplaceAll(e.Param(), " ", ", "))
		case "clock":
			messages = append(messages, field+" must be a time in HH:MM format")
		case "isodate":
			messages = append(messages, field+" must be a date in YYYY-MM-DD format")
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return messages
}
