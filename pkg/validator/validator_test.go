package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentInput struct {
	Date     string `json:"date" validate:"required,isodate"`
	Time     string `json:"time" validate:"required,clock"`
	DoctorID uint   `json:"doctorId" validate:"required"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=SCHEDULED CONFIRMED"`
}

type userInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidInputPasses(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&appointmentInput{Date: "2024-01-15", Time: "9:00", DoctorID: 1}))
	assert.NoError(t, v.Validate(&appointmentInput{Date: "2024-01-15T00:00:00Z", Time: "23:59", DoctorID: 1}))
}

func TestCustomTags(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&appointmentInput{Date: "15/01/2024", Time: "25:00", DoctorID: 1})
	require.Error(t, err)

	messages := v.FormatValidationErrors(err)
	assert.Equal(t, []string{
		"date must be a date in YYYY-MM-DD format",
		"time must be a time in HH:MM format",
	}, messages)
}

func TestMessagesUseJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&appointmentInput{Status: "DONE"})
	require.Error(t, err)

	messages := v.FormatValidationErrors(err)
	assert.Contains(t, messages, "date is required")
	assert.Contains(t, messages, "doctorId is required")
	assert.Contains(t, messages, "status must be one of: SCHEDULED, CONFIRMED")
}

func TestEmailAndMin(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&userInput{Email: "nope", Password: "123"})
	require.Error(t, err)

	assert.Equal(t, []string{
		"email must be a valid email address",
		"password must be at least 6 characters",
	}, v.FormatValidationErrors(err))
}

func TestNonValidationError(t *testing.T) {
	v := NewValidator()
	assert.Equal(t, []string{"boom"}, v.FormatValidationErrors(errors.New("boom")))
}
