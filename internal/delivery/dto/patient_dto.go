package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	CPF       string `json:"cpf" validate:"required,max=20"`
	BirthDate string `json:"birthDate" validate:"required,isodate"`
	Phone     string `json:"phone" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required"`
}

type UpdatePatientRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2"`
	CPF       *string `json:"cpf" validate:"omitempty,min=1,max=20"`
	BirthDate *string `json:"birthDate" validate:"omitempty,isodate"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=30"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address" validate:"omitempty,min=1"`
}

// Response DTOs

type PatientResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	CPF          string                `json:"cpf"`
	BirthDate    string                `json:"birthDate"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email"`
	Address      string                `json:"address"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// PatientSummary is the patient as embedded in an appointment
type PatientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
