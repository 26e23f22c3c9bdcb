package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	CPF       string `json:"cpf" validate:"required,max=20"`
	Specialty string `json:"specialty" validate:"required,max=100"`
	CRM       string `json:"crm" validate:"required,max=50"`
	Address   string `json:"address" validate:"required"`
}

type UpdateDoctorRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2"`
	CPF       *string `json:"cpf" validate:"omitempty,min=1,max=20"`
	Specialty *string `json:"specialty" validate:"omitempty,min=1,max=100"`
	CRM       *string `json:"crm" validate:"omitempty,min=1,max=50"`
	Address   *string `json:"address" validate:"omitempty,min=1"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	CPF          string                `json:"cpf"`
	Specialty    string                `json:"specialty"`
	CRM          string                `json:"crm"`
	Address      string                `json:"address"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// DoctorSummary is the doctor as embedded in an appointment or schedule
type DoctorSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	CRM       string `json:"crm"`
}

type DoctorScheduleResponse struct {
	Doctor       DoctorSummary         `json:"doctor"`
	Appointments []AppointmentResponse `json:"appointments"`
}
