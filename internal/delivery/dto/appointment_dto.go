package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	Date      string `json:"date" validate:"required,isodate"`
	Time      string `json:"time" validate:"required,clock"`
	PatientID uint   `json:"patientId" validate:"required"`
	DoctorID  uint   `json:"doctorId" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED CANCELLED COMPLETED"`
}

// UpdateAppointmentRequest edits an appointment; absent fields keep their stored value
type UpdateAppointmentRequest struct {
	Date      *string `json:"date" validate:"omitempty,isodate"`
	Time      *string `json:"time" validate:"omitempty,clock"`
	PatientID *uint   `json:"patientId" validate:"omitempty,gte=1"`
	DoctorID  *uint   `json:"doctorId" validate:"omitempty,gte=1"`
	Status    *string `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED CANCELLED COMPLETED"`
}

// TouchesSlot reports whether the update may move the appointment to another slot
func (r *UpdateAppointmentRequest) TouchesSlot() bool {
	return r.Date != nil || r.Time != nil || r.DoctorID != nil
}

// OnlyStatus reports whether the update is a pure status change
func (r *UpdateAppointmentRequest) OnlyStatus() bool {
	return r.Status != nil && r.PatientID == nil && !r.TouchesSlot()
}

// Response DTOs

type AppointmentResponse struct {
	ID        uint            `json:"id"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Status    string          `json:"status"`
	PatientID uint            `json:"patientId"`
	DoctorID  uint            `json:"doctorId"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Patient   *PatientSummary `json:"patient,omitempty"`
	Doctor    *DoctorSummary  `json:"doctor,omitempty"`
}
