package converter

import (
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		Date:      appointment.Date.Format(entity.DateLayout),
		Time:      appointment.Time,
		Status:    string(appointment.Status),
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
		Patient:   PatientToSummary(&appointment.Patient),
		Doctor:    DoctorToSummary(&appointment.Doctor),
	}
}

// AppointmentsToResponses never returns nil so empty lists encode as []
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
