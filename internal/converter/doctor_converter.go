package converter

import (
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		CPF:          doctor.CPF,
		Specialty:    doctor.Specialty,
		CRM:          doctor.CRM,
		Address:      doctor.Address,
		CreatedAt:    doctor.CreatedAt,
		UpdatedAt:    doctor.UpdatedAt,
		Appointments: AppointmentsToResponses(doctor.Appointments),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToSummary returns nil when the doctor was not loaded
func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummary {
	if doctor == nil || doctor.ID == 0 {
		return nil
	}

	return &dto.DoctorSummary{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		CRM:       doctor.CRM,
	}
}
