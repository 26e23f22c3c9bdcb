package converter

import (
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO.
// Appointments are included when loaded, each embedding its doctor.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		Name:         patient.Name,
		CPF:          patient.CPF,
		BirthDate:    patient.BirthDate.Format(entity.DateLayout),
		Phone:        patient.Phone,
		Email:        patient.Email,
		Address:      patient.Address,
		CreatedAt:    patient.CreatedAt,
		UpdatedAt:    patient.UpdatedAt,
		Appointments: AppointmentsToResponses(patient.Appointments),
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientToSummary returns nil when the patient was not loaded
func PatientToSummary(patient *entity.Patient) *dto.PatientSummary {
	if patient == nil || patient.ID == 0 {
		return nil
	}

	return &dto.PatientSummary{
		ID:    patient.ID,
		Name:  patient.Name,
		CPF:   patient.CPF,
		Email: patient.Email,
		Phone: patient.Phone,
	}
}
