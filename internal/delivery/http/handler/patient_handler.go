package handler

import (
	"net/http"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Created(w, patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, r)
		return
	}

	response.OK(w, patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Message(w, "Patient deleted successfully")
}

func (h *PatientHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch err {
	case usecase.ErrPatientNotFound:
		response.NotFound(w, r, "Patient not found")
	case usecase.ErrPatientEmailExists:
		response.Conflict(w, r, "Patient with this email already exists")
	case usecase.ErrPatientCPFExists:
		response.Conflict(w, r, "Patient with this CPF already exists")
	case usecase.ErrPatientHasAppointments:
		response.BadRequest(w, r, "Cannot delete: patient has scheduled appointments")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, r, "Invalid date format, use YYYY-MM-DD")
	default:
		response.InternalServerError(w, r)
	}
}
