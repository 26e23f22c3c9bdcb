package handler

import (
	"net/http"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Created(w, doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, r)
		return
	}

	response.OK(w, doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid doctor ID")
		return
	}

	schedule, err := h.doctorUsecase.GetSchedule(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, schedule)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid doctor ID")
		return
	}

	var req dto.UpdateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Message(w, "Doctor deleted successfully")
}

func (h *DoctorHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch err {
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, r, "Doctor not found")
	case usecase.ErrDoctorCRMExists:
		response.Conflict(w, r, "Doctor with this CRM already exists")
	case usecase.ErrDoctorCPFExists:
		response.Conflict(w, r, "Doctor with this CPF already exists")
	case usecase.ErrDoctorHasAppointments:
		response.BadRequest(w, r, "Cannot delete: doctor has scheduled appointments")
	default:
		response.InternalServerError(w, r)
	}
}
