package handler

import (
	"context"
	"net/http"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Created(w, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, r)
		return
	}

	response.OK(w, appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, appointment)
}

func (h *AppointmentHandler) GetAppointmentsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseID(r, "doctorId")
	if !ok {
		response.BadRequest(w, r, "Invalid doctor ID")
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsByDoctor(r.Context(), doctorID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, appointments)
}

func (h *AppointmentHandler) GetAppointmentsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseID(r, "patientId")
	if !ok {
		response.BadRequest(w, r, "Invalid patient ID")
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsByPatient(r.Context(), patientID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, appointment)
}

func (h *AppointmentHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.ConfirmAppointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.CancelAppointment)
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.CompleteAppointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Message(w, "Appointment deleted successfully")
}

func (h *AppointmentHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uint) (*dto.AppointmentResponse, error),
) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid appointment ID")
		return
	}

	appointment, err := apply(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, appointment)
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, r, "Appointment not found")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, r, "Patient not found")
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, r, "Doctor not found")
	case usecase.ErrAppointmentConflict:
		response.Conflict(w, r, "Doctor already has an appointment at this date and time")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, r, "Invalid date format, use YYYY-MM-DD")
	case usecase.ErrInvalidTimeFormat:
		response.BadRequest(w, r, "Invalid time format, use HH:MM")
	case usecase.ErrInvalidStatus:
		response.BadRequest(w, r, "Invalid appointment status")
	default:
		response.InternalServerError(w, r)
	}
}
