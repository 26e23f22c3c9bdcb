package handler

import (
	"net/http"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/delivery/http/middleware"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, r)
		return
	}

	response.OK(w, users)
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, r, "")
		return
	}

	h.respondUser(w, r, userID)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid user ID")
		return
	}

	h.respondUser(w, r, id)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, r, "")
		return
	}

	h.update(w, r, userID)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid user ID")
		return
	}

	h.update(w, r, id)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, r, "Invalid user ID")
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Message(w, "User deleted successfully")
}

func (h *UserHandler) respondUser(w http.ResponseWriter, r *http.Request, id uint) {
	user, err := h.userUsecase.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, user)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request, id uint) {
	var req dto.UpdateUserRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, user)
}

func (h *UserHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch err {
	case usecase.ErrUserNotFound:
		response.NotFound(w, r, "User not found")
	case usecase.ErrEmailAlreadyExists:
		response.Conflict(w, r, "Email already exists")
	default:
		response.InternalServerError(w, r)
	}
}
