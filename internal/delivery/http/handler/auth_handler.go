package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/delivery/http/middleware"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register handles operator registration
// @Summary Register a new user
// @Description Register a new user with name, email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, r, "Email already exists")
		default:
			response.InternalServerError(w, r)
		}
		return
	}

	response.Created(w, user)
}

// Login handles user login
// @Summary Login user
// @Description Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, r, "Invalid email or password")
		default:
			response.InternalServerError(w, r)
		}
		return
	}

	response.OK(w, tokens)
}

// Profile returns the authenticated operator
// @Summary Current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} response.ErrorBody
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, r, "")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.Unauthorized(w, r, "User no longer exists")
		default:
			response.InternalServerError(w, r)
		}
		return
	}

	response.OK(w, user)
}

// Logout handles user logout
// @Summary Logout user
// @Description Revoke the current access token and, when supplied, its refresh token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorBody
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	tokenID, hasToken := middleware.GetTokenIDFromContext(r.Context())
	if !ok || !hasToken {
		response.Unauthorized(w, r, "Invalid token")
		return
	}

	// The body is optional
	var req dto.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, r, "Invalid request body")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID, req.RefreshToken); err != nil {
		switch err {
		case usecase.ErrInvalidToken:
			response.BadRequest(w, r, "Invalid refresh token")
		default:
			response.InternalServerError(w, r)
		}
		return
	}

	response.Message(w, "Logout successful")
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Get new access token using refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken:
			response.Unauthorized(w, r, "Invalid or expired refresh token")
		case usecase.ErrTokenRevoked:
			response.Unauthorized(w, r, "Refresh token has been revoked")
		default:
			response.InternalServerError(w, r)
		}
		return
	}

	response.OK(w, tokens)
}
