package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorBody is the uniform error envelope returned by every endpoint.
// Message holds a string, or a list of field messages for validation failures.
type ErrorBody struct {
	StatusCode int         `json:"statusCode"`
	Message    interface{} `json:"message"`
	Error      string      `json:"error"`
	Timestamp  string      `json:"timestamp"`
	Path       string      `json:"path"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, MessageResponse{Message: message})
}

func Error(w http.ResponseWriter, r *http.Request, statusCode int, message interface{}) {
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	JSON(w, statusCode, ErrorBody{
		StatusCode: statusCode,
		Message:    message,
		Error:      http.StatusText(statusCode),
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Path:       path,
	})
}

func ValidationError(w http.ResponseWriter, r *http.Request, messages []string) {
	Error(w, r, http.StatusBadRequest, messages)
}

func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, r, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, r, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, r, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusConflict, message)
}

func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusTooManyRequests, "Too many requests, please slow down")
}

func InternalServerError(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusInternalServerError, "Internal server error")
}
