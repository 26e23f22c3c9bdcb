package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-admin-api/pkg/response"
	"hospital-admin-api/pkg/validator"

	"github.com/gorilla/mux"
)

// parseID reads a positive integer path variable
func parseID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// decodeAndValidate fills req from the JSON body and runs struct validation,
// writing the 400 response itself when either step fails
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, r, "Invalid request body")
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, r, v.FormatValidationErrors(err))
		return false
	}

	return true
}
