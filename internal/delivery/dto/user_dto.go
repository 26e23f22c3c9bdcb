package dto

// UpdateUserRequest edits an operator; absent fields are left untouched
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}
