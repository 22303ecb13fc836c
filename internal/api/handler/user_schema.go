package handler

import "time"

type createUserRequest struct {
	Name     string   `json:"name"     validate:"required,min=3,max=80"`
	Email    string   `json:"email"    validate:"required,email,min=6,max=80"`
	Password string   `json:"password" validate:"required,min=6,max=80"`
	Profiles []string `json:"profiles" validate:"omitempty,dive,oneof=ROLE_ADMIN ROLE_CUSTOMER ROLE_TECHNICIAN"`
}

// updateUserRequest carries a partial update: absent fields stay unchanged.
type updateUserRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=3,max=100"`
	Email    *string  `json:"email"    validate:"omitempty,email,min=6,max=50"`
	Password *string  `json:"password" validate:"omitempty,min=6,max=20"`
	Profiles []string `json:"profiles" validate:"omitempty,dive,oneof=ROLE_ADMIN ROLE_CUSTOMER ROLE_TECHNICIAN"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Profiles  []string  `json:"profiles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
