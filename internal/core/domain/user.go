package domain

import "time"

const (
	ProfileAdmin      = "ROLE_ADMIN"
	ProfileCustomer   = "ROLE_CUSTOMER"
	ProfileTechnician = "ROLE_TECHNICIAN"
)

// ValidProfile reports whether p is a known profile tag.
func ValidProfile(p string) bool {
	switch p {
	case ProfileAdmin, ProfileCustomer, ProfileTechnician:
		return true
	}
	return false
}

// User models a helpdesk account. Profiles are the role tags embedded in
// issued JWT claims.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profiles     []string  `json:"profiles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
