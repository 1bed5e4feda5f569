package model

import "time"

// Staff roles. Admins manage rooms and users; receptionists handle
// guests and bookings.
const (
	RoleAdmin        = "ADMIN"
	RoleReceptionist = "RECEPTIONIST"
)

// User is a staff account as stored in the `users` table. Passwords
// are stored only as bcrypt hashes. Inactive accounts cannot log in.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     *string   `json:"full_name,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
