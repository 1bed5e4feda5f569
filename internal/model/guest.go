package model

import "time"

// Guest represents a hotel guest as stored in the `guests` table.
// Guests are owned by the guest ledger; the booking engine only reads
// them and bumps LastSeen when a booking is created or checked in.
type Guest struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Phone     *string    `json:"phone,omitempty"`
	Email     *string    `json:"email,omitempty"`
	IDType    *string    `json:"id_type,omitempty"`
	IDNumber  *string    `json:"id_number,omitempty"`
	IsPremium bool       `json:"is_premium"`
	FirstSeen *time.Time `json:"first_seen,omitempty"`
	LastSeen  *time.Time `json:"last_seen,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
