package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room type names as stored in the rooms.room_type column.
const (
	RoomTypeStandard = "Standard"
	RoomTypePremium  = "Premium"
	RoomTypeSuite    = "Suite"
)

// RoomTypes lists every valid room type in display order. Reporting
// code iterates over this slice so that occupancy breakdowns always
// cover all types, including those with zero rooms.
var RoomTypes = []string{RoomTypeStandard, RoomTypePremium, RoomTypeSuite}

// Room represents a physical hotel room as stored in the `rooms`
// table. The room number is the primary key; rooms are identified by
// number everywhere in the system rather than by a surrogate ID.
// CurrentGuestID is nil whenever Occupied is false.
type Room struct {
	Number         uint64          `json:"number"`
	RoomType       string          `json:"room_type"`
	RatePerNight   decimal.Decimal `json:"rate_per_night"`
	Occupied       bool            `json:"occupied"`
	CurrentGuestID *uint64         `json:"current_guest_id,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ValidRoomType reports whether t names a known room type.
func ValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}
