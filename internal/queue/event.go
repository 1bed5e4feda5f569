// Package queue defines the lifecycle events published to the message
// broker and the background consumer that turns them into notification
// side effects. Publishing is fire-and-forget: a broker failure is
// logged and never rolls back the booking operation that already
// committed.
package queue

import "github.com/shopspring/decimal"

// Queue names used on the broker. Durable queues, default exchange.
const (
	BookingCreatedQueue    = "booking.created"
	BookingCheckedOutQueue = "booking.checked_out"
)

// BookingCreatedEvent is published after a booking has been created and
// committed. Consumers use it to send the reservation confirmation to
// the guest. EventID is a UUID so consumers can deduplicate redelivery.
type BookingCreatedEvent struct {
	EventID    string          `json:"event_id"`
	BookingID  uint64          `json:"booking_id"`
	GuestID    uint64          `json:"guest_id"`
	GuestName  string          `json:"guest_name"`
	RoomNumber uint64          `json:"room_number"`
	RoomType   string          `json:"room_type"`
	Price      decimal.Decimal `json:"price"`
	CheckinAt  string          `json:"checkin_at"`
}

// BookingCheckedOutEvent is published after a checkout has committed.
// Consumers use it to send the final invoice to the guest.
type BookingCheckedOutEvent struct {
	EventID      string          `json:"event_id"`
	BookingID    uint64          `json:"booking_id"`
	GuestID      uint64          `json:"guest_id"`
	RoomNumber   uint64          `json:"room_number"`
	Nights       int64           `json:"nights"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	CheckedOutAt string          `json:"checked_out_at"`
}
