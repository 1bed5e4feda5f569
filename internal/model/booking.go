package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking records a guest's stay in a room. A booking is active while
// CheckoutAt is nil; at most one active booking exists per room at any
// instant, enforced through the room's occupied flag inside the same
// transaction that creates the booking.
//
// The four derived totals are nil until the first recalculation runs.
// After that they always satisfy
//
//	GrandTotal = Subtotal + TaxTotal - DiscountTotal
//
// with Subtotal equal to the sum of the booking's line item amounts.
// GrandTotal may go negative when discounts exceed the invoice.
type Booking struct {
	ID            uint64           `json:"id"`
	GuestID       uint64           `json:"guest_id"`
	RoomNumber    uint64           `json:"room_number"`
	CheckinAt     time.Time        `json:"checkin_at"`
	CheckoutAt    *time.Time       `json:"checkout_at,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Subtotal      *decimal.Decimal `json:"subtotal,omitempty"`
	TaxTotal      *decimal.Decimal `json:"tax_total,omitempty"`
	DiscountTotal *decimal.Decimal `json:"discount_total,omitempty"`
	GrandTotal    *decimal.Decimal `json:"grand_total,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Active reports whether the booking has not been checked out yet.
func (b *Booking) Active() bool { return b.CheckoutAt == nil }
