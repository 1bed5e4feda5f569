package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line item types stored in invoice_line_items.item_type. "room" is
// special: every booking carries exactly one room item from creation
// until checkout, and it cannot be removed while the booking is active.
const (
	ItemTypeRoom    = "room"
	ItemTypeService = "service"
	ItemTypeExtra   = "extra"
)

// InvoiceLineItem is a single charge on a booking's invoice. Amount is
// fixed as quantity × unit price when the item is inserted (or when
// checkout rewrites the room item) and is never recomputed by the
// totals recalculation.
type InvoiceLineItem struct {
	ID          uint64          `json:"id"`
	BookingID   uint64          `json:"booking_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	ItemType    string          `json:"item_type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// InvoiceTax is a percentage tax on a booking. Amount is derived:
// every recalculation rewrites it as subtotal × rate / 100, so it is
// never an independent source of truth.
type InvoiceTax struct {
	ID        uint64          `json:"id"`
	BookingID uint64          `json:"booking_id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// InvoiceDiscount reduces a booking's grand total. Exactly one of a
// fixed amount or a percentage is supplied at creation. Percentage
// discounts are re-based on the current subtotal at every
// recalculation; fixed discounts keep the amount entered.
type InvoiceDiscount struct {
	ID         uint64           `json:"id"`
	BookingID  uint64           `json:"booking_id"`
	Name       string           `json:"name"`
	Amount     decimal.Decimal  `json:"amount"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
