package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/queue"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/repository"
)

// EventPublisher receives booking lifecycle events after the owning
// transaction has committed. Implementations must never block the
// request path for long and must treat delivery as best effort; the
// engine ignores returned errors beyond what the publisher logs.
type EventPublisher interface {
	BookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
	BookingCheckedOut(ctx context.Context, ev queue.BookingCheckedOutEvent) error
}

// BookingService is the booking lifecycle engine. Every operation that
// mutates a booking runs as one transaction: the room occupancy
// check-and-set, the booking/invoice writes and the totals
// recalculation either all commit or all roll back. Row locks on the
// room (occupancy transitions) and on the booking (invoice mutations)
// serialize concurrent operations on the same entity while letting
// unrelated rooms and bookings proceed in parallel.
type BookingService struct {
	db        *sql.DB
	rooms     *repository.RoomRepo
	guests    *repository.GuestRepo
	bookings  *repository.BookingRepo
	invoices  *repository.InvoiceRepo
	publisher EventPublisher
}

// NewBookingService constructs the engine. The publisher may be nil
// when no broker is configured; all repositories are required.
func NewBookingService(db *sql.DB, rooms *repository.RoomRepo, guests *repository.GuestRepo,
	bookings *repository.BookingRepo, invoices *repository.InvoiceRepo, publisher EventPublisher) *BookingService {
	if db == nil || rooms == nil || guests == nil || bookings == nil || invoices == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{
		db:        db,
		rooms:     rooms,
		guests:    guests,
		bookings:  bookings,
		invoices:  invoices,
		publisher: publisher,
	}
}

// inTx runs fn inside a transaction, rolling back on error or panic.
func (s *BookingService) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

// recalculateTx reruns the invoice recalculation for a booking using
// the invoice rows as they exist inside tx, rewrites every derived tax
// and percentage discount amount, and writes the four totals as the
// final step. The caller must already hold the booking row lock.
func (s *BookingService) recalculateTx(ctx context.Context, tx *sql.Tx, bookingID uint64) (Totals, error) {
	items, err := s.invoices.ListLineItems(ctx, tx, bookingID)
	if err != nil {
		return Totals{}, err
	}
	taxes, err := s.invoices.ListTaxes(ctx, tx, bookingID)
	if err != nil {
		return Totals{}, err
	}
	discounts, err := s.invoices.ListDiscounts(ctx, tx, bookingID)
	if err != nil {
		return Totals{}, err
	}

	totals := ComputeTotals(items, taxes, discounts)

	for i := range taxes {
		if err := s.invoices.UpdateTaxAmountTx(ctx, tx, taxes[i].ID, taxes[i].Amount); err != nil {
			return Totals{}, err
		}
	}
	for i := range discounts {
		if discounts[i].Percentage == nil {
			continue
		}
		if err := s.invoices.UpdateDiscountAmountTx(ctx, tx, discounts[i].ID, discounts[i].Amount); err != nil {
			return Totals{}, err
		}
	}
	if err := s.bookings.UpdateTotalsTx(ctx, tx, bookingID,
		totals.Subtotal, totals.TaxTotal, totals.DiscountTotal, totals.GrandTotal); err != nil {
		return Totals{}, err
	}
	return totals, nil
}

// Create makes a reservation: it occupies the room, creates the booking
// checked-in at now, inserts the mandatory room charge for one night
// and initializes the totals, all in one transaction. Price defaults to
// the room's nightly rate. Fails with a guest/room not-found error or
// ErrRoomOccupied; on failure nothing is persisted.
func (s *BookingService) Create(ctx context.Context, guestID, roomNumber uint64, price *decimal.Decimal) (*model.Booking, error) {
	guest, err := s.guests.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var booking *model.Booking
	var room *model.Room
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		r, err := s.rooms.OccupyTx(ctx, tx, roomNumber, guestID)
		if err != nil {
			return err
		}
		room = r

		nightly := room.RatePerNight
		if price != nil {
			nightly = *price
		}
		booking = &model.Booking{
			GuestID:    guestID,
			RoomNumber: roomNumber,
			CheckinAt:  now,
			Price:      nightly,
		}
		if err := s.bookings.CreateTx(ctx, tx, booking); err != nil {
			return err
		}

		item := &model.InvoiceLineItem{
			BookingID:   booking.ID,
			Description: fmt.Sprintf("%s Room - %d", room.RoomType, room.Number),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   nightly,
			Amount:      nightly,
			ItemType:    model.ItemTypeRoom,
		}
		if err := s.invoices.InsertLineItemTx(ctx, tx, item); err != nil {
			return err
		}

		// No taxes or discounts yet: subtotal and grand total both
		// equal the nightly price.
		if err := s.bookings.UpdateTotalsTx(ctx, tx, booking.ID,
			nightly, decimal.Zero, decimal.Zero, nightly); err != nil {
			return err
		}
		booking.Subtotal = &nightly
		booking.GrandTotal = &nightly

		return s.guests.TouchLastSeenTx(ctx, tx, guestID)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("booking: created booking %d for guest %d in room %d", booking.ID, guestID, roomNumber)
	if s.publisher != nil {
		ev := queue.BookingCreatedEvent{
			EventID:    uuid.NewString(),
			BookingID:  booking.ID,
			GuestID:    guestID,
			GuestName:  guest.Name,
			RoomNumber: roomNumber,
			RoomType:   room.RoomType,
			Price:      booking.Price,
			CheckinAt:  now.Format(time.RFC3339),
		}
		go func() { _ = s.publisher.BookingCreated(context.Background(), ev) }()
	}
	return s.bookings.GetByID(ctx, booking.ID)
}

// Get returns a booking by ID.
func (s *BookingService) Get(ctx context.Context, id uint64) (*model.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// List returns bookings matching the filter plus the total match count.
func (s *BookingService) List(ctx context.Context, f repository.BookingFilter) ([]model.Booking, int, error) {
	return s.bookings.List(ctx, f)
}

// CheckIn records the check-in of a booking created without one and
// re-occupies the room. Bookings made through Create are checked in on
// creation, so calling CheckIn on them fails with ErrAlreadyCheckedIn.
func (s *BookingService) CheckIn(ctx context.Context, id uint64) (*model.Booking, error) {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		b, err := s.bookings.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !b.CheckinAt.IsZero() {
			return repository.ErrAlreadyCheckedIn
		}
		if _, err := s.rooms.OccupyTx(ctx, tx, b.RoomNumber, b.GuestID); err != nil {
			return err
		}
		if err := s.bookings.SetCheckinTx(ctx, tx, id, time.Now().UTC()); err != nil {
			return err
		}
		return s.guests.TouchLastSeenTx(ctx, tx, b.GuestID)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("booking: checked in booking %d", id)
	return s.bookings.GetByID(ctx, id)
}

// CheckOut completes a booking: it stretches the room charge to the
// final stay duration (at least one night), vacates the room, reruns
// the recalculation and stamps checkout_at, all in one transaction.
// Fails with ErrAlreadyCheckedOut if checkout was already recorded.
func (s *BookingService) CheckOut(ctx context.Context, id uint64) (*model.Booking, error) {
	now := time.Now().UTC()
	var nights int64
	var guestID, roomNumber uint64
	var totals Totals
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		b, err := s.bookings.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if b.CheckoutAt != nil {
			return repository.ErrAlreadyCheckedOut
		}
		guestID, roomNumber = b.GuestID, b.RoomNumber
		nights = StayNights(b.CheckinAt, now)

		if err := s.rooms.VacateTx(ctx, tx, b.RoomNumber); err != nil {
			return err
		}

		items, err := s.invoices.ListLineItems(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, it := range items {
			if it.ItemType != model.ItemTypeRoom {
				continue
			}
			qty := decimal.NewFromInt(nights)
			if err := s.invoices.UpdateLineItemQuantityTx(ctx, tx, it.ID, qty, it.UnitPrice.Mul(qty)); err != nil {
				return err
			}
		}

		if err := s.bookings.SetCheckoutTx(ctx, tx, id, now); err != nil {
			return err
		}
		totals, err = s.recalculateTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("booking: checked out booking %d after %d nights", id, nights)
	if s.publisher != nil {
		ev := queue.BookingCheckedOutEvent{
			EventID:      uuid.NewString(),
			BookingID:    id,
			GuestID:      guestID,
			RoomNumber:   roomNumber,
			Nights:       nights,
			GrandTotal:   totals.GrandTotal,
			CheckedOutAt: now.Format(time.RFC3339),
		}
		go func() { _ = s.publisher.BookingCheckedOut(context.Background(), ev) }()
	}
	return s.bookings.GetByID(ctx, id)
}

// Delete removes a booking and everything it owns. An active booking's
// room is vacated first; a vacate conflict is logged and ignored since
// deletion must still proceed. Line items, taxes and discounts cascade
// with the booking row inside the same transaction.
func (s *BookingService) Delete(ctx context.Context, id uint64) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		b, err := s.bookings.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if b.Active() {
			if err := s.rooms.VacateTx(ctx, tx, b.RoomNumber); err != nil {
				if !errors.Is(err, repository.ErrConflict) && !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				log.Printf("booking: failed to vacate room %d while deleting booking %d: %v", b.RoomNumber, id, err)
			}
		}
		if err := s.invoices.DeleteAllForBookingTx(ctx, tx, id); err != nil {
			return err
		}
		return s.bookings.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	log.Printf("booking: deleted booking %d", id)
	return nil
}

// AddLineItem appends a charge to the booking's invoice and reruns the
// recalculation. Quantity must not be negative.
func (s *BookingService) AddLineItem(ctx context.Context, bookingID uint64, description string, quantity, unitPrice decimal.Decimal, itemType string) (*model.InvoiceLineItem, error) {
	if description == "" {
		return nil, fmt.Errorf("description is required: %w", repository.ErrBadRequest)
	}
	if quantity.IsNegative() {
		return nil, fmt.Errorf("quantity must not be negative: %w", repository.ErrBadRequest)
	}
	if itemType == "" {
		itemType = model.ItemTypeExtra
	}
	item := &model.InvoiceLineItem{
		BookingID:   bookingID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      quantity.Mul(unitPrice),
		ItemType:    itemType,
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.bookings.GetForUpdateTx(ctx, tx, bookingID); err != nil {
			return err
		}
		if err := s.invoices.InsertLineItemTx(ctx, tx, item); err != nil {
			return err
		}
		_, err := s.recalculateTx(ctx, tx, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Printf("booking: added line item %q to booking %d", description, bookingID)
	return item, nil
}

// RemoveLineItem deletes a charge and reruns the recalculation. The
// room charge of an active booking is protected and cannot be removed.
func (s *BookingService) RemoveLineItem(ctx context.Context, bookingID, itemID uint64) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		b, err := s.bookings.GetForUpdateTx(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		it, err := s.invoices.GetLineItemTx(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if it.BookingID != bookingID {
			return repository.ErrLineItemNotFound
		}
		if it.ItemType == model.ItemTypeRoom && b.Active() {
			return fmt.Errorf("cannot remove room charge from an active booking: %w", repository.ErrBadRequest)
		}
		if err := s.invoices.DeleteLineItemTx(ctx, tx, itemID); err != nil {
			return err
		}
		_, err = s.recalculateTx(ctx, tx, bookingID)
		return err
	})
	if err != nil {
		return err
	}
	log.Printf("booking: removed line item %d from booking %d", itemID, bookingID)
	return nil
}

// AddTax attaches a percentage tax to the booking and reruns the
// recalculation, which derives the tax amount from the current
// subtotal.
func (s *BookingService) AddTax(ctx context.Context, bookingID uint64, name string, rate decimal.Decimal) (*model.InvoiceTax, error) {
	if name == "" {
		return nil, fmt.Errorf("tax name is required: %w", repository.ErrBadRequest)
	}
	if rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return nil, fmt.Errorf("tax rate must be between 0 and 100: %w", repository.ErrBadRequest)
	}
	tax := &model.InvoiceTax{
		BookingID: bookingID,
		Name:      name,
		Rate:      rate,
		Amount:    decimal.Zero, // derived by the recalculation below
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.bookings.GetForUpdateTx(ctx, tx, bookingID); err != nil {
			return err
		}
		if err := s.invoices.InsertTaxTx(ctx, tx, tax); err != nil {
			return err
		}
		totals, err := s.recalculateTx(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		tax.Amount = totals.Subtotal.Mul(rate).Div(oneHundred)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("booking: added tax %q (%s%%) to booking %d", name, rate, bookingID)
	return tax, nil
}

// RemoveTax deletes a tax and reruns the recalculation.
func (s *BookingService) RemoveTax(ctx context.Context, bookingID, taxID uint64) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.bookings.GetForUpdateTx(ctx, tx, bookingID); err != nil {
			return err
		}
		t, err := s.invoices.GetTaxTx(ctx, tx, taxID)
		if err != nil {
			return err
		}
		if t.BookingID != bookingID {
			return repository.ErrTaxNotFound
		}
		if err := s.invoices.DeleteTaxTx(ctx, tx, taxID); err != nil {
			return err
		}
		_, err = s.recalculateTx(ctx, tx, bookingID)
		return err
	})
	if err != nil {
		return err
	}
	log.Printf("booking: removed tax %d from booking %d", taxID, bookingID)
	return nil
}

// AddDiscount attaches a discount to the booking. Exactly one of
// amount or percentage must be supplied: percentage discounts are
// re-derived from the subtotal on every recalculation, fixed amounts
// are stored as entered.
func (s *BookingService) AddDiscount(ctx context.Context, bookingID uint64, name string, amount, percentage *decimal.Decimal) (*model.InvoiceDiscount, error) {
	if name == "" {
		return nil, fmt.Errorf("discount name is required: %w", repository.ErrBadRequest)
	}
	if (amount == nil) == (percentage == nil) {
		return nil, fmt.Errorf("exactly one of amount or percentage must be provided: %w", repository.ErrBadRequest)
	}
	if percentage != nil && (percentage.IsNegative() || percentage.GreaterThan(oneHundred)) {
		return nil, fmt.Errorf("discount percentage must be between 0 and 100: %w", repository.ErrBadRequest)
	}

	d := &model.InvoiceDiscount{
		BookingID:  bookingID,
		Name:       name,
		Percentage: percentage,
	}
	if amount != nil {
		d.Amount = *amount
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.bookings.GetForUpdateTx(ctx, tx, bookingID); err != nil {
			return err
		}
		if err := s.invoices.InsertDiscountTx(ctx, tx, d); err != nil {
			return err
		}
		totals, err := s.recalculateTx(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if percentage != nil {
			d.Amount = totals.Subtotal.Mul(*percentage).Div(oneHundred)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("booking: added discount %q to booking %d", name, bookingID)
	return d, nil
}

// RemoveDiscount deletes a discount and reruns the recalculation.
func (s *BookingService) RemoveDiscount(ctx context.Context, bookingID, discountID uint64) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.bookings.GetForUpdateTx(ctx, tx, bookingID); err != nil {
			return err
		}
		d, err := s.invoices.GetDiscountTx(ctx, tx, discountID)
		if err != nil {
			return err
		}
		if d.BookingID != bookingID {
			return repository.ErrDiscountNotFound
		}
		if err := s.invoices.DeleteDiscountTx(ctx, tx, discountID); err != nil {
			return err
		}
		_, err = s.recalculateTx(ctx, tx, bookingID)
		return err
	})
	if err != nil {
		return err
	}
	log.Printf("booking: removed discount %d from booking %d", discountID, bookingID)
	return nil
}

// InvoiceDetail bundles a booking with every charge row and the four
// stored totals (zero when not yet computed).
type InvoiceDetail struct {
	Booking   *model.Booking          `json:"booking"`
	LineItems []model.InvoiceLineItem `json:"line_items"`
	Taxes     []model.InvoiceTax      `json:"taxes"`
	Discounts []model.InvoiceDiscount `json:"discounts"`
	Totals    Totals                  `json:"totals"`
}

// GetInvoiceDetail returns the booking's full invoice view.
func (s *BookingService) GetInvoiceDetail(ctx context.Context, bookingID uint64) (*InvoiceDetail, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	items, err := s.invoices.ListLineItems(ctx, s.db, bookingID)
	if err != nil {
		return nil, err
	}
	taxes, err := s.invoices.ListTaxes(ctx, s.db, bookingID)
	if err != nil {
		return nil, err
	}
	discounts, err := s.invoices.ListDiscounts(ctx, s.db, bookingID)
	if err != nil {
		return nil, err
	}

	det := &InvoiceDetail{Booking: b, LineItems: items, Taxes: taxes, Discounts: discounts}
	if b.Subtotal != nil {
		det.Totals.Subtotal = *b.Subtotal
	}
	if b.TaxTotal != nil {
		det.Totals.TaxTotal = *b.TaxTotal
	}
	if b.DiscountTotal != nil {
		det.Totals.DiscountTotal = *b.DiscountTotal
	}
	if b.GrandTotal != nil {
		det.Totals.GrandTotal = *b.GrandTotal
	}
	return det, nil
}
