package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

// BookingRepo provides persistence for bookings. Mutations that are
// part of the booking lifecycle (create, checkout, totals) exist only
// as Tx variants: the engine composes them with room occupancy writes
// and invoice writes inside one transaction so that a failure leaves no
// partial state.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, guest_id, room_number, checkin_at, checkout_at, price,
	   subtotal, tax_total, discount_total, grand_total, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
	var b model.Booking
	var checkin, checkout sql.NullTime
	var subtotal, taxTotal, discountTotal, grandTotal decimal.NullDecimal
	err := row.Scan(&b.ID, &b.GuestID, &b.RoomNumber, &checkin, &checkout, &b.Price,
		&subtotal, &taxTotal, &discountTotal, &grandTotal, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if checkin.Valid {
		b.CheckinAt = checkin.Time
	}
	if checkout.Valid {
		t := checkout.Time
		b.CheckoutAt = &t
	}
	if subtotal.Valid {
		b.Subtotal = &subtotal.Decimal
	}
	if taxTotal.Valid {
		b.TaxTotal = &taxTotal.Decimal
	}
	if discountTotal.Valid {
		b.DiscountTotal = &discountTotal.Decimal
	}
	if grandTotal.Valid {
		b.GrandTotal = &grandTotal.Decimal
	}
	return &b, nil
}

// CreateTx inserts a booking inside tx and populates the generated ID.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings (guest_id, room_number, checkin_at, price)
			   VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, b.GuestID, b.RoomNumber, b.CheckinAt, b.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID returns a booking or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	return b, err
}

// GetForUpdateTx loads a booking inside tx with a row lock. Every
// invoice mutation locks the booking row first so that concurrent
// add/remove operations on the same booking serialize and each
// recalculation sees the full current set of invoice rows.
func (r *BookingRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	return b, err
}

// BookingFilter narrows List results. Nil fields are ignored. Status
// accepts "active" (checkout_at IS NULL) or "completed".
type BookingFilter struct {
	GuestID    *uint64
	RoomNumber *uint64
	Status     string
	From       *time.Time
	To         *time.Time
	Offset     int
	Limit      int
}

func (f BookingFilter) where() (string, []any) {
	cond := ` WHERE 1=1`
	args := []any{}
	if f.GuestID != nil {
		cond += ` AND guest_id = ?`
		args = append(args, *f.GuestID)
	}
	if f.RoomNumber != nil {
		cond += ` AND room_number = ?`
		args = append(args, *f.RoomNumber)
	}
	switch f.Status {
	case "active":
		cond += ` AND checkout_at IS NULL`
	case "completed":
		cond += ` AND checkout_at IS NOT NULL`
	}
	if f.From != nil {
		cond += ` AND checkin_at >= ?`
		args = append(args, *f.From)
	}
	if f.To != nil {
		cond += ` AND checkin_at <= ?`
		args = append(args, *f.To)
	}
	return cond, args
}

// List returns bookings matching the filter, newest check-in first,
// along with the total match count before pagination.
func (r *BookingRepo) List(ctx context.Context, f BookingFilter) ([]model.Booking, int, error) {
	cond, args := f.where()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + bookingColumns + ` FROM bookings` + cond + ` ORDER BY checkin_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *b)
	}
	return out, total, rows.Err()
}

// SetCheckoutTx stamps checkout_at inside tx.
func (r *BookingRepo) SetCheckoutTx(ctx context.Context, tx *sql.Tx, id uint64, at time.Time) error {
	const q = `UPDATE bookings SET checkout_at = ?, updated_at = NOW() WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, at, id)
	return err
}

// SetCheckinTx stamps checkin_at inside tx. Used by the decoupled
// check-in operation.
func (r *BookingRepo) SetCheckinTx(ctx context.Context, tx *sql.Tx, id uint64, at time.Time) error {
	const q = `UPDATE bookings SET checkin_at = ?, updated_at = NOW() WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, at, id)
	return err
}

// UpdateTotalsTx writes the four derived totals inside tx. This is the
// final write of every recalculation, so a committed operation can
// never expose totals from a pre-mutation state.
func (r *BookingRepo) UpdateTotalsTx(ctx context.Context, tx *sql.Tx, id uint64, subtotal, taxTotal, discountTotal, grandTotal decimal.Decimal) error {
	const q = `UPDATE bookings SET subtotal = ?, tax_total = ?, discount_total = ?, grand_total = ?, updated_at = NOW()
			   WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, subtotal, taxTotal, discountTotal, grandTotal, id)
	return err
}

// DeleteTx removes the booking row inside tx. Invoice rows must be
// deleted first by the caller.
func (r *BookingRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListCheckedOutBetween returns completed bookings whose checkout falls
// inside [start, end]. Used by revenue reporting.
func (r *BookingRepo) ListCheckedOutBetween(ctx context.Context, start, end time.Time) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings
			   WHERE checkout_at IS NOT NULL AND checkout_at >= ? AND checkout_at <= ?
			   ORDER BY checkout_at`
	rows, err := r.db.QueryContext(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// ListInRange returns bookings whose check-in falls after start and
// that either completed before end or are still active. Used by the
// booking statistics report.
func (r *BookingRepo) ListInRange(ctx context.Context, start, end time.Time) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings
			   WHERE checkin_at >= ? AND (checkout_at <= ? OR checkout_at IS NULL)
			   ORDER BY checkin_at`
	rows, err := r.db.QueryContext(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}
