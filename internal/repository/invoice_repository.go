package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

// Queryer is satisfied by both *sql.DB and *sql.Tx. Invoice rows are
// read during recalculation (inside a transaction) and when rendering
// invoice details (outside one), so the read methods accept either.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InvoiceRepo persists the charge rows attached to a booking: line
// items, taxes and discounts. All writes are Tx-only because every
// mutation is followed by a totals recalculation in the same
// transaction.
type InvoiceRepo struct {
	db *sql.DB
}

// NewInvoiceRepo returns an InvoiceRepo bound to the given database.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

// --- line items ---

// InsertLineItemTx inserts a line item and populates its ID.
func (r *InvoiceRepo) InsertLineItemTx(ctx context.Context, tx *sql.Tx, it *model.InvoiceLineItem) error {
	const q = `INSERT INTO invoice_line_items (booking_id, description, quantity, unit_price, amount, item_type)
			   VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, it.BookingID, it.Description, it.Quantity, it.UnitPrice, it.Amount, it.ItemType)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	return nil
}

// GetLineItemTx loads a line item by ID inside tx.
func (r *InvoiceRepo) GetLineItemTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.InvoiceLineItem, error) {
	const q = `SELECT id, booking_id, description, quantity, unit_price, amount, item_type, created_at, updated_at
			   FROM invoice_line_items WHERE id = ?`
	var it model.InvoiceLineItem
	err := tx.QueryRowContext(ctx, q, id).Scan(&it.ID, &it.BookingID, &it.Description,
		&it.Quantity, &it.UnitPrice, &it.Amount, &it.ItemType, &it.CreatedAt, &it.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrLineItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListLineItems returns all line items of a booking in insertion order.
func (r *InvoiceRepo) ListLineItems(ctx context.Context, q Queryer, bookingID uint64) ([]model.InvoiceLineItem, error) {
	const query = `SELECT id, booking_id, description, quantity, unit_price, amount, item_type, created_at, updated_at
				   FROM invoice_line_items WHERE booking_id = ? ORDER BY id`
	rows, err := q.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.InvoiceLineItem{}
	for rows.Next() {
		var it model.InvoiceLineItem
		if err := rows.Scan(&it.ID, &it.BookingID, &it.Description, &it.Quantity,
			&it.UnitPrice, &it.Amount, &it.ItemType, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// UpdateLineItemQuantityTx rewrites a line item's quantity and amount.
// Checkout uses this to stretch the room charge to the final stay
// duration.
func (r *InvoiceRepo) UpdateLineItemQuantityTx(ctx context.Context, tx *sql.Tx, id uint64, quantity, amount decimal.Decimal) error {
	const q = `UPDATE invoice_line_items SET quantity = ?, amount = ?, updated_at = NOW() WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, quantity, amount, id)
	return err
}

// DeleteLineItemTx removes a line item.
func (r *InvoiceRepo) DeleteLineItemTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM invoice_line_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrLineItemNotFound
	}
	return nil
}

// --- taxes ---

// InsertTaxTx inserts a tax row and populates its ID.
func (r *InvoiceRepo) InsertTaxTx(ctx context.Context, tx *sql.Tx, t *model.InvoiceTax) error {
	const q = `INSERT INTO invoice_taxes (booking_id, name, rate, amount) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, t.BookingID, t.Name, t.Rate, t.Amount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// ListTaxes returns all taxes of a booking in insertion order.
func (r *InvoiceRepo) ListTaxes(ctx context.Context, q Queryer, bookingID uint64) ([]model.InvoiceTax, error) {
	const query = `SELECT id, booking_id, name, rate, amount, created_at, updated_at
				   FROM invoice_taxes WHERE booking_id = ? ORDER BY id`
	rows, err := q.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.InvoiceTax{}
	for rows.Next() {
		var t model.InvoiceTax
		if err := rows.Scan(&t.ID, &t.BookingID, &t.Name, &t.Rate, &t.Amount, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTaxAmountTx rewrites a tax's derived amount during
// recalculation.
func (r *InvoiceRepo) UpdateTaxAmountTx(ctx context.Context, tx *sql.Tx, id uint64, amount decimal.Decimal) error {
	const q = `UPDATE invoice_taxes SET amount = ?, updated_at = NOW() WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, amount, id)
	return err
}

// DeleteTaxTx removes a tax row.
func (r *InvoiceRepo) DeleteTaxTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM invoice_taxes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTaxNotFound
	}
	return nil
}

// GetTaxTx loads a tax by ID inside tx.
func (r *InvoiceRepo) GetTaxTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.InvoiceTax, error) {
	const q = `SELECT id, booking_id, name, rate, amount, created_at, updated_at FROM invoice_taxes WHERE id = ?`
	var t model.InvoiceTax
	err := tx.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.BookingID, &t.Name, &t.Rate, &t.Amount, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTaxNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// --- discounts ---

// InsertDiscountTx inserts a discount row and populates its ID.
func (r *InvoiceRepo) InsertDiscountTx(ctx context.Context, tx *sql.Tx, d *model.InvoiceDiscount) error {
	const q = `INSERT INTO invoice_discounts (booking_id, name, amount, percentage) VALUES (?, ?, ?, ?)`
	var pct any
	if d.Percentage != nil {
		pct = *d.Percentage
	}
	res, err := tx.ExecContext(ctx, q, d.BookingID, d.Name, d.Amount, pct)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return nil
}

// ListDiscounts returns all discounts of a booking in insertion order.
func (r *InvoiceRepo) ListDiscounts(ctx context.Context, q Queryer, bookingID uint64) ([]model.InvoiceDiscount, error) {
	const query = `SELECT id, booking_id, name, amount, percentage, created_at, updated_at
				   FROM invoice_discounts WHERE booking_id = ? ORDER BY id`
	rows, err := q.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.InvoiceDiscount{}
	for rows.Next() {
		var d model.InvoiceDiscount
		var pct decimal.NullDecimal
		if err := rows.Scan(&d.ID, &d.BookingID, &d.Name, &d.Amount, &pct, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		if pct.Valid {
			p := pct.Decimal
			d.Percentage = &p
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateDiscountAmountTx rewrites a percentage discount's derived
// amount during recalculation. Fixed discounts are never rewritten.
func (r *InvoiceRepo) UpdateDiscountAmountTx(ctx context.Context, tx *sql.Tx, id uint64, amount decimal.Decimal) error {
	const q = `UPDATE invoice_discounts SET amount = ?, updated_at = NOW() WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, amount, id)
	return err
}

// DeleteDiscountTx removes a discount row.
func (r *InvoiceRepo) DeleteDiscountTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM invoice_discounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

// GetDiscountTx loads a discount by ID inside tx.
func (r *InvoiceRepo) GetDiscountTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.InvoiceDiscount, error) {
	const q = `SELECT id, booking_id, name, amount, percentage, created_at, updated_at FROM invoice_discounts WHERE id = ?`
	var d model.InvoiceDiscount
	var pct decimal.NullDecimal
	err := tx.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.BookingID, &d.Name, &d.Amount, &pct, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, err
	}
	if pct.Valid {
		p := pct.Decimal
		d.Percentage = &p
	}
	return &d, nil
}

// DeleteAllForBookingTx cascades deletion of every invoice row attached
// to a booking. Used when a booking is deleted.
func (r *InvoiceRepo) DeleteAllForBookingTx(ctx context.Context, tx *sql.Tx, bookingID uint64) error {
	for _, q := range []string{
		`DELETE FROM invoice_line_items WHERE booking_id = ?`,
		`DELETE FROM invoice_taxes WHERE booking_id = ?`,
		`DELETE FROM invoice_discounts WHERE booking_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, bookingID); err != nil {
			return err
		}
	}
	return nil
}
