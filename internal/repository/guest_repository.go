package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

// GuestRepo provides CRUD persistence for guests. The booking engine
// only reads guests and bumps last_seen; everything else belongs to the
// guest ledger endpoints.
type GuestRepo struct {
	db *sql.DB
}

// NewGuestRepo returns a GuestRepo bound to the given database.
func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{db: db} }

const guestColumns = `id, name, phone, email, id_type, id_number, is_premium, first_seen, last_seen, notes, created_at, updated_at`

func scanGuest(row interface{ Scan(...any) error }) (*model.Guest, error) {
	var g model.Guest
	var phone, email, idType, idNumber, notes sql.NullString
	var firstSeen, lastSeen sql.NullTime
	err := row.Scan(&g.ID, &g.Name, &phone, &email, &idType, &idNumber,
		&g.IsPremium, &firstSeen, &lastSeen, &notes, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		g.Phone = &phone.String
	}
	if email.Valid {
		g.Email = &email.String
	}
	if idType.Valid {
		g.IDType = &idType.String
	}
	if idNumber.Valid {
		g.IDNumber = &idNumber.String
	}
	if notes.Valid {
		g.Notes = &notes.String
	}
	if firstSeen.Valid {
		t := firstSeen.Time
		g.FirstSeen = &t
	}
	if lastSeen.Valid {
		t := lastSeen.Time
		g.LastSeen = &t
	}
	return &g, nil
}

// Create inserts a guest and populates the generated ID.
func (r *GuestRepo) Create(ctx context.Context, g *model.Guest) error {
	const q = `INSERT INTO guests (name, phone, email, id_type, id_number, is_premium, first_seen, notes)
			   VALUES (?, ?, ?, ?, ?, ?, NOW(), ?)`
	res, err := r.db.ExecContext(ctx, q, g.Name, g.Phone, g.Email, g.IDType, g.IDNumber, g.IsPremium, g.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}

// GetByID returns a guest or ErrGuestNotFound.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (*model.Guest, error) {
	const q = `SELECT ` + guestColumns + ` FROM guests WHERE id = ?`
	g, err := scanGuest(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	return g, err
}

// List returns guests ordered by most recently seen, with optional
// case-insensitive name search.
func (r *GuestRepo) List(ctx context.Context, search string, offset, limit int) ([]model.Guest, error) {
	q := `SELECT ` + guestColumns + ` FROM guests`
	args := []any{}
	if search != "" {
		q += ` WHERE name LIKE ?`
		args = append(args, "%"+search+"%")
	}
	q += ` ORDER BY last_seen DESC, id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Guest{}
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

// Update rewrites a guest's contact and document fields.
func (r *GuestRepo) Update(ctx context.Context, g *model.Guest) error {
	const q = `UPDATE guests SET name = ?, phone = ?, email = ?, id_type = ?, id_number = ?,
					  is_premium = ?, notes = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, g.Name, g.Phone, g.Email, g.IDType, g.IDNumber,
		g.IsPremium, g.Notes, g.ID)
	return err
}

// Delete removes a guest. Bookings reference guests with a RESTRICT
// foreign key, so a guest with any booking on record cannot be removed;
// that violation surfaces as ErrConflict.
func (r *GuestRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
	if err != nil {
		if isMySQLErr(err, mysqlRowReferenced) {
			return fmt.Errorf("guest %d has bookings on record: %w", id, ErrConflict)
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGuestNotFound
	}
	return nil
}

// TouchLastSeenTx bumps a guest's last_seen inside tx. The booking
// engine calls this whenever a booking is created or checked in.
func (r *GuestRepo) TouchLastSeenTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	const q = `UPDATE guests SET last_seen = NOW(), updated_at = NOW() WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}
