package repository

import (
	"context"
	"database/sql"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

// RoomRepo provides persistence for rooms. Rooms are keyed by their
// room number, not a surrogate ID. Occupancy transitions are exposed
// only as Tx variants because the booking engine must perform the
// occupied check and the flag write inside one transaction, holding a
// row lock so that two concurrent bookings cannot both observe the
// room as free.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `number, room_type, rate_per_night, occupied, current_guest_id, notes, created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (*model.Room, error) {
	var r model.Room
	var guestID sql.NullInt64
	var notes sql.NullString
	err := row.Scan(&r.Number, &r.RoomType, &r.RatePerNight, &r.Occupied,
		&guestID, &notes, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if guestID.Valid {
		id := uint64(guestID.Int64)
		r.CurrentGuestID = &id
	}
	if notes.Valid {
		n := notes.String
		r.Notes = &n
	}
	return &r, nil
}

// Create inserts a new room. Returns ErrRoomExists when the number is
// already taken.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const q = `INSERT INTO rooms (number, room_type, rate_per_night, occupied, notes)
			   VALUES (?, ?, ?, FALSE, ?)`
	_, err := r.db.ExecContext(ctx, q, room.Number, room.RoomType, room.RatePerNight, room.Notes)
	if err != nil {
		if isMySQLErr(err, mysqlDupEntry) {
			return ErrRoomExists
		}
		return err
	}
	return nil
}

// GetByNumber returns a room by number or ErrRoomNotFound.
func (r *RoomRepo) GetByNumber(ctx context.Context, number uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE number = ?`
	room, err := scanRoom(r.db.QueryRowContext(ctx, q, number))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// GetForUpdateTx loads a room inside tx with a row lock. It is the
// first step of every occupancy transition.
func (r *RoomRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, number uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE number = ? FOR UPDATE`
	room, err := scanRoom(tx.QueryRowContext(ctx, q, number))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// OccupyTx marks a room occupied by a guest inside tx. It locks the
// room row, verifies the room is free and flips the occupancy fields.
// The room is returned as it was before the transition so callers can
// read its rate. Returns ErrRoomNotFound or ErrRoomOccupied.
func (r *RoomRepo) OccupyTx(ctx context.Context, tx *sql.Tx, number, guestID uint64) (*model.Room, error) {
	room, err := r.GetForUpdateTx(ctx, tx, number)
	if err != nil {
		return nil, err
	}
	if room.Occupied {
		return nil, ErrRoomOccupied
	}
	const q = `UPDATE rooms SET occupied = TRUE, current_guest_id = ?, updated_at = NOW() WHERE number = ?`
	if _, err := tx.ExecContext(ctx, q, guestID, number); err != nil {
		return nil, err
	}
	return room, nil
}

// VacateTx clears a room's occupancy fields inside tx. Returns
// ErrRoomNotFound or ErrRoomVacant.
func (r *RoomRepo) VacateTx(ctx context.Context, tx *sql.Tx, number uint64) error {
	room, err := r.GetForUpdateTx(ctx, tx, number)
	if err != nil {
		return err
	}
	if !room.Occupied {
		return ErrRoomVacant
	}
	const q = `UPDATE rooms SET occupied = FALSE, current_guest_id = NULL, updated_at = NOW() WHERE number = ?`
	_, err = tx.ExecContext(ctx, q, number)
	return err
}

// List returns rooms matching the optional type and occupancy filters,
// ordered by room number, with offset/limit pagination.
func (r *RoomRepo) List(ctx context.Context, roomType *string, occupied *bool, offset, limit int) ([]model.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms WHERE 1=1`
	args := []any{}
	if roomType != nil {
		q += ` AND room_type = ?`
		args = append(args, *roomType)
	}
	if occupied != nil {
		q += ` AND occupied = ?`
		args = append(args, *occupied)
	}
	q += ` ORDER BY number LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *room)
	}
	return out, rows.Err()
}

// Count returns the number of rooms matching the optional filters.
func (r *RoomRepo) Count(ctx context.Context, roomType *string, occupied *bool) (int, error) {
	q := `SELECT COUNT(*) FROM rooms WHERE 1=1`
	args := []any{}
	if roomType != nil {
		q += ` AND room_type = ?`
		args = append(args, *roomType)
	}
	if occupied != nil {
		q += ` AND occupied = ?`
		args = append(args, *occupied)
	}
	var n int
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&n)
	return n, err
}

// Update rewrites a room's mutable attributes (type, rate, notes).
// Occupancy fields are deliberately excluded; those change only through
// OccupyTx/VacateTx.
func (r *RoomRepo) Update(ctx context.Context, room *model.Room) error {
	const q = `UPDATE rooms SET room_type = ?, rate_per_night = ?, notes = ?, updated_at = NOW() WHERE number = ?`
	res, err := r.db.ExecContext(ctx, q, room.RoomType, room.RatePerNight, room.Notes, room.Number)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is 0 both for a missing row and a no-op update;
		// confirm existence before reporting not found.
		if _, err := r.GetByNumber(ctx, room.Number); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a vacant room. Occupied rooms are refused with
// ErrRoomOccupied so an active booking can never dangle.
func (r *RoomRepo) Delete(ctx context.Context, number uint64) error {
	room, err := r.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	if room.Occupied {
		return ErrRoomOccupied
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM rooms WHERE number = ?`, number)
	return err
}
