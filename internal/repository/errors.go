// Package repository implements the persistence layer on top of
// database/sql. This file defines the error taxonomy shared by every
// repository and by the service layer. Handlers translate the three
// base sentinels into HTTP statuses with errors.Is: ErrNotFound -> 404,
// ErrConflict -> 409, ErrBadRequest -> 400. Entity-specific sentinels
// wrap a base sentinel so callers can match either the broad category
// or the precise condition.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is the base sentinel for a missing room, guest, booking,
// line item, tax or discount. Never retried automatically.
var ErrNotFound = errors.New("not found")

// ErrConflict is the base sentinel for state conflicts: double-occupy,
// double-vacate, double-checkin, double-checkout, deleting an occupied
// room. The caller may retry after refreshing state; repositories never
// retry internally.
var ErrConflict = errors.New("conflict")

// ErrBadRequest is the base sentinel for invalid input combinations,
// such as a discount with neither amount nor percentage, or removing
// the protected room charge from an active booking.
var ErrBadRequest = errors.New("bad request")

// Entity-specific sentinels. Each wraps one of the base sentinels above.
var (
	ErrRoomNotFound     = fmt.Errorf("room %w", ErrNotFound)
	ErrGuestNotFound    = fmt.Errorf("guest %w", ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)
	ErrLineItemNotFound = fmt.Errorf("line item %w", ErrNotFound)
	ErrTaxNotFound      = fmt.Errorf("tax %w", ErrNotFound)
	ErrDiscountNotFound = fmt.Errorf("discount %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)

	ErrRoomOccupied      = fmt.Errorf("room already occupied: %w", ErrConflict)
	ErrRoomVacant        = fmt.Errorf("room already vacant: %w", ErrConflict)
	ErrRoomExists        = fmt.Errorf("room number already exists: %w", ErrConflict)
	ErrEmailExists       = fmt.Errorf("email already exists: %w", ErrConflict)
	ErrAlreadyCheckedIn  = fmt.Errorf("booking already checked in: %w", ErrConflict)
	ErrAlreadyCheckedOut = fmt.Errorf("booking already checked out: %w", ErrConflict)
)

// MySQL server error codes the repositories translate into sentinels.
const (
	mysqlDupEntry      = 1062 // duplicate key
	mysqlRowReferenced = 1451 // delete blocked by a foreign key
)

// isMySQLErr reports whether err is a MySQL server error with the
// given code.
func isMySQLErr(err error, code uint16) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == code
}
