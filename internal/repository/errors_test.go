package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsMySQLErr(t *testing.T) {
	fkErr := &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}
	dupErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

	cases := []struct {
		name string
		err  error
		code uint16
		want bool
	}{
		{"fk violation matches", fkErr, mysqlRowReferenced, true},
		{"wrapped fk violation matches", fmt.Errorf("delete guest: %w", fkErr), mysqlRowReferenced, true},
		{"duplicate key matches", dupErr, mysqlDupEntry, true},
		{"code mismatch", dupErr, mysqlRowReferenced, false},
		{"non-mysql error", errors.New("Error 1451"), mysqlRowReferenced, false},
		{"nil error", nil, mysqlRowReferenced, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isMySQLErr(tc.err, tc.code); got != tc.want {
				t.Errorf("isMySQLErr(%v, %d) = %v, want %v", tc.err, tc.code, got, tc.want)
			}
		})
	}
}

func TestEntitySentinelsWrapBaseSentinels(t *testing.T) {
	cases := []struct {
		err  error
		base error
	}{
		{ErrRoomNotFound, ErrNotFound},
		{ErrGuestNotFound, ErrNotFound},
		{ErrBookingNotFound, ErrNotFound},
		{ErrRoomOccupied, ErrConflict},
		{ErrRoomExists, ErrConflict},
		{ErrEmailExists, ErrConflict},
		{ErrAlreadyCheckedOut, ErrConflict},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.base) {
			t.Errorf("%v does not wrap %v", tc.err, tc.base)
		}
	}
}
