package database

import (
	"strings"
	"testing"
)

// The repositories name columns in hand-written SQL, so the DDL and
// the queries can only drift apart silently. Pin every column the
// repository layer reads or writes to its CREATE TABLE statement.
func TestMigrationsDeclareRepositoryColumns(t *testing.T) {
	cases := []struct {
		table   string
		ddl     string
		columns []string
	}{
		{"rooms", createRoomsSQL, []string{
			"number", "room_type", "rate_per_night", "occupied", "current_guest_id", "notes", "created_at", "updated_at",
		}},
		{"guests", createGuestsSQL, []string{
			"name", "phone", "email", "id_type", "id_number", "is_premium", "first_seen", "last_seen", "notes", "created_at", "updated_at",
		}},
		{"bookings", createBookingsSQL, []string{
			"guest_id", "room_number", "checkin_at", "checkout_at", "price", "subtotal", "tax_total", "discount_total", "grand_total", "created_at", "updated_at",
		}},
		{"invoice_line_items", createLineItemsSQL, []string{
			"booking_id", "description", "quantity", "unit_price", "amount", "item_type", "created_at", "updated_at",
		}},
		{"invoice_taxes", createTaxesSQL, []string{
			"booking_id", "name", "rate", "amount", "created_at", "updated_at",
		}},
		{"invoice_discounts", createDiscountsSQL, []string{
			"booking_id", "name", "amount", "percentage", "created_at", "updated_at",
		}},
		{"users", createUsersSQL, []string{
			"email", "password_hash", "full_name", "role", "is_active", "created_at", "updated_at",
		}},
		{"refresh_tokens", createRefreshTokensSQL, []string{
			"user_id", "token_hash", "expires_at", "revoked_at", "created_at",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.table, func(t *testing.T) {
			for _, col := range tc.columns {
				if !strings.Contains(tc.ddl, col) {
					t.Errorf("table %s: column %q missing from DDL", tc.table, col)
				}
			}
		})
	}
}

// Revocation is a timestamp, not a flag: TokenRepo revokes with
// SET revoked_at=NOW() and treats any non-null value as revoked.
func TestRefreshTokensRevocationColumn(t *testing.T) {
	if !strings.Contains(createRefreshTokensSQL, "revoked_at DATETIME NULL") {
		t.Fatal("refresh_tokens.revoked_at must be a nullable DATETIME")
	}
}
