package database

import (
	"database/sql"
	"fmt"
)

const createRoomsSQL = `
CREATE TABLE IF NOT EXISTS rooms (
	number           BIGINT UNSIGNED PRIMARY KEY,
	room_type        VARCHAR(32) NOT NULL,
	rate_per_night   DECIMAL(12,2) NOT NULL,
	occupied         TINYINT(1) NOT NULL DEFAULT 0,
	current_guest_id BIGINT UNSIGNED NULL,
	notes            TEXT NULL,
	created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB;`

const createGuestsSQL = `
CREATE TABLE IF NOT EXISTS guests (
	id         BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	name       VARCHAR(255) NOT NULL,
	phone      VARCHAR(64) NULL,
	email      VARCHAR(255) NULL,
	id_type    VARCHAR(64) NULL,
	id_number  VARCHAR(128) NULL,
	is_premium TINYINT(1) NOT NULL DEFAULT 0,
	first_seen DATETIME NULL,
	last_seen  DATETIME NULL,
	notes      TEXT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	INDEX idx_guests_name (name),
	INDEX idx_guests_last_seen (last_seen)
) ENGINE=InnoDB;`

const createBookingsSQL = `
CREATE TABLE IF NOT EXISTS bookings (
	id             BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	guest_id       BIGINT UNSIGNED NOT NULL,
	room_number    BIGINT UNSIGNED NOT NULL,
	checkin_at     DATETIME NULL,
	checkout_at    DATETIME NULL,
	price          DECIMAL(12,2) NOT NULL,
	subtotal       DECIMAL(12,2) NULL,
	tax_total      DECIMAL(12,2) NULL,
	discount_total DECIMAL(12,2) NULL,
	grand_total    DECIMAL(12,2) NULL,
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	INDEX idx_bookings_guest (guest_id),
	INDEX idx_bookings_room (room_number),
	INDEX idx_bookings_checkout (checkout_at),
	CONSTRAINT fk_bookings_guest FOREIGN KEY (guest_id) REFERENCES guests(id),
	CONSTRAINT fk_bookings_room FOREIGN KEY (room_number) REFERENCES rooms(number)
) ENGINE=InnoDB;`

const createLineItemsSQL = `
CREATE TABLE IF NOT EXISTS invoice_line_items (
	id          BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	booking_id  BIGINT UNSIGNED NOT NULL,
	description VARCHAR(255) NOT NULL,
	quantity    DECIMAL(12,2) NOT NULL,
	unit_price  DECIMAL(12,2) NOT NULL,
	amount      DECIMAL(12,2) NOT NULL,
	item_type   VARCHAR(32) NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	INDEX idx_line_items_booking (booking_id),
	CONSTRAINT fk_line_items_booking FOREIGN KEY (booking_id) REFERENCES bookings(id)
) ENGINE=InnoDB;`

const createTaxesSQL = `
CREATE TABLE IF NOT EXISTS invoice_taxes (
	id         BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	booking_id BIGINT UNSIGNED NOT NULL,
	name       VARCHAR(128) NOT NULL,
	rate       DECIMAL(6,3) NOT NULL,
	amount     DECIMAL(12,2) NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	INDEX idx_taxes_booking (booking_id),
	CONSTRAINT fk_taxes_booking FOREIGN KEY (booking_id) REFERENCES bookings(id)
) ENGINE=InnoDB;`

const createDiscountsSQL = `
CREATE TABLE IF NOT EXISTS invoice_discounts (
	id         BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	booking_id BIGINT UNSIGNED NOT NULL,
	name       VARCHAR(128) NOT NULL,
	amount     DECIMAL(12,2) NOT NULL DEFAULT 0,
	percentage DECIMAL(6,3) NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	INDEX idx_discounts_booking (booking_id),
	CONSTRAINT fk_discounts_booking FOREIGN KEY (booking_id) REFERENCES bookings(id)
) ENGINE=InnoDB;`

const createUsersSQL = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	full_name     VARCHAR(255) NULL,
	role          VARCHAR(32) NOT NULL,
	is_active     TINYINT(1) NOT NULL DEFAULT 1,
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB;`

const createRefreshTokensSQL = `
CREATE TABLE IF NOT EXISTS refresh_tokens (
	id         BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	user_id    BIGINT UNSIGNED NOT NULL,
	token_hash CHAR(64) NOT NULL UNIQUE,
	expires_at DATETIME NOT NULL,
	revoked_at DATETIME NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_refresh_tokens_user (user_id),
	CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users(id)
) ENGINE=InnoDB;`

// Migrate creates all tables if they do not exist. Statements are
// ordered so foreign key targets exist first.
func Migrate(db *sql.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"rooms", createRoomsSQL},
		{"guests", createGuestsSQL},
		{"bookings", createBookingsSQL},
		{"invoice_line_items", createLineItemsSQL},
		{"invoice_taxes", createTaxesSQL},
		{"invoice_discounts", createDiscountsSQL},
		{"users", createUsersSQL},
		{"refresh_tokens", createRefreshTokensSQL},
	}
	for _, s := range stmts {
		if _, err := db.Exec(s.sql); err != nil {
			return fmt.Errorf("migrate %s: %w", s.name, err)
		}
	}
	return nil
}
