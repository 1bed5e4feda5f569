package repository

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
)

// stubRow feeds driver values through the same Scan path the real
// *sql.Row uses, so nullable column handling can be checked without a
// live database.
type stubRow struct{ vals []any }

func (r stubRow) Scan(dest ...any) error {
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan: %d dests for %d values", len(dest), len(r.vals))
	}
	for i, d := range dest {
		if sc, ok := d.(sql.Scanner); ok {
			if err := sc.Scan(r.vals[i]); err != nil {
				return err
			}
			continue
		}
		switch v := d.(type) {
		case *uint64:
			*v = r.vals[i].(uint64)
		case *string:
			*v = r.vals[i].(string)
		case *bool:
			*v = r.vals[i].(bool)
		case *time.Time:
			*v = r.vals[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported dest %T", d)
		}
	}
	return nil
}

func guestRowVals(firstSeen, lastSeen any) []any {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []any{
		uint64(7), "Asha Verma", "+91-9000000000", nil, nil, nil,
		true, firstSeen, lastSeen, nil, now, now,
	}
}

func TestScanGuestNullTimestamps(t *testing.T) {
	g, err := scanGuest(stubRow{vals: guestRowVals(nil, nil)})
	if err != nil {
		t.Fatalf("scanGuest: %v", err)
	}
	if g.FirstSeen != nil {
		t.Errorf("first_seen = %v, want nil for a NULL column", g.FirstSeen)
	}
	if g.LastSeen != nil {
		t.Errorf("last_seen = %v, want nil for a NULL column", g.LastSeen)
	}
	if g.Phone == nil || *g.Phone != "+91-9000000000" {
		t.Error("phone not scanned")
	}
	if !g.IsPremium {
		t.Error("is_premium not scanned")
	}
}

func TestScanGuestSetTimestamps(t *testing.T) {
	seen := time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC)
	g, err := scanGuest(stubRow{vals: guestRowVals(seen, seen)})
	if err != nil {
		t.Fatalf("scanGuest: %v", err)
	}
	if g.FirstSeen == nil || !g.FirstSeen.Equal(seen) {
		t.Errorf("first_seen = %v, want %v", g.FirstSeen, seen)
	}
	if g.LastSeen == nil || !g.LastSeen.Equal(seen) {
		t.Errorf("last_seen = %v, want %v", g.LastSeen, seen)
	}
}
