package service

import (
	"testing"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

func TestOccupancyRate(t *testing.T) {
	cases := []struct {
		name     string
		occupied int
		total    int
		want     float64
	}{
		{"no rooms", 0, 0, 0},
		{"empty hotel", 0, 20, 0},
		{"full hotel", 20, 20, 100},
		{"half full", 10, 20, 50},
		{"rounded to two decimals", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OccupancyRate(tc.occupied, tc.total); got != tc.want {
				t.Errorf("OccupancyRate(%d, %d) = %v, want %v", tc.occupied, tc.total, got, tc.want)
			}
		})
	}
}

func TestSeedPlanShape(t *testing.T) {
	total := 0
	for _, p := range seedPlan {
		total += p.count
	}
	if total != 20 {
		t.Errorf("seed plan creates %d rooms, want 20", total)
	}
	if seedPlan[0].roomType != model.RoomTypeStandard || seedPlan[0].count != 10 {
		t.Errorf("first seed tier = %+v, want 10 Standard rooms", seedPlan[0])
	}
}
