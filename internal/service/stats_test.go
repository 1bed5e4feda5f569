package service

import (
	"testing"
	"time"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

func completedBooking(checkin, checkout time.Time, grand string) model.Booking {
	g := dec(grand)
	return model.Booking{CheckinAt: checkin, CheckoutAt: &checkout, GrandTotal: &g}
}

func TestAggregateRevenue(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	day1 := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 5, 9, 30, 0, 0, time.UTC)

	t.Run("empty range", func(t *testing.T) {
		got := AggregateRevenue(nil, start, end)
		if got.TotalBookings != 0 || !got.TotalRevenue.IsZero() || !got.AvgBookingValue.IsZero() {
			t.Errorf("empty range produced %+v", got)
		}
		if len(got.DailyRevenue) != 0 {
			t.Errorf("expected no daily buckets, got %d", len(got.DailyRevenue))
		}
	})

	t.Run("buckets by checkout day", func(t *testing.T) {
		bookings := []model.Booking{
			completedBooking(day1.AddDate(0, 0, -2), day1, "1080"),
			completedBooking(day1.AddDate(0, 0, -1), day1.Add(4*time.Hour), "500"),
			completedBooking(day2.AddDate(0, 0, -3), day2, "2500"),
		}
		got := AggregateRevenue(bookings, start, end)
		if got.TotalBookings != 3 {
			t.Fatalf("total bookings = %d, want 3", got.TotalBookings)
		}
		if !got.TotalRevenue.Equal(dec("4080")) {
			t.Errorf("total revenue = %s, want 4080", got.TotalRevenue)
		}
		if !got.AvgBookingValue.Equal(dec("1360")) {
			t.Errorf("avg booking value = %s, want 1360", got.AvgBookingValue)
		}
		if len(got.DailyRevenue) != 2 {
			t.Fatalf("daily buckets = %d, want 2", len(got.DailyRevenue))
		}
		if got.DailyRevenue[0].Date != "2025-06-03" || !got.DailyRevenue[0].Revenue.Equal(dec("1580")) {
			t.Errorf("first bucket = %+v", got.DailyRevenue[0])
		}
		if got.DailyRevenue[1].Date != "2025-06-05" || !got.DailyRevenue[1].Revenue.Equal(dec("2500")) {
			t.Errorf("second bucket = %+v", got.DailyRevenue[1])
		}
	})

	t.Run("missing grand total counts the booking but adds nothing", func(t *testing.T) {
		b := completedBooking(day1.AddDate(0, 0, -1), day1, "0")
		b.GrandTotal = nil
		got := AggregateRevenue([]model.Booking{b}, start, end)
		if got.TotalBookings != 1 {
			t.Errorf("total bookings = %d, want 1", got.TotalBookings)
		}
		if !got.TotalRevenue.IsZero() {
			t.Errorf("total revenue = %s, want 0", got.TotalRevenue)
		}
		if len(got.DailyRevenue) != 0 {
			t.Errorf("expected no daily buckets, got %d", len(got.DailyRevenue))
		}
	})
}

func TestAggregateBookingStats(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	checkin := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	active := model.Booking{CheckinAt: checkin}
	grandActive := dec("1000")
	active.GrandTotal = &grandActive

	twoNights := completedBooking(checkin, checkin.AddDate(0, 0, 2), "2160")
	fourNights := completedBooking(checkin, checkin.AddDate(0, 0, 4), "4000")

	got := AggregateBookingStats([]model.Booking{active, twoNights, fourNights}, start, end)

	if got.TotalBookings != 3 {
		t.Errorf("total bookings = %d, want 3", got.TotalBookings)
	}
	if got.CompletedBookings != 2 {
		t.Errorf("completed = %d, want 2", got.CompletedBookings)
	}
	if got.ActiveBookings != 1 {
		t.Errorf("active = %d, want 1", got.ActiveBookings)
	}
	if !got.TotalRevenue.Equal(dec("7160")) {
		t.Errorf("total revenue = %s, want 7160", got.TotalRevenue)
	}
	// 7160 / 3
	if want := dec("7160").Div(dec("3")); !got.AvgBookingValue.Equal(want) {
		t.Errorf("avg booking value = %s, want %s", got.AvgBookingValue, want)
	}
	if got.AvgStayDuration != 3 {
		t.Errorf("avg stay = %v, want 3", got.AvgStayDuration)
	}
}

func TestAggregateBookingStatsEmpty(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := AggregateBookingStats(nil, start, start.AddDate(0, 0, 30))
	if got.TotalBookings != 0 || got.AvgStayDuration != 0 || !got.AvgBookingValue.IsZero() {
		t.Errorf("empty input produced %+v", got)
	}
}

func TestStatsRange(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	s, e := statsRange(&from, &to)
	if !s.Equal(from) || !e.Equal(to) {
		t.Errorf("explicit range came back as %s .. %s", s, e)
	}

	s, e = statsRange(nil, &to)
	if !s.Equal(to.AddDate(0, 0, -30)) {
		t.Errorf("default start = %s, want 30 days before end", s)
	}
	if !e.Equal(to) {
		t.Errorf("end = %s, want %s", e, to)
	}
}
