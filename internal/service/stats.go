package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

// DailyRevenue is one day's revenue bucket, keyed by checkout date.
type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueStats reports revenue over a checkout date range.
type RevenueStats struct {
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalBookings   int             `json:"total_bookings"`
	AvgBookingValue decimal.Decimal `json:"avg_booking_value"`
	DailyRevenue    []DailyRevenue  `json:"daily_revenue"`
}

// BookingStats reports booking activity over a check-in date range.
type BookingStats struct {
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	TotalBookings     int             `json:"total_bookings"`
	CompletedBookings int             `json:"completed_bookings"`
	ActiveBookings    int             `json:"active_bookings"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AvgBookingValue   decimal.Decimal `json:"avg_booking_value"`
	AvgStayDuration   float64         `json:"avg_stay_duration"`
}

// statsRange applies the default reporting window: the thirty days up
// to now, unless the caller narrows it.
func statsRange(start, end *time.Time) (time.Time, time.Time) {
	e := time.Now().UTC()
	if end != nil {
		e = *end
	}
	s := e.AddDate(0, 0, -30)
	if start != nil {
		s = *start
	}
	return s, e
}

// AggregateRevenue buckets completed bookings by checkout date and sums
// their grand totals. Bookings without a computed grand total
// contribute nothing. The input is assumed pre-filtered to the range
// and ordered by checkout time, which keeps the daily buckets sorted.
func AggregateRevenue(bookings []model.Booking, start, end time.Time) RevenueStats {
	stats := RevenueStats{
		StartDate:    start,
		EndDate:      end,
		TotalRevenue: decimal.Zero,
		DailyRevenue: []DailyRevenue{},
	}
	byDay := map[string]decimal.Decimal{}
	for _, b := range bookings {
		if b.CheckoutAt == nil {
			continue
		}
		stats.TotalBookings++
		if b.GrandTotal == nil {
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(*b.GrandTotal)
		day := b.CheckoutAt.UTC().Format("2006-01-02")
		if _, ok := byDay[day]; !ok {
			stats.DailyRevenue = append(stats.DailyRevenue, DailyRevenue{Date: day})
		}
		byDay[day] = byDay[day].Add(*b.GrandTotal)
	}
	for i := range stats.DailyRevenue {
		stats.DailyRevenue[i].Revenue = byDay[stats.DailyRevenue[i].Date]
	}
	if stats.TotalBookings > 0 {
		stats.AvgBookingValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalBookings)))
	} else {
		stats.AvgBookingValue = decimal.Zero
	}
	return stats
}

// AggregateBookingStats summarizes booking activity: counts by state,
// revenue of bookings with computed totals, and the average stay
// duration of completed bookings.
func AggregateBookingStats(bookings []model.Booking, start, end time.Time) BookingStats {
	stats := BookingStats{
		StartDate:    start,
		EndDate:      end,
		TotalRevenue: decimal.Zero,
	}
	var totalNights int64
	for _, b := range bookings {
		stats.TotalBookings++
		if b.CheckoutAt != nil {
			stats.CompletedBookings++
			totalNights += StayNights(b.CheckinAt, *b.CheckoutAt)
		}
		if b.GrandTotal != nil {
			stats.TotalRevenue = stats.TotalRevenue.Add(*b.GrandTotal)
		}
	}
	stats.ActiveBookings = stats.TotalBookings - stats.CompletedBookings
	if stats.TotalBookings > 0 {
		stats.AvgBookingValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalBookings)))
	} else {
		stats.AvgBookingValue = decimal.Zero
	}
	if stats.CompletedBookings > 0 {
		stats.AvgStayDuration = float64(totalNights) / float64(stats.CompletedBookings)
	}
	return stats
}

// GetRevenueStats reports revenue over bookings checked out inside the
// range, defaulting to the last thirty days.
func (s *BookingService) GetRevenueStats(ctx context.Context, start, end *time.Time) (*RevenueStats, error) {
	from, to := statsRange(start, end)
	bookings, err := s.bookings.ListCheckedOutBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stats := AggregateRevenue(bookings, from, to)
	return &stats, nil
}

// GetBookingStats reports booking activity over the range, defaulting
// to the last thirty days.
func (s *BookingService) GetBookingStats(ctx context.Context, start, end *time.Time) (*BookingStats, error) {
	from, to := statsRange(start, end)
	bookings, err := s.bookings.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stats := AggregateBookingStats(bookings, from, to)
	return &stats, nil
}
