package service

import (
	"context"

	"github.com/studyspot/seat-booking/internal/repository"
)

// DashboardStats is the admin dashboard headline block.
type DashboardStats struct {
	TotalBookings  int
	ActiveBookings int
	PendingCount   int
	Revenue        int64
	Monthly        []repository.MonthlyCount
}

// monthsOfTrend is how far back the booking trend chart reaches.
const monthsOfTrend = 6

// Dashboard aggregates booking counts, confirmed revenue, and the
// recent per-month trend.
func (s *BookingService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	total, active, pending, revenue, err := s.bookings.Stats(ctx)
	if err != nil {
		return nil, err
	}
	since := dateOnly(s.now()).AddDate(0, -monthsOfTrend, 0)
	monthly, err := s.bookings.MonthlyCounts(ctx, since)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalBookings:  total,
		ActiveBookings: active,
		PendingCount:   pending,
		Revenue:        revenue,
		Monthly:        monthly,
	}, nil
}
