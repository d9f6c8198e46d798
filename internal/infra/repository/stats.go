package repository

import (
	"context"

	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/usecase/readmodel"
)

type StatsRepository struct {
	db db.DBTX
}

func NewStatsRepository(pool db.DBTX) *StatsRepository {
	return &StatsRepository{db: pool}
}

// Dashboard collects the admin panel counters in one round trip.
func (r *StatsRepository) Dashboard(ctx context.Context) (*readmodel.DashboardRM, error) {
	var rm readmodel.DashboardRM
	err := r.db.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM users),
		       (SELECT COUNT(*) FROM bookings WHERE status = 'active'),
		       (SELECT COUNT(*) FROM recharge_requests WHERE status = 'pending'),
		       (SELECT COALESCE(SUM(amount), 0) FROM recharge_requests WHERE status = 'approved')`,
	).Scan(&rm.TotalUsers, &rm.ActiveBookings, &rm.PendingRecharges, &rm.TotalCredited)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard stats", err)
	}
	return &rm, nil
}
