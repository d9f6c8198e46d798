package readmodel

import "time"

type DashboardRM struct {
	TotalUsers       int64 `json:"total_users"`
	ActiveBookings   int64 `json:"active_bookings"`
	PendingRecharges int64 `json:"pending_recharges"`
	TotalCredited    int64 `json:"total_credited"`
}

type SettingRM struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
