package repository

import (
	"context"
	"strconv"

	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/usecase/readmodel"
)

// Well-known system_settings keys.
const (
	SettingWashingPrice = "washing_price"
	SettingMinRecharge  = "min_recharge"
	SettingAdvanceDays  = "advance_booking_days"
)

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(pool db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: pool}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx,
		`SELECT value FROM system_settings WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return "", infra.WrapRepoErr("setting not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read setting", err)
	}
	return value, nil
}

// GetInt64 falls back to the given default when the key is absent or not a
// number, so a missing settings row never breaks the booking flow.
func (r *SettingsRepository) GetInt64(ctx context.Context, key string, fallback int64) int64 {
	value, err := r.Get(ctx, key)
	if err != nil {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func (r *SettingsRepository) Set(ctx context.Context, key, value string, description *string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO system_settings (key, value, description)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value, description,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set setting", err)
	}
	return nil
}

func (r *SettingsRepository) List(ctx context.Context) ([]*readmodel.SettingRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT key, value, description, updated_at FROM system_settings ORDER BY key`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settings", err)
	}
	defer rows.Close()

	var result []*readmodel.SettingRM
	for rows.Next() {
		var rm readmodel.SettingRM
		if err := rows.Scan(&rm.Key, &rm.Value, &rm.Description, &rm.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan setting row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate settings", err)
	}
	return result, nil
}
