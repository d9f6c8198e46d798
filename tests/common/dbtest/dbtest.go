//go:build e2e

package dbtest

import (
	"context"
	"time"

	"smartwash/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultLocationID is the machine location seeded into every test database.
var DefaultLocationID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// ResetDB truncates all mutable tables and reseeds the reference data, giving
// each subtest a clean slate.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE bookings, recharge_requests, user_roles, profiles, users, locations, system_settings
		RESTART IDENTITY CASCADE`)
	if err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

// SeedReferenceData inserts the settings and the default location the
// application expects to exist.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO system_settings (key, value, description) VALUES
			('washing_price', '50', 'Price of one washing slot'),
			('min_recharge', '50', 'Minimum recharge amount'),
			('advance_booking_days', '7', 'How far ahead a slot can be booked')
		ON CONFLICT (key) DO NOTHING`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO locations (id, name, name_bn, is_active)
		VALUES ($1, 'Hall 1 Rooftop', 'হল ১ ছাদ', TRUE)
		ON CONFLICT (id) DO NOTHING`, DefaultLocationID)
	return err
}

// CreateUser inserts a user with its role and profile directly, bypassing the
// registration endpoint. Used to seed staff accounts.
func CreateUser(pool *pgxpool.Pool, email, plainPassword, fullName, role string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
		id, email, hash); err != nil {
		return uuid.Nil, err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`,
		id, role); err != nil {
		return uuid.Nil, err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO profiles (user_id, full_name) VALUES ($1, $2)`,
		id, fullName); err != nil {
		return uuid.Nil, err
	}

	return id, tx.Commit(ctx)
}

// TopUp credits a wallet directly, skipping the recharge approval flow.
func TopUp(pool *pgxpool.Pool, userID uuid.UUID, amount int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		`UPDATE profiles SET balance = balance + $1 WHERE user_id = $2`,
		amount, userID)
	return err
}

// Balance reads the current wallet balance.
func Balance(pool *pgxpool.Pool, userID uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var balance int64
	err := pool.QueryRow(ctx,
		`SELECT balance FROM profiles WHERE user_id = $1`, userID).Scan(&balance)
	return balance, err
}
