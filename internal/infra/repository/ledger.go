package repository

import (
	"context"

	"smartwash/internal/infra"
	"smartwash/internal/infra/db"

	"github.com/google/uuid"
)

// LedgerRepository is the only writer of profiles.balance. Credit is an
// unconditional increment; Debit is an atomic check-and-decrement so two
// concurrent debits can never both succeed on a balance that covers only one.
type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(pool db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: pool}
}

func (r *LedgerRepository) Credit(ctx context.Context, tx db.DBTX, userID uuid.UUID, amount int64) error {
	tag, err := tx.Exec(ctx,
		`UPDATE profiles SET balance = balance + $1, updated_at = NOW() WHERE user_id = $2`,
		amount, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to credit balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found for credit", nil, infra.KindNotFound)
	}
	return nil
}

// Debit returns false without error when the balance does not cover the
// amount; the row is untouched in that case.
func (r *LedgerRepository) Debit(ctx context.Context, tx db.DBTX, userID uuid.UUID, amount int64) (bool, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE profiles SET balance = balance - $1, updated_at = NOW()
		 WHERE user_id = $2 AND balance >= $1`,
		amount, userID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to debit balance", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *LedgerRepository) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx,
		`SELECT balance FROM profiles WHERE user_id = $1`, userID,
	).Scan(&balance)
	if err != nil {
		if isNoRows(err) {
			return 0, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read balance", err)
	}
	return balance, nil
}
