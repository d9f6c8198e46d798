package repository

import (
	"context"
	"time"

	"smartwash/internal/domain/recharge"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RechargeRepository struct {
	db db.DBTX
}

func NewRechargeRepository(pool db.DBTX) *RechargeRepository {
	return &RechargeRepository{db: pool}
}

func (r *RechargeRepository) Create(ctx context.Context, req *recharge.Request) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO recharge_requests (id, user_id, amount, payment_method, transaction_id, screenshot_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID(), req.UserID(), req.Amount(), req.Method().String(),
		req.TransactionID(), req.ScreenshotURL(), req.Status().String(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("user missing for recharge request", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create recharge request", err)
	}
	return nil
}

const rechargeQuery = `
SELECT rr.id, rr.user_id, p.full_name, rr.amount, rr.payment_method,
       rr.transaction_id, rr.screenshot_url, rr.admin_note, rr.status,
       rr.approved_by, rr.approved_at, rr.created_at
FROM recharge_requests rr
JOIN profiles p ON p.user_id = rr.user_id`

func (r *RechargeRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RechargeRM, error) {
	row := r.db.QueryRow(ctx, rechargeQuery+` WHERE rr.id = $1`, id)

	rm, err := scanRecharge(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("recharge request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find recharge request", err)
	}
	return rm, nil
}

func (r *RechargeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.RechargeRM, error) {
	return r.list(ctx, rechargeQuery+` WHERE rr.user_id = $1 ORDER BY rr.created_at DESC`, userID)
}

func (r *RechargeRepository) List(ctx context.Context, status *string) ([]*readmodel.RechargeRM, error) {
	if status != nil {
		return r.list(ctx, rechargeQuery+` WHERE rr.status = $1 ORDER BY rr.created_at DESC`, *status)
	}
	return r.list(ctx, rechargeQuery+` ORDER BY rr.created_at DESC`)
}

func (r *RechargeRepository) list(ctx context.Context, query string, args ...any) ([]*readmodel.RechargeRM, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recharge requests", err)
	}
	defer rows.Close()

	var result []*readmodel.RechargeRM
	for rows.Next() {
		rm, err := scanRecharge(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan recharge row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate recharge requests", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecharge(row rowScanner) (*readmodel.RechargeRM, error) {
	var rm readmodel.RechargeRM
	err := row.Scan(
		&rm.ID, &rm.UserID, &rm.UserName, &rm.Amount, &rm.PaymentMethod,
		&rm.TransactionID, &rm.ScreenshotURL, &rm.AdminNote, &rm.Status,
		&rm.ApprovedBy, &rm.ApprovedAt, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

// Decide flips a pending request into a terminal status, stamping the
// reviewer. The WHERE status = 'pending' guard is what makes approval
// idempotency-safe: a second decision matches no row.
func (r *RechargeRepository) Decide(
	ctx context.Context,
	tx db.DBTX,
	id uuid.UUID,
	to recharge.Status,
	by uuid.UUID,
	at time.Time,
	note *string,
) (bool, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE recharge_requests
		 SET status = $2, approved_by = $3, approved_at = $4, admin_note = $5
		 WHERE id = $1 AND status = 'pending'`,
		id, to.String(), by, at, note,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decide recharge request", err)
	}
	return tag.RowsAffected() > 0, nil
}
