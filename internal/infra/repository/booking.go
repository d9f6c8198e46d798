package repository

import (
	"context"
	"time"

	"smartwash/internal/domain/booking"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO bookings (id, user_id, location_id, start_time, end_time, amount, otp, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.UserID(), b.LocationID(),
		b.Slot().Start(), b.Slot().End(),
		b.Amount().Value(), b.OTP(), b.Status().String(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("location or user missing for booking", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

const bookingDetailQuery = `
SELECT b.id, b.user_id, p.full_name, b.location_id, l.name,
       b.start_time, b.end_time, b.amount, b.otp, b.status, b.created_at
FROM bookings b
JOIN locations l ON l.id = b.location_id
JOIN profiles p ON p.user_id = b.user_id`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx, bookingDetailQuery+` WHERE b.id = $1`, id)

	var rm readmodel.BookingRM
	err := row.Scan(
		&rm.ID, &rm.UserID, &rm.UserName, &rm.LocationID, &rm.LocationName,
		&rm.StartTime, &rm.EndTime, &rm.Amount, &rm.OTP, &rm.Status, &rm.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &rm, nil
}

// FindEntityByID reconstructs the domain entity for status transitions and
// OTP verification.
func (r *BookingRepository) FindEntityByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, location_id, start_time, end_time, amount, otp, status, created_at, updated_at
		 FROM bookings WHERE id = $1`, id)

	var (
		bid, userID, locationID uuid.UUID
		start, end              time.Time
		amount                  int64
		otpCode, status         string
		createdAt, updatedAt    time.Time
	)
	err := row.Scan(&bid, &userID, &locationID, &start, &end, &amount, &otpCode, &status, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	statusVal, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking status", err)
	}
	amountVal, err := booking.NewAmount(amount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking amount", err)
	}

	return booking.ReconstructBooking(
		bid, userID, locationID,
		booking.ReconstructTimeSlot(start, end),
		amountVal, otpCode, statusVal,
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.location_id, l.name, b.start_time, b.end_time, b.amount, b.status, b.created_at
		FROM bookings b
		JOIN locations l ON l.id = b.location_id
		WHERE b.user_id = $1
		ORDER BY b.start_time DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingListRM
	for rows.Next() {
		var rm readmodel.BookingListRM
		if err := rows.Scan(&rm.ID, &rm.LocationID, &rm.LocationName, &rm.StartTime, &rm.EndTime, &rm.Amount, &rm.Status, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

// List returns all bookings, optionally filtered by status, for the admin panel.
func (r *BookingRepository) List(ctx context.Context, status *string) ([]*readmodel.BookingRM, error) {
	query := bookingDetailQuery
	args := []any{}
	if status != nil {
		query += ` WHERE b.status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY b.start_time DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		var rm readmodel.BookingRM
		if err := rows.Scan(
			&rm.ID, &rm.UserID, &rm.UserName, &rm.LocationID, &rm.LocationName,
			&rm.StartTime, &rm.EndTime, &rm.Amount, &rm.OTP, &rm.Status, &rm.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

// UpdateStatus flips an active booking into a terminal status. The status
// guard in the WHERE clause keeps terminal states terminal even under races.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, to booking.Status) (bool, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = NOW()
		 WHERE id = $1 AND status = 'active'`,
		id, to.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}
