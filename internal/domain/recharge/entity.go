package recharge

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("invalid recharge status")
	ErrInvalidMethod  = errors.New("invalid payment method")
	ErrAmountTooSmall = errors.New("amount below minimum recharge")
	ErrAlreadyDecided = errors.New("recharge request already decided")
)

// Request is a user-submitted top-up claim awaiting admin verification.
// It transitions exactly once from pending to approved or rejected.
type Request struct {
	id            uuid.UUID
	userID        uuid.UUID
	amount        int64
	method        Method
	transactionID *string
	screenshotURL *string
	adminNote     *string
	status        Status
	approvedBy    *uuid.UUID
	approvedAt    *time.Time
	createdAt     time.Time
}

func NewRequest(userID uuid.UUID, amount, minAmount int64, method Method, transactionID, screenshotURL *string) (*Request, error) {
	if amount < minAmount {
		return nil, ErrAmountTooSmall
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	return &Request{
		id:            uuid.New(),
		userID:        userID,
		amount:        amount,
		method:        method,
		transactionID: transactionID,
		screenshotURL: screenshotURL,
		status:        StatusPending,
	}, nil
}

func ReconstructRequest(
	id, userID uuid.UUID,
	amount int64,
	method Method,
	transactionID, screenshotURL, adminNote *string,
	status Status,
	approvedBy *uuid.UUID,
	approvedAt *time.Time,
	createdAt time.Time,
) *Request {
	return &Request{
		id:            id,
		userID:        userID,
		amount:        amount,
		method:        method,
		transactionID: transactionID,
		screenshotURL: screenshotURL,
		adminNote:     adminNote,
		status:        status,
		approvedBy:    approvedBy,
		approvedAt:    approvedAt,
		createdAt:     createdAt,
	}
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) UserID() uuid.UUID      { return r.userID }
func (r *Request) Amount() int64          { return r.amount }
func (r *Request) Method() Method         { return r.method }
func (r *Request) TransactionID() *string { return r.transactionID }
func (r *Request) ScreenshotURL() *string { return r.screenshotURL }
func (r *Request) AdminNote() *string     { return r.adminNote }
func (r *Request) Status() Status         { return r.status }
func (r *Request) ApprovedBy() *uuid.UUID { return r.approvedBy }
func (r *Request) ApprovedAt() *time.Time { return r.approvedAt }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }

// Approve stamps the reviewer and flips the status. The ledger credit is the
// usecase's responsibility; the DB-level status guard is the second line of
// defence against double-crediting.
func (r *Request) Approve(by uuid.UUID, at time.Time, note *string) error {
	if r.status.IsTerminal() {
		return ErrAlreadyDecided
	}
	r.status = StatusApproved
	r.approvedBy = &by
	r.approvedAt = &at
	r.adminNote = note
	return nil
}

// Reject stamps the reviewer with no ledger effect.
func (r *Request) Reject(by uuid.UUID, at time.Time, note *string) error {
	if r.status.IsTerminal() {
		return ErrAlreadyDecided
	}
	r.status = StatusRejected
	r.approvedBy = &by
	r.approvedAt = &at
	r.adminNote = note
	return nil
}
