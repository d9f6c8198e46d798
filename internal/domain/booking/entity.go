package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	locationID uuid.UUID
	slot       TimeSlot
	amount     Amount
	otp        string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking builds an active booking. The OTP is generated by the caller so
// that the domain stays free of randomness.
func NewBooking(userID, locationID uuid.UUID, slot TimeSlot, amount Amount, otp string) *Booking {
	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		locationID: locationID,
		slot:       slot,
		amount:     amount,
		otp:        otp,
		status:     StatusActive,
	}
}

func ReconstructBooking(
	id, userID, locationID uuid.UUID,
	slot TimeSlot,
	amount Amount,
	otp string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		locationID: locationID,
		slot:       slot,
		amount:     amount,
		otp:        otp,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) LocationID() uuid.UUID { return b.locationID }
func (b *Booking) Slot() TimeSlot        { return b.slot }
func (b *Booking) Amount() Amount        { return b.amount }
func (b *Booking) OTP() string           { return b.otp }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

// IsOTPValid enforces the validity window: only an active booking accepts the
// code, and only during the first hour of the slot.
func (b *Booking) IsOTPValid(now time.Time) bool {
	return b.status == StatusActive && b.slot.OTPWindowContains(now)
}

// VerifyOTP checks the presented code against the stored one inside the
// validity window.
func (b *Booking) VerifyOTP(code string, now time.Time) bool {
	return b.IsOTPValid(now) && b.otp == code
}

// CancellableBy reports whether the user-side cancellation cutoff still holds.
func (b *Booking) CancellableBy(now time.Time, cutoff time.Duration) error {
	if b.status != StatusActive {
		return ErrNotActive
	}
	if now.After(b.slot.Start().Add(-cutoff)) {
		return ErrCancelTooLate
	}
	return nil
}

// Transition moves an active booking into a terminal status. active is the
// only non-terminal status, so any further transition is rejected.
func (b *Booking) Transition(to Status) error {
	if !to.IsValid() || to == StatusActive {
		return ErrInvalidStatus
	}
	if b.status != StatusActive {
		return ErrNotActive
	}
	b.status = to
	return nil
}
