package booking

import (
	"errors"
	"time"
)

const (
	// SlotDuration is the fixed washing slot length. The original deployment
	// computed the end time by hand and dropped the hour carry; here the end
	// time comes from time arithmetic, the 90-minute rule is unchanged.
	SlotDuration = 90 * time.Minute

	// OTPWindow is how long after the slot start the code is accepted.
	OTPWindow = 60 * time.Minute
)

var (
	ErrSlotInPast      = errors.New("slot start cannot be in the past")
	ErrSlotTooFarAhead = errors.New("slot start exceeds the advance booking window")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrNotActive       = errors.New("booking is not active")
	ErrCancelTooLate   = errors.New("cancellation cutoff has passed")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot validates the start against now and the advance window and
// derives the end time.
func NewTimeSlot(start time.Time, now time.Time, advanceDays int) (TimeSlot, error) {
	if start.Before(now) {
		return TimeSlot{}, ErrSlotInPast
	}
	if advanceDays > 0 && start.After(now.AddDate(0, 0, advanceDays)) {
		return TimeSlot{}, ErrSlotTooFarAhead
	}
	return TimeSlot{start: start, end: start.Add(SlotDuration)}, nil
}

// ReconstructTimeSlot rebuilds a slot from persisted timestamps without
// re-validating against the current time.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// OTPWindowContains reports whether now falls inside [start, start+OTPWindow).
func (ts TimeSlot) OTPWindowContains(now time.Time) bool {
	return !now.Before(ts.start) && now.Before(ts.start.Add(OTPWindow))
}

type Amount struct {
	value int64
}

func NewAmount(value int64) (Amount, error) {
	if value < 0 {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{value: value}, nil
}

func (a Amount) Value() int64 {
	return a.value
}
