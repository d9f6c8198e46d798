//go:build unit

package booking_test

import (
	"testing"
	"time"

	"smartwash/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func activeBooking(t *testing.T, start time.Time) *booking.Booking {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, start.Add(-24*time.Hour), 7)
	require.NoError(t, err)
	amount, err := booking.NewAmount(50)
	require.NoError(t, err)
	return booking.NewBooking(uuid.New(), uuid.New(), slot, amount, "123456")
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("derives end time from the fixed slot length", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(base, base.Add(-time.Hour), 7)
		require.NoError(t, err)
		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(90*time.Minute), slot.End())
		assert.Equal(t, 90*time.Minute, slot.Duration())
	})

	t.Run("hour carry over midnight", func(t *testing.T) {
		start := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
		slot, err := booking.NewTimeSlot(start, start.Add(-time.Hour), 7)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC), slot.End())
	})

	cases := []struct {
		name  string
		start time.Time
		now   time.Time
		errIs error
	}{
		{
			name:  "start in the past",
			start: base.Add(-time.Minute),
			now:   base,
			errIs: booking.ErrSlotInPast,
		},
		{
			name:  "start equal to now",
			start: base,
			now:   base,
		},
		{
			name:  "start at the advance window edge",
			start: base.AddDate(0, 0, 7),
			now:   base,
		},
		{
			name:  "start beyond the advance window",
			start: base.AddDate(0, 0, 7).Add(time.Minute),
			now:   base,
			errIs: booking.ErrSlotTooFarAhead,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewTimeSlot(tc.start, tc.now, 7)
			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestOTPWindow(t *testing.T) {
	cases := []struct {
		name  string
		now   time.Time
		valid bool
	}{
		{name: "before slot start", now: base.Add(-time.Second), valid: false},
		{name: "at slot start", now: base, valid: true},
		{name: "59 minutes in", now: base.Add(59 * time.Minute), valid: true},
		{name: "just under one hour", now: base.Add(60*time.Minute - time.Second), valid: true},
		{name: "exactly one hour", now: base.Add(60 * time.Minute), valid: false},
		{name: "after slot end", now: base.Add(2 * time.Hour), valid: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := activeBooking(t, base)
			assert.Equal(t, tc.valid, b.IsOTPValid(tc.now))
		})
	}

	t.Run("cancelled booking never validates", func(t *testing.T) {
		b := activeBooking(t, base)
		require.NoError(t, b.Transition(booking.StatusCancelled))
		assert.False(t, b.IsOTPValid(base))
	})
}

func TestVerifyOTP(t *testing.T) {
	b := activeBooking(t, base)

	assert.True(t, b.VerifyOTP("123456", base))
	assert.False(t, b.VerifyOTP("654321", base))
	assert.False(t, b.VerifyOTP("123456", base.Add(61*time.Minute)))
}

func TestCancellableBy(t *testing.T) {
	cutoff := 2 * time.Hour

	cases := []struct {
		name  string
		now   time.Time
		errIs error
	}{
		{name: "well before cutoff", now: base.Add(-3 * time.Hour)},
		{name: "exactly at cutoff", now: base.Add(-cutoff)},
		{name: "inside cutoff", now: base.Add(-time.Hour), errIs: booking.ErrCancelTooLate},
		{name: "after slot start", now: base.Add(time.Minute), errIs: booking.ErrCancelTooLate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := activeBooking(t, base)
			err := b.CancellableBy(tc.now, cutoff)
			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := activeBooking(t, base)
		require.NoError(t, b.Transition(booking.StatusCompleted))
		require.ErrorIs(t, b.CancellableBy(base.Add(-3*time.Hour), cutoff), booking.ErrNotActive)
	})
}

func TestTransition(t *testing.T) {
	t.Run("active to terminal", func(t *testing.T) {
		for _, to := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled, booking.StatusExpired} {
			b := activeBooking(t, base)
			require.NoError(t, b.Transition(to))
			assert.Equal(t, to, b.Status())
			assert.True(t, b.Status().IsTerminal())
		}
	})

	t.Run("terminal states are final", func(t *testing.T) {
		b := activeBooking(t, base)
		require.NoError(t, b.Transition(booking.StatusCompleted))
		require.ErrorIs(t, b.Transition(booking.StatusCancelled), booking.ErrNotActive)
	})

	t.Run("cannot transition back to active", func(t *testing.T) {
		b := activeBooking(t, base)
		require.ErrorIs(t, b.Transition(booking.StatusActive), booking.ErrInvalidStatus)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		b := activeBooking(t, base)
		require.ErrorIs(t, b.Transition(booking.Status("paused")), booking.ErrInvalidStatus)
	})
}

func TestNewAmount(t *testing.T) {
	_, err := booking.NewAmount(-1)
	require.ErrorIs(t, err, booking.ErrNegativeAmount)

	amount, err := booking.NewAmount(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), amount.Value())
}
