package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
}

type VerifyOTPRequest struct {
	Code string `json:"code" binding:"required"`
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}
