package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Amount       int64     `json:"amount"`
	OTP          string    `json:"otp"`
	OTPValid     bool      `json:"otp_valid"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingListRM struct {
	ID           uuid.UUID `json:"id"`
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Amount       int64     `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
