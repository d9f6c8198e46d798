package response

import (
	"time"

	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	result := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromBookingRM(rm)
	}
	return result
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Amount       int64     `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromBookingListRM(rm *readmodel.BookingListRM) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListRMs(rms []*readmodel.BookingListRM) []*BookingListResponse {
	result := make([]*BookingListResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromBookingListRM(rm)
	}
	return result
}
