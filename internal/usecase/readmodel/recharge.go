package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RechargeRM struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	Amount        int64      `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	ScreenshotURL *string    `json:"screenshot_url,omitempty"`
	AdminNote     *string    `json:"admin_note,omitempty"`
	Status        string     `json:"status"`
	ApprovedBy    *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
