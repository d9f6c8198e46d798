package response

import (
	"time"

	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RechargeResponse struct {
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

func FromRechargeRM(rm *readmodel.RechargeRM) *RechargeResponse {
	var resp RechargeResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRechargeRMs(rms []*readmodel.RechargeRM) []*RechargeResponse {
	result := make([]*RechargeResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRechargeRM(rm)
	}
	return result
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}
