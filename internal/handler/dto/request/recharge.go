package request

// SubmitRechargeRequest is bound from multipart form data because the payment
// screenshot rides along as a file part.
type SubmitRechargeRequest struct {
	Amount        int64   `form:"amount" binding:"required"`
	Method        string  `form:"method" binding:"required"`
	TransactionID *string `form:"transaction_id"`
}

type DecideRechargeRequest struct {
	Note *string `json:"note,omitempty"`
}
