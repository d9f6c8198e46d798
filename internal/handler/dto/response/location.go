package response

import (
	"time"

	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LocationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NameBn      *string   `json:"name_bn,omitempty"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromLocationRM(rm *readmodel.LocationRM) *LocationResponse {
	var resp LocationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromLocationRMs(rms []*readmodel.LocationRM) []*LocationResponse {
	result := make([]*LocationResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromLocationRM(rm)
	}
	return result
}
