package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type LocationRM struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NameBn      *string   `json:"name_bn,omitempty"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
