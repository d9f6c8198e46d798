package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type ProfileRM struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	StudentID *string   `json:"student_id,omitempty"`
	Balance   int64     `json:"balance"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
