package request

import (
	"smartwash/internal/domain/user"
)

type RegisterRequest struct {
	Email     string  `json:"email" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	FullName  string  `json:"full_name" binding:"required"`
	Phone     *string `json:"phone,omitempty"`
	StudentID *string `json:"student_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}

	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}

	return user.NewCredentials(email, password), nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
