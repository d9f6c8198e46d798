package response

import (
	"time"

	"smartwash/internal/usecase"
	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	AccessToken  string                      `json:"access_token"`
	RefreshToken string                      `json:"refresh_token"`
	User         *readmodel.AuthorizedUserRM `json:"user"`
}

func FromTokenPair(pair *usecase.TokenPair, user *readmodel.AuthorizedUserRM) *LoginResponse {
	return &LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ProfileResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	StudentID *string   `json:"student_id,omitempty"`
	Balance   int64     `json:"balance"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProfileRM(rm *readmodel.ProfileRM) *ProfileResponse {
	var resp ProfileResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromProfileRMs(rms []*readmodel.ProfileRM) []*ProfileResponse {
	result := make([]*ProfileResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromProfileRM(rm)
	}
	return result
}
