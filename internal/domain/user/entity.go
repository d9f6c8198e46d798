package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Profile carries the wallet balance and the fields shown on the dashboard.
// The balance is only ever mutated through the ledger operations
// (credit / conditional debit), never by writing this struct back.
type Profile struct {
	userID    uuid.UUID
	fullName  string
	phone     *string
	studentID *string
	balance   int64
}

func NewProfile(userID uuid.UUID, fullName string, phone, studentID *string) (*Profile, error) {
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	return &Profile{
		userID:    userID,
		fullName:  fullName,
		phone:     phone,
		studentID: studentID,
		balance:   0,
	}, nil
}

func (p *Profile) UserID() uuid.UUID  { return p.userID }
func (p *Profile) FullName() string   { return p.fullName }
func (p *Profile) Phone() *string     { return p.phone }
func (p *Profile) StudentID() *string { return p.studentID }
func (p *Profile) Balance() int64     { return p.balance }
