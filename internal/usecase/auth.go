package usecase

import (
	"context"
	"errors"

	"smartwash/internal/domain/user"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/pkg/jwt"
	"smartwash/internal/pkg/password"
	"smartwash/internal/usecase/readmodel"
	"smartwash/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User, p *user.Profile) error
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error)
	ListProfiles(ctx context.Context) ([]*readmodel.ProfileRM, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	AssignRole(ctx context.Context, tx db.DBTX, userID uuid.UUID, role user.Role) error
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisterInput struct {
	Email     string
	Password  string
	FullName  string
	Phone     *string
	StudentID *string
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*readmodel.ProfileRM, error)
	Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		uow:        uow,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates the account, its profile and the default role assignment
// in one transaction.
func (a *authUseCaseImpl) Register(ctx context.Context, input RegisterInput) (*readmodel.ProfileRM, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	u := user.NewUser(email, hash, user.RoleUser)
	profile, err := user.NewProfile(u.ID(), input.FullName, input.Phone, input.StudentID)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return a.userRepo.Create(ctx, tx, u, profile)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return a.userRepo.GetProfile(ctx, u.ID())
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, nil, ErrAuthenticationFailed
	}

	pair, err := a.issueTokens(userReadModel.ID, role)
	if err != nil {
		return nil, nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userReadModel.ID); err != nil {
		return nil, nil, err
	}

	return pair, userReadModel, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	userReadModel, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}

func (a *authUseCaseImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Re-read the user so a deactivated account cannot keep refreshing.
	userReadModel, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return a.issueTokens(userReadModel.ID, role)
}

func (a *authUseCaseImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	u, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}

func (a *authUseCaseImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error) {
	profile, err := a.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
