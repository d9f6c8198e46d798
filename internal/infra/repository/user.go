package repository

import (
	"context"

	"smartwash/internal/domain/user"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{db: pool}
}

// Create inserts the user, its profile and its role assignment. Callers run
// it inside a transaction so registration is all-or-nothing.
func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User, p *user.Profile) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, is_active) VALUES ($1, $2, $3, $4)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`,
		u.ID(), u.Role().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to assign role", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO profiles (user_id, full_name, phone, student_id, balance)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.UserID(), p.FullName(), p.Phone(), p.StudentID(), p.Balance(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create profile", err)
	}

	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	rm, hash, err := r.scanAuthorizedUser(ctx, "u.email = $1", email.Value())
	if err != nil {
		return nil, "", err
	}
	return rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rm, _, err := r.scanAuthorizedUser(ctx, "u.id = $1", id)
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *UserRepository) scanAuthorizedUser(ctx context.Context, where string, arg any) (*readmodel.AuthorizedUserRM, string, error) {
	query := `
		SELECT u.id, u.email, r.role, u.is_active, u.password_hash
		FROM users u
		JOIN user_roles r ON r.user_id = u.id
		WHERE ` + where + `
		ORDER BY CASE r.role WHEN 'admin' THEN 0 WHEN 'moderator' THEN 1 ELSE 2 END
		LIMIT 1`

	var rm readmodel.AuthorizedUserRM
	var hash string
	err := r.db.QueryRow(ctx, query, arg).Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &hash)
	if err != nil {
		if isNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	return &rm, hash, nil
}

func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error) {
	var rm readmodel.ProfileRM
	err := r.db.QueryRow(ctx, `
		SELECT p.user_id, u.email, p.full_name, p.phone, p.student_id, p.balance, r.role, p.created_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		JOIN user_roles r ON r.user_id = p.user_id
		WHERE p.user_id = $1
		ORDER BY CASE r.role WHEN 'admin' THEN 0 WHEN 'moderator' THEN 1 ELSE 2 END
		LIMIT 1`,
		userID,
	).Scan(&rm.UserID, &rm.Email, &rm.FullName, &rm.Phone, &rm.StudentID, &rm.Balance, &rm.Role, &rm.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get profile", err)
	}
	return &rm, nil
}

func (r *UserRepository) ListProfiles(ctx context.Context) ([]*readmodel.ProfileRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (p.user_id)
		       p.user_id, u.email, p.full_name, p.phone, p.student_id, p.balance, r.role, p.created_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		JOIN user_roles r ON r.user_id = p.user_id
		ORDER BY p.user_id, CASE r.role WHEN 'admin' THEN 0 WHEN 'moderator' THEN 1 ELSE 2 END`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles", err)
	}
	defer rows.Close()

	var result []*readmodel.ProfileRM
	for rows.Next() {
		var rm readmodel.ProfileRM
		if err := rows.Scan(&rm.UserID, &rm.Email, &rm.FullName, &rm.Phone, &rm.StudentID, &rm.Balance, &rm.Role, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan profile row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate profiles", err)
	}
	return result, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) AssignRole(ctx context.Context, tx db.DBTX, userID uuid.UUID, role user.Role) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		 ON CONFLICT (user_id, role) DO NOTHING`,
		userID, role.String(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("user not found for role assignment", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to assign role", err)
	}
	return nil
}
