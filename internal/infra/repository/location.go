package repository

import (
	"context"

	"smartwash/internal/domain/location"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type LocationRepository struct {
	db db.DBTX
}

func NewLocationRepository(pool db.DBTX) *LocationRepository {
	return &LocationRepository{db: pool}
}

func (r *LocationRepository) Create(ctx context.Context, l *location.Location) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO locations (id, name, name_bn, description, is_active)
		 VALUES ($1, $2, $3, $4, $5)`,
		l.ID(), l.Name(), l.NameBn(), l.Description(), l.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create location", err)
	}
	return nil
}

func (r *LocationRepository) Update(ctx context.Context, id uuid.UUID, name string, nameBn, description *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE locations SET name = $2, name_bn = $3, description = $4, updated_at = NOW()
		 WHERE id = $1`,
		id, name, nameBn, description,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LocationRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE locations SET is_active = $2, updated_at = NOW() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to toggle location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.LocationRM, error) {
	var rm readmodel.LocationRM
	err := r.db.QueryRow(ctx,
		`SELECT id, name, name_bn, description, is_active, created_at, updated_at
		 FROM locations WHERE id = $1`, id,
	).Scan(&rm.ID, &rm.Name, &rm.NameBn, &rm.Description, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location", err)
	}
	return &rm, nil
}

func (r *LocationRepository) List(ctx context.Context, activeOnly bool) ([]*readmodel.LocationRM, error) {
	query := `SELECT id, name, name_bn, description, is_active, created_at, updated_at FROM locations`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	defer rows.Close()

	var result []*readmodel.LocationRM
	for rows.Next() {
		var rm readmodel.LocationRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.NameBn, &rm.Description, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan location row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate locations", err)
	}
	return result, nil
}
