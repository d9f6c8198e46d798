package location

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("location name is required")

// Location is a washing spot (building/floor). Only active locations are
// offered to the booking flow.
type Location struct {
	id          uuid.UUID
	name        string
	nameBn      *string
	description *string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewLocation(name string, nameBn, description *string) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Location{
		id:          uuid.New(),
		name:        name,
		nameBn:      nameBn,
		description: description,
		isActive:    true,
	}, nil
}

func ReconstructLocation(
	id uuid.UUID,
	name string,
	nameBn, description *string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Location {
	return &Location{
		id:          id,
		name:        name,
		nameBn:      nameBn,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Location) ID() uuid.UUID        { return l.id }
func (l *Location) Name() string         { return l.name }
func (l *Location) NameBn() *string      { return l.nameBn }
func (l *Location) Description() *string { return l.description }
func (l *Location) IsActive() bool       { return l.isActive }
func (l *Location) CreatedAt() time.Time { return l.createdAt }
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }

func (l *Location) Activate()   { l.isActive = true }
func (l *Location) Deactivate() { l.isActive = false }
