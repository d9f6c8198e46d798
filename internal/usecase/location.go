package usecase

import (
	"context"
	"errors"

	"smartwash/internal/domain/location"
	"smartwash/internal/infra"
	"smartwash/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationRepository interface {
	Create(ctx context.Context, l *location.Location) error
	Update(ctx context.Context, id uuid.UUID, name string, nameBn, description *string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.LocationRM, error)
	List(ctx context.Context, activeOnly bool) ([]*readmodel.LocationRM, error)
}

type LocationInput struct {
	Name        string
	NameBn      *string
	Description *string
}

type LocationUseCase interface {
	Create(ctx context.Context, input LocationInput) (*readmodel.LocationRM, error)
	Update(ctx context.Context, id uuid.UUID, input LocationInput) (*readmodel.LocationRM, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Get(ctx context.Context, id uuid.UUID) (*readmodel.LocationRM, error)
	List(ctx context.Context, activeOnly bool) ([]*readmodel.LocationRM, error)
}

type locationUseCaseImpl struct {
	locationRepo LocationRepository
}

func NewLocationUseCase(locationRepo LocationRepository) LocationUseCase {
	return &locationUseCaseImpl{locationRepo: locationRepo}
}

func (l *locationUseCaseImpl) Create(ctx context.Context, input LocationInput) (*readmodel.LocationRM, error) {
	entity, err := location.NewLocation(input.Name, input.NameBn, input.Description)
	if err != nil {
		return nil, err
	}

	if err := l.locationRepo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return l.Get(ctx, entity.ID())
}

func (l *locationUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input LocationInput) (*readmodel.LocationRM, error) {
	if input.Name == "" {
		return nil, location.ErrEmptyName
	}

	if err := l.locationRepo.Update(ctx, id, input.Name, input.NameBn, input.Description); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return l.Get(ctx, id)
}

func (l *locationUseCaseImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := l.locationRepo.SetActive(ctx, id, active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLocationNotFound
		}
		return err
	}
	return nil
}

func (l *locationUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.LocationRM, error) {
	rm, err := l.locationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (l *locationUseCaseImpl) List(ctx context.Context, activeOnly bool) ([]*readmodel.LocationRM, error) {
	return l.locationRepo.List(ctx, activeOnly)
}
