package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/money"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnitNotFound     = errors.New("unit not found")
	ErrInvalidUnitID    = errors.New("invalid unit id")
	ErrUnitNameRequired = errors.New("unit name is required")
	ErrInvalidUnitArea  = errors.New("invalid unit square meters")
)

// IUnitUseCase manages the facility units under contract.
type IUnitUseCase interface {
	Create(ctx context.Context, u entities.Unit) (entities.Unit, error)
	Update(ctx context.Context, id string, u entities.Unit) (entities.Unit, error)
	GetByID(ctx context.Context, id string) (entities.Unit, error)
	List(ctx context.Context) ([]entities.Unit, error)
	Delete(ctx context.Context, id string) error
}

type UnitUseCase struct {
	repo   interfaces.IUnitRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IUnitUseCase = (*UnitUseCase)(nil)

func NewUnitUseCase(repo interfaces.IUnitRepository, logger *zap.Logger) *UnitUseCase {
	return &UnitUseCase{repo: repo, logger: logger, now: utcNow}
}

func validateUnit(u *entities.Unit) error {
	u.Name = strings.TrimSpace(u.Name)
	u.SquareMeters = strings.TrimSpace(u.SquareMeters)
	u.Address = strings.TrimSpace(u.Address)
	if u.Name == "" {
		return ErrUnitNameRequired
	}
	if !money.IsDecimal(u.SquareMeters) || u.FloorArea().IsNegative() {
		return ErrInvalidUnitArea
	}
	return nil
}

func (uc *UnitUseCase) Create(ctx context.Context, u entities.Unit) (entities.Unit, error) {
	if err := validateUnit(&u); err != nil {
		return entities.Unit{}, err
	}
	now := uc.now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	created, err := uc.repo.Create(ctx, u)
	if err != nil {
		uc.logger.Error("failed to create unit", zap.String("name", u.Name), zap.Error(err))
		return entities.Unit{}, err
	}
	return created, nil
}

func (uc *UnitUseCase) Update(ctx context.Context, id string, u entities.Unit) (entities.Unit, error) {
	existing, err := uc.GetByID(ctx, id)
	if err != nil {
		return entities.Unit{}, err
	}
	if err := validateUnit(&u); err != nil {
		return entities.Unit{}, err
	}
	u.ID = existing.ID
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = uc.now()

	updated, err := uc.repo.Update(ctx, u)
	if err != nil {
		uc.logger.Error("failed to update unit", zap.String("id", u.ID), zap.Error(err))
		return entities.Unit{}, err
	}
	if updated.ID == "" {
		return entities.Unit{}, ErrUnitNotFound
	}
	return updated, nil
}

func (uc *UnitUseCase) GetByID(ctx context.Context, id string) (entities.Unit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Unit{}, ErrInvalidUnitID
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Unit{}, err
	}
	if u.ID == "" {
		return entities.Unit{}, ErrUnitNotFound
	}
	return u, nil
}

// List returns units sorted by name.
func (uc *UnitUseCase) List(ctx context.Context) ([]entities.Unit, error) {
	units, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(units, func(i, j int) bool {
		return strings.ToLower(units[i].Name) < strings.ToLower(units[j].Name)
	})
	return units, nil
}

func (uc *UnitUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUnitID
	}
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("failed to delete unit", zap.String("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrUnitNotFound
	}
	return nil
}
