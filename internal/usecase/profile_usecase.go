package usecase

import (
	"context"
	"errors"
	"strings"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileNameRequired = errors.New("profile name is required")
	ErrProfileUnitRequired = errors.New("profile unit is required")
	ErrInvalidProfileRole  = errors.New("invalid profile role")
)

// IProfileUseCase maps an authenticated user to the evaluator identity stamped
// on every evaluation.
type IProfileUseCase interface {
	Get(ctx context.Context, uid string) (entities.UserProfile, error)
	Save(ctx context.Context, uid string, p entities.UserProfile) (entities.UserProfile, error)
}

type ProfileUseCase struct {
	repo   interfaces.IProfileRepository
	logger *zap.Logger
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository, logger *zap.Logger) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, logger: logger}
}

func (u *ProfileUseCase) Get(ctx context.Context, uid string) (entities.UserProfile, error) {
	return getProfile(ctx, u.repo, uid)
}

func (u *ProfileUseCase) Save(ctx context.Context, uid string, p entities.UserProfile) (entities.UserProfile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	p.UID = uid
	p.Name = strings.TrimSpace(p.Name)
	p.Unit = strings.TrimSpace(p.Unit)
	p.Email = strings.TrimSpace(p.Email)
	if p.Name == "" {
		return entities.UserProfile{}, ErrProfileNameRequired
	}
	if p.Unit == "" {
		return entities.UserProfile{}, ErrProfileUnitRequired
	}
	if !p.Role.Valid() {
		return entities.UserProfile{}, ErrInvalidProfileRole
	}

	saved, err := u.repo.Put(ctx, p)
	if err != nil {
		u.logger.Error("failed to save profile", zap.String("uid", uid), zap.Error(err))
		return entities.UserProfile{}, err
	}
	return saved, nil
}

func getProfile(ctx context.Context, repo interfaces.IProfileRepository, uid string) (entities.UserProfile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	p, err := repo.GetByUID(ctx, uid)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.UID == "" {
		return entities.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}
