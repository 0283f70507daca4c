package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrHiringDocNotFound     = errors.New("hiring document not found")
	ErrInvalidHiringDocID    = errors.New("invalid hiring document id")
	ErrHiringDocNameRequired = errors.New("hiring document name is required")
	ErrHiringDocURLRequired  = errors.New("hiring document url is required")
	ErrInvalidHiringDocType  = errors.New("invalid hiring document type")
)

// IHiringDocUseCase manages the contract document archive. Files are uploaded to
// blob storage by the client; only their metadata is registered here.
type IHiringDocUseCase interface {
	Register(ctx context.Context, d entities.HiringDoc) (entities.HiringDoc, error)
	List(ctx context.Context) ([]entities.HiringDoc, error)
	Delete(ctx context.Context, id string) error
}

type HiringDocUseCase struct {
	repo   interfaces.IHiringDocRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IHiringDocUseCase = (*HiringDocUseCase)(nil)

func NewHiringDocUseCase(repo interfaces.IHiringDocRepository, logger *zap.Logger) *HiringDocUseCase {
	return &HiringDocUseCase{repo: repo, logger: logger, now: utcNow}
}

func (u *HiringDocUseCase) Register(ctx context.Context, d entities.HiringDoc) (entities.HiringDoc, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.URL = strings.TrimSpace(d.URL)
	if d.Name == "" {
		return entities.HiringDoc{}, ErrHiringDocNameRequired
	}
	if d.URL == "" {
		return entities.HiringDoc{}, ErrHiringDocURLRequired
	}
	if !d.Type.Valid() {
		return entities.HiringDoc{}, ErrInvalidHiringDocType
	}
	d.ID = uuid.NewString()
	d.CreatedAt = u.now()

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		u.logger.Error("failed to register hiring document", zap.String("name", d.Name), zap.Error(err))
		return entities.HiringDoc{}, err
	}
	return created, nil
}

// List returns the archive newest first.
func (u *HiringDocUseCase) List(ctx context.Context) ([]entities.HiringDoc, error) {
	docs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	return docs, nil
}

func (u *HiringDocUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidHiringDocID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.logger.Error("failed to delete hiring document", zap.String("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrHiringDocNotFound
	}
	return nil
}
