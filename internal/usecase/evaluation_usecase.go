package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
	"controle_pragas/internal/metrics"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEvaluationNotFound      = errors.New("evaluation not found")
	ErrInvalidEvaluationID     = errors.New("invalid evaluation id")
	ErrEvaluationForbidden     = errors.New("evaluation belongs to another evaluator")
	ErrEvaluationNotEditable   = errors.New("evaluation is not in progress")
	ErrEvaluationNotCompleted  = errors.New("evaluation is not completed")
	ErrEvaluationNotDeletable  = errors.New("only in-progress evaluations can be deleted")
	ErrInvalidEvaluationStatus = errors.New("invalid evaluation status")
)

// PreviewInput is a full answer state evaluated without a session.
type PreviewInput struct {
	Services   entities.ServiceSelection
	Financials entities.FinancialDetails
	Checklists evaluation.Checklists
}

type PreviewResult struct {
	Discounts  evaluation.DiscountResult
	Financials entities.FinancialDetails
	Summary    evaluation.FinancialSummary
}

// IEvaluationUseCase exposes the stored evaluation lifecycle.
//
// Lifecycle rules:
//   - only the creator edits or reopens an evaluation
//   - edits are accepted while the stored status is in progress
//   - reopening moves a completed evaluation back to in progress
//   - deletion is limited to in-progress evaluations
type IEvaluationUseCase interface {
	Preview(in PreviewInput) PreviewResult
	Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error)
	Update(ctx context.Context, uid string, e entities.Evaluation) (entities.Evaluation, error)
	Reopen(ctx context.Context, uid, id string) (entities.Evaluation, error)
	UpdateStatus(ctx context.Context, id string, status entities.EvaluationStatus) (entities.Evaluation, error)
	GetByID(ctx context.Context, id string) (entities.Evaluation, error)
	List(ctx context.Context, search string) ([]entities.Evaluation, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, search string) ([]byte, error)
}

type EvaluationUseCase struct {
	repo     interfaces.IEvaluationRepository
	exporter interfaces.IEvaluationExporter
	logger   *zap.Logger
	now      func() time.Time
}

var _ IEvaluationUseCase = (*EvaluationUseCase)(nil)

func NewEvaluationUseCase(repo interfaces.IEvaluationRepository, exporter interfaces.IEvaluationExporter, logger *zap.Logger) *EvaluationUseCase {
	return &EvaluationUseCase{repo: repo, exporter: exporter, logger: logger, now: utcNow}
}

// Preview runs the calculator and the aggregator over the given state.
func (u *EvaluationUseCase) Preview(in PreviewInput) PreviewResult {
	discounts := evaluation.ComputeDiscounts(in.Checklists, in.Financials)
	details := in.Financials
	evaluation.ApplyDiscounts(&details, discounts)
	return PreviewResult{
		Discounts:  discounts,
		Financials: details,
		Summary:    evaluation.Aggregate(in.Services, details),
	}
}

func (u *EvaluationUseCase) Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error) {
	if !isSubmitStatus(e.Status) {
		return entities.Evaluation{}, ErrInvalidEvaluationStatus
	}
	now := u.now()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.logger.Error("failed to create evaluation", zap.String("created_by", e.CreatedBy), zap.Error(err))
		return entities.Evaluation{}, err
	}
	return created, nil
}

// Update replaces a stored evaluation with a rebuilt record. Identity and creation
// data of the stored evaluation are kept.
func (u *EvaluationUseCase) Update(ctx context.Context, uid string, e entities.Evaluation) (entities.Evaluation, error) {
	if !isSubmitStatus(e.Status) {
		return entities.Evaluation{}, ErrInvalidEvaluationStatus
	}
	existing, err := u.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if existing.CreatedBy != uid {
		return entities.Evaluation{}, ErrEvaluationForbidden
	}
	if existing.Status != entities.EvaluationStatusEmAndamento {
		return entities.Evaluation{}, ErrEvaluationNotEditable
	}

	// The evaluated unit and its baseline stay with the record even when the
	// editor's profile moved to another unit.
	e.CreatedBy = existing.CreatedBy
	e.CreatedAt = existing.CreatedAt
	e.Unit = existing.Unit
	e.Location = existing.Location
	e.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		u.logger.Error("failed to update evaluation", zap.String("id", e.ID), zap.Error(err))
		return entities.Evaluation{}, err
	}
	if updated.ID == "" {
		return entities.Evaluation{}, ErrEvaluationNotFound
	}
	return updated, nil
}

func (u *EvaluationUseCase) Reopen(ctx context.Context, uid, id string) (entities.Evaluation, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if existing.CreatedBy != uid {
		return entities.Evaluation{}, ErrEvaluationForbidden
	}
	if existing.Status != entities.EvaluationStatusConcluido {
		return entities.Evaluation{}, ErrEvaluationNotCompleted
	}
	return u.updateStatus(ctx, existing.ID, entities.EvaluationStatusEmAndamento)
}

// UpdateStatus is the review transition: pending review, action required or
// completed.
func (u *EvaluationUseCase) UpdateStatus(ctx context.Context, id string, status entities.EvaluationStatus) (entities.Evaluation, error) {
	switch status {
	case entities.EvaluationStatusRevisaoPend, entities.EvaluationStatusAcaoNecessaria, entities.EvaluationStatusConcluido:
	default:
		return entities.Evaluation{}, ErrInvalidEvaluationStatus
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Evaluation{}, ErrInvalidEvaluationID
	}
	return u.updateStatus(ctx, id, status)
}

func (u *EvaluationUseCase) updateStatus(ctx context.Context, id string, status entities.EvaluationStatus) (entities.Evaluation, error) {
	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		u.logger.Error("failed to update evaluation status", zap.String("id", id), zap.String("status", string(status)), zap.Error(err))
		return entities.Evaluation{}, err
	}
	if updated.ID == "" {
		return entities.Evaluation{}, ErrEvaluationNotFound
	}
	return updated, nil
}

func (u *EvaluationUseCase) GetByID(ctx context.Context, id string) (entities.Evaluation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Evaluation{}, ErrInvalidEvaluationID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if e.ID == "" {
		return entities.Evaluation{}, ErrEvaluationNotFound
	}
	return e, nil
}

// List returns evaluations newest first, filtered by a case-insensitive substring
// of unit, location or display id.
func (u *EvaluationUseCase) List(ctx context.Context, search string) ([]entities.Evaluation, error) {
	evals, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(evals, func(i, j int) bool {
		return evals[i].CreatedAt.After(evals[j].CreatedAt)
	})

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return evals, nil
	}
	out := make([]entities.Evaluation, 0, len(evals))
	for _, e := range evals {
		if strings.Contains(strings.ToLower(e.Unit), needle) ||
			strings.Contains(strings.ToLower(e.Location), needle) ||
			strings.Contains(strings.ToLower(e.DisplayID()), needle) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (u *EvaluationUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != entities.EvaluationStatusEmAndamento {
		return ErrEvaluationNotDeletable
	}
	ok, err := u.repo.Delete(ctx, existing.ID)
	if err != nil {
		u.logger.Error("failed to delete evaluation", zap.String("id", existing.ID), zap.Error(err))
		return err
	}
	if !ok {
		return ErrEvaluationNotFound
	}
	return nil
}

// Export renders the filtered list as a spreadsheet.
func (u *EvaluationUseCase) Export(ctx context.Context, search string) ([]byte, error) {
	evals, err := u.List(ctx, search)
	if err != nil {
		return nil, err
	}
	data, err := u.exporter.Export(evals)
	if err != nil {
		u.logger.Error("failed to export evaluations", zap.Int("count", len(evals)), zap.Error(err))
		return nil, err
	}
	metrics.ExportsGenerated.Inc()
	return data, nil
}

func isSubmitStatus(s entities.EvaluationStatus) bool {
	return s == entities.EvaluationStatusEmAndamento || s == entities.EvaluationStatusConcluido
}
