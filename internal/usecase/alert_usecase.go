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

// AlertsPerPage is the page size of the administrator alert list.
const AlertsPerPage = 10

var (
	ErrAlertNotFound        = errors.New("alert not found")
	ErrInvalidAlertID       = errors.New("invalid alert id")
	ErrAlertTitleRequired   = errors.New("alert title is required")
	ErrInvalidAlertSeverity = errors.New("invalid alert severity")
	ErrAlertExpiresRequired = errors.New("alert expiration is required")
	ErrInvalidAlertListPage = errors.New("invalid alert page")
)

// AlertPage is one page of the filtered alert list, newest first.
type AlertPage struct {
	Items      []entities.SystemAlert
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// IAlertUseCase manages the dashboard alerts.
type IAlertUseCase interface {
	Create(ctx context.Context, a entities.SystemAlert) (entities.SystemAlert, error)
	Update(ctx context.Context, id string, a entities.SystemAlert) (entities.SystemAlert, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string, page int) (AlertPage, error)
	ListActive(ctx context.Context) ([]entities.SystemAlert, error)
}

type AlertUseCase struct {
	repo   interfaces.IAlertRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IAlertUseCase = (*AlertUseCase)(nil)

func NewAlertUseCase(repo interfaces.IAlertRepository, logger *zap.Logger) *AlertUseCase {
	return &AlertUseCase{repo: repo, logger: logger, now: utcNow}
}

func validateAlert(a *entities.SystemAlert) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Content = strings.TrimSpace(a.Content)
	if a.Title == "" {
		return ErrAlertTitleRequired
	}
	if a.Severity == "" {
		a.Severity = entities.AlertSeverityMedium
	}
	if !a.Severity.Valid() {
		return ErrInvalidAlertSeverity
	}
	if a.ExpiresAt.IsZero() {
		return ErrAlertExpiresRequired
	}
	return nil
}

func (u *AlertUseCase) Create(ctx context.Context, a entities.SystemAlert) (entities.SystemAlert, error) {
	if err := validateAlert(&a); err != nil {
		return entities.SystemAlert{}, err
	}
	a.ID = uuid.NewString()
	a.CreatedAt = u.now()

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.logger.Error("failed to create alert", zap.Error(err))
		return entities.SystemAlert{}, err
	}
	return created, nil
}

// Update keeps the original creation time.
func (u *AlertUseCase) Update(ctx context.Context, id string, a entities.SystemAlert) (entities.SystemAlert, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SystemAlert{}, ErrInvalidAlertID
	}
	if err := validateAlert(&a); err != nil {
		return entities.SystemAlert{}, err
	}
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SystemAlert{}, err
	}
	if existing.ID == "" {
		return entities.SystemAlert{}, ErrAlertNotFound
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt

	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		u.logger.Error("failed to update alert", zap.String("id", id), zap.Error(err))
		return entities.SystemAlert{}, err
	}
	if updated.ID == "" {
		return entities.SystemAlert{}, ErrAlertNotFound
	}
	return updated, nil
}

func (u *AlertUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAlertID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.logger.Error("failed to delete alert", zap.String("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrAlertNotFound
	}
	return nil
}

// List filters by a case-insensitive substring of title or content and pages the
// result. Pages start at 1; a page past the end is empty.
func (u *AlertUseCase) List(ctx context.Context, search string, page int) (AlertPage, error) {
	if page < 1 {
		return AlertPage{}, ErrInvalidAlertListPage
	}
	alerts, err := u.repo.List(ctx)
	if err != nil {
		return AlertPage{}, err
	}
	sortAlertsNewestFirst(alerts)

	needle := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]entities.SystemAlert, 0, len(alerts))
	for _, a := range alerts {
		if needle == "" ||
			strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Content), needle) {
			filtered = append(filtered, a)
		}
	}

	res := AlertPage{
		Items:      []entities.SystemAlert{},
		Page:       page,
		PageSize:   AlertsPerPage,
		Total:      len(filtered),
		TotalPages: (len(filtered) + AlertsPerPage - 1) / AlertsPerPage,
	}
	start := (page - 1) * AlertsPerPage
	if start < len(filtered) {
		end := start + AlertsPerPage
		if end > len(filtered) {
			end = len(filtered)
		}
		res.Items = filtered[start:end]
	}
	return res, nil
}

// ListActive returns the alerts that have not expired yet, newest first.
func (u *AlertUseCase) ListActive(ctx context.Context) ([]entities.SystemAlert, error) {
	return activeAlerts(ctx, u.repo, u.now())
}

func activeAlerts(ctx context.Context, repo interfaces.IAlertRepository, now time.Time) ([]entities.SystemAlert, error) {
	alerts, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortAlertsNewestFirst(alerts)
	active := make([]entities.SystemAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.ActiveAt(now) {
			active = append(active, a)
		}
	}
	return active, nil
}

func sortAlertsNewestFirst(alerts []entities.SystemAlert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
}
