package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/money"
	"controle_pragas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidTariff                = errors.New("invalid tariff")
	ErrInvalidNotificationPeriod    = errors.New("notification periods must be positive")
	ErrInvalidNotificationFrequency = errors.New("invalid notification frequency")
)

// ISettingsUseCase manages the contract terms and the tariff table.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, s entities.Settings) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo   interfaces.ISettingsRepository
	logger *zap.Logger
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, logger *zap.Logger) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, logger: logger}
}

// Get serves the defaults until an administrator saves settings.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	if !found {
		return entities.DefaultSettings(), nil
	}
	return s, nil
}

func (u *SettingsUseCase) Save(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	for i, t := range s.Tariffs {
		t.Label = strings.TrimSpace(t.Label)
		t.Value = strings.TrimSpace(t.Value)
		if t.Label == "" {
			return entities.Settings{}, fmt.Errorf("%w: tariff %d has no label", ErrInvalidTariff, i+1)
		}
		if !money.IsMoney(t.Value) {
			return entities.Settings{}, fmt.Errorf("%w: %q is not a valid value", ErrInvalidTariff, t.Value)
		}
		if money.ParseDecimal(t.Value).IsNegative() {
			return entities.Settings{}, fmt.Errorf("%w: %q is negative", ErrInvalidTariff, t.Value)
		}
		s.Tariffs[i] = t
	}
	for _, p := range s.NotificationPeriods {
		if p <= 0 {
			return entities.Settings{}, ErrInvalidNotificationPeriod
		}
	}
	if s.NotificationFrequency == "" {
		s.NotificationFrequency = entities.NotificationOnce
	}
	if !s.NotificationFrequency.Valid() {
		return entities.Settings{}, ErrInvalidNotificationFrequency
	}

	recipients := make([]string, 0, len(s.EmailRecipients))
	for _, r := range s.EmailRecipients {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	s.EmailRecipients = recipients
	if s.NotificationPeriods == nil {
		s.NotificationPeriods = []int{}
	}
	if s.Tariffs == nil {
		s.Tariffs = []entities.Tariff{}
	}

	saved, err := u.repo.Put(ctx, s)
	if err != nil {
		u.logger.Error("failed to save settings", zap.Error(err))
		return entities.Settings{}, err
	}
	return saved, nil
}
