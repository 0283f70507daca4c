package usecase

import (
	"context"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
	"controle_pragas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

// loadSettings returns the stored settings, or the defaults when they were never
// saved or cannot be read. Reference data is never fatal.
func loadSettings(ctx context.Context, repo interfaces.ISettingsRepository, logger *zap.Logger) entities.Settings {
	s, found, err := repo.Get(ctx)
	if err != nil {
		logger.Warn("settings unavailable, using defaults", zap.Error(err))
		return entities.DefaultSettings()
	}
	if !found {
		return entities.DefaultSettings()
	}
	return s
}

// BaselineResolver feeds the tariff resolver from the stores: the settings tariff
// table and the floor area of the evaluator's unit.
type BaselineResolver struct {
	units    interfaces.IUnitRepository
	settings interfaces.ISettingsRepository
	logger   *zap.Logger
}

func NewBaselineResolver(units interfaces.IUnitRepository, settings interfaces.ISettingsRepository, logger *zap.Logger) *BaselineResolver {
	return &BaselineResolver{units: units, settings: settings, logger: logger}
}

// Resolve never fails: a missing unit or tariff yields zero area or price.
func (r *BaselineResolver) Resolve(ctx context.Context, unitName string) entities.FinancialDetails {
	settings := loadSettings(ctx, r.settings, r.logger)

	// Unit names match exactly, case and surrounding spaces included.
	var unit *entities.Unit
	if unitName != "" {
		u, err := r.units.GetByName(ctx, unitName)
		switch {
		case err != nil:
			r.logger.Warn("unit lookup failed, area defaults to zero", zap.String("unit", unitName), zap.Error(err))
		case u.ID == "":
			r.logger.Warn("unit not found, area defaults to zero", zap.String("unit", unitName))
		default:
			unit = &u
		}
	}

	prices := evaluation.UnitPrices(settings.Tariffs)
	for _, c := range entities.Categories() {
		if _, ok := prices[c]; !ok {
			r.logger.Warn("no tariff matches category, unit price defaults to zero", zap.String("category", string(c)))
		}
	}
	return evaluation.ResolveBaseline(unit, settings.Tariffs)
}
