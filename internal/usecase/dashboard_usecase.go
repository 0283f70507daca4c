package usecase

import (
	"context"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// UnitStatus flags whether a unit already has an evaluation recorded this month.
type UnitStatus struct {
	Unit               entities.Unit
	CompletedThisMonth bool
}

type Dashboard struct {
	Settings             entities.Settings
	ActiveAlerts         []entities.SystemAlert
	Units                []UnitStatus
	EvaluationsThisMonth int
	// CompliancePercent is evaluations recorded this month over the unit count, one
	// decimal place.
	CompliancePercent decimal.Decimal
}

type IDashboardUseCase interface {
	Get(ctx context.Context) (Dashboard, error)
}

type DashboardUseCase struct {
	settings    interfaces.ISettingsRepository
	alerts      interfaces.IAlertRepository
	units       interfaces.IUnitRepository
	evaluations interfaces.IEvaluationRepository
	logger      *zap.Logger
	now         func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	settings interfaces.ISettingsRepository,
	alerts interfaces.IAlertRepository,
	units interfaces.IUnitRepository,
	evaluations interfaces.IEvaluationRepository,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		settings:    settings,
		alerts:      alerts,
		units:       units,
		evaluations: evaluations,
		logger:      logger,
		now:         utcNow,
	}
}

func (u *DashboardUseCase) Get(ctx context.Context) (Dashboard, error) {
	now := u.now()

	active, err := activeAlerts(ctx, u.alerts, now)
	if err != nil {
		return Dashboard{}, err
	}
	units, err := u.units.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	evals, err := u.evaluations.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	evaluatedUnits := make(map[string]bool)
	thisMonth := 0
	for _, e := range evals {
		if !sameMonth(e.RecordedAt, now) {
			continue
		}
		thisMonth++
		evaluatedUnits[e.Unit] = true
	}

	statuses := make([]UnitStatus, 0, len(units))
	for _, unit := range units {
		statuses = append(statuses, UnitStatus{Unit: unit, CompletedThisMonth: evaluatedUnits[unit.Name]})
	}

	compliance := decimal.Zero
	if len(units) > 0 {
		compliance = decimal.NewFromInt(int64(thisMonth)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(len(units)))).
			Round(1)
	}

	return Dashboard{
		Settings:             loadSettings(ctx, u.settings, u.logger),
		ActiveAlerts:         active,
		Units:                statuses,
		EvaluationsThisMonth: thisMonth,
		CompliancePercent:    compliance,
	}, nil
}

func sameMonth(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}
