package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EvaluationStatus represents the lifecycle of a monthly evaluation.
//
// Lifecycle:
//   - created by an evaluator as in-progress (draft) or completed
//   - editable only while in progress, and only by its creator
//   - a completed evaluation must be explicitly reopened before editing
//   - deletable only while in progress
type EvaluationStatus string

const (
	EvaluationStatusEmAndamento    EvaluationStatus = "Em Andamento"
	EvaluationStatusConcluido      EvaluationStatus = "Concluído"
	EvaluationStatusRevisaoPend    EvaluationStatus = "Revisão Pendente"
	EvaluationStatusAcaoNecessaria EvaluationStatus = "Ação Necessária"
)

func (s EvaluationStatus) Valid() bool {
	switch s {
	case EvaluationStatusEmAndamento, EvaluationStatusConcluido, EvaluationStatusRevisaoPend, EvaluationStatusAcaoNecessaria:
		return true
	}
	return false
}

// ServiceType is the primary service label shown in evaluation listings.
type ServiceType string

const (
	ServiceTypeDesinsetizacao ServiceType = "Desinsetização"
	ServiceTypeDesratizacao   ServiceType = "Desratização"
	ServiceTypeCupins         ServiceType = "Controle de Cupins"
)

// ServiceCategory is one of the three independently tracked service categories.
type ServiceCategory string

const (
	CategoryInsect  ServiceCategory = "insect"
	CategoryRodent  ServiceCategory = "rodent"
	CategoryTermite ServiceCategory = "termite"
)

// Categories lists every category in display order.
func Categories() []ServiceCategory {
	return []ServiceCategory{CategoryInsect, CategoryRodent, CategoryTermite}
}

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryInsect, CategoryRodent, CategoryTermite:
		return true
	}
	return false
}

// ServiceType maps a category to its listing label.
func (c ServiceCategory) ServiceType() ServiceType {
	switch c {
	case CategoryRodent:
		return ServiceTypeDesratizacao
	case CategoryTermite:
		return ServiceTypeCupins
	default:
		return ServiceTypeDesinsetizacao
	}
}

// ServiceSelection tells which categories an evaluation covers.
type ServiceSelection struct {
	Insect  bool `json:"insect"`
	Rodent  bool `json:"rodent"`
	Termite bool `json:"termite"`
}

func (s ServiceSelection) Has(c ServiceCategory) bool {
	switch c {
	case CategoryInsect:
		return s.Insect
	case CategoryRodent:
		return s.Rodent
	case CategoryTermite:
		return s.Termite
	}
	return false
}

func (s ServiceSelection) Any() bool {
	return s.Insect || s.Rodent || s.Termite
}

// ServiceFinancials is the baseline and discount of one category.
//
// Area and unit price come from the tariff resolver and are read-only for the
// evaluator; only the discount is computed and may be overridden manually.
type ServiceFinancials struct {
	AreaSquareMeters decimal.Decimal `json:"area_square_meters"`
	UnitPriceCents   int64           `json:"unit_price_cents"`
	DiscountCents    int64           `json:"discount_cents"`
}

// GrossValue is area × unit price before rounding, in cents.
func (f ServiceFinancials) GrossValue() decimal.Decimal {
	return f.AreaSquareMeters.Mul(decimal.NewFromInt(f.UnitPriceCents))
}

// ValueCents is the gross value rounded half-up to whole cents.
func (f ServiceFinancials) ValueCents() int64 {
	return f.GrossValue().Round(0).IntPart()
}

// FinancialDetails keeps one ServiceFinancials per category. Unselected categories
// keep their placeholder data.
type FinancialDetails struct {
	Insect  ServiceFinancials `json:"insect"`
	Rodent  ServiceFinancials `json:"rodent"`
	Termite ServiceFinancials `json:"termite"`
}

// For returns a pointer to the category's row, or nil for an unknown category.
func (d *FinancialDetails) For(c ServiceCategory) *ServiceFinancials {
	switch c {
	case CategoryInsect:
		return &d.Insect
	case CategoryRodent:
		return &d.Rodent
	case CategoryTermite:
		return &d.Termite
	}
	return nil
}

// FinancialTotals is the persisted roll-up over the selected categories.
type FinancialTotals struct {
	TotalValueCents    int64 `json:"total_value_cents"`
	TotalDiscountCents int64 `json:"total_discount_cents"`
	TotalFinalCents    int64 `json:"total_final_cents"`
}

type EvaluationFinancials struct {
	Details FinancialDetails `json:"details"`
	Totals  FinancialTotals  `json:"totals"`
}

// GeneralChecklist applies to every selected category.
type GeneralChecklist struct {
	EmployeeIdentified bool `json:"employee_identified"`
	EPIUsed            bool `json:"epi_used"`
	DamageRecovered    bool `json:"damage_recovered"`
	ProofDelivered     bool `json:"proof_delivered"`
}

// ServiceChecklist is the shared checklist shape for insect and rodent control.
//
// DelayDays only counts when FollowedSchedule is false; ExtraCallOnTime and
// ExtraCallEffective only count when HadExtraCall is true.
type ServiceChecklist struct {
	ExecutedAreaSquareMeters decimal.Decimal `json:"executed_area_square_meters"`
	FollowedSchedule         bool            `json:"followed_schedule"`
	DelayDays                int             `json:"delay_days"`
	TrapsOrBaitsMaintained   bool            `json:"traps_or_baits_maintained"`
	HadExtraCall             bool            `json:"had_extra_call"`
	ExtraCallOnTime          bool            `json:"extra_call_on_time"`
	ExtraCallEffective       bool            `json:"extra_call_effective"`
}

type TermiteChecklist struct {
	ChemicalBarrierApplied bool `json:"chemical_barrier_applied"`
}

// Evaluation is the persisted monthly evaluation of one unit.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ReferenceMonth is the full month name ("Janeiro"...); the ordinal index only
// exists inside an authoring session.
type Evaluation struct {
	ID             string `json:"id"`
	CreatedBy      string `json:"created_by"`
	EvaluatorName  string `json:"evaluator_name"`
	EvaluatorUnit  string `json:"evaluator_unit"`
	EvaluatorRole  Role   `json:"evaluator_role"`
	ReferenceMonth string `json:"reference_month"`
	ReferenceYear  int    `json:"reference_year"`

	Services   ServiceSelection     `json:"services"`
	Financials EvaluationFinancials `json:"financials"`

	General GeneralChecklist  `json:"general"`
	Insect  *ServiceChecklist `json:"insect,omitempty"`
	Rodent  *ServiceChecklist `json:"rodent,omitempty"`
	Termite *TermiteChecklist `json:"termite,omitempty"`

	Unit               string           `json:"unit"`
	Location           string           `json:"location"`
	PrimaryServiceType ServiceType      `json:"primary_service_type"`
	ComplianceScore    int              `json:"compliance_score"`
	Status             EvaluationStatus `json:"status"`

	RecordedAt time.Time `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DisplayID is the short identifier shown in listings.
func (e Evaluation) DisplayID() string {
	id := e.ID
	if len(id) > 6 {
		id = id[:6]
	}
	return "#EV-" + strings.ToUpper(id)
}
