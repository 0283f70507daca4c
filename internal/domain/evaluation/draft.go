package evaluation

import (
	"errors"
	"time"

	"controle_pragas/internal/domain/entities"
)

var (
	ErrInvalidMonth     = errors.New("invalid reference month")
	ErrInvalidDelayDays = errors.New("delay days must not be negative")
	ErrUnknownCategory  = errors.New("unknown service category")
	ErrNegativeDiscount = errors.New("discount must not be negative")
)

// Draft is the in-memory answer and financial state of one evaluation being
// authored. Discounts are derived state: every mutation goes through Apply, which
// recomputes them once.
type Draft struct {
	ReferenceMonth int                       `json:"reference_month"`
	ReferenceYear  int                       `json:"reference_year"`
	Services       entities.ServiceSelection `json:"services"`
	Financials     entities.FinancialDetails `json:"financials"`
	General        entities.GeneralChecklist `json:"general"`
	Insect         entities.ServiceChecklist `json:"insect"`
	Rodent         entities.ServiceChecklist `json:"rodent"`
	Termite        entities.TermiteChecklist `json:"termite"`
}

// NewDraft starts a compliant draft for the month of now. The executed area of the
// insect and rodent checklists defaults to the unit area.
func NewDraft(baseline entities.FinancialDetails, now time.Time) Draft {
	d := Draft{
		ReferenceMonth: int(now.Month()) - 1,
		ReferenceYear:  now.Year(),
		Financials:     baseline,
		General:        DefaultGeneralChecklist(),
		Insect:         DefaultServiceChecklist(),
		Rodent:         DefaultServiceChecklist(),
		Termite:        DefaultTermiteChecklist(),
	}
	d.Insect.ExecutedAreaSquareMeters = baseline.Insect.AreaSquareMeters
	d.Rodent.ExecutedAreaSquareMeters = baseline.Rodent.AreaSquareMeters
	d.Recompute()
	return d
}

// Mutation is a recompute-on-change message: every non-nil field replaces the
// matching part of the draft.
type Mutation struct {
	ReferenceMonth *int                       `json:"reference_month,omitempty"`
	Services       *entities.ServiceSelection `json:"services,omitempty"`
	General        *entities.GeneralChecklist `json:"general,omitempty"`
	Insect         *entities.ServiceChecklist `json:"insect,omitempty"`
	Rodent         *entities.ServiceChecklist `json:"rodent,omitempty"`
	Termite        *entities.TermiteChecklist `json:"termite,omitempty"`
}

func (m Mutation) validate() error {
	if m.ReferenceMonth != nil {
		if _, ok := MonthName(*m.ReferenceMonth); !ok {
			return ErrInvalidMonth
		}
	}
	if m.Insect != nil && m.Insect.DelayDays < 0 {
		return ErrInvalidDelayDays
	}
	if m.Rodent != nil && m.Rodent.DelayDays < 0 {
		return ErrInvalidDelayDays
	}
	return nil
}

// Apply validates the whole mutation before touching the draft, then recomputes.
// It reports whether any stored discount changed.
func (d *Draft) Apply(m Mutation) (bool, error) {
	if err := m.validate(); err != nil {
		return false, err
	}
	if m.ReferenceMonth != nil {
		d.ReferenceMonth = *m.ReferenceMonth
	}
	if m.Services != nil {
		d.Services = *m.Services
	}
	if m.General != nil {
		d.General = *m.General
	}
	if m.Insect != nil {
		d.Insect = *m.Insect
	}
	if m.Rodent != nil {
		d.Rodent = *m.Rodent
	}
	if m.Termite != nil {
		d.Termite = *m.Termite
	}
	return d.Recompute(), nil
}

func (d *Draft) Checklists() Checklists {
	insect, rodent, termite := d.Insect, d.Rodent, d.Termite
	return Checklists{General: d.General, Insect: &insect, Rodent: &rodent, Termite: &termite}
}

// Recompute refreshes the stored discounts from the current answers.
func (d *Draft) Recompute() bool {
	return ApplyDiscounts(&d.Financials, ComputeDiscounts(d.Checklists(), d.Financials))
}

// Discounts returns the line-itemized computation without storing it.
func (d *Draft) Discounts() DiscountResult {
	return ComputeDiscounts(d.Checklists(), d.Financials)
}

// OverrideDiscount replaces a computed discount by hand. A value above the gross
// value is accepted and shows up as a negative final in the summary. The next
// answer change recomputes and discards the override.
func (d *Draft) OverrideDiscount(c entities.ServiceCategory, cents int64) error {
	row := d.Financials.For(c)
	if row == nil {
		return ErrUnknownCategory
	}
	if cents < 0 {
		return ErrNegativeDiscount
	}
	row.DiscountCents = cents
	return nil
}

// RefreshBaseline swaps in a newer (area, unit price) snapshot and recomputes.
func (d *Draft) RefreshBaseline(baseline entities.FinancialDetails) bool {
	for _, c := range entities.Categories() {
		row, next := d.Financials.For(c), baseline.For(c)
		row.AreaSquareMeters = next.AreaSquareMeters
		row.UnitPriceCents = next.UnitPriceCents
	}
	return d.Recompute()
}

func (d *Draft) Summary() FinancialSummary {
	return Aggregate(d.Services, d.Financials)
}
