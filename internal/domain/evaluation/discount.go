package evaluation

import (
	"controle_pragas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	penaltyRate  = decimal.New(2, -2) // 2%
	delayDayRate = decimal.New(2, -3) // 0.2% per day
	fullRate     = decimal.NewFromInt(1)
)

// GeneralPercent is the general-checklist contribution, shared by every category.
func GeneralPercent(g entities.GeneralChecklist) decimal.Decimal {
	p := decimal.Zero
	if !g.EmployeeIdentified {
		p = p.Add(penaltyRate)
	}
	if !g.EPIUsed {
		p = p.Add(penaltyRate)
	}
	if g.DamageRecovered {
		p = p.Add(penaltyRate)
	}
	if !g.ProofDelivered {
		p = p.Add(penaltyRate)
	}
	return p
}

// ServicePercent is the insect/rodent contribution. The delay penalty is not capped
// here; the cap applies to the combined percent only.
func ServicePercent(c entities.ServiceChecklist) decimal.Decimal {
	p := decimal.Zero
	if !c.FollowedSchedule && c.DelayDays > 0 {
		p = p.Add(delayDayRate.Mul(decimal.NewFromInt(int64(c.DelayDays))))
	}
	if !c.TrapsOrBaitsMaintained {
		p = p.Add(penaltyRate)
	}
	if c.HadExtraCall {
		if !c.ExtraCallOnTime {
			p = p.Add(penaltyRate)
		}
		if !c.ExtraCallEffective {
			p = p.Add(penaltyRate)
		}
	}
	return p
}

// TermitePercent forfeits the whole category when no chemical barrier was applied.
func TermitePercent(t entities.TermiteChecklist) decimal.Decimal {
	if !t.ChemicalBarrierApplied {
		return fullRate
	}
	return decimal.Zero
}

// CategoryDiscount is the line-itemized discount of one category.
type CategoryDiscount struct {
	Category        entities.ServiceCategory `json:"category"`
	GeneralPercent  decimal.Decimal          `json:"general_percent"`
	SpecificPercent decimal.Decimal          `json:"specific_percent"`
	CappedPercent   decimal.Decimal          `json:"capped_percent"`
	DiscountCents   int64                    `json:"discount_cents"`
}

type DiscountResult struct {
	Insect  CategoryDiscount `json:"insect"`
	Rodent  CategoryDiscount `json:"rodent"`
	Termite CategoryDiscount `json:"termite"`
}

func (r DiscountResult) For(c entities.ServiceCategory) CategoryDiscount {
	switch c {
	case entities.CategoryRodent:
		return r.Rodent
	case entities.CategoryTermite:
		return r.Termite
	default:
		return r.Insect
	}
}

// CategoryDiscountFor sums both contributions, caps the sum at 100% and applies it
// to the row's gross value, rounding half-up to whole cents.
func CategoryDiscountFor(c entities.ServiceCategory, row entities.ServiceFinancials, general, specific decimal.Decimal) CategoryDiscount {
	capped := decimal.Min(fullRate, general.Add(specific))
	gross := row.GrossValue()

	var cents int64
	if gross.IsPositive() {
		cents = gross.Mul(capped).Round(0).IntPart()
	}
	return CategoryDiscount{
		Category:        c,
		GeneralPercent:  general,
		SpecificPercent: specific,
		CappedPercent:   capped,
		DiscountCents:   cents,
	}
}

// ComputeDiscounts derives the discount of every category from the checklist
// answers and the (area, unit price) baseline. It is pure; stored discounts in
// details are ignored.
func ComputeDiscounts(c Checklists, details entities.FinancialDetails) DiscountResult {
	general := GeneralPercent(c.General)
	return DiscountResult{
		Insect:  CategoryDiscountFor(entities.CategoryInsect, details.Insect, general, ServicePercent(c.service(entities.CategoryInsect))),
		Rodent:  CategoryDiscountFor(entities.CategoryRodent, details.Rodent, general, ServicePercent(c.service(entities.CategoryRodent))),
		Termite: CategoryDiscountFor(entities.CategoryTermite, details.Termite, general, TermitePercent(c.termite())),
	}
}

// ApplyDiscounts stores the computed discounts, touching only rows whose value
// differs, and reports whether anything changed.
func ApplyDiscounts(details *entities.FinancialDetails, r DiscountResult) bool {
	changed := false
	for _, c := range entities.Categories() {
		row := details.For(c)
		if next := r.For(c).DiscountCents; row.DiscountCents != next {
			row.DiscountCents = next
			changed = true
		}
	}
	return changed
}
