package evaluation

import "controle_pragas/internal/domain/entities"

type CategorySummary struct {
	Category      entities.ServiceCategory `json:"category"`
	ValueCents    int64                    `json:"value_cents"`
	DiscountCents int64                    `json:"discount_cents"`
	FinalCents    int64                    `json:"final_cents"`
}

// FinancialSummary is the derived financial view of an evaluation.
type FinancialSummary struct {
	PerCategory        []CategorySummary `json:"per_category"`
	TotalValueCents    int64             `json:"total_value_cents"`
	TotalDiscountCents int64             `json:"total_discount_cents"`
	TotalFinalCents    int64             `json:"total_final_cents"`
}

func (s FinancialSummary) Totals() entities.FinancialTotals {
	return entities.FinancialTotals{
		TotalValueCents:    s.TotalValueCents,
		TotalDiscountCents: s.TotalDiscountCents,
		TotalFinalCents:    s.TotalFinalCents,
	}
}

// NegativeFinals lists categories whose final value went below zero, which only
// happens after a manual discount override larger than the gross value.
func (s FinancialSummary) NegativeFinals() []entities.ServiceCategory {
	var out []entities.ServiceCategory
	for _, c := range s.PerCategory {
		if c.FinalCents < 0 {
			out = append(out, c.Category)
		}
	}
	return out
}

// Aggregate totals the selected categories. Unselected categories contribute
// nothing and are left out of PerCategory.
func Aggregate(sel entities.ServiceSelection, details entities.FinancialDetails) FinancialSummary {
	summary := FinancialSummary{PerCategory: []CategorySummary{}}
	for _, c := range entities.Categories() {
		if !sel.Has(c) {
			continue
		}
		row := details.For(c)
		value := row.ValueCents()
		final := value - row.DiscountCents

		summary.PerCategory = append(summary.PerCategory, CategorySummary{
			Category:      c,
			ValueCents:    value,
			DiscountCents: row.DiscountCents,
			FinalCents:    final,
		})
		summary.TotalValueCents += value
		summary.TotalDiscountCents += row.DiscountCents
		summary.TotalFinalCents += final
	}
	return summary
}
